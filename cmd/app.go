// Package cmd implements the CLI application to manage invoices.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/etnz/invoicer/store"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"gopkg.in/yaml.v3"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&companyCmd{}, "profile")

	c.Register(&saveCmd{}, "invoices")
	c.Register(&listCmd{}, "invoices")
	c.Register(&showCmd{}, "invoices")
	c.Register(&deleteCmd{}, "invoices")
	c.Register(&importCmd{}, "invoices")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// Complete wires shell completion for the command names. In a completion
// context it prints the candidates and exits.
func Complete(name string) {
	sub := make(map[string]*complete.Command)
	for _, n := range []string{"company", "save", "list", "show", "delete", "import", "dashboard", "export", "topic"} {
		sub[n] = &complete.Command{}
	}
	cmd := &complete.Command{Sub: sub}
	cmd.Complete(name)
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFlag = flag.String("data", "", "Path to the invoice database file (default invoices.db)")
var currencyFlag = flag.String("currency", "", "Display currency code (default USD)")
var configFlag = flag.String("config", "", "Path to the YAML config file (default .ivg.yaml)")

// config holds the file-level defaults for the app flags.
type config struct {
	Data     string `yaml:"data"`
	Currency string `yaml:"currency"`
}

var loadOnce sync.Once
var loaded config

// appConfig resolves the app configuration: built-in defaults, then the
// YAML config file, then environment variables, then flags.
func appConfig() config {
	loadOnce.Do(func() {
		loaded = config{Data: "invoices.db", Currency: "USD"}

		path := *configFlag
		if path == "" {
			path = os.Getenv("IVG_CONFIG")
		}
		if path == "" {
			path = ".ivg.yaml"
		}
		if content, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(content, &loaded); err != nil {
				log.Printf("warning, ignoring malformed config file %q: %v", path, err)
			}
		}
		if v := os.Getenv("IVG_DATA"); v != "" {
			loaded.Data = v
		}
		if v := os.Getenv("IVG_CURRENCY"); v != "" {
			loaded.Currency = v
		}
	})

	c := loaded
	if *dataFlag != "" {
		c.Data = *dataFlag
	}
	if *currencyFlag != "" {
		c.Currency = *currencyFlag
	}
	return c
}

// currency returns the display currency for reports and exports.
func currency() string { return appConfig().Currency }

// openStore is the central function to open the invoice database.
func openStore() (store.Store, error) {
	s, err := store.OpenBolt(appConfig().Data)
	if err != nil {
		return nil, fmt.Errorf("could not open invoice database: %w", err)
	}
	return s, nil
}
