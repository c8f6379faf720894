package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/invoicer/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	name := path.Base(os.Args[0])

	// In a shell completion context this prints the candidates and exits.
	cmd.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
