package invoicer

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/etnz/invoicer/store"
)

// The two well-known store keys. The company profile is a single object,
// the invoice records an ordered JSON array.
const (
	KeyCompanyProfile = "companyProfile"
	KeyInvoiceRecords = "invoiceRecords"
)

// LoadCompany reads the company profile from the store.
//
// An absent key, a failed read, or malformed stored JSON all degrade to the
// empty profile: a fresh or damaged store behaves like a first run, never
// like a fatal error.
func LoadCompany(s store.Store) CompanyProfile {
	var company CompanyProfile
	data, err := s.Get(KeyCompanyProfile)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("warning, could not read company profile, using an empty one: %v", err)
		}
		return company
	}
	if err := json.Unmarshal(data, &company); err != nil {
		log.Printf("warning, malformed company profile in store, using an empty one: %v", err)
		return CompanyProfile{}
	}
	return company
}

// SaveCompany writes the company profile wholesale.
func SaveCompany(s store.Store, company CompanyProfile) error {
	data, err := json.Marshal(company)
	if err != nil {
		return fmt.Errorf("could not encode company profile: %w", err)
	}
	if err := s.Set(KeyCompanyProfile, data); err != nil {
		return fmt.Errorf("could not write company profile: %w", err)
	}
	return nil
}

// LoadInvoices reads the stored invoice sequence, in stored order.
//
// Like LoadCompany it degrades to the empty default: absent key, failed
// read, or malformed JSON yield an empty sequence.
func LoadInvoices(s store.Store) []Invoice {
	data, err := s.Get(KeyInvoiceRecords)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("warning, could not read invoices, starting from an empty list: %v", err)
		}
		return nil
	}
	var invoices []Invoice
	if err := json.Unmarshal(data, &invoices); err != nil {
		log.Printf("warning, malformed invoices in store, starting from an empty list: %v", err)
		return nil
	}
	return invoices
}

// SaveInvoices writes the whole invoice sequence wholesale, preserving
// order. The single-key write is the transaction boundary: the store never
// observes a partially written sequence.
func SaveInvoices(s store.Store, invoices []Invoice) error {
	if invoices == nil {
		invoices = []Invoice{}
	}
	data, err := json.Marshal(invoices)
	if err != nil {
		return fmt.Errorf("could not encode invoices: %w", err)
	}
	if err := s.Set(KeyInvoiceRecords, data); err != nil {
		return fmt.Errorf("could not write invoices: %w", err)
	}
	return nil
}
