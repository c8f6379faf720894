// Package invoicer provides the types and functions for producing invoices
// from locally stored data. It is designed to be local-first: the company
// profile and every saved invoice live in a small key-value store on disk,
// and nothing ever leaves the machine.
//
// The core functionalities include:
//   - Data Model: the company profile, invoices, and their ordered line
//     items, with numeric fields that read leniently (anything unparseable
//     is zero, never an error).
//   - Totals Calculation: a pure function deriving subtotal, tax amount,
//     discount, and grand total from an invoice's items, with exact decimal
//     accumulation and two-decimal formatting.
//   - Reconciliation: the update-or-append decision made when saving an
//     invoice against the stored sequence, and positional deletion.
//   - Aggregation: the dashboard projection (revenue, count, average) over
//     all stored invoices.
//   - Data Persistence: reading and writing the two well-known store keys,
//     degrading to empty defaults when the store is absent or damaged.
//
// This package serves as the foundational logic for the `ivg` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package invoicer
