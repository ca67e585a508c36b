// Package models defines the core domain models for Billbook.
//
// # Aggregate
//
// AppState is the aggregate root: it owns every entity collection plus the
// CompanySettings singleton and is the single unit of persistence. The whole
// aggregate is serialized as one JSON document on every change, so all JSON
// tags here define the persisted document shape and must stay stable across
// releases (see internal/storage/jsonfile for schema migrations).
//
// # Design Principles
//
//  1. Entities reference each other by ID string, never by pointer.
//  2. Invoices snapshot the client fields they print; later client edits must
//     not rewrite history.
//  3. Monetary amounts are float64 in rupees, matching the persisted
//     document. Derived amounts (item totals, invoice aggregates, client
//     balances) are computed by internal/calculator and internal/store, never
//     set by callers.
package models
