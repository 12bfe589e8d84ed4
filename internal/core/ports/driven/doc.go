// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - RowReader: Reads raw tabular rows from one source file
//   - ReaderFactory: Creates row readers per file kind
//   - ImportWriter: Persists canonical records to the output sink
//   - ProfileStore: Loads deployment policy settings
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or reader package
package driven
