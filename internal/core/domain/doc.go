// Package domain defines the core business entities for rosterpass.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RosterRecord / GuestRecord: The two institutional source shapes
//   - SourceRecord: A tagged union over the source shapes
//   - ImportRecord: The canonical output row
//   - Profile: Deployment-specific policy settings
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
