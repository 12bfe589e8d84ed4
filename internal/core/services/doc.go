// Package services implements the driving port interfaces.
// Services contain the core business logic - schema decoding, record
// normalization and batch orchestration - and call out to driven ports
// (readers, writers) for all I/O.
package services
