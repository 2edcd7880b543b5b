// Package testutil contains helper builders and utilities used across tests
// to reduce boilerplate when constructing core model objects (transcripts,
// turns, votes) and asserting behaviors. These helpers are internal-only and
// not part of the public API surface.
package testutil
