// Package snapshot persists and restores point-in-time copies of the
// listing ledger so the entry WAL can be truncated.
package snapshot
