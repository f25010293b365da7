// Package commands contains the mutations a desk can issue against the upstream
// backend. Every command follows the same pattern: guarded construction,
// one upstream call, one journal entry.
package commands
