// Package history persists applied cost updates to MySQL for auditing.
//
// The store is optional: when history is disabled in configuration the
// synchronizer simply runs without a recorder. Each successful tracker
// write-back becomes one row, keyed by the run ID, so reconciled spend
// can be traced back to the run and providers that produced it.
package history
