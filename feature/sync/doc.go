// Package sync orchestrates one cost reconciliation run: match tracker
// campaigns against provider campaigns, batch-fetch each involved
// provider's spend for yesterday's window exactly once, aggregate cost
// per tracker campaign, and write nonzero aggregates back to the
// tracker.
//
// A Synchronizer holds per-run state (the cost-fetch cache and the
// matched-campaign index) and must be constructed fresh for every
// invocation, together with a fresh provider registry.
package sync
