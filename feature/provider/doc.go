// Package provider defines the capability contract every advertising
// network integration implements, the campaign value object shared by
// all of them, and the registry the pipeline fans matching out across.
//
// # Contract
//
// An adapter lists its campaigns once per lifetime (Catalog enforces the
// fetch-once semantics), matches destination URLs by substring
// containment against the cached campaign URLs, and batch-fetches
// aggregate spend for a set of campaign IDs over a date window.
//
// # Cost state
//
// A campaign's cost is explicitly unset until the owning adapter stores
// a fetched value. Unset is distinct from zero: zero is a valid fetched
// cost, unset means "no stats fetched yet" and is excluded from
// aggregation.
package provider
