// Package propeller implements the provider capability over the
// PropellerAds SSP v5 API. Campaign listing covers non-archived
// campaigns in active-ish statuses; cost fetching groups the
// statistics endpoint by campaign ID.
package propeller
