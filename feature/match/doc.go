// Package match associates tracker campaigns with provider campaigns by
// destination-URL containment.
//
// A tracker campaign's destination URL is its click-tracking redirect,
// built from the tracking domain and the campaign's click key. A
// provider campaign matches when that URL appears as a substring inside
// the provider campaign's landing URL, typically as a query parameter.
//
// The matcher produces one Match per tracker campaign with at least one
// matching provider campaign, plus an Index of all matched provider
// campaigns grouped by provider. The Index exists so the synchronizer
// can batch each provider's cost fetch over every matched ID at once.
package match
