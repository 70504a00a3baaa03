// Package binom implements the tracker capability over the Binom HTTP
// API. Cost updates go through the v1 API (query-page endpoints on the
// tracking domain root); campaign reads go through the v2 API
// (arm.php actions). Wire shapes are decoded into typed structs here
// and never leave this package.
package binom
