// Package tracker defines the capability boundary toward the traffic
// tracker: the system of record for campaign spend bookkeeping.
//
// The core pipeline only depends on the Client interface defined here.
// Concrete tracker integrations (see the binom subpackage) implement it
// and keep every transport and wire-format detail private.
//
// # Cost updates
//
// Cost write-backs carry a cost type and a date preset understood by the
// tracker. The numeric values mirror the tracker's API enumeration and
// must not be reordered.
package tracker
