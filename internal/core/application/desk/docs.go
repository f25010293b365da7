// Package desk holds the per-user view sessions of shipdesk.
//
// A Desk owns one ShipmentListController and the two mutation workflows
// (cancellation and courier assignment) that act on it. Desks never change
// shipments locally: every successful mutation is followed by a refresh from
// the upstream backend.
//
// Desks live in a Registry keyed by kernel.UUID and are dropped after they
// have been idle for too long.
package desk
