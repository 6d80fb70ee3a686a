// Package order contains the Order aggregate, the root of the escrow workflow
// state machine. An order moves through a fixed forward-only lifecycle:
//
//	pending_payment -> payment_frozen -> seller_accepted -> worker_assigned -> picked_up -> completed
//
// and may be cancelled from any non-terminal status. The Status type owns
// transition legality; the aggregate owns the invariants tying the order to
// its escrow, its verification codes, and its delivery assignment.
package order
