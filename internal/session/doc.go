// Package session holds the state of a single study session: which cards are
// still in play, which have been retired as mastered, where the user is in
// the deck, whether the answer face is showing, the pending guess and its
// feedback, and the streak counters.
//
// A Session is a single-owner mutable struct. Every operation is a
// synchronous state transition with no I/O; boundary conditions (first or
// last card, blank guess, finished deck) are handled as no-ops rather than
// errors. Readers take an immutable Snapshot, and Version increases on every
// effective change so callers can detect staleness.
//
// Per-card state machine:
//
//	Unflipped --Flip/Submit--> Flipped
//	Flipped --GoNext/GoBack/Shuffle/MarkMastered/NextRandom--> Unflipped (new card)
//
// Once MarkMastered drains the active cards the session is Done, and no
// operation leaves that state.
package session
