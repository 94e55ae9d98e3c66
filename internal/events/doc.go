// Package events provides types and interfaces for observing a study session.
//
// The study service emits a SessionEvent after every effective state change.
// Handlers subscribe through an EventEmitter without the service knowing who
// listens, which keeps logging and statistics out of the session core.
//
// The primary components are:
// - SessionEvent: A record of one state transition
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
// - LogHandler and StatsHandler: Built-in handlers for logging and tallies
package events
