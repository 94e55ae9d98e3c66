// Package study is the application layer over a single study session.
//
// It serializes access to the session, translates boundary cases into
// service errors where a caller needs to know (blank guess, finished deck),
// and publishes a SessionEvent for every effective state change.
package study
