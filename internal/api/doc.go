// Package api handles incoming HTTP requests, request validation, and
// response formatting for the study session. It is the boundary a view
// talks to: every handler invokes one session operation and answers with the
// resulting session state.
package api
