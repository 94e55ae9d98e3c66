// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes a function field per interface method. When the field is
// nil the mock returns its default values, so tests only stub what they
// exercise:
//
//	svc := &mocks.MockStudyService{
//	    SubmitFn: func(ctx context.Context) (session.Snapshot, error) {
//	        return session.Snapshot{}, study.ErrEmptyGuess
//	    },
//	}
package mocks
