package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/scry-study/internal/service/study"
	"github.com/phrazzld/scry-study/internal/session"
)

var _ study.StudyService = (*MockStudyService)(nil)

// MockStudyService implements study.StudyService for testing
type MockStudyService struct {
	// Custom behavior functions
	SnapshotFn     func(ctx context.Context) session.Snapshot
	FlipFn         func(ctx context.Context) (session.Snapshot, error)
	SetGuessFn     func(ctx context.Context, text string) (session.Snapshot, error)
	SubmitFn       func(ctx context.Context) (session.Snapshot, error)
	SubmitGuessFn  func(ctx context.Context, text string) (session.Snapshot, error)
	NextFn         func(ctx context.Context) (session.Snapshot, error)
	BackFn         func(ctx context.Context) (session.Snapshot, error)
	ShuffleFn      func(ctx context.Context) (session.Snapshot, error)
	MarkMasteredFn func(ctx context.Context) (session.Snapshot, error)
	NextRandomFn   func(ctx context.Context) (session.Snapshot, error)
	RestartFn      func(ctx context.Context) (session.Snapshot, error)

	// Default response values
	State session.Snapshot
	Err   error

	// Call tracking for verification
	mu      sync.Mutex
	calls   map[string]int
	guesses []string
}

func (m *MockStudyService) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// Calls returns how many times the named method was invoked.
func (m *MockStudyService) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// Guesses returns every text passed to SetGuess or SubmitGuess, in order.
func (m *MockStudyService) Guesses() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.guesses...)
}

func (m *MockStudyService) call(
	ctx context.Context,
	method string,
	fn func(ctx context.Context) (session.Snapshot, error),
) (session.Snapshot, error) {
	m.record(method)
	if fn != nil {
		return fn(ctx)
	}
	return m.State, m.Err
}

// Snapshot implements the study.StudyService interface
func (m *MockStudyService) Snapshot(ctx context.Context) session.Snapshot {
	m.record("Snapshot")
	if m.SnapshotFn != nil {
		return m.SnapshotFn(ctx)
	}
	return m.State
}

// SetGuess implements the study.StudyService interface
func (m *MockStudyService) SetGuess(ctx context.Context, text string) (session.Snapshot, error) {
	m.recordGuess("SetGuess", text)
	if m.SetGuessFn != nil {
		return m.SetGuessFn(ctx, text)
	}
	return m.State, m.Err
}

// SubmitGuess implements the study.StudyService interface
func (m *MockStudyService) SubmitGuess(ctx context.Context, text string) (session.Snapshot, error) {
	m.recordGuess("SubmitGuess", text)
	if m.SubmitGuessFn != nil {
		return m.SubmitGuessFn(ctx, text)
	}
	return m.State, m.Err
}

func (m *MockStudyService) recordGuess(method, text string) {
	m.record(method)
	m.mu.Lock()
	m.guesses = append(m.guesses, text)
	m.mu.Unlock()
}

// Flip implements the study.StudyService interface
func (m *MockStudyService) Flip(ctx context.Context) (session.Snapshot, error) {
	return m.call(ctx, "Flip", m.FlipFn)
}

// Submit implements the study.StudyService interface
func (m *MockStudyService) Submit(ctx context.Context) (session.Snapshot, error) {
	return m.call(ctx, "Submit", m.SubmitFn)
}

// Next implements the study.StudyService interface
func (m *MockStudyService) Next(ctx context.Context) (session.Snapshot, error) {
	return m.call(ctx, "Next", m.NextFn)
}

// Back implements the study.StudyService interface
func (m *MockStudyService) Back(ctx context.Context) (session.Snapshot, error) {
	return m.call(ctx, "Back", m.BackFn)
}

// Shuffle implements the study.StudyService interface
func (m *MockStudyService) Shuffle(ctx context.Context) (session.Snapshot, error) {
	return m.call(ctx, "Shuffle", m.ShuffleFn)
}

// MarkMastered implements the study.StudyService interface
func (m *MockStudyService) MarkMastered(ctx context.Context) (session.Snapshot, error) {
	return m.call(ctx, "MarkMastered", m.MarkMasteredFn)
}

// NextRandom implements the study.StudyService interface
func (m *MockStudyService) NextRandom(ctx context.Context) (session.Snapshot, error) {
	return m.call(ctx, "NextRandom", m.NextRandomFn)
}

// Restart implements the study.StudyService interface
func (m *MockStudyService) Restart(ctx context.Context) (session.Snapshot, error) {
	return m.call(ctx, "Restart", m.RestartFn)
}
