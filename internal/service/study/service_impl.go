package study

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/phrazzld/scry-study/internal/events"
	"github.com/phrazzld/scry-study/internal/platform/logger"
	"github.com/phrazzld/scry-study/internal/session"
)

// Verify interface compliance at compile time
var _ StudyService = (*studyServiceImpl)(nil)

// SessionFactory builds a fresh session. It is called once at construction
// and again on every Restart.
type SessionFactory func() *session.Session

// studyServiceImpl implements the StudyService interface.
type studyServiceImpl struct {
	mu         sync.Mutex
	sess       *session.Session
	newSession SessionFactory
	emitter    events.EventEmitter
	logger     *slog.Logger
}

// NewStudyService creates a new StudyService implementation.
func NewStudyService(
	newSession SessionFactory,
	emitter events.EventEmitter,
	logger *slog.Logger,
) StudyService {
	if newSession == nil {
		panic("newSession cannot be nil")
	}
	if emitter == nil {
		panic("emitter cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &studyServiceImpl{
		sess:       newSession(),
		newSession: newSession,
		emitter:    emitter,
		logger:     logger.With(slog.String("component", "study_service")),
	}
}

// Snapshot implements StudyService.Snapshot.
func (s *studyServiceImpl) Snapshot(ctx context.Context) session.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.Snapshot()
}

// Flip implements StudyService.Flip.
func (s *studyServiceImpl) Flip(ctx context.Context) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess.Flip() {
		s.emit(ctx, events.TypeCardFlipped, map[string]bool{"flipped": s.sess.Flipped()})
	}
	return s.sess.Snapshot(), nil
}

// SetGuess implements StudyService.SetGuess.
func (s *studyServiceImpl) SetGuess(ctx context.Context, text string) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.sess.Version()
	s.sess.SetGuess(text)
	if s.sess.Version() != before {
		s.emit(ctx, events.TypeGuessUpdated, nil)
	}
	return s.sess.Snapshot(), nil
}

// Submit implements StudyService.Submit.
func (s *studyServiceImpl) Submit(ctx context.Context) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSubmittable(ctx, s.sess.Guess()); err != nil {
		return s.sess.Snapshot(), err
	}
	return s.judge(ctx), nil
}

// SubmitGuess implements StudyService.SubmitGuess.
func (s *studyServiceImpl) SubmitGuess(ctx context.Context, text string) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSubmittable(ctx, text); err != nil {
		return s.sess.Snapshot(), err
	}

	before := s.sess.Version()
	s.sess.SetGuess(text)
	if s.sess.Version() != before {
		s.emit(ctx, events.TypeGuessUpdated, nil)
	}
	return s.judge(ctx), nil
}

// checkSubmittable reports why guess cannot be judged right now, if it
// cannot. It never changes the session.
func (s *studyServiceImpl) checkSubmittable(ctx context.Context, guess string) error {
	card, ok := s.sess.Current()
	if !ok {
		return NewServiceError("submit", "no card to answer", ErrSessionComplete)
	}
	if strings.TrimSpace(guess) == "" {
		logger.FromContextOrDefault(ctx, s.logger).Debug("ignoring blank guess",
			slog.Int("card_id", card.ID))
		return NewServiceError("submit", "blank guess", ErrEmptyGuess)
	}
	return nil
}

// judge submits the pending guess. The caller holds s.mu and has already
// run checkSubmittable.
func (s *studyServiceImpl) judge(ctx context.Context) session.Snapshot {
	card, _ := s.sess.Current()
	s.sess.Submit()
	snap := s.sess.Snapshot()

	logger.FromContextOrDefault(ctx, s.logger).Debug("answer judged",
		slog.Int("card_id", card.ID),
		slog.String("feedback", snap.Feedback.String()),
		slog.Int("current_streak", snap.CurrentStreak))

	s.emit(ctx, events.TypeAnswerSubmitted, events.AnswerPayload{
		CardID:        card.ID,
		Correct:       snap.Feedback == domain.FeedbackCorrect,
		CurrentStreak: snap.CurrentStreak,
		LongestStreak: snap.LongestStreak,
	})
	return snap
}

// Next implements StudyService.Next.
func (s *studyServiceImpl) Next(ctx context.Context) (session.Snapshot, error) {
	return s.navigate(ctx, events.TypeCardAdvanced, (*session.Session).GoNext)
}

// Back implements StudyService.Back.
func (s *studyServiceImpl) Back(ctx context.Context) (session.Snapshot, error) {
	return s.navigate(ctx, events.TypeCardRewound, (*session.Session).GoBack)
}

// NextRandom implements StudyService.NextRandom.
func (s *studyServiceImpl) NextRandom(ctx context.Context) (session.Snapshot, error) {
	return s.navigate(ctx, events.TypeRandomCardSelected, (*session.Session).NextRandom)
}

// navigate runs move under the lock and emits eventType when it changed the
// position.
func (s *studyServiceImpl) navigate(
	ctx context.Context,
	eventType string,
	move func(*session.Session) bool,
) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if move(s.sess) {
		card, _ := s.sess.Current()
		s.emit(ctx, eventType, events.PositionPayload{CardID: card.ID, Index: s.sess.Index()})
	}
	return s.sess.Snapshot(), nil
}

// Shuffle implements StudyService.Shuffle.
func (s *studyServiceImpl) Shuffle(ctx context.Context) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess.Shuffle() {
		s.emit(ctx, events.TypeDeckShuffled, nil)
	}
	return s.sess.Snapshot(), nil
}

// MarkMastered implements StudyService.MarkMastered.
func (s *studyServiceImpl) MarkMastered(ctx context.Context) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.sess.MarkMastered()
	if !ok {
		return s.sess.Snapshot(), NewServiceError("mark_mastered", "no card to retire", ErrSessionComplete)
	}

	s.emit(ctx, events.TypeCardMastered, events.MasteredPayload{
		CardID:    card.ID,
		Remaining: s.sess.ActiveCount(),
	})
	if s.sess.Done() {
		logger.FromContextOrDefault(ctx, s.logger).Info("deck completed",
			slog.Int("mastered", s.sess.MasteredCount()),
			slog.Int("longest_streak", s.sess.LongestStreak()))
		s.emit(ctx, events.TypeDeckCompleted, nil)
	}
	return s.sess.Snapshot(), nil
}

// Restart implements StudyService.Restart.
func (s *studyServiceImpl) Restart(ctx context.Context) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess = s.newSession()
	s.emit(ctx, events.TypeSessionRestarted, nil)
	return s.sess.Snapshot(), nil
}

// emit publishes an event for the session's current version. Handler
// failures are logged and never fail the operation that caused them.
func (s *studyServiceImpl) emit(ctx context.Context, eventType string, payload interface{}) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewSessionEvent(eventType, s.sess.Version(), payload)
	if err != nil {
		log.Error("failed to create session event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("session event handler failed",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
	}
}
