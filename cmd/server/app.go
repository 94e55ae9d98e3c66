package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/phrazzld/scry-study/internal/config"
	"github.com/phrazzld/scry-study/internal/deck"
	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/phrazzld/scry-study/internal/events"
	"github.com/phrazzld/scry-study/internal/service/study"
	"github.com/phrazzld/scry-study/internal/session"
)

// application holds the wired dependencies of the server.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	deck         domain.Deck
	stats        *events.StatsHandler
	studyService study.StudyService
}

// newApplication loads the deck and wires events, the study service, and
// the session factory.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	d, err := deck.FromPath(cfg.Deck.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	logger.Info("deck loaded",
		slog.String("title", d.Title),
		slog.Int("cards", d.Len()))

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLogHandler(logger, slog.LevelDebug))
	stats := events.NewStatsHandler()
	emitter.RegisterHandler(stats)
	logger.Debug("session event handlers registered",
		slog.Int("handlers", emitter.HandlerCount()))

	return &application{
		config:       cfg,
		logger:       logger,
		deck:         d,
		stats:        stats,
		studyService: study.NewStudyService(sessionFactory(d, cfg.Session), emitter, logger),
	}, nil
}

// sessionFactory builds sessions according to the session configuration.
// With a fixed seed every session shares one random source, so a restart
// continues the sequence instead of repeating the first shuffle.
func sessionFactory(d domain.Deck, cfg config.SessionConfig) study.SessionFactory {
	var opts []session.Option
	if cfg.Seed != 0 {
		opts = append(opts, session.WithRand(rand.New(rand.NewPCG(cfg.Seed, ^cfg.Seed))))
	}

	return func() *session.Session {
		s := session.New(d, opts...)
		if cfg.ShuffleOnStart {
			s.Shuffle()
		}
		return s
	}
}
