package resume

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-timeline/internal/logger"
	"github.com/jonathan/resume-timeline/internal/timeline"
	"github.com/jonathan/resume-timeline/internal/types"
)

// DefaultLoadTimeout bounds a single Store load.
const DefaultLoadTimeout = 30 * time.Second

// Store is the process-wide cached document. The first read loads it, all
// concurrent and later reads observe the same value. A failed load leaves the
// placeholder document in place for the rest of the process. There is no
// retry and no invalidation.
type Store struct {
	source  Source
	timeout time.Duration

	group    singleflight.Group
	resolved atomic.Pointer[snapshot]
}

type snapshot struct {
	doc      *types.ResumeDocument
	view     *timeline.View
	warnings []Warning
	err      error
}

// NewStore creates a Store reading from source. A non-positive timeout uses
// DefaultLoadTimeout.
func NewStore(source Source, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	return &Store{source: source, timeout: timeout}
}

// Document returns the cached document, loading it on first use. The returned
// value is shared and must not be modified. The only error is ctx's own, when
// ctx ends before the first load completes.
func (s *Store) Document(ctx context.Context) (*types.ResumeDocument, error) {
	snap, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return snap.doc, nil
}

// View returns the sorted timelines of the cached document.
func (s *Store) View(ctx context.Context) (*timeline.View, error) {
	snap, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return snap.view, nil
}

// Loaded reports whether the document has been resolved.
func (s *Store) Loaded() bool {
	return s.resolved.Load() != nil
}

// Err returns the load failure, or nil when the load succeeded or has not happened.
func (s *Store) Err() error {
	if snap := s.resolved.Load(); snap != nil {
		return snap.err
	}
	return nil
}

// Warnings returns the defaults substituted while parsing the document.
func (s *Store) Warnings() []Warning {
	if snap := s.resolved.Load(); snap != nil {
		return snap.warnings
	}
	return nil
}

func (s *Store) resolve(ctx context.Context) (*snapshot, error) {
	if snap := s.resolved.Load(); snap != nil {
		return snap, nil
	}

	// The load outlives ctx. Only this caller's wait is cancelled.
	loadCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan("document", func() (any, error) {
		if snap := s.resolved.Load(); snap != nil {
			return snap, nil
		}
		snap := s.load(loadCtx)
		s.resolved.Store(snap)
		return snap, nil
	})

	select {
	case res := <-ch:
		return res.Val.(*snapshot), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Store) load(ctx context.Context) *snapshot {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	log := logger.Ctx(ctx)
	start := time.Now()

	data, err := s.source.Load(ctx)
	if err != nil {
		loadErr := &LoadError{Source: s.source.String(), Cause: err}
		log.Error().Err(loadErr).Msg("Using placeholder resume")
		doc := Empty()
		return &snapshot{doc: doc, view: timeline.Build(doc), err: loadErr}
	}

	doc, warnings := Parse(data)
	for _, w := range warnings {
		log.Warn().Str("field", w.Field).Msg(w.Message)
	}
	log.Info().
		Str("source", s.source.String()).
		Int("employment", len(doc.Employment)).
		Int("education", len(doc.Education)).
		Dur("duration", time.Since(start)).
		Msg("Loaded resume")

	return &snapshot{doc: doc, view: timeline.Build(doc), warnings: warnings}
}
