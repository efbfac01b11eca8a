// Package capture runs screen captures off the event goroutine.
//
// The OS capture call itself is supplied by the caller as a [Capturer].
// A [Scheduler] waits out an optional delay (so the editor window can hide
// first), captures, and delivers the pixels on a channel. Every request
// gets a fresh token; only the result carrying the newest token is
// accepted, so a slow capture can never overwrite a later one.
package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/snapmark/area"
	"github.com/gogpu/snapmark/pixmap"
)

// ErrEmptyRegion is returned when a region request spans no pixels on the
// target screen.
var ErrEmptyRegion = errors.New("capture: empty region")

// Capturer grabs screen pixels. Implementations wrap the platform API.
type Capturer interface {
	// Size returns the pixel size of screen.
	Size(screen int) (area.Size, error)
	// Capture grabs the whole screen.
	Capture(ctx context.Context, screen int) (*pixmap.Pixmap, error)
	// CaptureArea grabs the given area of screen.
	CaptureArea(ctx context.Context, screen int, a area.Area) (*pixmap.Pixmap, error)
}

// Token identifies a capture request. Tokens increase monotonically; the
// zero Token never identifies a request.
type Token uint64

// Result is the outcome of one capture request.
type Result struct {
	Token  Token
	Screen int
	// Area is the captured region; for full-screen captures it covers the
	// whole screen.
	Area  area.Area
	Image *pixmap.Pixmap
	Err   error
}

// nopHandler discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the scheduler logger. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithResultBuffer sets the capacity of the results channel (default 1).
func WithResultBuffer(n int) Option {
	return func(s *Scheduler) {
		s.buffer = max(n, 0)
	}
}

// Scheduler runs delayed captures and tracks which one is current.
// It is safe for concurrent use.
type Scheduler struct {
	capturer Capturer
	log      *slog.Logger
	buffer   int
	results  chan Result

	next    atomic.Uint64
	current atomic.Uint64
	wg      sync.WaitGroup
}

// NewScheduler creates a scheduler around c.
func NewScheduler(c Capturer, opts ...Option) *Scheduler {
	s := &Scheduler{
		capturer: c,
		log:      slog.New(nopHandler{}),
		buffer:   1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.results = make(chan Result, s.buffer)
	return s
}

// Results returns the channel capture results are delivered on.
func (s *Scheduler) Results() <-chan Result {
	return s.results
}

// Current returns the token of the outstanding request, or 0 if there is
// none.
func (s *Scheduler) Current() Token {
	return Token(s.current.Load())
}

// Fullscreen schedules a capture of the whole screen after delay and
// returns its token. The request supersedes any earlier one.
func (s *Scheduler) Fullscreen(ctx context.Context, screen int, delay time.Duration) Token {
	t := s.issue()
	s.log.Debug("capture scheduled", "token", t, "screen", screen, "delay", delay)
	s.start(ctx, t, delay, Result{Token: t, Screen: screen}, func(ctx context.Context) (*pixmap.Pixmap, error) {
		return s.capturer.Capture(ctx, screen)
	})
	return t
}

// Region schedules a capture of the area dragged from start to end on
// screen, after delay. The area is computed against the current screen
// size; a drag that spans no pixels fails with [ErrEmptyRegion] and does
// not supersede earlier requests.
func (s *Scheduler) Region(ctx context.Context, screen int, start, end image.Point, delay time.Duration) (Token, error) {
	size, err := s.capturer.Size(screen)
	if err != nil {
		return 0, fmt.Errorf("capture: screen %d size: %w", screen, err)
	}
	a, ok := area.Calculate(size, start, end)
	if !ok {
		return 0, fmt.Errorf("%w: %v to %v on %dx%d", ErrEmptyRegion, start, end, size.Width, size.Height)
	}

	t := s.issue()
	s.log.Debug("region capture scheduled", "token", t, "screen", screen, "area", a.Rect(), "delay", delay)
	s.start(ctx, t, delay, Result{Token: t, Screen: screen, Area: a}, func(ctx context.Context) (*pixmap.Pixmap, error) {
		return s.capturer.CaptureArea(ctx, screen, a)
	})
	return t, nil
}

// Accept reports whether r answers the outstanding request. An accepted
// result clears the outstanding token, so each request is accepted at most
// once.
func (s *Scheduler) Accept(r Result) bool {
	if r.Token != 0 && s.current.CompareAndSwap(uint64(r.Token), 0) {
		return true
	}
	s.log.Warn("stale capture discarded", "token", r.Token, "current", s.Current())
	return false
}

// Cancel abandons the outstanding request. A capture still waiting out its
// delay is skipped; one already running delivers a result that Accept
// rejects.
func (s *Scheduler) Cancel() {
	if t := s.current.Swap(0); t != 0 {
		s.log.Debug("capture cancelled", "token", t)
	}
}

// Wait blocks until every scheduled capture has finished or been
// abandoned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) issue() Token {
	t := s.next.Add(1)
	s.current.Store(t)
	return Token(t)
}

func (s *Scheduler) start(ctx context.Context, t Token, delay time.Duration, res Result, grab func(context.Context) (*pixmap.Pixmap, error)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				s.log.Debug("capture abandoned", "token", t, "err", ctx.Err())
				return
			case <-timer.C:
			}
		}
		if s.Current() != t {
			s.log.Debug("capture superseded", "token", t)
			return
		}

		img, err := grab(ctx)
		if err == nil && res.Area.Empty() && img != nil {
			res.Area = area.Area{Width: img.Width(), Height: img.Height()}
		}
		res.Image, res.Err = img, err
		if err != nil {
			s.log.Warn("capture failed", "token", t, "err", err)
		}

		select {
		case s.results <- res:
		case <-ctx.Done():
			s.log.Debug("capture result dropped", "token", t, "err", ctx.Err())
		}
	}()
}
