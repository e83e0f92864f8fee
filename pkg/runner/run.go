// Package runner executes a pipeline against one input artifact. It
// owns the run state machine, emits progress at stage boundaries,
// honors cooperative cancellation, and aggregates the terminal result.
package runner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ideamans/go-l10n"

	"github.com/user/vidcheck/pkg/pipeline"
	"github.com/user/vidcheck/pkg/ports"
)

// ErrAlreadyStarted is returned when Start is invoked on a Run that has
// already left the Idle state.
var ErrAlreadyStarted = errors.New("run already started")

type subscription struct {
	id int
	fn func(ProgressEvent)
}

// Run is a single execution of a pipeline against one input artifact.
// A Run is disposable: once terminal it cannot be restarted; create a
// new Run to retry. All methods are safe for concurrent use, but state
// is only ever mutated by the Run's own stage-advancement goroutine
// (and by Cancel, which only requests).
type Run struct {
	id       string
	pipe     *pipeline.Pipeline
	artifact ports.Artifact
	logger   ports.Logger

	mu        sync.Mutex
	state     RunState
	cancelReq bool
	events    []ProgressEvent
	subs      []subscription
	nextSubID int
	result    *DetectionResult
	failure   *StageFailure
	startedAt time.Time
	elapsed   time.Duration

	done chan struct{}
}

// Option configures a Run.
type Option func(*Run)

// WithLogger attaches a logger for stage-boundary diagnostics.
func WithLogger(logger ports.Logger) Option {
	return func(r *Run) { r.logger = logger }
}

// NewRun creates a Run in the Idle state.
func NewRun(p *pipeline.Pipeline, artifact ports.Artifact, opts ...Option) *Run {
	r := &Run{
		id:       uuid.NewString(),
		pipe:     p,
		artifact: artifact,
		state:    StateIdle,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start creates a Run and immediately begins executing it. The returned
// Run is already Running; stages execute sequentially on the Run's own
// goroutine. Cancelling ctx is observed as a cooperative cancellation
// request at the next stage boundary, which is how callers compose a
// deadline with the run.
func Start(ctx context.Context, p *pipeline.Pipeline, artifact ports.Artifact, opts ...Option) (*Run, error) {
	r := NewRun(p, artifact, opts...)
	if err := r.Start(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Start transitions the Run from Idle to Running and begins stage
// execution. It returns ErrAlreadyStarted on any other state.
func (r *Run) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.state != StateIdle {
		r.mu.Unlock()
		return ErrAlreadyStarted
	}
	r.state = StateRunning
	r.startedAt = time.Now()
	r.mu.Unlock()

	go r.loop(ctx)
	return nil
}

// ID returns the unique identifier of this run.
func (r *Run) ID() string {
	return r.id
}

// State returns a snapshot of the current run state.
func (r *Run) State() RunState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Result returns the aggregated detection result, or nil unless the run
// Succeeded. It remains readable after termination.
func (r *Run) Result() *DetectionResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result
}

// Failure returns the stage failure, or nil unless the run Failed.
// A cancelled run exposes no failure; check State to distinguish
// "no result yet" from "no result ever".
func (r *Run) Failure() *StageFailure {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failure
}

// Events returns a copy of all progress events emitted so far, in order.
func (r *Run) Events() []ProgressEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ProgressEvent(nil), r.events...)
}

// Elapsed returns the wall-clock duration of the run: the time to the
// terminal transition once terminal, the time since start while Running,
// and zero while Idle.
func (r *Run) Elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case r.state.Terminal():
		return r.elapsed
	case r.state == StateRunning:
		return time.Since(r.startedAt)
	default:
		return 0
	}
}

// Done returns a channel closed when the run reaches a terminal state.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the run is terminal or ctx is cancelled. Note that
// cancelling ctx here does not cancel the run itself.
func (r *Run) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SubscribeProgress registers a listener invoked synchronously on the
// run's own goroutine at each stage boundary. The returned function
// deregisters the listener; calling it more than once is a no-op.
func (r *Run) SubscribeProgress(fn func(ProgressEvent)) (unsubscribe func()) {
	r.mu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.subs = append(r.subs, subscription{id: id, fn: fn})
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, s := range r.subs {
			if s.id == id {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

// Cancel requests cooperative cancellation. An in-flight stage is
// allowed to settle; no subsequent stage starts. On an Idle run the
// transition to Cancelled is immediate. Cancel is idempotent and a
// no-op on a terminal run.
func (r *Run) Cancel() {
	r.mu.Lock()
	switch r.state {
	case StateIdle:
		r.state = StateCancelled
		r.mu.Unlock()
		close(r.done)
		return
	case StateRunning:
		r.cancelReq = true
	}
	r.mu.Unlock()
}

// loop drives the stages sequentially. Only one stage is in flight at
// a time; cancellation is checked immediately before each dispatch and
// immediately after each stage settles.
func (r *Run) loop(ctx context.Context) {
	input := pipeline.RunInput{
		Artifact: r.artifact,
		Outcomes: make(map[string]pipeline.StageOutcome),
	}
	scores := make(map[string]float64)
	completed := 0.0
	total := r.pipe.TotalWeight()

	for i, st := range r.pipe.Stages() {
		if r.cancelRequested(ctx) {
			r.finishCancelled()
			return
		}

		r.debugf(l10n.F("Starting stage %s (%d/%d)", st.Name, i+1, r.pipe.Len()))
		outcome, err := st.Work(ctx, input)
		if err != nil {
			// A work unit honoring ctx settles with the context's
			// error; when cancellation was requested that settling is
			// part of the cancellation, not a failure.
			if r.cancelRequested(ctx) && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
				r.finishCancelled()
				return
			}
			r.errorf(l10n.F("Stage %s failed: %s", st.Name, err))
			r.finishFailed(&StageFailure{StageName: st.Name, StageIndex: i, Err: err})
			return
		}

		input.Outcomes[st.Name] = outcome
		r.collect(scores, st.Name, outcome)
		completed += st.Weight
		r.emit(ProgressEvent{
			CompletedWeight: completed,
			TotalWeight:     total,
			StageName:       st.Name,
			StageIndex:      i,
		})

		if r.cancelRequested(ctx) {
			r.finishCancelled()
			return
		}
	}

	r.finishSucceeded(scores)
}

// collect merges a stage's sub-score contributions into the shared
// mapping. The mapping is append-only: a colliding name is stored under
// "stage.name" so earlier contributions stay final.
func (r *Run) collect(scores map[string]float64, stageName string, outcome pipeline.StageOutcome) {
	for name, value := range outcome.SubScores {
		key := name
		if _, exists := scores[key]; exists {
			key = stageName + "." + name
			r.warnf(l10n.F("Sub-score %s already contributed; storing as %s", name, key))
		}
		scores[key] = value
	}
}

func (r *Run) cancelRequested(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancelReq
}

// emit records the event and invokes listeners synchronously, outside
// the lock so a listener may call back into the run (e.g. Cancel).
func (r *Run) emit(ev ProgressEvent) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	fns := make([]func(ProgressEvent), len(r.subs))
	for i, s := range r.subs {
		fns[i] = s.fn
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (r *Run) finishSucceeded(scores map[string]float64) {
	// Decision policies are caller-supplied; evaluate outside the lock.
	classification := r.pipe.Decide(scores)
	confidence := r.pipe.Confidence(scores)

	r.mu.Lock()
	elapsed := time.Since(r.startedAt)
	r.state = StateSucceeded
	r.elapsed = elapsed
	r.result = &DetectionResult{
		Classification: classification,
		Confidence:     confidence,
		Elapsed:        elapsed,
		SubScores:      scores,
	}
	r.mu.Unlock()
	close(r.done)
	r.debugf(l10n.F("Run %s succeeded in %s", r.id, elapsed))
}

func (r *Run) finishFailed(failure *StageFailure) {
	r.mu.Lock()
	r.state = StateFailed
	r.elapsed = time.Since(r.startedAt)
	r.failure = failure
	r.mu.Unlock()
	close(r.done)
}

func (r *Run) finishCancelled() {
	r.mu.Lock()
	r.state = StateCancelled
	r.elapsed = time.Since(r.startedAt)
	r.mu.Unlock()
	close(r.done)
	r.debugf(l10n.F("Run %s cancelled", r.id))
}

func (r *Run) debugf(msg string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}

func (r *Run) warnf(msg string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}

func (r *Run) errorf(msg string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Error(msg, args...)
	}
}
