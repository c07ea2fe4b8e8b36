// Package reactive implements a dependency-tracking observation model:
// reactive containers whose reads register the currently evaluating watcher
// and whose writes notify exactly the watchers that read them, plus a
// batching scheduler that coalesces synchronous mutation bursts into a
// single deferred flush.
package reactive

import (
	"context"
	"fmt"

	"github.com/petermattis/goid"

	"github.com/delaneyj/vueparty/internal/logging"
)

// ErrorHandler receives every error the runtime recovers or detects. owner
// is the component or watcher the error was reported against, when known.
type ErrorHandler func(err error, owner any, context string)

// WarnHandler receives non-fatal validation problems.
type WarnHandler func(msg string, owner any)

// ErrorCapturer lets an owner intercept an error reported against it before
// the global handler runs. Returning true stops further propagation.
type ErrorCapturer interface {
	CaptureError(err error, src any, context string) bool
}

// Runtime carries all state that would otherwise be process-global: id
// counters, the dependency-collection target stack, the scheduler, the
// deferred-callback queue and the error funnel. Everything created from one
// Runtime belongs to a single goroutine; cross-goroutine work must be routed
// through Post.
type Runtime struct {
	depSeq     uint64
	watcherSeq uint64

	target      *Watcher
	targetStack []*Watcher

	scheduler *Scheduler

	shouldObserve bool

	microtasks []func()
	tasks      chan func()
	gid        int64

	async   bool
	devMode bool

	logger       logging.Log
	errorHandler ErrorHandler
	warnHandler  WarnHandler
}

type Option func(*Runtime)

// WithSynchronous makes every flush and deferred callback run inline, for
// environments that need deterministic immediate output. Batching is lost.
func WithSynchronous() Option {
	return func(rt *Runtime) { rt.async = false }
}

// WithDevMode enables goroutine-affinity checks and extra validation
// warnings.
func WithDevMode() Option {
	return func(rt *Runtime) { rt.devMode = true }
}

func WithLogger(l logging.Log) Option {
	return func(rt *Runtime) { rt.logger = l }
}

func WithErrorHandler(h ErrorHandler) Option {
	return func(rt *Runtime) { rt.errorHandler = h }
}

func WithWarnHandler(h WarnHandler) Option {
	return func(rt *Runtime) { rt.warnHandler = h }
}

func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{
		shouldObserve: true,
		async:         true,
		tasks:         make(chan func(), 256),
		gid:           goid.Get(),
		logger:        logging.New(logging.LevelWarn),
	}
	for _, opt := range opts {
		opt(rt)
	}
	rt.scheduler = newScheduler(rt)
	return rt
}

func (rt *Runtime) nextDepID() uint64 {
	rt.depSeq++
	return rt.depSeq
}

func (rt *Runtime) nextWatcherID() uint64 {
	rt.watcherSeq++
	return rt.watcherSeq
}

// PushTarget installs w as the currently collecting watcher. Pushing nil
// disables collection, which hooks and error handlers use to keep their own
// reads from being tracked.
func (rt *Runtime) PushTarget(w *Watcher) {
	rt.targetStack = append(rt.targetStack, w)
	rt.target = w
}

func (rt *Runtime) PopTarget() {
	rt.targetStack = rt.targetStack[:len(rt.targetStack)-1]
	if n := len(rt.targetStack); n > 0 {
		rt.target = rt.targetStack[n-1]
	} else {
		rt.target = nil
	}
}

// ToggleObserving turns eager observation of new values on or off and
// returns the previous setting so callers can restore it. Property
// initialization for externally owned values (component props) runs with
// observation off so the owner keeps sole responsibility for their depth.
func (rt *Runtime) ToggleObserving(v bool) bool {
	prev := rt.shouldObserve
	rt.shouldObserve = v
	return prev
}

// Tracking reports whether a watcher is currently collecting dependencies.
func (rt *Runtime) Tracking() bool {
	return rt.target != nil
}

// DevMode reports whether the runtime was built with development checks.
func (rt *Runtime) DevMode() bool {
	return rt.devMode
}

// QueueActivated defers fn until after the current scheduler flush; if no
// flush is pending the callback still waits for the next one.
func (rt *Runtime) QueueActivated(fn func()) {
	rt.scheduler.queueActivated(fn)
}

// NextTick schedules fn to run at the end of the current turn, after any
// pending scheduler flush that was enqueued before it. In synchronous mode
// fn runs immediately.
func (rt *Runtime) NextTick(fn func()) {
	wrapped := func() {
		defer func() {
			if r := recover(); r != nil {
				rt.HandleError(asError(r), nil, "nextTick handler")
			}
		}()
		fn()
	}
	if !rt.async {
		wrapped()
		return
	}
	rt.microtasks = append(rt.microtasks, wrapped)
}

// Tick drains the deferred-callback queue until it is empty, including
// callbacks scheduled while draining. Embedders that own their own loop call
// this at each turn boundary; tests call it to force a flush.
func (rt *Runtime) Tick() {
	for len(rt.microtasks) > 0 {
		batch := rt.microtasks
		rt.microtasks = nil
		for _, fn := range batch {
			fn()
		}
	}
}

// Do runs task and then drains deferred callbacks, equivalent to one full
// turn of the runtime's loop.
func (rt *Runtime) Do(task func()) {
	task()
	rt.Tick()
}

// Post hands a task to the runtime's loop from any goroutine. It blocks when
// the task buffer is full. The loop must be running via Run for posted tasks
// to execute.
func (rt *Runtime) Post(task func()) {
	rt.tasks <- task
}

// Run serves posted tasks until ctx is done, draining deferred callbacks
// after each task. The calling goroutine becomes the runtime's owner.
func (rt *Runtime) Run(ctx context.Context) error {
	rt.gid = goid.Get()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-rt.tasks:
			task()
			rt.Tick()
		}
	}
}

func (rt *Runtime) checkAffinity() {
	if !rt.devMode {
		return
	}
	if g := goid.Get(); g != rt.gid {
		rt.Warn(fmt.Sprintf(
			"reactive write from goroutine %d but the runtime is owned by goroutine %d; route cross-goroutine work through Post",
			g, rt.gid), nil)
	}
}

// HandleError is the single funnel every recovered panic and reported
// failure passes through. Dependency collection stays disabled while
// handlers run so their reads are never tracked.
func (rt *Runtime) HandleError(err error, owner any, context string) {
	rt.PushTarget(nil)
	defer rt.PopTarget()

	if c, ok := owner.(ErrorCapturer); ok {
		if c.CaptureError(err, owner, context) {
			return
		}
	}
	if rt.errorHandler != nil && rt.invokeErrorHandler(err, owner, context) {
		return
	}
	rt.logger.Error("unhandled error",
		logging.String("context", context),
		logging.Error(err))
}

func (rt *Runtime) invokeErrorHandler(err error, owner any, context string) (handled bool) {
	defer func() {
		if r := recover(); r != nil {
			handled = false
			rt.logger.Error("error handler failed",
				logging.String("context", context),
				logging.Error(asError(r)))
		}
	}()
	rt.errorHandler(err, owner, context)
	return true
}

// Warn reports a non-fatal problem through the configured warn handler, or
// the logger when none is set.
func (rt *Runtime) Warn(msg string, owner any) {
	if rt.warnHandler != nil {
		rt.warnHandler(msg, owner)
		return
	}
	rt.logger.Warn(msg)
}
