package ecs

import (
	"context"
	"sync/atomic"
	"time"
)

// LoopState is the lifecycle state of a Loop.
type LoopState int32

const (
	LoopIdle LoopState = iota
	LoopRunning
	LoopStopped
)

func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopRunning:
		return "running"
	case LoopStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Loop drives a Scheduler at a fixed simulation timestep, decoupled from the
// wall-clock rate it is fed at. Elapsed wall time goes into an accumulator;
// each whole tick's worth triggers one scheduler pass with dt equal to the
// tick size, so systems never observe a variable delta.
//
// When the accumulator exceeds maxBacklog (for example after a long stall),
// the excess is discarded instead of replayed. Simulated time falls behind
// wall time in that case, but the loop can never wedge itself into
// ever-growing catch-up bursts.
type Loop struct {
	scheduler   *Scheduler
	tick        time.Duration
	maxBacklog  time.Duration
	accumulator time.Duration
	ticks       uint64

	// state is atomic so Stop can be called from a signal handler goroutine;
	// the loop itself only acts on it at tick boundaries, never mid-tick.
	state atomic.Int32
}

// NewLoop creates a fixed-timestep loop around the scheduler. maxBacklog
// bounds how much elapsed time a single Step may convert into ticks; values
// below one tick are raised to one tick.
func NewLoop(scheduler *Scheduler, tick, maxBacklog time.Duration) *Loop {
	if tick <= 0 {
		panic("ecs: loop tick must be positive")
	}
	if maxBacklog < tick {
		maxBacklog = tick
	}
	return &Loop{
		scheduler:  scheduler,
		tick:       tick,
		maxBacklog: maxBacklog,
	}
}

// Tick returns the fixed tick duration.
func (l *Loop) Tick() time.Duration {
	return l.tick
}

// Ticks returns the number of ticks executed so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// State returns the loop's lifecycle state.
func (l *Loop) State() LoopState {
	return LoopState(l.state.Load())
}

// Stop requests a transition to LoopStopped. The request takes effect at the
// next tick boundary; a tick in progress always runs to completion.
func (l *Loop) Stop() {
	l.state.Store(int32(LoopStopped))
}

// Step feeds elapsed wall-clock time into the accumulator and runs as many
// whole fixed ticks as it covers, returning the number of ticks executed.
// Fractional remainders stay in the accumulator for the next call. Step is
// the deterministic core of Run and can drive the loop directly in tests or
// in an externally-owned frame loop.
func (l *Loop) Step(elapsed time.Duration) int {
	if l.State() == LoopStopped {
		return 0
	}

	l.accumulator += elapsed
	if l.accumulator > l.maxBacklog {
		l.accumulator = l.maxBacklog
	}

	ran := 0
	for l.accumulator >= l.tick {
		if l.State() == LoopStopped {
			break
		}
		l.scheduler.Once(l.tick.Seconds())
		l.accumulator -= l.tick
		l.ticks++
		ran++
	}
	return ran
}

// Run drives the loop from wall-clock time until Stop is called or the
// context is cancelled. It returns nil on a clean stop and the context's
// error when cancelled. Run may be called once per loop.
func (l *Loop) Run(ctx context.Context) error {
	if !l.state.CompareAndSwap(int32(LoopIdle), int32(LoopRunning)) {
		return ErrLoopNotIdle
	}

	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case now := <-ticker.C:
			l.Step(now.Sub(lastTime))
			lastTime = now

			if l.State() == LoopStopped {
				return nil
			}
		}
	}
}
