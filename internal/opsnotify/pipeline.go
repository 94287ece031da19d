package opsnotify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// InternalSource is the source stamped on internally emitted events that
// do not name one.
const InternalSource = "backend"

// Options configures a Pipeline.
type Options struct {
	Enabled        bool
	MinSeverity    Severity
	ThrottleWindow time.Duration

	Throttle Throttle
	Sink     Sink
	Recorder *Recorder

	// Now defaults to time.Now.
	Now func() time.Time
}

// Pipeline accepts operational events and delivers them asynchronously:
// normalize, then gate on the enabled flag, severity floor and throttle,
// then deliver. Nothing in the pipeline reports failure to the caller.
type Pipeline struct {
	enabled        bool
	minSeverity    Severity
	throttleWindow time.Duration

	throttle Throttle
	sink     Sink
	recorder *Recorder
	now      func() time.Time

	wg sync.WaitGroup
}

func NewPipeline(opts Options) *Pipeline {
	if opts.Sink == nil {
		panic("opsnotify: sink must not be nil")
	}
	if opts.Throttle == nil {
		opts.Throttle = NewMemoryThrottle()
	}
	if !opts.MinSeverity.Valid() {
		opts.MinSeverity = DefaultSeverity
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Pipeline{
		enabled:        opts.Enabled,
		minSeverity:    opts.MinSeverity,
		throttleWindow: opts.ThrottleWindow,
		throttle:       opts.Throttle,
		sink:           opts.Sink,
		recorder:       opts.Recorder,
		now:            opts.Now,
	}
}

// IngestExternalEvent accepts an event submitted through the API.
// It returns as soon as the event is normalized; delivery happens in the background.
func (p *Pipeline) IngestExternalEvent(ctx context.Context, raw RawEvent, nctx *NotificationContext) NormalizedEvent {
	return p.ingest(ctx, raw, nctx)
}

// EmitInternalEvent accepts an event raised by the backend itself, such as a
// 5xx response. Source defaults to InternalSource.
func (p *Pipeline) EmitInternalEvent(ctx context.Context, raw RawEvent, nctx *NotificationContext) NormalizedEvent {
	if raw.Source == "" {
		raw.Source = InternalSource
	}
	return p.ingest(ctx, raw, nctx)
}

// Wait blocks until every scheduled event reached a terminal outcome.
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

// Drain is Wait bounded by ctx.
func (p *Pipeline) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pipeline) ingest(ctx context.Context, raw RawEvent, nctx *NotificationContext) NormalizedEvent {
	evt := Normalize(raw, p.now())
	p.recorder.Event(evt, OutcomeAccepted)

	// The caller's request may finish before delivery does.
	detached := context.WithoutCancel(ctx)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.process(detached, evt, nctx)
	}()

	return evt
}

// process runs the gate chain for one event and returns its terminal outcome.
func (p *Pipeline) process(ctx context.Context, evt NormalizedEvent, nctx *NotificationContext) (outcome EventOutcome) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[OpsNotify] Event processing panicked",
				"fingerprint", evt.Fingerprint,
				"panic", fmt.Sprint(r))
			outcome = OutcomeFailed
			p.recorder.Event(evt, OutcomeFailed)
			p.recorder.Sink(SinkFailed)
		}
	}()

	if !p.enabled {
		p.finish(evt, OutcomeSkippedDisabled, SinkSkipped)
		return OutcomeSkippedDisabled
	}

	if !evt.Severity.AtLeast(p.minSeverity) {
		p.finish(evt, OutcomeSkippedSeverity, SinkSkipped)
		return OutcomeSkippedSeverity
	}

	if p.throttle.IsThrottled(ctx, evt.Fingerprint, p.throttleWindow) {
		slog.Debug("[OpsNotify] Event throttled",
			"source", evt.Source,
			"type", evt.Type,
			"fingerprint", evt.Fingerprint)
		p.finish(evt, OutcomeThrottled, SinkThrottled)
		return OutcomeThrottled
	}

	if err := p.sink.Send(ctx, evt, nctx); err != nil {
		slog.Error("[OpsNotify] Alert delivery failed",
			"source", evt.Source,
			"type", evt.Type,
			"severity", evt.Severity,
			"fingerprint", evt.Fingerprint,
			"error", err)
		p.finish(evt, OutcomeFailed, SinkFailed)
		return OutcomeFailed
	}

	slog.Info("[OpsNotify] Alert delivered",
		"source", evt.Source,
		"type", evt.Type,
		"severity", evt.Severity,
		"fingerprint", evt.Fingerprint)
	p.finish(evt, OutcomeSent, SinkSent)
	return OutcomeSent
}

func (p *Pipeline) finish(evt NormalizedEvent, outcome EventOutcome, sinkOutcome SinkOutcome) {
	p.recorder.Event(evt, outcome)
	p.recorder.Sink(sinkOutcome)
}
