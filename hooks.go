package gateway

import (
	"context"
	"time"
)

// OnDispatchFunc is called once per dispatch, after the payload decodes and
// before the first listener runs. Use this to enrich the context with logging
// fields or trace spans. The returned context is used for the rest of the
// dispatch.
type OnDispatchFunc func(ctx context.Context, kind Kind) context.Context

// OnCancelFunc is called when a dispatch stops early because a listener
// cancelled the event. index is the position of the first listener skipped.
type OnCancelFunc func(ctx context.Context, kind Kind, index int)

// OnSuccessFunc is called after a dispatch completes, whether the full chain
// ran or a cancellation cut it short. invoked is the number of listeners that
// actually ran.
type OnSuccessFunc func(ctx context.Context, kind Kind, invoked int, duration time.Duration)

// OnFailureFunc is called when a listener returns an error. index is the
// failing listener's position in the chain.
type OnFailureFunc func(ctx context.Context, kind Kind, index int, err error, duration time.Duration)

// OnNoListenerFunc is called when an event is dispatched to a kind with no
// registered listeners. That case is a silent no-op by default; return an
// error to turn it into a dispatch failure.
type OnNoListenerFunc func(ctx context.Context, kind Kind) error

// OnDecodeErrorFunc is called when a raw event body cannot be decoded into
// the kind's payload type. err is the *DecodeError the dispatch would return.
// Return nil to skip the event, or an error to fail the dispatch with it.
type OnDecodeErrorFunc func(ctx context.Context, kind Kind, err error) error

// hooks holds all configured hook functions.
type hooks struct {
	onDispatch    []OnDispatchFunc
	onCancel      []OnCancelFunc
	onSuccess     []OnSuccessFunc
	onFailure     []OnFailureFunc
	onNoListener  []OnNoListenerFunc
	onDecodeError []OnDecodeErrorFunc
}

// Option configures a Registry.
type Option func(*Registry)

// WithOnDispatch adds a hook called before the first listener of each
// dispatch. Multiple hooks are called in order, with context chaining through
// each.
//
// Example:
//
//	gateway.WithOnDispatch(func(ctx context.Context, kind gateway.Kind) context.Context {
//	    return logx.WithCtx(ctx, slog.String("kind", string(kind)))
//	})
func WithOnDispatch(fn OnDispatchFunc) Option {
	return func(r *Registry) {
		r.hooks.onDispatch = append(r.hooks.onDispatch, fn)
	}
}

// WithOnCancel adds a hook called when a listener cancels the event.
// Multiple hooks are called in order.
//
// Example:
//
//	gateway.WithOnCancel(func(ctx context.Context, kind gateway.Kind, index int) {
//	    metrics.Incr("gateway.cancelled", "kind:"+string(kind))
//	})
func WithOnCancel(fn OnCancelFunc) Option {
	return func(r *Registry) {
		r.hooks.onCancel = append(r.hooks.onCancel, fn)
	}
}

// WithOnSuccess adds a hook called after a dispatch completes.
// Multiple hooks are called in order.
//
// Example:
//
//	gateway.WithOnSuccess(func(ctx context.Context, kind gateway.Kind, invoked int, d time.Duration) {
//	    metrics.Timing("gateway.dispatch", d, "kind:"+string(kind))
//	})
func WithOnSuccess(fn OnSuccessFunc) Option {
	return func(r *Registry) {
		r.hooks.onSuccess = append(r.hooks.onSuccess, fn)
	}
}

// WithOnFailure adds a hook called when a listener returns an error.
// Multiple hooks are called in order.
//
// Example:
//
//	gateway.WithOnFailure(func(ctx context.Context, kind gateway.Kind, index int, err error, d time.Duration) {
//	    logger.Error(ctx, "listener failed", "kind", kind, "error", err)
//	})
func WithOnFailure(fn OnFailureFunc) Option {
	return func(r *Registry) {
		r.hooks.onFailure = append(r.hooks.onFailure, fn)
	}
}

// WithOnNoListener adds a hook called when an event arrives for a kind with
// no listeners. Return nil to keep the default skip behavior, or an error to
// fail. Multiple hooks are called in order; first error wins.
//
// Example:
//
//	gateway.WithOnNoListener(func(ctx context.Context, kind gateway.Kind) error {
//	    logger.Debug(ctx, "unhandled event", "kind", kind)
//	    return nil
//	})
func WithOnNoListener(fn OnNoListenerFunc) Option {
	return func(r *Registry) {
		r.hooks.onNoListener = append(r.hooks.onNoListener, fn)
	}
}

// WithOnDecodeError adds a hook called when a raw body fails to decode.
// Return nil to drop the event, or an error to fail the dispatch with it.
// Multiple hooks are called in order; first error wins.
//
// Example:
//
//	gateway.WithOnDecodeError(func(ctx context.Context, kind gateway.Kind, err error) error {
//	    logger.Error(ctx, "bad payload", "kind", kind, "error", err)
//	    return nil // drop malformed events
//	})
func WithOnDecodeError(fn OnDecodeErrorFunc) Option {
	return func(r *Registry) {
		r.hooks.onDecodeError = append(r.hooks.onDecodeError, fn)
	}
}
