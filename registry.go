package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// chain is the type-erased form of an ordered listener chain, so chains with
// different payload types can live in a single map.
type chain interface {
	length() int
	run(ctx context.Context, r *Registry, raw []byte, conn Connection) error
}

// Registry maps each event Kind to its listener chain and is the entry point
// for both registration and dispatch.
//
// Usage:
//  1. Create a registry with New
//  2. Register listeners with On or OnFunc
//  3. Feed decoded wire events with Dispatch
//
// Registry is safe for concurrent Dispatch calls from any number of
// goroutines after configuration. Do not call On or OnFunc once Dispatch is
// in use.
type Registry struct {
	chains map[Kind]chain
	hooks  hooks
}

// New creates a Registry with the given options.
//
// Example:
//
//	r := gateway.New(
//	    gateway.WithLogger(log),
//	    gateway.WithOnFailure(func(ctx context.Context, kind gateway.Kind, index int, err error, d time.Duration) {
//	        metrics.Incr("gateway.listener.failure", "kind:"+string(kind))
//	    }),
//	)
func New(opts ...Option) *Registry {
	r := &Registry{
		chains: make(map[Kind]chain),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// On appends a listener to the chain for kind. Registration order is delivery
// order; there is no priority mechanism and no removal.
//
// This is a package-level function (not a method) due to Go generics
// limitations: methods cannot have type parameters independent of the
// receiver.
//
// Every listener registered for one kind must use the same payload type T;
// a mismatch is a configuration bug and panics immediately rather than
// surfacing as a decode error at dispatch time.
//
// Example:
//
//	gateway.On(r, gateway.KindMessageCreate, &ModerationListener{db: db})
//	gateway.On(r, gateway.KindMessageCreate, &AuditListener{sink: sink})
func On[T any](r *Registry, kind Kind, l Listener[T]) {
	c, ok := r.chains[kind]
	if !ok {
		r.chains[kind] = &listeners[T]{kind: kind, fns: []Listener[T]{l}}
		return
	}
	typed, ok := c.(*listeners[T])
	if !ok {
		panic(fmt.Sprintf("gateway: conflicting payload types registered for kind %s", kind))
	}
	typed.fns = append(typed.fns, l)
}

// OnFunc is a convenience function for registering a listener function.
//
// Example:
//
//	gateway.OnFunc(r, gateway.KindGuildRoleDelete, func(ctx context.Context, ev gateway.Event[gateway.GuildRoleDelete]) error {
//	    cache.DropRole(ev.Payload().GuildID, ev.Payload().RoleID)
//	    return nil
//	})
func OnFunc[T any](r *Registry, kind Kind, fn func(ctx context.Context, ev Event[T]) error) {
	On(r, kind, ListenerFunc[T](fn))
}

// Listeners returns the number of listeners registered for kind. Intended for
// tests and setup-time assertions.
func (r *Registry) Listeners(kind Kind) int {
	c, ok := r.chains[kind]
	if !ok {
		return 0
	}
	return c.length()
}

// Dispatch delivers one raw event to the chain registered for kind.
//
// The dispatch flow:
//  1. An INTERACTION_CREATE raw is refined to BUTTON_CLICK, SELECT_CLICK or
//     AUTOCOMPLETE by probing the interaction type, so each member of the
//     interaction family routes to its own chain
//  2. The raw body is decoded once into the chain's payload type
//  3. A fresh cancellation state is created for this dispatch
//  4. Listeners run in registration order; delivery stops at the first
//     cancellation or listener error
//  5. The cancellation state is discarded whatever the outcome
//
// Dispatching a kind with no listeners is a silent no-op, not an error:
// callers feed the full event stream and most kinds go unhandled. A decode
// failure is reported as a *DecodeError before any listener runs. A listener
// error aborts the remaining chain for this event only and is returned
// wrapped; the registry and other in-flight dispatches are unaffected.
//
// conn is the connection the event arrived on; pass nil for events
// synthesized internally.
func (r *Registry) Dispatch(ctx context.Context, kind Kind, raw []byte, conn Connection) error {
	if kind == KindInteractionCreate {
		kind = classifyInteraction(raw)
	}

	c, ok := r.chains[kind]
	if !ok || c.length() == 0 {
		return r.handleNoListener(ctx, kind)
	}

	return c.run(ctx, r, raw, conn)
}

// listeners is the typed chain for one kind.
type listeners[T any] struct {
	kind Kind
	fns  []Listener[T]
}

func (c *listeners[T]) length() int { return len(c.fns) }

func (c *listeners[T]) run(ctx context.Context, r *Registry, raw []byte, conn Connection) error {
	var payload T
	if err := json.Unmarshal(raw, &payload); err != nil {
		return r.handleDecodeError(ctx, &DecodeError{Kind: c.kind, err: err})
	}

	// OnDispatch: context chains through each hook
	ctx = r.callOnDispatch(ctx, c.kind)

	// One cancellation state per dispatch, shared by every view below and
	// discarded when this call returns.
	ev := Event[T]{
		payload: payload,
		raw:     raw,
		conn:    conn,
		state:   new(cancelState),
	}

	start := time.Now()
	for i, l := range c.fns {
		if ev.Cancelled() {
			r.callOnCancel(ctx, c.kind, i)
			r.callOnSuccess(ctx, c.kind, i, time.Since(start))
			return nil
		}
		if err := l.Handle(ctx, ev); err != nil {
			r.callOnFailure(ctx, c.kind, i, err, time.Since(start))
			return fmt.Errorf("dispatch %s: listener %d: %w", c.kind, i, err)
		}
	}
	r.callOnSuccess(ctx, c.kind, len(c.fns), time.Since(start))
	return nil
}

// callOnDispatch calls OnDispatch hooks, chaining the context through each.
func (r *Registry) callOnDispatch(ctx context.Context, kind Kind) context.Context {
	for _, fn := range r.hooks.onDispatch {
		ctx = fn(ctx, kind)
	}
	return ctx
}

// callOnCancel calls OnCancel hooks. index is the first listener skipped.
func (r *Registry) callOnCancel(ctx context.Context, kind Kind, index int) {
	for _, fn := range r.hooks.onCancel {
		fn(ctx, kind, index)
	}
}

// callOnSuccess calls OnSuccess hooks.
func (r *Registry) callOnSuccess(ctx context.Context, kind Kind, invoked int, duration time.Duration) {
	for _, fn := range r.hooks.onSuccess {
		fn(ctx, kind, invoked, duration)
	}
}

// callOnFailure calls OnFailure hooks.
func (r *Registry) callOnFailure(ctx context.Context, kind Kind, index int, err error, duration time.Duration) {
	for _, fn := range r.hooks.onFailure {
		fn(ctx, kind, index, err, duration)
	}
}

// handleNoListener handles dispatch of a kind with an empty chain. Silent by
// default; hooks may observe it and turn it into a failure.
func (r *Registry) handleNoListener(ctx context.Context, kind Kind) error {
	for _, fn := range r.hooks.onNoListener {
		if err := fn(ctx, kind); err != nil {
			return err
		}
	}
	return nil
}

// handleDecodeError handles a raw body that cannot be decoded into the
// chain's payload type. Hooks decide skip-or-fail; without hooks the wrapped
// error is returned.
func (r *Registry) handleDecodeError(ctx context.Context, derr *DecodeError) error {
	for _, fn := range r.hooks.onDecodeError {
		if err := fn(ctx, derr.Kind, derr); err != nil {
			return err
		}
	}
	if len(r.hooks.onDecodeError) > 0 {
		return nil
	}
	return derr
}

// DecodeError reports a raw event body that could not be mapped to the
// payload schema of its Kind. It is returned before any listener runs.
type DecodeError struct {
	Kind Kind
	err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s payload: %v", e.Kind, e.err)
}

func (e *DecodeError) Unwrap() error { return e.err }
