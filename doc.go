// Package gateway is the in-process dispatch core for a client receiving a
// continuous stream of server-pushed events.
//
// The package delivers each decoded event, in registration order, to the
// listeners registered for its kind, and lets any listener veto delivery to
// the listeners after it. It owns the event taxonomy, the per-kind listener
// chains, the invocation loop and the cancellation protocol — and nothing
// else: wire protocol parsing, REST calls and logging live with the caller.
//
// # Quick Start
//
// Define a listener for an event kind:
//
//	type ModerationListener struct {
//	    filter *WordFilter
//	}
//
//	func (l *ModerationListener) Handle(ctx context.Context, ev gateway.Event[gateway.MessageCreate]) error {
//	    if l.filter.Blocked(ev.Payload().Content) {
//	        ev.Cancel() // later listeners never see this message
//	    }
//	    return nil
//	}
//
// Create a registry, register listeners, and feed it raw events:
//
//	r := gateway.New()
//
//	gateway.On(r, gateway.KindMessageCreate, &ModerationListener{filter})
//	gateway.OnFunc(r, gateway.KindMessageCreate, func(ctx context.Context, ev gateway.Event[gateway.MessageCreate]) error {
//	    fmt.Println(ev.Payload().Content)
//	    return nil
//	})
//
//	// From the protocol layer, per decoded frame:
//	err := r.Dispatch(ctx, gateway.KindMessageCreate, rawBody, shard)
//
// # Cancellation
//
// Every Dispatch call creates a fresh cancellation state scoped to that one
// delivery. The Event view handed to each listener routes Cancel and
// Cancelled to it: the event data stays read-only while the dispatch-scoped
// flag changes. Cancel is idempotent, stops all later listeners in the same
// dispatch, and is invisible to every other dispatch — including concurrent
// dispatches of the same kind on other connections, which each carry their
// own state. Nothing survives the Dispatch call; the next event of the same
// kind always starts uncancelled.
//
// # Event Kinds and Payloads
//
// Kind is a closed enumeration, one constant per event category, with a
// payload struct of the same shape as the raw body (MessageCreate,
// GuildRoleDelete, VoiceStateUpdate, ...). The registry keeps one chain per
// kind in a single map; adding a kind means adding a constant and a payload
// struct, never touching the dispatch algorithm.
//
// # The Interaction Family
//
// Interaction-like kinds share the ParameterResolver capability:
//
//	Parameter(name string) gateway.Param
//
// Plain application commands (InteractionCreate) resolve names against the
// decoded option list; ButtonClick, SelectClick and Autocomplete always
// return the absent Param because their interactions carry no named command
// options. All four arrive on the same INTERACTION_CREATE wire event;
// Dispatch probes the raw interaction type and routes each to its own chain,
// so a button listener never sees autocomplete traffic.
//
// # Hooks
//
// Hooks provide observability without coupling the engine to a logging or
// metrics system:
//
//	r := gateway.New(
//	    gateway.WithOnDispatch(func(ctx context.Context, kind gateway.Kind) context.Context {
//	        return trace.Start(ctx, string(kind))
//	    }),
//	    gateway.WithOnFailure(func(ctx context.Context, kind gateway.Kind, index int, err error, d time.Duration) {
//	        metrics.Incr("gateway.listener.failure", "kind:"+string(kind))
//	    }),
//	)
//
// WithLogger bundles the hooks into zerolog output with a per-dispatch
// correlation id.
//
// # Error Handling
//
// A raw body that cannot be decoded into its kind's payload type fails
// before any listener runs, as a *DecodeError. A listener error aborts the
// remaining chain for that one event and is returned wrapped; registry state
// and concurrent dispatches are unaffected either way. Dispatching a kind
// nobody listens to is a normal, silent no-op. The engine never logs or
// recovers on its own — the skip-or-fail hooks decide policy.
//
// # Thread Safety
//
// Registry is safe for concurrent Dispatch calls from any number of
// goroutines after configuration is complete. Do not call On or OnFunc once
// events are flowing.
package gateway
