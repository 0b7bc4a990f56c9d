package gateway

import (
	"encoding/json"
	"sync/atomic"
)

// Connection identifies the gateway connection an event arrived on. The
// caller's shard objects satisfy this; the library never dials anything
// itself. Voice subsystem events are synthesized in-process and carry a nil
// Connection.
type Connection interface {
	// ShardID returns the shard number of the connection, starting at zero.
	ShardID() int
}

// cancelState is the cancellation flag for a single in-flight dispatch. A
// fresh one is allocated per Dispatch call and referenced only from the Event
// views handed to that dispatch's listeners, so two dispatches can never
// observe each other's flag. Atomic because a listener may cancel from a
// goroutine it spawned.
type cancelState struct {
	flag atomic.Bool
}

func (s *cancelState) cancel()         { s.flag.Store(true) }
func (s *cancelState) cancelled() bool { return s.flag.Load() }

// Event is the view handed to every listener during one dispatch. The
// envelope — payload, raw bytes, source connection — is immutable once
// constructed; only the per-dispatch cancellation state changes, and Cancel
// and Cancelled route to that state rather than to anything stored on the
// event itself.
//
// An Event is only valid for the duration of the listener invocation it is
// passed to. Listeners must copy data out rather than retain the view, the
// raw slice, or anything reachable from the payload.
type Event[T any] struct {
	payload T
	raw     json.RawMessage
	conn    Connection
	state   *cancelState
}

// Payload returns the decoded event payload.
func (e Event[T]) Payload() T { return e.payload }

// Raw returns the raw event body as received from the wire. The slice is
// shared across the chain; do not modify or retain it.
func (e Event[T]) Raw() json.RawMessage { return e.raw }

// Connection returns the connection the event originated on, or nil for
// events synthesized internally (notably the voice subsystem kinds).
func (e Event[T]) Connection() Connection { return e.conn }

// Cancel stops delivery of this event to listeners registered after the
// current one. It affects only the dispatch in progress: other dispatches,
// including concurrent ones of the same kind, are untouched. Calling it more
// than once is a no-op.
func (e Event[T]) Cancel() { e.state.cancel() }

// Cancelled reports whether a listener earlier in this dispatch (or the
// current one) has cancelled the event.
func (e Event[T]) Cancelled() bool { return e.state.cancelled() }
