package gateway

import "context"

// Listener handles events of one kind.
//
// The type parameter T is the payload type for the kind the listener is
// registered against. All listeners registered for one kind must share T.
//
// Example:
//
//	type WelcomeListener struct {
//	    rest RESTClient
//	}
//
//	func (l *WelcomeListener) Handle(ctx context.Context, ev gateway.Event[gateway.GuildMemberAdd]) error {
//	    return l.rest.SendMessage(ctx, welcomeChannel, "hello "+string(ev.Payload().User.ID))
//	}
type Listener[T any] interface {
	Handle(ctx context.Context, ev Event[T]) error
}

// ListenerFunc is a function adapter for Listener. Use for simple listeners
// that don't need a struct:
//
//	gateway.OnFunc(r, gateway.KindMessageCreate, func(ctx context.Context, ev gateway.Event[gateway.MessageCreate]) error {
//	    return nil
//	})
type ListenerFunc[T any] func(ctx context.Context, ev Event[T]) error

// Handle implements the Listener interface.
func (f ListenerFunc[T]) Handle(ctx context.Context, ev Event[T]) error {
	return f(ctx, ev)
}
