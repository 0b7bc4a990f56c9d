package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WithLogger installs a hook bundle that logs the dispatch lifecycle through
// log. Each dispatch is tagged with a generated dispatch_id and its kind, and
// the tagged logger is placed on the context, so listeners can pick it up
// with zerolog.Ctx and their own log lines correlate with the dispatch.
//
// Dispatch start, cancellation and completion log at debug level; listener
// failures and undecodable payloads at error level. The decode hook preserves
// the default fail behavior: the event still errors, it is just logged first.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		WithOnDispatch(func(ctx context.Context, kind Kind) context.Context {
			l := log.With().
				Str("kind", string(kind)).
				Str("dispatch_id", uuid.NewString()).
				Logger()
			l.Debug().Msg("dispatching event")
			return l.WithContext(ctx)
		})(r)

		WithOnCancel(func(ctx context.Context, kind Kind, index int) {
			zerolog.Ctx(ctx).Debug().
				Int("skipped_from", index).
				Msg("event cancelled")
		})(r)

		WithOnSuccess(func(ctx context.Context, kind Kind, invoked int, d time.Duration) {
			zerolog.Ctx(ctx).Debug().
				Int("invoked", invoked).
				Dur("duration", d).
				Msg("dispatch complete")
		})(r)

		WithOnFailure(func(ctx context.Context, kind Kind, index int, err error, d time.Duration) {
			zerolog.Ctx(ctx).Error().
				Err(err).
				Int("listener", index).
				Dur("duration", d).
				Msg("listener failed")
		})(r)

		WithOnDecodeError(func(ctx context.Context, kind Kind, err error) error {
			log.Error().
				Str("kind", string(kind)).
				Err(err).
				Msg("payload decode failed")
			return err
		})(r)
	}
}
