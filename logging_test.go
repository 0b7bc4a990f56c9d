package gateway

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogger(t *testing.T) {
	t.Run("logs dispatch lifecycle with correlation id", func(t *testing.T) {
		var buf bytes.Buffer
		log := zerolog.New(&buf).Level(zerolog.DebugLevel)
		r := New(WithLogger(log))

		OnFunc(r, KindMessageCreate, func(ctx context.Context, ev Event[MessageCreate]) error {
			zerolog.Ctx(ctx).Debug().Msg("listener ran")
			return nil
		})

		require.NoError(t, r.Dispatch(context.Background(), KindMessageCreate, messageRaw, nil))

		out := buf.String()
		assert.Contains(t, out, "dispatching event")
		assert.Contains(t, out, "dispatch complete")
		assert.Contains(t, out, "listener ran")
		assert.Contains(t, out, "dispatch_id")
		assert.Contains(t, out, string(KindMessageCreate))
	})

	t.Run("logs listener failures", func(t *testing.T) {
		var buf bytes.Buffer
		r := New(WithLogger(zerolog.New(&buf)))

		OnFunc(r, KindMessageCreate, func(ctx context.Context, ev Event[MessageCreate]) error {
			return errors.New("boom")
		})

		require.Error(t, r.Dispatch(context.Background(), KindMessageCreate, messageRaw, nil))
		assert.Contains(t, buf.String(), "listener failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("logs decode failures and keeps the error", func(t *testing.T) {
		var buf bytes.Buffer
		r := New(WithLogger(zerolog.New(&buf)))
		OnFunc(r, KindMessageCreate, func(ctx context.Context, ev Event[MessageCreate]) error { return nil })

		err := r.Dispatch(context.Background(), KindMessageCreate, []byte(`{bad`), nil)

		var derr *DecodeError
		require.ErrorAs(t, err, &derr)
		assert.Contains(t, buf.String(), "payload decode failed")
	})
}
