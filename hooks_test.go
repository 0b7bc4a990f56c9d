package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ctxKey string

type hookRecorder struct {
	dispatchKinds []Kind
	cancelIndex   int
	cancelCalled  bool
	successCount  int
	invoked       int
	failureIndex  int
	failureErr    error
	noListener    []Kind
}

func (h *hookRecorder) options() []Option {
	return []Option{
		WithOnDispatch(func(ctx context.Context, kind Kind) context.Context {
			h.dispatchKinds = append(h.dispatchKinds, kind)
			return context.WithValue(ctx, ctxKey("hook"), "set")
		}),
		WithOnCancel(func(ctx context.Context, kind Kind, index int) {
			h.cancelCalled = true
			h.cancelIndex = index
		}),
		WithOnSuccess(func(ctx context.Context, kind Kind, invoked int, d time.Duration) {
			h.successCount++
			h.invoked = invoked
		}),
		WithOnFailure(func(ctx context.Context, kind Kind, index int, err error, d time.Duration) {
			h.failureIndex = index
			h.failureErr = err
		}),
		WithOnNoListener(func(ctx context.Context, kind Kind) error {
			h.noListener = append(h.noListener, kind)
			return nil
		}),
	}
}

type HooksSuite struct {
	suite.Suite
	rec *hookRecorder
	r   *Registry
}

func (s *HooksSuite) SetupTest() {
	s.rec = &hookRecorder{}
	s.r = New(s.rec.options()...)
}

func TestHooksSuite(t *testing.T) {
	suite.Run(t, new(HooksSuite))
}

func (s *HooksSuite) TestOnDispatchEnrichesContext() {
	var seen any
	OnFunc(s.r, KindMessageCreate, func(ctx context.Context, ev Event[MessageCreate]) error {
		seen = ctx.Value(ctxKey("hook"))
		return nil
	})

	err := s.r.Dispatch(context.Background(), KindMessageCreate, messageRaw, nil)

	s.Require().NoError(err)
	s.Assert().Equal("set", seen)
	s.Assert().Equal([]Kind{KindMessageCreate}, s.rec.dispatchKinds)
}

func (s *HooksSuite) TestOnSuccessReportsInvokedCount() {
	OnFunc(s.r, KindMessageCreate, func(ctx context.Context, ev Event[MessageCreate]) error { return nil })
	OnFunc(s.r, KindMessageCreate, func(ctx context.Context, ev Event[MessageCreate]) error { return nil })

	err := s.r.Dispatch(context.Background(), KindMessageCreate, messageRaw, nil)

	s.Require().NoError(err)
	s.Assert().Equal(1, s.rec.successCount)
	s.Assert().Equal(2, s.rec.invoked)
	s.Assert().False(s.rec.cancelCalled)
}

func (s *HooksSuite) TestOnCancelReportsFirstSkippedIndex() {
	OnFunc(s.r, KindMessageCreate, func(ctx context.Context, ev Event[MessageCreate]) error {
		ev.Cancel()
		return nil
	})
	OnFunc(s.r, KindMessageCreate, func(ctx context.Context, ev Event[MessageCreate]) error {
		s.Fail("listener after cancel should not run")
		return nil
	})

	err := s.r.Dispatch(context.Background(), KindMessageCreate, messageRaw, nil)

	s.Require().NoError(err)
	s.Assert().True(s.rec.cancelCalled)
	s.Assert().Equal(1, s.rec.cancelIndex)
	s.Assert().Equal(1, s.rec.invoked)
}

func (s *HooksSuite) TestOnFailureReportsListenerError() {
	boom := errors.New("boom")
	OnFunc(s.r, KindMessageCreate, func(ctx context.Context, ev Event[MessageCreate]) error { return nil })
	OnFunc(s.r, KindMessageCreate, func(ctx context.Context, ev Event[MessageCreate]) error { return boom })

	err := s.r.Dispatch(context.Background(), KindMessageCreate, messageRaw, nil)

	s.Require().Error(err)
	s.Assert().ErrorIs(s.rec.failureErr, boom)
	s.Assert().Equal(1, s.rec.failureIndex)
	s.Assert().Equal(0, s.rec.successCount)
}

func (s *HooksSuite) TestOnNoListenerObservesUnhandledKinds() {
	err := s.r.Dispatch(context.Background(), KindTypingStart, []byte(`{}`), nil)

	s.Require().NoError(err)
	s.Assert().Equal([]Kind{KindTypingStart}, s.rec.noListener)
}

func (s *HooksSuite) TestOnNoListenerCanFailDispatch() {
	want := errors.New("unexpected kind")
	r := New(WithOnNoListener(func(ctx context.Context, kind Kind) error {
		return want
	}))

	err := r.Dispatch(context.Background(), KindTypingStart, []byte(`{}`), nil)

	s.Assert().ErrorIs(err, want)
}

func (s *HooksSuite) TestOnDecodeErrorCanSkip() {
	var got error
	r := New(WithOnDecodeError(func(ctx context.Context, kind Kind, err error) error {
		got = err
		return nil
	}))
	OnFunc(r, KindMessageCreate, func(ctx context.Context, ev Event[MessageCreate]) error {
		s.Fail("listener must not run for undecodable payload")
		return nil
	})

	err := r.Dispatch(context.Background(), KindMessageCreate, []byte(`{bad`), nil)

	s.Require().NoError(err)
	var derr *DecodeError
	s.Assert().ErrorAs(got, &derr)
}

func (s *HooksSuite) TestOnDecodeErrorCanFail() {
	want := errors.New("reject")
	r := New(WithOnDecodeError(func(ctx context.Context, kind Kind, err error) error {
		return want
	}))
	OnFunc(r, KindMessageCreate, func(ctx context.Context, ev Event[MessageCreate]) error { return nil })

	err := r.Dispatch(context.Background(), KindMessageCreate, []byte(`{bad`), nil)

	s.Assert().ErrorIs(err, want)
}

func (s *HooksSuite) TestMultipleHooksRunInOrder() {
	var order []string
	r := New(
		WithOnDispatch(func(ctx context.Context, kind Kind) context.Context {
			order = append(order, "first")
			return ctx
		}),
		WithOnDispatch(func(ctx context.Context, kind Kind) context.Context {
			order = append(order, "second")
			return ctx
		}),
	)
	OnFunc(r, KindMessageCreate, func(ctx context.Context, ev Event[MessageCreate]) error { return nil })

	err := r.Dispatch(context.Background(), KindMessageCreate, messageRaw, nil)

	s.Require().NoError(err)
	s.Assert().Equal([]string{"first", "second"}, order)
}
