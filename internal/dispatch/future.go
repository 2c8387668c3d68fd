package dispatch

import "context"

// outcome is the resolved value-or-error of one dispatched message.
type outcome struct {
	value any
	err   error
}

// Future is the result-delivery half of a submitted message. Exactly one
// outcome is ever delivered; the reply channel is buffered so the worker
// never blocks on a caller that stopped waiting.
type Future struct {
	reply chan outcome
}

func newFuture() *Future {
	return &Future{reply: make(chan outcome, 1)}
}

// Await blocks until the message's result resolves or ctx is done.
//
// A ctx cancellation abandons only the wait: the message itself still runs to
// completion in its worker and the delivered outcome is discarded.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case out := <-f.reply:
		return out.value, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// resolve delivers the outcome. Must be called at most once.
func (f *Future) resolve(value any, err error) {
	f.reply <- outcome{value: value, err: err}
}
