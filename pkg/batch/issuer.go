package batch

import (
	"context"
	"fmt"

	"github.com/mwendt/sprechpass/pkg/sprechpass"
)

// Issuer generates batches of passwords concurrently. The model is shared
// by all workers and never written to, so no locking is involved; each
// worker keeps its own generator because random state is not shareable.
type Issuer struct {
	Model   *sprechpass.Model
	Workers int
}

// NewIssuer returns an issuer over m with a default worker count.
func NewIssuer(m *sprechpass.Model) *Issuer {
	return &Issuer{Model: m, Workers: 4}
}

// Issue generates n passwords, each with the given number of trailing
// digits. The batch either succeeds as a whole or fails with the first
// error; there is no partial result.
func (is *Issuer) Issue(ctx context.Context, n, digits int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("password count must not be negative, got %d", n)
	}
	if digits < 0 {
		return nil, sprechpass.ErrInvalidDigitCount
	}
	if n == 0 {
		return nil, nil
	}

	workers := is.Workers
	if workers <= 0 {
		workers = 1
	}

	out := make([]string, n)
	chunk := (n + workers - 1) / workers
	jobs := 0
	errCh := make(chan error, workers)

	pool := NewWorkerPool(workers, workers)
	pool.Start(ctx)

	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		job := func(ctx context.Context) error {
			gen, err := sprechpass.NewGenerator(is.Model)
			if err != nil {
				errCh <- err
				return err
			}
			for i := lo; i < hi; i++ {
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return ctx.Err()
				default:
				}
				pw, err := gen.Generate(digits)
				if err != nil {
					errCh <- err
					return err
				}
				out[i] = pw
			}
			errCh <- nil
			return nil
		}
		if err := pool.SubmitCtx(ctx, job); err != nil {
			pool.Close()
			return nil, err
		}
		jobs++
	}

	pool.Close()

	// Every executed job has sent exactly its own result by now; jobs still
	// queued when the context was canceled sent nothing, so drain what is
	// there and fall back to the context error for the rest.
	var firstErr error
drain:
	for range jobs {
		select {
		case err := <-errCh:
			if err != nil && firstErr == nil {
				firstErr = err
			}
		default:
			break drain
		}
	}
	if firstErr == nil {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
