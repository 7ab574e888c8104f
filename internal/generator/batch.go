package generator

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"sudoku_core_go/internal/types"
)

// Progress is a snapshot of a running batch, sent over a channel so the
// caller can render it however it likes.
type Progress struct {
	Done      int
	Total     int
	Message   string
	Completed bool
}

// Batch generates count puzzles concurrently. Workers are capped at
// NumCPU and each owns a private generator and RNG, so no grid state
// is ever shared. Progress reports are optional; pass nil to skip them.
func Batch(ctx context.Context, count int, difficulty types.Difficulty, checkInterval int, progress chan<- Progress) ([]*types.Puzzle, error) {
	if count < 1 {
		return nil, fmt.Errorf("batch count must be positive, got %d", count)
	}

	puzzles := make([]*types.Puzzle, count)
	var done int64

	// The group context ends when Wait returns; reports sent after that
	// must select on the caller's context instead.
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(min(count, runtime.NumCPU()))

	for i := 0; i < count; i++ {
		i := i
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			gen := New(difficulty)
			gen.SetSeed(time.Now().UnixNano() + int64(i))
			if checkInterval > 0 {
				if err := gen.SetCheckInterval(checkInterval); err != nil {
					return err
				}
			}

			p, err := gen.Generate()
			if err != nil {
				return fmt.Errorf("puzzle %d: %w", i, err)
			}
			puzzles[i] = p

			n := atomic.AddInt64(&done, 1)
			report(gctx, progress, Progress{
				Done:    int(n),
				Total:   count,
				Message: fmt.Sprintf("generated puzzle %d/%d", n, count),
			})
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report(ctx, progress, Progress{
		Done:      count,
		Total:     count,
		Message:   "batch complete",
		Completed: true,
	})
	return puzzles, nil
}

func report(ctx context.Context, progress chan<- Progress, p Progress) {
	if progress == nil {
		return
	}
	select {
	case progress <- p:
	case <-ctx.Done():
	}
}
