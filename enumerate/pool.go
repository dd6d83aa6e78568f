package enumerate

import (
	"context"
	"sync"

	"github.com/katalvlaran/seedlattice/linalg"
)

// Run drains seq with workers goroutines, sending every yielded vector
// on the returned channel, closing it once all work is exhausted or ctx
// is cancelled. The root is pre-split into up to workers pieces before
// any worker starts draining (Split only succeeds at the root frame, so
// this is the only point the full worker count can be put to work at
// once). A worker that finds its own Sequence empty offers it for a
// further Split, which never succeeds on a drained Sequence, then takes
// another presplit piece or exits. Workers share no state beyond
// splitCursor and the result channel.
func Run(ctx context.Context, seq Sequence, workers int) <-chan linalg.Vector {
	if workers < 1 {
		workers = 1
	}

	out := make(chan linalg.Vector)
	cur := &splitCursor{seqs: presplit(seq, workers)}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			worker(ctx, cur, out)
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// presplit repeatedly halves seq (breadth-first) until there are n
// pieces or no piece can be divided further, so Run can seed every
// worker with its own Sequence up front instead of starting N-1 of them
// idle.
func presplit(seq Sequence, n int) []Sequence {
	queue := []Sequence{seq}
	var done []Sequence

	for len(queue)+len(done) < n && len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		left, right, ok := s.Split()
		if !ok {
			done = append(done, s)
			continue
		}
		queue = append(queue, left, right)
	}

	return append(done, queue...)
}

// splitCursor hands out the Sequences presplit produced to idle workers.
//
// A worker only offers its own Sequence for splitting once it has
// drained it to exhaustion, and a drained Sequence has no root frame
// left, so that Split fails; no work is stolen from a still-busy
// worker. This keeps the cursor lock-free during the hot Next loop.
type splitCursor struct {
	mu   sync.Mutex
	seqs []Sequence
}

func (c *splitCursor) take() Sequence {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.seqs) == 0 {
		return nil
	}
	s := c.seqs[len(c.seqs)-1]
	c.seqs = c.seqs[:len(c.seqs)-1]

	return s
}

// offer tries to split s and push both halves back for other workers;
// returns the half the caller should keep working on, or nil if s could
// not be split further.
func (c *splitCursor) offer(s Sequence) Sequence {
	left, right, ok := s.Split()
	if !ok {
		return nil
	}

	c.mu.Lock()
	c.seqs = append(c.seqs, right)
	c.mu.Unlock()

	return left
}

func worker(ctx context.Context, cur *splitCursor, out chan<- linalg.Vector) {
	s := cur.take()
	for s != nil {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			v, ok := s.Next()
			if !ok {
				break
			}

			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}

		if next := cur.offer(s); next != nil {
			s = next

			continue
		}
		s = cur.take()
	}
}
