package sensor

import (
	"sync"
	"time"
)

// streamBuffer is the sample channel capacity. The consumer drains once per
// game tick; when it falls behind, the oldest reading is dropped so steering
// follows the current tilt rather than a backlog.
const streamBuffer = 8

// Stream is a scoped subscription to a Source: Open starts the sampling
// goroutine, Close releases it. Whoever opens a stream owns closing it on
// every exit path; the game does so on reset and on quit.
type Stream struct {
	samples chan Sample
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// Open subscribes to src, polling it every period.
func Open(src Source, period time.Duration) *Stream {
	s := &Stream{
		samples: make(chan Sample, streamBuffer),
		done:    make(chan struct{}),
	}
	s.wg.Add(1)
	go s.pump(src, period)
	return s
}

func (s *Stream) pump(src Source, period time.Duration) {
	defer s.wg.Done()
	defer close(s.samples)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			reading := src.Read(now)
			select {
			case s.samples <- reading:
			default:
				// Full buffer: drop the oldest reading, keep the freshest.
				select {
				case <-s.samples:
				default:
				}
				select {
				case s.samples <- reading:
				default:
				}
			}
		}
	}
}

// Samples returns the subscription's channel. It closes after Close, once
// the sampling goroutine has exited, so draining with range terminates.
func (s *Stream) Samples() <-chan Sample {
	return s.samples
}

// Close stops sampling and waits for the goroutine to exit. Safe to call
// more than once and from any goroutine.
func (s *Stream) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.wg.Wait()
	})
	return nil
}
