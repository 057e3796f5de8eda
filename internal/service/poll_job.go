package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-group-sync/internal/config"
)

type pollJob struct {
	poller Poller

	// mu is held across a whole Start or Stop; the poll goroutine never takes it.
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPollJob creates a pollJob that calls poller.Poll on a ticker. The job is
// idle until Start is called.
func NewPollJob(poller Poller) PollJob {
	return &pollJob{poller: poller}
}

// Start implements PollJob. If interval is zero or negative it defaults to
// config.DefaultPollInterval.
func (j *pollJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.poller.Poll(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.poller.Poll(jobCtx)
			}
		}
	}()
}

// Stop implements PollJob.
func (j *pollJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()
}

func (j *pollJob) stopLocked() {
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.wg.Wait()
}
