package notifier

import (
	"context"
	"fmt"
	"rewarder/internal/core"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const (
	defaultInterval = 30 * time.Second
	defaultTimeout  = 10 * time.Second
)

var TimeNow = time.Now

type Option func(*Notifier)

// WithOnChange registers fn to be called after the first successful refresh
// and after any refresh that changed the count or the staleness.
func WithOnChange(fn func(PendingCount)) Option {
	return func(n *Notifier) {
		n.onChange = fn
	}
}

// WithTimeout bounds a single refresh.
func WithTimeout(timeout time.Duration) Option {
	return func(n *Notifier) {
		n.timeout = timeout
	}
}

// Notifier keeps a stale-tolerant count of the user's pending rewards.
type Notifier struct {
	logs     *zap.SugaredLogger
	lister   RewardLister
	interval time.Duration
	timeout  time.Duration
	onChange func(PendingCount)

	mu    sync.RWMutex
	state PendingCount

	scheduler gocron.Scheduler
}

func NewNotifier(logger *zap.SugaredLogger, lister RewardLister, interval time.Duration, opts ...Option) *Notifier {
	if interval <= 0 {
		interval = defaultInterval
	}

	n := &Notifier{
		logs:     logger,
		lister:   lister,
		interval: interval,
		timeout:  defaultTimeout,
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Refresh fetches the rewards and recounts the pending ones. A failed fetch
// keeps the previous count and marks it stale.
func (n *Notifier) Refresh(ctx context.Context) PendingCount {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	rewards, err := n.lister.ListRewards(ctx)

	n.mu.Lock()
	previous := n.state
	if err != nil {
		n.state.Stale = true
		n.state.LastError = err.Error()
	} else {
		n.state = PendingCount{
			Count:     countPending(rewards),
			UpdatedAt: TimeNow(),
		}
	}
	current := n.state
	n.mu.Unlock()

	if err != nil {
		n.logs.Warnw("pending reward refresh failed, keeping last count",
			"error", err,
			"count", current.Count)
	}

	firstLoad := err == nil && previous.UpdatedAt.IsZero()
	if n.onChange != nil && (firstLoad || current.Count != previous.Count || current.Stale != previous.Stale) {
		n.onChange(current)
	}

	return current
}

func (n *Notifier) Snapshot() PendingCount {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.state
}

// Start refreshes right away and then every interval. Runs never overlap.
func (n *Notifier) Start() error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("new scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(n.interval),
		gocron.NewTask(func() {
			n.Refresh(context.Background())
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return fmt.Errorf("schedule refresh job: %w", err)
	}

	n.scheduler = scheduler
	scheduler.Start()

	n.logs.Infow("pending reward notifier started", "interval", n.interval.String())
	return nil
}

func (n *Notifier) Stop() error {
	if n.scheduler == nil {
		return nil
	}

	if err := n.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("scheduler shutdown: %w", err)
	}
	n.scheduler = nil

	return nil
}

func countPending(rewards []core.RewardRecord) int {
	count := 0
	for _, reward := range rewards {
		if reward.Status == core.StatusPending {
			count++
		}
	}
	return count
}
