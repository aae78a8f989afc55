package notifier_test

import (
	"context"
	"errors"
	"rewarder/internal/core"
	"rewarder/internal/notifier"
	"rewarder/internal/notifier/fake"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Notifier", func() {
	var (
		fakeLister      *fake.RewardLister
		fakeLogger      *zap.SugaredLogger
		ctx             context.Context
		fakeErr         error
		now             time.Time
		originalTimeNow func() time.Time
		changesMu       sync.Mutex
		changes         []notifier.PendingCount
		n               *notifier.Notifier
	)

	rewards := func(statuses ...string) []core.RewardRecord {
		records := make([]core.RewardRecord, len(statuses))
		for i, status := range statuses {
			records[i] = core.RewardRecord{ID: int64(i + 1), Status: status}
		}
		return records
	}

	BeforeEach(func() {
		fakeLister = new(fake.RewardLister)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		originalTimeNow = notifier.TimeNow
		notifier.TimeNow = func() time.Time { return now }

		changes = nil
		n = notifier.NewNotifier(fakeLogger, fakeLister, time.Hour, notifier.WithOnChange(func(pc notifier.PendingCount) {
			changesMu.Lock()
			defer changesMu.Unlock()
			changes = append(changes, pc)
		}))
	})

	AfterEach(func() {
		Expect(n.Stop()).To(Succeed())
		notifier.TimeNow = originalTimeNow
	})

	Describe("Refresh", func() {
		When("the listing succeeds", func() {
			BeforeEach(func() {
				fakeLister.ListRewardsReturns(rewards(core.StatusPending, core.StatusClaimed, core.StatusPending), nil)
			})

			It("should count only pending rewards", func() {
				pc := n.Refresh(ctx)
				Expect(pc).To(Equal(notifier.PendingCount{Count: 2, UpdatedAt: now}))
				Expect(n.Snapshot()).To(Equal(pc))
			})

			It("should notify on the first load and on changes only", func() {
				n.Refresh(ctx)
				n.Refresh(ctx)
				Expect(changes).To(HaveLen(1))

				fakeLister.ListRewardsReturns(rewards(core.StatusClaimed), nil)
				n.Refresh(ctx)
				Expect(changes).To(HaveLen(2))
				Expect(changes[1].Count).To(BeZero())
			})
		})

		When("the user has no rewards", func() {
			BeforeEach(func() {
				fakeLister.ListRewardsReturns(nil, nil)
			})

			It("should report zero and still notify the first load", func() {
				Expect(n.Refresh(ctx).Count).To(BeZero())
				Expect(changes).To(HaveLen(1))
			})
		})

		When("the listing fails after a success", func() {
			BeforeEach(func() {
				fakeLister.ListRewardsReturnsOnCall(0, rewards(core.StatusPending), nil)
				fakeLister.ListRewardsReturnsOnCall(1, nil, fakeErr)
				fakeLister.ListRewardsReturnsOnCall(2, rewards(core.StatusPending), nil)
			})

			It("should keep the last count and mark it stale", func() {
				n.Refresh(ctx)
				pc := n.Refresh(ctx)

				Expect(pc.Count).To(Equal(1))
				Expect(pc.Stale).To(BeTrue())
				Expect(pc.LastError).To(Equal(fakeErr.Error()))
				Expect(pc.UpdatedAt).To(Equal(now))
				Expect(changes).To(HaveLen(2))
			})

			It("should clear staleness on the next success", func() {
				n.Refresh(ctx)
				n.Refresh(ctx)
				pc := n.Refresh(ctx)

				Expect(pc).To(Equal(notifier.PendingCount{Count: 1, UpdatedAt: now}))
				Expect(changes).To(HaveLen(3))
			})
		})

		When("the listing never succeeded", func() {
			BeforeEach(func() {
				fakeLister.ListRewardsReturns(nil, fakeErr)
			})

			It("should report a stale zero", func() {
				pc := n.Refresh(ctx)
				Expect(pc.Count).To(BeZero())
				Expect(pc.Stale).To(BeTrue())
				Expect(pc.UpdatedAt.IsZero()).To(BeTrue())
			})
		})

		It("should bound the listing call with a deadline", func() {
			fakeLister.ListRewardsReturns(nil, nil)
			n.Refresh(ctx)

			listCtx := fakeLister.ListRewardsArgsForCall(0)
			_, ok := listCtx.Deadline()
			Expect(ok).To(BeTrue())
		})
	})

	Describe("Start", func() {
		BeforeEach(func() {
			fakeLister.ListRewardsReturns(rewards(core.StatusPending), nil)
		})

		It("should refresh immediately", func() {
			Expect(n.Start()).To(Succeed())

			Eventually(fakeLister.ListRewardsCallCount).Should(BeNumerically(">=", 1))
			Eventually(func() int { return n.Snapshot().Count }).Should(Equal(1))
		})

		It("should stop cleanly", func() {
			Expect(n.Start()).To(Succeed())
			Expect(n.Stop()).To(Succeed())
			Expect(n.Stop()).To(Succeed())
		})
	})
})
