package lock_test

import (
	"context"
	"errors"
	"time"

	"txwatch/internal/lock"
	"txwatch/internal/lock/fake"

	"github.com/redis/go-redis/v9"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("LocalLock", func() {
	var (
		l   *lock.LocalLock
		ctx context.Context
	)

	BeforeEach(func() {
		l = lock.NewLocalLock()
		ctx = context.Background()
	})

	It("should block a second holder until released", func() {
		release, err := l.Acquire(ctx)
		Expect(err).NotTo(HaveOccurred())

		acquired := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			second, err := l.Acquire(ctx)
			Expect(err).NotTo(HaveOccurred())
			close(acquired)
			second()
		}()

		Consistently(acquired).ShouldNot(BeClosed())
		release()
		Eventually(acquired).Should(BeClosed())
	})

	It("should tolerate a double release", func() {
		release, err := l.Acquire(ctx)
		Expect(err).NotTo(HaveOccurred())

		release()
		release()

		again, err := l.Acquire(ctx)
		Expect(err).NotTo(HaveOccurred())
		again()
	})

	It("should give up when the context is done", func() {
		release, err := l.Acquire(ctx)
		Expect(err).NotTo(HaveOccurred())
		defer release()

		timeoutCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		_, err = l.Acquire(timeoutCtx)
		Expect(err).To(MatchError(context.DeadlineExceeded))
	})
})

var _ = Describe("RedisLock", func() {
	var (
		fakeClient *fake.RedisClient
		l          *lock.RedisLock
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeClient = new(fake.RedisClient)
		l = lock.NewRedisLock(zap.NewNop().Sugar(), fakeClient, "txwatch:lock", 30*time.Second)
		fakeClient.EvalReturns(redis.NewCmdResult(int64(1), nil))
	})

	When("the key is free", func() {
		BeforeEach(func() {
			fakeClient.SetNXReturns(redis.NewBoolResult(true, nil))
		})

		It("should take the key with a token and ttl", func() {
			release, err := l.Acquire(ctx)
			Expect(err).NotTo(HaveOccurred())

			_, key, token, ttl := fakeClient.SetNXArgsForCall(0)
			Expect(key).To(Equal("txwatch:lock"))
			Expect(token).NotTo(BeEmpty())
			Expect(ttl).To(Equal(30 * time.Second))

			release()
			release()

			Expect(fakeClient.EvalCallCount()).To(Equal(1))
			_, _, keys, args := fakeClient.EvalArgsForCall(0)
			Expect(keys).To(Equal([]string{"txwatch:lock"}))
			Expect(args).To(Equal([]interface{}{token}))
		})
	})

	When("the key is held elsewhere", func() {
		BeforeEach(func() {
			fakeClient.SetNXReturnsOnCall(0, redis.NewBoolResult(false, nil))
			fakeClient.SetNXReturnsOnCall(1, redis.NewBoolResult(false, nil))
			fakeClient.SetNXReturnsOnCall(2, redis.NewBoolResult(true, nil))
		})

		It("should retry until it is free", func() {
			release, err := l.Acquire(ctx)
			Expect(err).NotTo(HaveOccurred())
			defer release()

			Expect(fakeClient.SetNXCallCount()).To(Equal(3))
		})

		It("should stop retrying when the context is done", func() {
			fakeClient.SetNXReturns(redis.NewBoolResult(false, nil))
			fakeClient.SetNXReturnsOnCall(2, redis.NewBoolResult(false, nil))

			timeoutCtx, cancel := context.WithTimeout(ctx, 120*time.Millisecond)
			defer cancel()

			_, err := l.Acquire(timeoutCtx)
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})
	})

	When("redis fails", func() {
		BeforeEach(func() {
			fakeClient.SetNXReturns(redis.NewBoolResult(false, errors.New("connection refused")))
		})

		It("should return the error", func() {
			_, err := l.Acquire(ctx)
			Expect(err).To(MatchError(ContainSubstring("connection refused")))
		})
	})
})
