package store_test

import (
	"context"
	"errors"
	"time"

	"txwatch/internal/core"
	"txwatch/internal/store"
	"txwatch/internal/store/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Store", func() {
	var (
		fakeRepo *fake.Repository
		s        *store.Store
		ctx      context.Context
		fakeErr  error
		changed  []core.Transaction
		tracked  core.Transaction
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		fakeRepo = new(fake.Repository)
		s = store.NewStore(zap.NewNop().Sugar(), fakeRepo)

		changed = nil
		s.OnChange(func(tx core.Transaction) {
			changed = append(changed, tx)
		})
	})

	Describe("Load", func() {
		It("should fill the store from the repository", func() {
			fakeRepo.GetAllTransactionsReturns([]core.Transaction{
				{ID: "b", CreatedAt: time.Unix(20, 0)},
				{ID: "a", CreatedAt: time.Unix(10, 0)},
				{ID: "c", CreatedAt: time.Unix(10, 0)},
			}, nil)

			Expect(s.Load(ctx)).To(Succeed())

			txs := s.Transactions()
			Expect(txs).To(HaveLen(3))
			Expect(txs[0].ID).To(Equal("a"))
			Expect(txs[1].ID).To(Equal("c"))
			Expect(txs[2].ID).To(Equal("b"))
		})

		It("should return repository errors", func() {
			fakeRepo.GetAllTransactionsReturns(nil, fakeErr)

			Expect(s.Load(ctx)).To(MatchError(fakeErr))
		})
	})

	Describe("Add", func() {
		It("should persist a new submitted transaction", func() {
			tx, err := s.Add(ctx, core.Transaction{
				Hash:            "0xabc",
				ChainID:         "0x1",
				NetworkClientID: "mainnet",
				Status:          core.StatusConfirmed,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(tx.ID).NotTo(BeEmpty())
			Expect(tx.Status).To(Equal(core.StatusSubmitted))
			Expect(tx.CreatedAt).NotTo(BeZero())

			Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(1))
			_, saved := fakeRepo.SaveTransactionArgsForCall(0)
			Expect(saved).To(Equal(tx))

			Expect(changed).To(HaveLen(1))
			Expect(s.Get(tx.ID)).To(Equal(tx))
		})

		It("should reject a hash already tracked on the network client", func() {
			_, err := s.Add(ctx, core.Transaction{Hash: "0xabc", NetworkClientID: "mainnet"})
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Add(ctx, core.Transaction{Hash: "0xabc", NetworkClientID: "mainnet"})
			Expect(err).To(MatchError(store.ErrAlreadyTracked))

			_, err = s.Add(ctx, core.Transaction{Hash: "0xabc", NetworkClientID: "sepolia"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should not keep the transaction when persisting fails", func() {
			fakeRepo.SaveTransactionReturns(fakeErr)

			_, err := s.Add(ctx, core.Transaction{ID: "tx-1"})
			Expect(err).To(MatchError(fakeErr))
			Expect(s.Transactions()).To(BeEmpty())
			Expect(changed).To(BeEmpty())
		})
	})

	Describe("Remove", func() {
		BeforeEach(func() {
			var err error
			tracked, err = s.Add(ctx, core.Transaction{ID: "tx-1", Hash: "0xabc"})
			Expect(err).NotTo(HaveOccurred())
			changed = nil
		})

		It("should delete the transaction", func() {
			Expect(s.Remove(ctx, "tx-1")).To(Succeed())

			Expect(fakeRepo.DeleteTransactionCallCount()).To(Equal(1))
			_, id := fakeRepo.DeleteTransactionArgsForCall(0)
			Expect(id).To(Equal("tx-1"))

			_, err := s.Get("tx-1")
			Expect(err).To(MatchError(core.ErrTransactionNotFound))
			Expect(changed).To(HaveLen(1))
		})

		It("should return not found for unknown ids", func() {
			Expect(s.Remove(ctx, "missing")).To(MatchError(core.ErrTransactionNotFound))
			Expect(fakeRepo.DeleteTransactionCallCount()).To(Equal(0))
		})
	})

	Describe("Apply", func() {
		BeforeEach(func() {
			var err error
			tracked, err = s.Add(ctx, core.Transaction{
				ID:              "tx-1",
				Hash:            "0xabc",
				ChainID:         "0x1",
				NetworkClientID: "mainnet",
			})
			Expect(err).NotTo(HaveOccurred())
			changed = nil
		})

		current := func() core.Transaction {
			tx, err := s.Get("tx-1")
			Expect(err).NotTo(HaveOccurred())
			return tx
		}

		It("should ignore events for unknown transactions", func() {
			err := s.Apply(ctx, core.Event{Kind: core.EventDropped, Transaction: core.Transaction{ID: "other"}})

			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeEmpty())
		})

		It("should store a warning update", func() {
			update := tracked.Clone()
			update.Warning = &core.Warning{Error: "boom", Message: "There was a problem loading this transaction."}

			Expect(s.Apply(ctx, core.Event{Kind: core.EventUpdated, Transaction: update})).To(Succeed())

			Expect(current().Warning).To(Equal(update.Warning))
			Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(2))
			Expect(changed).To(HaveLen(1))
		})

		It("should never reset the first retry block", func() {
			first := tracked.Clone()
			first.FirstRetryBlockNumber = new(uint64)
			*first.FirstRetryBlockNumber = 16
			Expect(s.Apply(ctx, core.Event{Kind: core.EventUpdated, Transaction: first})).To(Succeed())

			stale := tracked.Clone()
			stale.Warning = &core.Warning{Error: "boom"}
			Expect(s.Apply(ctx, core.Event{Kind: core.EventUpdated, Transaction: stale})).To(Succeed())

			Expect(*current().FirstRetryBlockNumber).To(Equal(uint64(16)))
		})

		It("should never decrease the retry count", func() {
			retried := tracked.Clone()
			retried.RetryCount = 2
			Expect(s.Apply(ctx, core.Event{Kind: core.EventUpdated, Transaction: retried})).To(Succeed())

			Expect(s.Apply(ctx, core.Event{Kind: core.EventUpdated, Transaction: tracked})).To(Succeed())

			Expect(current().RetryCount).To(Equal(2))
		})

		It("should mark the transaction confirmed exactly once", func() {
			confirmed := tracked.Clone()
			confirmed.Receipt = &core.Receipt{Status: 1, BlockHash: "0xblock", BlockNumber: 15}
			confirmed.BaseFeePerGas = "0x7"
			confirmed.RetryCount = 1

			Expect(s.Apply(ctx, core.Event{Kind: core.EventConfirmed, Transaction: confirmed})).To(Succeed())
			Expect(s.Apply(ctx, core.Event{Kind: core.EventConfirmed, Transaction: confirmed})).To(Succeed())

			tx := current()
			Expect(tx.Status).To(Equal(core.StatusConfirmed))
			Expect(tx.VerifiedOnBlockchain).To(BeTrue())
			Expect(tx.BaseFeePerGas).To(Equal("0x7"))
			Expect(tx.RetryCount).To(Equal(0))
			Expect(changed).To(HaveLen(1))
		})

		It("should store the failure reason", func() {
			err := s.Apply(ctx, core.Event{Kind: core.EventFailed, Transaction: tracked, Err: core.ErrDroppedOrReplaced})

			Expect(err).NotTo(HaveOccurred())
			Expect(current().Status).To(Equal(core.StatusFailed))
			Expect(current().Error).To(Equal("Transaction dropped or replaced"))
		})

		It("should not move a terminal transaction back to submitted", func() {
			Expect(s.Apply(ctx, core.Event{Kind: core.EventDropped, Transaction: tracked})).To(Succeed())
			Expect(s.Apply(ctx, core.Event{Kind: core.EventUpdated, Transaction: tracked})).To(Succeed())
			Expect(s.Apply(ctx, core.Event{Kind: core.EventFailed, Transaction: tracked})).To(Succeed())

			Expect(current().Status).To(Equal(core.StatusDropped))
			Expect(changed).To(HaveLen(1))
		})

		It("should return persistence errors", func() {
			fakeRepo.SaveTransactionReturns(fakeErr)

			err := s.Apply(ctx, core.Event{Kind: core.EventDropped, Transaction: tracked})
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("Run", func() {
		It("should apply events until the channel closes", func() {
			_, err := s.Add(ctx, core.Transaction{ID: "tx-1"})
			Expect(err).NotTo(HaveOccurred())

			events := make(chan core.Event, 1)
			done := make(chan struct{})
			go func() {
				defer close(done)
				s.Run(ctx, events)
			}()

			events <- core.Event{Kind: core.EventDropped, Transaction: core.Transaction{ID: "tx-1"}}
			close(events)

			Eventually(done).Should(BeClosed())
			tx, err := s.Get("tx-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.Status).To(Equal(core.StatusDropped))
		})
	})
})
