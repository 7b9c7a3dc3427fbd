package core_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"txwatch/internal/core"
	"txwatch/internal/core/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func drain(ch chan core.Event) []core.Event {
	var events []core.Event
	for {
		select {
		case ev := <-ch:
			events = append(events, ev)
		default:
			return events
		}
	}
}

func kinds(events []core.Event) []core.EventKind {
	out := make([]core.EventKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func nonce(n uint64) *uint64 {
	return &n
}

var _ = Describe("PendingTransactionTracker", func() {
	var (
		fakeQuerier   *fake.ChainQuerier
		fakePublisher *fake.Publisher
		fakeSource    *fake.TransactionSource
		fakeLock      *fake.GlobalLock
		blocks        *blockFeed
		fakeLogger    *zap.SugaredLogger
		ctx           context.Context

		released        atomic.Int32
		resubmitEnabled bool
		hookResult      bool

		tracker *core.PendingTransactionTracker
		events  chan core.Event

		tx      core.Transaction
		fakeErr error
	)

	BeforeEach(func() {
		fakeQuerier = new(fake.ChainQuerier)
		fakePublisher = new(fake.Publisher)
		fakeSource = new(fake.TransactionSource)
		fakeLock = new(fake.GlobalLock)
		blocks = &blockFeed{}
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		released.Store(0)
		resubmitEnabled = true
		hookResult = true

		fakeLock.AcquireReturns(func() { released.Add(1) }, nil)

		tx = core.Transaction{
			ID:              "tx-1",
			Hash:            "0xabc",
			ChainID:         "0x1",
			NetworkClientID: "mainnet",
			Type:            core.TransactionTypeSimpleSend,
			Status:          core.StatusSubmitted,
			TxParams: core.TxParams{
				From:  "0xAbC0000000000000000000000000000000000001",
				Nonce: nonce(7),
			},
		}

		tracker = core.NewPendingTransactionTracker(fakeLogger, core.Options{
			ChainID:         "0x1",
			NetworkClientID: "mainnet",
			Transactions:    fakeSource,
			GetChainQuerier: func(string) core.ChainQuerier { return fakeQuerier },
			Lock:            fakeLock,
			Publisher:       fakePublisher,
			BlockSource:     blocks,
			IsResubmitEnabled: func() bool {
				return resubmitEnabled
			},
			BeforeCheckPendingTransaction: func(context.Context, core.Transaction) bool {
				return hookResult
			},
		})

		events = make(chan core.Event, 64)
		tracker.Hub().Subscribe(events)
	})

	AfterEach(func() {
		tracker.Close()
	})

	Describe("check phase", func() {
		JustBeforeEach(func() {
			fakeSource.TransactionsReturns([]core.Transaction{tx})
		})

		When("the transaction has no hash", func() {
			BeforeEach(func() {
				tx.Hash = ""
			})

			When("the hook allows it", func() {
				It("should fail the transaction with the no tx hash error", func() {
					tracker.OnLatestBlock(ctx, 16)

					evs := drain(events)
					Expect(kinds(evs)).To(Equal([]core.EventKind{core.EventFailed}))
					Expect(evs[0].Err).To(MatchError(core.ErrNoTxHash))
					Expect(evs[0].Err.Error()).To(ContainSubstring("no tx hash"))
					Expect(evs[0].Err.Error()).To(ContainSubstring("please try again"))
					Expect(evs[0].Transaction.ID).To(Equal(tx.ID))
					Expect(fakeQuerier.TransactionReceiptCallCount()).To(Equal(0))
				})
			})

			When("the hook declines", func() {
				BeforeEach(func() {
					hookResult = false
				})

				It("should leave the transaction untouched", func() {
					tracker.OnLatestBlock(ctx, 16)

					Expect(drain(events)).To(BeEmpty())
					Expect(fakeQuerier.TransactionReceiptCallCount()).To(Equal(0))
					Expect(fakeQuerier.TransactionCountCallCount()).To(Equal(0))
				})
			})
		})

		When("another transaction with the same nonce is confirmed", func() {
			var other core.Transaction

			BeforeEach(func() {
				other = tx.Clone()
				other.ID = "tx-2"
				other.Hash = "0xdef"
				other.Status = core.StatusConfirmed
				other.VerifiedOnBlockchain = true
				other.TxParams.From = strings.ToLower(tx.TxParams.From)
			})

			JustBeforeEach(func() {
				fakeSource.TransactionsReturns([]core.Transaction{tx, other})
			})

			It("should drop the transaction without fetching its receipt", func() {
				tracker.OnLatestBlock(ctx, 16)

				evs := drain(events)
				Expect(kinds(evs)).To(Equal([]core.EventKind{core.EventDropped}))
				Expect(evs[0].Transaction.ID).To(Equal(tx.ID))
				Expect(fakeQuerier.TransactionReceiptCallCount()).To(Equal(0))
			})

			When("the other transaction is incoming", func() {
				BeforeEach(func() {
					other.Type = core.TransactionTypeIncoming
				})

				It("should not drop the transaction", func() {
					tracker.OnLatestBlock(ctx, 16)

					Expect(drain(events)).To(BeEmpty())
					Expect(fakeQuerier.TransactionReceiptCallCount()).To(Equal(1))
				})
			})

			When("the other transaction is on another chain", func() {
				BeforeEach(func() {
					other.ChainID = "0x5"
				})

				It("should not drop the transaction", func() {
					tracker.OnLatestBlock(ctx, 16)

					Expect(drain(events)).To(BeEmpty())
				})
			})
		})

		When("the receipt query fails", func() {
			BeforeEach(func() {
				fakeQuerier.TransactionReceiptReturns(nil, fakeErr)
			})

			It("should attach a warning and keep the transaction pending", func() {
				tracker.OnLatestBlock(ctx, 16)

				evs := drain(events)
				Expect(kinds(evs)).To(Equal([]core.EventKind{core.EventUpdated}))
				Expect(evs[0].Transaction.Status).To(Equal(core.StatusSubmitted))
				Expect(evs[0].Transaction.Warning).To(Equal(&core.Warning{
					Error:   fakeErr.Error(),
					Message: "There was a problem loading this transaction.",
				}))
				Expect(fakeQuerier.TransactionCountCallCount()).To(Equal(0))
			})
		})

		When("the receipt has a failure status", func() {
			BeforeEach(func() {
				fakeQuerier.TransactionReceiptReturns(&core.Receipt{
					Status:      core.ReceiptStatusFailure,
					BlockHash:   "0xblock",
					BlockNumber: 15,
				}, nil)
			})

			It("should fail the transaction as dropped or replaced", func() {
				tracker.OnLatestBlock(ctx, 16)

				evs := drain(events)
				Expect(kinds(evs)).To(Equal([]core.EventKind{core.EventFailed}))
				Expect(evs[0].Err).To(MatchError("Transaction dropped or replaced"))
			})

			It("should not resubmit the transaction in the same cycle", func() {
				tracker.StartIfPendingTransactions()
				tracker.OnLatestBlock(ctx, 16)

				Expect(kinds(drain(events))).To(Equal([]core.EventKind{core.EventFailed}))
				Expect(fakePublisher.PublishTransactionCallCount()).To(Equal(0))
			})
		})

		When("the receipt has a success status and block data", func() {
			BeforeEach(func() {
				fakeQuerier.TransactionReceiptReturns(&core.Receipt{
					Status:      core.ReceiptStatusSuccess,
					GasUsed:     "0x5208",
					BlockHash:   "0xblock",
					BlockNumber: 15,
				}, nil)
				fakeQuerier.BlockByHashReturns(&core.Block{
					Hash:          "0xblock",
					Number:        15,
					BaseFeePerGas: "0x7",
					Timestamp:     1700000000,
				}, nil)
			})

			It("should merge the block metadata and confirm the transaction", func() {
				tracker.OnLatestBlock(ctx, 16)

				evs := drain(events)
				Expect(kinds(evs)).To(Equal([]core.EventKind{core.EventUpdated, core.EventConfirmed}))

				Expect(fakeQuerier.BlockByHashCallCount()).To(Equal(1))
				_, blockHash := fakeQuerier.BlockByHashArgsForCall(0)
				Expect(blockHash).To(Equal("0xblock"))

				confirmed := evs[1].Transaction
				Expect(confirmed.Status).To(Equal(core.StatusConfirmed))
				Expect(confirmed.VerifiedOnBlockchain).To(BeTrue())
				Expect(confirmed.BaseFeePerGas).To(Equal("0x7"))
				Expect(confirmed.BlockTimestamp).To(Equal(uint64(1700000000)))
				Expect(confirmed.TxParams.GasUsed).To(Equal("0x5208"))
				Expect(confirmed.Receipt.BlockNumber).To(Equal(uint64(15)))
				Expect(evs[0].Note).To(Equal("pending tracker: transaction confirmed"))
			})

			When("the block query fails", func() {
				BeforeEach(func() {
					fakeQuerier.BlockByHashReturns(nil, fakeErr)
				})

				It("should attach a warning instead of confirming", func() {
					tracker.OnLatestBlock(ctx, 16)

					evs := drain(events)
					Expect(kinds(evs)).To(Equal([]core.EventKind{core.EventUpdated}))
					Expect(evs[0].Transaction.Warning).NotTo(BeNil())
					Expect(evs[0].Transaction.Status).To(Equal(core.StatusSubmitted))
				})
			})
		})

		When("the receipt has a success status but no block data", func() {
			BeforeEach(func() {
				fakeQuerier.TransactionReceiptReturns(&core.Receipt{Status: core.ReceiptStatusSuccess}, nil)
				fakeQuerier.TransactionCountReturns(7, nil)
			})

			It("should fall through to drop detection", func() {
				tracker.OnLatestBlock(ctx, 16)

				Expect(drain(events)).To(BeEmpty())
				Expect(fakeQuerier.BlockByHashCallCount()).To(Equal(0))
				Expect(fakeQuerier.TransactionCountCallCount()).To(Equal(1))
				_, from := fakeQuerier.TransactionCountArgsForCall(0)
				Expect(from).To(Equal(tx.TxParams.From))
			})
		})

		When("the transaction count query fails", func() {
			BeforeEach(func() {
				fakeQuerier.TransactionCountReturns(0, fakeErr)
			})

			It("should attach a warning", func() {
				tracker.OnLatestBlock(ctx, 16)

				evs := drain(events)
				Expect(kinds(evs)).To(Equal([]core.EventKind{core.EventUpdated}))
				Expect(evs[0].Transaction.Warning.Error).To(ContainSubstring(fakeErr.Error()))
			})
		})

		When("the transaction is already verified", func() {
			BeforeEach(func() {
				tx.VerifiedOnBlockchain = true
			})

			It("should not check it again", func() {
				tracker.OnLatestBlock(ctx, 16)

				Expect(drain(events)).To(BeEmpty())
				Expect(fakeQuerier.TransactionReceiptCallCount()).To(Equal(0))
			})
		})

		When("the transaction belongs to another network client", func() {
			BeforeEach(func() {
				tx.NetworkClientID = "mainnet-backup"
			})

			It("should ignore it", func() {
				tracker.OnLatestBlock(ctx, 16)

				Expect(fakeQuerier.TransactionReceiptCallCount()).To(Equal(0))
			})
		})

		When("the global lock cannot be acquired", func() {
			BeforeEach(func() {
				fakeLock.AcquireReturns(nil, fakeErr)
			})

			It("should skip the cycle", func() {
				tracker.OnLatestBlock(ctx, 16)

				Expect(fakeQuerier.TransactionReceiptCallCount()).To(Equal(0))
				Expect(drain(events)).To(BeEmpty())
			})
		})

		It("should release the global lock exactly once per cycle", func() {
			tracker.OnLatestBlock(ctx, 16)
			tracker.OnLatestBlock(ctx, 17)

			Expect(fakeLock.AcquireCallCount()).To(Equal(2))
			Expect(released.Load()).To(Equal(int32(2)))
		})
	})

	Describe("drop detection", func() {
		var networkNonce atomic.Uint64

		BeforeEach(func() {
			fakeQuerier.TransactionReceiptReturns(nil, nil)
			fakeQuerier.TransactionCountStub = func(context.Context, string) (uint64, error) {
				return networkNonce.Load(), nil
			}
			networkNonce.Store(8)
		})

		JustBeforeEach(func() {
			fakeSource.TransactionsReturns([]core.Transaction{tx})
		})

		It("should drop the transaction on the third consecutive detection", func() {
			tracker.OnLatestBlock(ctx, 16)
			Expect(drain(events)).To(BeEmpty())

			tracker.OnLatestBlock(ctx, 17)
			Expect(drain(events)).To(BeEmpty())

			tracker.OnLatestBlock(ctx, 18)
			evs := drain(events)
			Expect(kinds(evs)).To(Equal([]core.EventKind{core.EventDropped}))
			Expect(evs[0].Transaction.ID).To(Equal(tx.ID))
		})

		It("should keep the counter across a cycle where the nonce is not superseded", func() {
			tracker.OnLatestBlock(ctx, 16)
			tracker.OnLatestBlock(ctx, 17)

			networkNonce.Store(7)
			tracker.OnLatestBlock(ctx, 18)
			Expect(drain(events)).To(BeEmpty())

			networkNonce.Store(8)
			tracker.OnLatestBlock(ctx, 19)
			Expect(kinds(drain(events))).To(Equal([]core.EventKind{core.EventDropped}))
		})

		It("should not drop while the network nonce has not advanced", func() {
			networkNonce.Store(7)
			for block := uint64(16); block < 26; block++ {
				tracker.OnLatestBlock(ctx, block)
			}

			Expect(drain(events)).To(BeEmpty())
		})

		When("the transaction has no nonce", func() {
			BeforeEach(func() {
				tx.TxParams.Nonce = nil
			})

			It("should not query the network nonce", func() {
				tracker.OnLatestBlock(ctx, 16)

				Expect(fakeQuerier.TransactionCountCallCount()).To(Equal(0))
			})
		})
	})

	Describe("AddTransactionToPoll", func() {
		BeforeEach(func() {
			tx.NetworkClientID = "mainnet"
			fakeSource.TransactionsReturns(nil)
			fakeQuerier.TransactionReceiptReturns(&core.Receipt{
				Status:      core.ReceiptStatusSuccess,
				BlockHash:   "0xblock",
				BlockNumber: 15,
			}, nil)
		})

		It("should confirm the transaction without fetching the block", func() {
			tracker.AddTransactionToPoll(tx)
			Expect(tracker.IsRunning()).To(BeTrue())

			tracker.OnLatestBlock(ctx, 16)

			evs := drain(events)
			Expect(kinds(evs)).To(Equal([]core.EventKind{core.EventConfirmed}))
			Expect(evs[0].Transaction).To(Equal(tx))
			Expect(fakeQuerier.BlockByHashCallCount()).To(Equal(0))
		})

		It("should clear the force poll marker after confirmation", func() {
			tracker.AddTransactionToPoll(tx)
			tracker.OnLatestBlock(ctx, 16)
			tracker.OnLatestBlock(ctx, 17)

			Expect(fakeQuerier.TransactionReceiptCallCount()).To(Equal(1))
		})

		It("should keep polling until the transaction resolves", func() {
			fakeQuerier.TransactionReceiptReturns(nil, nil)
			fakeQuerier.TransactionCountReturns(7, nil)

			tracker.AddTransactionToPoll(tx)
			tracker.OnLatestBlock(ctx, 16)
			tracker.OnLatestBlock(ctx, 17)

			Expect(fakeQuerier.TransactionReceiptCallCount()).To(Equal(2))
		})

		When("the transaction is already pending", func() {
			BeforeEach(func() {
				fakeSource.TransactionsReturns([]core.Transaction{tx})
			})

			It("should check it once and confirm it without fetching the block", func() {
				tracker.AddTransactionToPoll(tx)
				tracker.OnLatestBlock(ctx, 16)

				Expect(fakeQuerier.TransactionReceiptCallCount()).To(Equal(1))
				Expect(fakeQuerier.BlockByHashCallCount()).To(Equal(0))
				Expect(kinds(drain(events))).To(Equal([]core.EventKind{core.EventConfirmed}))
			})

			It("should count one drop detection per cycle", func() {
				resubmitEnabled = false
				fakeQuerier.TransactionReceiptReturns(nil, nil)
				fakeQuerier.TransactionCountReturns(9, nil)

				tracker.AddTransactionToPoll(tx)

				tracker.OnLatestBlock(ctx, 16)
				tracker.OnLatestBlock(ctx, 17)
				Expect(drain(events)).To(BeEmpty())
				Expect(fakeQuerier.TransactionCountCallCount()).To(Equal(2))

				tracker.OnLatestBlock(ctx, 18)
				Expect(kinds(drain(events))).To(Equal([]core.EventKind{core.EventDropped}))
			})
		})
	})

	Describe("ForceCheckTransaction", func() {
		BeforeEach(func() {
			fakeSource.TransactionsReturns(nil)
			fakeQuerier.TransactionReceiptReturns(&core.Receipt{Status: core.ReceiptStatusFailure}, nil)
		})

		It("should check the transaction under the global lock", func() {
			err := tracker.ForceCheckTransaction(ctx, tx)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeLock.AcquireCallCount()).To(Equal(1))
			Expect(released.Load()).To(Equal(int32(1)))
			Expect(kinds(drain(events))).To(Equal([]core.EventKind{core.EventFailed}))
		})

		When("the global lock cannot be acquired", func() {
			BeforeEach(func() {
				fakeLock.AcquireReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				err := tracker.ForceCheckTransaction(ctx, tx)
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeQuerier.TransactionReceiptCallCount()).To(Equal(0))
			})
		})
	})

	Describe("StartIfPendingTransactions", func() {
		It("should start polling when there are pending transactions", func() {
			fakeSource.TransactionsReturns([]core.Transaction{tx})
			tracker.StartIfPendingTransactions()

			Expect(tracker.IsRunning()).To(BeTrue())
		})

		It("should stop polling once nothing is pending", func() {
			fakeSource.TransactionsReturns([]core.Transaction{tx})
			tracker.StartIfPendingTransactions()

			fakeSource.TransactionsReturns(nil)
			tracker.StartIfPendingTransactions()

			Expect(tracker.IsRunning()).To(BeFalse())
		})

		It("should run a cycle for every new block", func() {
			fakeQuerier.TransactionReceiptReturns(nil, nil)
			fakeQuerier.TransactionCountReturns(7, nil)
			fakeSource.TransactionsReturns([]core.Transaction{tx})
			tracker.StartIfPendingTransactions()

			Eventually(func() int { return blocks.Send(16) }).Should(Equal(1))
			Eventually(fakeQuerier.TransactionReceiptCallCount).Should(Equal(1))
		})
	})

	Describe("resubmission", func() {
		BeforeEach(func() {
			fakeQuerier.TransactionReceiptReturns(nil, nil)
			fakeQuerier.TransactionCountReturns(7, nil)
			fakePublisher.PublishTransactionReturns("0xnew", nil)
		})

		JustBeforeEach(func() {
			fakeSource.TransactionsReturns([]core.Transaction{tx})
			tracker.StartIfPendingTransactions()
		})

		When("the first retry block is not set", func() {
			It("should set it to the latest block and wait one block", func() {
				tracker.OnLatestBlock(ctx, 0x10)

				evs := drain(events)
				Expect(kinds(evs)).To(Equal([]core.EventKind{core.EventUpdated}))
				Expect(evs[0].Note).To(Equal("pending tracker: first retry block number set"))
				Expect(*evs[0].Transaction.FirstRetryBlockNumber).To(Equal(uint64(0x10)))
				Expect(fakePublisher.PublishTransactionCallCount()).To(Equal(0))

				tx.FirstRetryBlockNumber = evs[0].Transaction.FirstRetryBlockNumber
				fakeSource.TransactionsReturns([]core.Transaction{tx})

				tracker.OnLatestBlock(ctx, 0x11)

				Expect(fakePublisher.PublishTransactionCallCount()).To(Equal(1))
				_, querier, published := fakePublisher.PublishTransactionArgsForCall(0)
				Expect(querier).To(Equal(fakeQuerier))
				Expect(published.ID).To(Equal(tx.ID))

				evs = drain(events)
				Expect(kinds(evs)).To(Equal([]core.EventKind{core.EventUpdated}))
				Expect(evs[0].Note).To(Equal("pending tracker: retry count increased"))
				Expect(evs[0].Transaction.RetryCount).To(Equal(1))
				Expect(*evs[0].Transaction.FirstRetryBlockNumber).To(Equal(uint64(0x10)))
			})
		})

		When("the backoff window has not elapsed", func() {
			BeforeEach(func() {
				tx.RetryCount = 2
				tx.FirstRetryBlockNumber = nonce(100)
			})

			It("should wait 2^retryCount blocks", func() {
				tracker.OnLatestBlock(ctx, 103)
				Expect(fakePublisher.PublishTransactionCallCount()).To(Equal(0))

				tracker.OnLatestBlock(ctx, 104)
				Expect(fakePublisher.PublishTransactionCallCount()).To(Equal(1))
			})
		})

		When("the latest block is behind the first retry block", func() {
			BeforeEach(func() {
				tx.FirstRetryBlockNumber = nonce(100)
			})

			It("should treat the gap as zero", func() {
				tracker.OnLatestBlock(ctx, 90)

				Expect(fakePublisher.PublishTransactionCallCount()).To(Equal(0))
			})
		})

		When("the hook declines", func() {
			BeforeEach(func() {
				tx.FirstRetryBlockNumber = nonce(1)
				hookResult = false
			})

			It("should skip the transaction", func() {
				tracker.OnLatestBlock(ctx, 100)

				Expect(fakePublisher.PublishTransactionCallCount()).To(Equal(0))
				Expect(drain(events)).To(BeEmpty())
			})
		})

		When("resubmission is disabled", func() {
			BeforeEach(func() {
				resubmitEnabled = false
			})

			It("should neither publish nor start the backoff window", func() {
				tracker.OnLatestBlock(ctx, 100)

				Expect(fakePublisher.PublishTransactionCallCount()).To(Equal(0))
				Expect(drain(events)).To(BeEmpty())
			})
		})

		When("the tracker is not running", func() {
			BeforeEach(func() {
				tx.FirstRetryBlockNumber = nonce(1)
			})

			It("should not resubmit", func() {
				tracker.Stop()
				tracker.OnLatestBlock(ctx, 100)

				Expect(fakePublisher.PublishTransactionCallCount()).To(Equal(0))
			})
		})

		When("publishing fails", func() {
			BeforeEach(func() {
				tx.FirstRetryBlockNumber = nonce(1)
			})

			DescribeTable("with a known error",
				func(msg string) {
					fakePublisher.PublishTransactionReturns("", errors.New(msg))

					tracker.OnLatestBlock(ctx, 100)

					Expect(fakePublisher.PublishTransactionCallCount()).To(Equal(1))
					Expect(drain(events)).To(BeEmpty())
				},
				Entry("underpriced replacement", "Replacement transaction underpriced"),
				Entry("known transaction", "known transaction: 0xabc"),
				Entry("gas price too low", "GAS PRICE TOO LOW TO REPLACE"),
				Entry("already imported", "Transaction with the same hash was already imported."),
				Entry("gateway timeout", "504 Gateway Timeout"),
				Entry("nonce too low", "nonce too low: next nonce 9, tx nonce 7"),
			)

			It("should attach exactly one warning for an unknown error", func() {
				fakePublisher.PublishTransactionReturns("", fakeErr)

				tracker.OnLatestBlock(ctx, 100)

				evs := drain(events)
				Expect(kinds(evs)).To(Equal([]core.EventKind{core.EventUpdated}))
				Expect(evs[0].Transaction.Warning).To(Equal(&core.Warning{
					Error:   fakeErr.Error(),
					Message: "There was an error when resubmitting this transaction.",
				}))
				Expect(evs[0].Transaction.RetryCount).To(Equal(0))
			})
		})
	})
})

var _ = Describe("RequiredRetryBlockGap", func() {
	DescribeTable("gap before the next attempt",
		func(retryCount int, expected uint64) {
			Expect(core.RequiredRetryBlockGap(retryCount)).To(Equal(expected))
		},
		Entry("first attempt", 0, uint64(1)),
		Entry("second attempt", 1, uint64(2)),
		Entry("third attempt", 2, uint64(4)),
		Entry("after five retries", 5, uint64(32)),
		Entry("capped", 6, uint64(50)),
		Entry("far past the cap", 100, uint64(50)),
	)

	It("should never decrease", func() {
		previous := core.RequiredRetryBlockGap(0)
		for k := 1; k < 64; k++ {
			gap := core.RequiredRetryBlockGap(k)
			Expect(gap).To(BeNumerically(">=", previous))
			Expect(gap).To(BeNumerically("<=", core.MaxRetryBlockDistance))
			previous = gap
		}
	})
})
