package core_test

import (
	"context"

	"txwatch/internal/core"
	"txwatch/internal/core/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TrackerRegistry", func() {
	var (
		fakeSource  *fake.TransactionSource
		fakeQuerier *fake.ChainQuerier
		fakeLock    *fake.GlobalLock
		registry    *core.TrackerRegistry
		mainnet     *core.PendingTransactionTracker
		sepolia     *core.PendingTransactionTracker
		ctx         context.Context
	)

	newTracker := func(chainID, networkClientID string) *core.PendingTransactionTracker {
		return core.NewPendingTransactionTracker(zap.NewNop().Sugar(), core.Options{
			ChainID:         chainID,
			NetworkClientID: networkClientID,
			Transactions:    fakeSource,
			GetChainQuerier: func(string) core.ChainQuerier { return fakeQuerier },
			Lock:            fakeLock,
			Publisher:       new(fake.Publisher),
			BlockSource:     &blockFeed{},
		})
	}

	BeforeEach(func() {
		ctx = context.Background()
		fakeSource = new(fake.TransactionSource)
		fakeQuerier = new(fake.ChainQuerier)
		fakeLock = new(fake.GlobalLock)
		fakeLock.AcquireReturns(func() {}, nil)

		mainnet = newTracker("0x1", "mainnet")
		sepolia = newTracker("0xaa36a7", "sepolia")
		registry = core.NewTrackerRegistry(zap.NewNop().Sugar(), mainnet, sepolia)
	})

	AfterEach(func() {
		registry.Close()
	})

	It("should start only the trackers with pending transactions", func() {
		fakeSource.TransactionsReturns([]core.Transaction{{
			ID:              "tx-1",
			Hash:            "0xabc",
			ChainID:         "0xaa36a7",
			NetworkClientID: "sepolia",
			Status:          core.StatusSubmitted,
		}})

		registry.StartAll()

		Expect(sepolia.IsRunning()).To(BeTrue())
		Expect(mainnet.IsRunning()).To(BeFalse())
	})

	It("should route a forced check to the owning tracker", func() {
		fakeQuerier.TransactionReceiptReturns(&core.Receipt{Status: core.ReceiptStatusFailure}, nil)
		events := make(chan core.Event, 4)
		sepolia.Hub().Subscribe(events)

		err := registry.ForceCheckTransaction(ctx, core.Transaction{
			ID:              "tx-1",
			Hash:            "0xabc",
			ChainID:         "0xaa36a7",
			NetworkClientID: "sepolia",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(events).To(Receive(HaveField("Kind", core.EventFailed)))
	})

	It("should reject unknown network clients", func() {
		err := registry.StartIfPendingTransactions("goerli")
		Expect(err).To(MatchError(core.ErrUnknownNetworkClient))

		err = registry.AddTransactionToPoll(core.Transaction{NetworkClientID: "goerli"})
		Expect(err).To(MatchError(core.ErrUnknownNetworkClient))

		err = registry.ForceCheckTransaction(ctx, core.Transaction{NetworkClientID: "goerli"})
		Expect(err).To(MatchError(core.ErrUnknownNetworkClient))
	})

	It("should start polling for a forced transaction", func() {
		err := registry.AddTransactionToPoll(core.Transaction{ID: "tx-1", NetworkClientID: "mainnet"})

		Expect(err).NotTo(HaveOccurred())
		Expect(mainnet.IsRunning()).To(BeTrue())
	})
})
