package repository_test

import (
	"context"
	"errors"

	"txwatch/internal/core"
	"txwatch/internal/db"
	"txwatch/internal/repository"
	"txwatch/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TransactionRepository", func() {
	var (
		repo        *repository.TransactionRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
		nonce       uint64
		tx          core.Transaction
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewTransactionRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		nonce = 7
		tx = core.Transaction{
			ID:              "tx-1",
			Hash:            "0xabc",
			ChainID:         "0x1",
			NetworkClientID: "mainnet",
			Status:          core.StatusSubmitted,
			TxParams: core.TxParams{
				From:  "0x00000000000000000000000000000000000000aa",
				Nonce: &nonce,
			},
			Warning: &core.Warning{Error: "boom", Message: "There was a problem loading this transaction."},
		}
	})

	Describe("Migrate", func() {
		It("should migrate transactions and operators", func() {
			Expect(repo.Migrate()).To(Succeed())

			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(2))
			Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Transaction{}))
			Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Operator{}))
		})

		It("should wrap migration errors", func() {
			fakeStorage.MigrateTableReturns(errors.New("migration error"))

			Expect(repo.Migrate()).To(MatchError("migrate table(s): migration error"))
		})
	})

	Describe("SaveTransaction", func() {
		It("should upsert the flattened record", func() {
			Expect(repo.SaveTransaction(ctx, tx)).To(Succeed())

			Expect(fakeStorage.UpsertCallCount()).To(Equal(1))
			_, records := fakeStorage.UpsertArgsForCall(0)
			Expect(records).To(BeAssignableToTypeOf(&[]repository.Transaction{}))

			saved := *records.(*[]repository.Transaction)
			Expect(saved).To(HaveLen(1))
			Expect(saved[0].ID).To(Equal("tx-1"))
			Expect(saved[0].From).To(Equal(tx.TxParams.From))
			Expect(*saved[0].Nonce).To(Equal(uint64(7)))
			Expect(saved[0].Status).To(Equal("submitted"))
			Expect(saved[0].Warning).To(Equal(tx.Warning))
		})

		It("should wrap storage errors", func() {
			fakeStorage.UpsertReturns(fakeErr)

			Expect(repo.SaveTransaction(ctx, tx)).To(MatchError("save transaction: fake error"))
		})
	})

	Describe("GetAllTransactions", func() {
		BeforeEach(func() {
			fakeStorage.GetAllStub = func(_ context.Context, _ string, entity any) error {
				records := entity.(*[]repository.Transaction)
				*records = []repository.Transaction{
					{ID: "tx-1", Hash: "0xabc", ChainID: "0x1", NetworkClientID: "mainnet", Status: "submitted", From: "0xaa", Nonce: &nonce},
					{ID: "tx-2", ChainID: "0x1", NetworkClientID: "mainnet", Status: "confirmed"},
				}
				return nil
			}
		})

		It("should return core transactions in creation order", func() {
			txs, err := repo.GetAllTransactions(ctx)
			Expect(err).NotTo(HaveOccurred())

			_, order, _ := fakeStorage.GetAllArgsForCall(0)
			Expect(order).To(Equal("created_at, id"))

			Expect(txs).To(HaveLen(2))
			Expect(txs[0].ID).To(Equal("tx-1"))
			Expect(txs[0].Status).To(Equal(core.StatusSubmitted))
			Expect(txs[0].TxParams.From).To(Equal("0xaa"))
			Expect(*txs[0].TxParams.Nonce).To(Equal(uint64(7)))
			Expect(txs[1].Status).To(Equal(core.StatusConfirmed))
		})

		It("should wrap storage errors", func() {
			fakeStorage.GetAllStub = nil
			fakeStorage.GetAllReturns(fakeErr)

			_, err := repo.GetAllTransactions(ctx)
			Expect(err).To(MatchError("get all transactions: fake error"))
		})
	})

	Describe("DeleteTransaction", func() {
		It("should delete by id", func() {
			Expect(repo.DeleteTransaction(ctx, "tx-1")).To(Succeed())

			_, column, value, model := fakeStorage.DeleteByArgsForCall(0)
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal("tx-1"))
			Expect(model).To(BeAssignableToTypeOf(&repository.Transaction{}))
		})

		It("should wrap storage errors", func() {
			fakeStorage.DeleteByReturns(fakeErr)

			Expect(repo.DeleteTransaction(ctx, "tx-1")).To(MatchError("delete transaction: fake error"))
		})
	})

	Describe("GetOperator", func() {
		It("should return the stored operator", func() {
			fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
				*entity.(*repository.Operator) = repository.Operator{ID: "op-1", Username: "ops", PasswordHash: "hash"}
				return nil
			}

			operator, err := repo.GetOperator(ctx, "ops")
			Expect(err).NotTo(HaveOccurred())
			Expect(operator.ID).To(Equal("op-1"))

			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("username"))
			Expect(value).To(Equal("ops"))
		})

		It("should translate missing rows", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)

			_, err := repo.GetOperator(ctx, "ops")
			Expect(err).To(MatchError(repository.ErrOperatorNotFound))
		})

		It("should wrap other errors", func() {
			fakeStorage.GetOneByReturns(fakeErr)

			_, err := repo.GetOperator(ctx, "ops")
			Expect(err).To(MatchError("get operator by username: fake error"))
		})
	})

	Describe("SaveOperator", func() {
		It("should create a new operator", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)

			operator, err := repo.SaveOperator(ctx, "ops", "hash")
			Expect(err).NotTo(HaveOccurred())
			Expect(operator.ID).NotTo(BeEmpty())
			Expect(operator.PasswordHash).To(Equal("hash"))

			_, records := fakeStorage.UpsertArgsForCall(0)
			Expect(*records.(*[]repository.Operator)).To(ConsistOf(operator))
		})

		It("should keep the id of an existing operator", func() {
			fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
				*entity.(*repository.Operator) = repository.Operator{ID: "op-1", Username: "ops", PasswordHash: "old"}
				return nil
			}

			operator, err := repo.SaveOperator(ctx, "ops", "new")
			Expect(err).NotTo(HaveOccurred())
			Expect(operator.ID).To(Equal("op-1"))
			Expect(operator.PasswordHash).To(Equal("new"))
		})

		It("should stop on lookup errors", func() {
			fakeStorage.GetOneByReturns(fakeErr)

			_, err := repo.SaveOperator(ctx, "ops", "hash")
			Expect(err).To(HaveOccurred())
			Expect(fakeStorage.UpsertCallCount()).To(BeZero())
		})

		It("should wrap upsert errors", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
			fakeStorage.UpsertReturns(fakeErr)

			_, err := repo.SaveOperator(ctx, "ops", "hash")
			Expect(err).To(MatchError("save operator: fake error"))
		})
	})
})
