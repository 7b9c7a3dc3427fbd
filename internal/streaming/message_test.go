package streaming_test

import (
	"time"

	"txwatch/internal/core"
	"txwatch/internal/streaming"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Message", func() {
	var (
		ev  core.Event
		now time.Time
	)

	BeforeEach(func() {
		now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		ev = core.Event{
			Kind: core.EventFailed,
			Err:  core.ErrDroppedOrReplaced,
			Transaction: core.Transaction{
				ID:              "tx-1",
				Hash:            "0xabc",
				ChainID:         "0x1",
				NetworkClientID: "mainnet",
				Status:          core.StatusSubmitted,
			},
		}
	})

	It("should build the envelope from a tracker event", func() {
		msg := streaming.FromEvent(ev, now)

		Expect(msg.Type).To(Equal(streaming.MessageTypeFailed))
		Expect(msg.ChainID).To(Equal("0x1"))
		Expect(msg.NetworkClientID).To(Equal("mainnet"))
		Expect(msg.TransactionID).To(Equal("tx-1"))
		Expect(msg.Error).To(Equal("Transaction dropped or replaced"))
		Expect(msg.EmittedAt).To(Equal(now))
	})

	It("should decode what it encodes", func() {
		payload, err := streaming.Encode(streaming.FromEvent(ev, now))
		Expect(err).NotTo(HaveOccurred())

		msg, err := streaming.Decode(payload)
		Expect(err).NotTo(HaveOccurred())
		Expect(msg.TransactionID).To(Equal("tx-1"))
		Expect(msg.Transaction.Hash).To(Equal("0xabc"))
	})

	DescribeTable("rejecting incomplete messages",
		func(mutate func(*streaming.Message), expected string) {
			msg := streaming.FromEvent(ev, now)
			mutate(&msg)

			_, err := streaming.Encode(msg)
			Expect(err).To(MatchError(expected))
		},
		Entry("no type", func(m *streaming.Message) { m.Type = "" }, "message type is required"),
		Entry("no chain", func(m *streaming.Message) { m.ChainID = "" }, "chain_id is required"),
		Entry("no transaction", func(m *streaming.Message) { m.TransactionID = "" }, "transaction_id is required"),
	)

	It("should reject payloads without a type", func() {
		_, err := streaming.Decode([]byte(`{"chain_id":"0x1","transaction_id":"tx-1"}`))
		Expect(err).To(MatchError("message type is missing"))
	})
})
