package server_test

import (
	"net/http"
	"time"

	"txwatch/internal/http/server"

	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HTTPServer", func() {
	It("should report ErrServerClosed after a graceful shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "0")
		errChan := srv.Run()

		// give ListenAndServe a moment to bind
		time.Sleep(50 * time.Millisecond)
		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan, time.Second).Should(Receive(Equal(http.ErrServerClosed)))
	})

	It("should report listen errors", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "not-a-port")
		Eventually(srv.Run(), time.Second).Should(Receive(HaveOccurred()))
	})
})
