package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"rewarder/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		seenId string
		inner  http.Handler
		w      *httptest.ResponseRecorder
		req    *http.Request
	)

	BeforeEach(func() {
		seenId = ""
		inner = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenId, _ = r.Context().Value(middleware.RequestIDKey).(string)
			w.WriteHeader(http.StatusTeapot)
		})
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/rewards", nil)
	})

	Describe("RequestID", func() {
		It("should generate an id when none is sent", func() {
			middleware.NewRequestIDMiddleware().RequestID(inner).ServeHTTP(w, req)

			Expect(seenId).NotTo(BeEmpty())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seenId))
		})

		It("should keep the caller's id", func() {
			req.Header.Set(middleware.RequestIDHeader, "abc-123")
			middleware.NewRequestIDMiddleware().RequestID(inner).ServeHTTP(w, req)

			Expect(seenId).To(Equal("abc-123"))
		})
	})

	Describe("Logging", func() {
		It("should log the request with its status and id", func() {
			core, logs := observer.New(zapcore.InfoLevel)
			logger := zap.New(core).Sugar()

			hdlr := middleware.NewLoggingMiddleware(logger).Logging(inner)
			hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
			hdlr.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(logs.Len()).To(Equal(1))
			fields := logs.All()[0].ContextMap()
			Expect(fields).To(HaveKeyWithValue("status", int64(http.StatusTeapot)))
			Expect(fields).To(HaveKeyWithValue("path", "/rewards"))
			Expect(fields).To(HaveKeyWithValue("request_id", seenId))
		})
	})
})
