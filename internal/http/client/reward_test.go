package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"rewarder/internal/core"
	"rewarder/internal/http/client"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RewardClient", func() {
	var (
		srv        *httptest.Server
		status     int
		body       string
		seenToken  string
		seenPath   string
		rewards    []core.RewardRecord
		err        error
		baseSuffix string
	)

	BeforeEach(func() {
		status = http.StatusOK
		body = `{"rewards":[{"id":1,"status":"pending","amount":5},{"id":2,"status":"claimed","amount":7}]}`
		baseSuffix = ""
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenToken = r.Header.Get("AUTH_TOKEN")
			seenPath = r.URL.Path
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
	})

	AfterEach(func() {
		srv.Close()
	})

	JustBeforeEach(func() {
		c := client.NewRewardClient(srv.URL+baseSuffix, "token", nil)
		rewards, err = c.ListRewards(context.Background())
	})

	When("the API answers", func() {
		It("should decode the rewards and send the token", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(rewards).To(HaveLen(2))
			Expect(rewards[0].Status).To(Equal(core.StatusPending))
			Expect(rewards[1].ID).To(Equal(int64(2)))
			Expect(seenToken).To(Equal("token"))
			Expect(seenPath).To(Equal("/rewards"))
		})
	})

	When("the base url has a trailing slash", func() {
		BeforeEach(func() {
			baseSuffix = "/"
		})

		It("should not double the slash", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(seenPath).To(Equal("/rewards"))
		})
	})

	When("the API rejects the token", func() {
		BeforeEach(func() {
			status = http.StatusUnauthorized
			body = `{"message":"Authentication failed"}`
		})

		It("should return an unexpected status error", func() {
			Expect(err).To(MatchError(client.ErrUnexpectedStatus))
			Expect(rewards).To(BeNil())
		})
	})

	When("the body is not json", func() {
		BeforeEach(func() {
			body = `<html>`
		})

		It("should return a decode error", func() {
			Expect(err).To(HaveOccurred())
		})
	})
})
