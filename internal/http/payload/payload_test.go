package payload_test

import (
	"net/http/httptest"
	"rewarder/internal/http/payload"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var (
		decoder payload.Decoder
		claim   payload.ClaimRequest
		body    string
		err     error
	)

	BeforeEach(func() {
		decoder = payload.Decoder{}
		claim = payload.ClaimRequest{}
	})

	JustBeforeEach(func() {
		req := httptest.NewRequest("POST", "/rewards/claim", strings.NewReader(body))
		err = decoder.DecodeJSONPayload(req, &claim)
	})

	When("the body is a valid claim", func() {
		BeforeEach(func() {
			body = `{"id":42}`
		})

		It("should decode the id", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(claim.ID).To(Equal(int64(42)))
		})
	})

	DescribeTable("invalid bodies",
		func(raw string) {
			req := httptest.NewRequest("POST", "/rewards/claim", strings.NewReader(raw))
			Expect(decoder.DecodeJSONPayload(req, &payload.ClaimRequest{})).To(HaveOccurred())
		},
		Entry("missing id", `{}`),
		Entry("zero id", `{"id":0}`),
		Entry("negative id", `{"id":-3}`),
		Entry("string id", `{"id":"42"}`),
		Entry("unknown field", `{"id":42,"amount":10}`),
		Entry("not json", `id=42`),
	)

	When("the target has no validation rules", func() {
		BeforeEach(func() {
			body = `{"anything":"goes"}`
		})

		It("should only decode", func() {
			target := map[string]string{}
			req := httptest.NewRequest("POST", "/", strings.NewReader(body))
			Expect(decoder.DecodeJSONPayload(req, &target)).To(Succeed())
			Expect(target).To(HaveKeyWithValue("anything", "goes"))
		})
	})
})
