package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"rewarder/internal/core"
	"rewarder/internal/http/handler"
	"rewarder/internal/http/handler/fake"
	"rewarder/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RewardHandler", func() {
	var (
		rh            *handler.RewardHandler
		fakeService   *fake.RewardService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
		signature     string
		record        core.RewardRecord
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.RewardService)
		fakeService.IdentifyReturns("7", nil)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return payload.Decoder{}.DecodeJSONPayload(rec, jsonPayload)
		}

		signature = "sig"
		record = core.RewardRecord{
			ID:            42,
			UserID:        "7",
			Amount:        1_000_000,
			Status:        "claimed",
			TxSignature:   &signature,
			DisplayAmount: 1.0,
		}

		w = httptest.NewRecorder()
		rh = handler.NewRewardHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleHealthCheck", func() {
		It("should answer without authentication", func() {
			req = httptest.NewRequest("GET", "/healthcheck", nil)
			rh.HandleHealthCheck(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(w.Body.String())).To(Equal(`"OK"`))
			Expect(fakeService.IdentifyCallCount()).To(Equal(0))
		})
	})

	Describe("HandlePrivateData", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/private", nil)
		})

		JustBeforeEach(func() {
			rh.HandlePrivateData(w, req)
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				req.Header.Set(handler.AuthHeader, "token")
			})

			It("should return the user id", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp handler.PrivateResponse
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp.Message).To(Equal("This is private"))
				Expect(resp.User.ID).To(Equal("7"))
				Expect(fakeService.IdentifyArgsForCall(0)).To(Equal("token"))
			})
		})

		When("the header is missing", func() {
			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.IdentifyCallCount()).To(Equal(0))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				req.Header.Set(handler.AuthHeader, "token")
				fakeService.IdentifyReturns("", core.ErrUnauthorized)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring(handler.CodeUnauthorized))
			})
		})
	})

	Describe("HandleListRewards", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/rewards", nil)
			req.Header.Set(handler.AuthHeader, "token")
		})

		JustBeforeEach(func() {
			rh.HandleListRewards(w, req)
		})

		When("rewards are listed", func() {
			BeforeEach(func() {
				fakeService.ListRewardsReturns([]core.RewardRecord{record}, nil)
			})

			It("should return them under rewards", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp map[string][]core.RewardRecord
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp["rewards"]).To(HaveLen(1))
				Expect(resp["rewards"][0].ID).To(Equal(int64(42)))

				_, userID := fakeService.ListRewardsArgsForCall(0)
				Expect(userID).To(Equal("7"))
			})
		})

		When("the user has none", func() {
			BeforeEach(func() {
				fakeService.ListRewardsReturns([]core.RewardRecord{}, nil)
			})

			It("should return an empty array", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"rewards":[]`))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeService.ListRewardsReturns(nil, fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})

		When("unauthenticated", func() {
			BeforeEach(func() {
				req.Header.Del(handler.AuthHeader)
			})

			It("should not list", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.ListRewardsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleClaimReward", func() {
		var body string

		BeforeEach(func() {
			body = `{"id":42}`
			fakeService.ClaimRewardReturns(record, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/rewards/claim", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(handler.AuthHeader, "token")
			rh.HandleClaimReward(w, req)
		})

		When("the claim succeeds", func() {
			It("should return the claimed record", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp core.RewardRecord
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp.Status).To(Equal("claimed"))
				Expect(resp.DisplayAmount).To(Equal(1.0))

				Expect(fakeService.ClaimRewardCallCount()).To(Equal(1))
				_, userID, rewardID := fakeService.ClaimRewardArgsForCall(0)
				Expect(userID).To(Equal("7"))
				Expect(rewardID).To(Equal(int64(42)))
			})
		})

		When("the body is invalid", func() {
			BeforeEach(func() {
				body = `{"id":0}`
			})

			It("should return 400 without claiming", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(handler.CodeBadRequest))
				Expect(fakeService.ClaimRewardCallCount()).To(Equal(0))
			})
		})

		DescribeTable("claim errors",
			func(claimErr error, status int, code string) {
				fakeService.ClaimRewardReturns(core.RewardRecord{}, claimErr)
				w = httptest.NewRecorder()
				req = httptest.NewRequest("POST", "/rewards/claim", strings.NewReader(`{"id":42}`))
				req.Header.Set(handler.AuthHeader, "token")

				rh.HandleClaimReward(w, req)

				Expect(w.Code).To(Equal(status))
				var resp handler.Response
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp.Code).To(Equal(code))
			},
			Entry("not found", core.ErrRewardNotFound, http.StatusNotFound, handler.CodeNotFound),
			Entry("already claimed", core.ErrAlreadyClaimed, http.StatusBadRequest, handler.CodeBadRequest),
			Entry("no wallet", core.ErrNoWallet, http.StatusBadRequest, handler.CodeBadRequest),
			Entry("invalid wallet", fmt.Errorf("%w: bad", core.ErrInvalidWallet), http.StatusBadRequest, handler.CodeBadRequest),
			Entry("not configured", core.ErrNotConfigured, http.StatusInternalServerError, handler.CodeInternal),
			Entry("transfer failed", fmt.Errorf("%w: rpc down", core.ErrTransferFailed), http.StatusBadGateway, handler.CodeTransfer),
			Entry("concurrent modification", core.ErrConcurrentModification, http.StatusConflict, handler.CodeConflict),
			Entry("unexpected", errors.New("boom"), http.StatusInternalServerError, handler.CodeInternal),
		)
	})
})
