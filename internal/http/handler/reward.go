package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"rewarder/internal/core"
	"rewarder/internal/http/handler/middleware"
	"rewarder/internal/http/payload"

	"go.uber.org/zap"
)

const AuthHeader = "AUTH_TOKEN"

var (
	HealthCheck = "GET /healthcheck"
	PrivateData = "GET /private"
	ListRewards = "GET /rewards"
	ClaimReward = "POST /rewards/claim"
)

type RewardHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	rewards          RewardService
}

func NewRewardHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, rewardService RewardService) *RewardHandler {
	return &RewardHandler{
		logs:             logger,
		requestValidator: requestValidator,
		rewards:          rewardService,
	}
}

func (h *RewardHandler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respond(w, "OK", http.StatusOK, requestID(r))
}

func (h *RewardHandler) HandlePrivateData(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := h.authenticate(w, r, PrivateData, requestId)
	if !ok {
		return
	}

	h.respond(w, PrivateResponse{
		Message: "This is private",
		User:    PrivateUser{ID: userID},
	}, http.StatusOK, requestId)
}

func (h *RewardHandler) HandleListRewards(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := h.authenticate(w, r, ListRewards, requestId)
	if !ok {
		return
	}

	rewards, err := h.rewards.ListRewards(r.Context(), userID)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve rewards",
			Code:    CodeInternal,
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list rewards",
			"error", err,
			"userId", userID,
			"handler", ListRewards,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.RewardRecord{
		"rewards": rewards,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *RewardHandler) HandleClaimReward(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	userID, ok := h.authenticate(w, r, ClaimReward, requestId)
	if !ok {
		return
	}

	var claim payload.ClaimRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &claim); err != nil {
		h.respond(w, Response{
			Message: "Could not claim reward",
			Code:    CodeBadRequest,
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ClaimReward,
			"request_id", requestId)
		return
	}

	h.logs.Infow("claim request received",
		"rewardId", claim.ID,
		"userId", userID,
		"handler", ClaimReward,
		"request_id", requestId)

	record, err := h.rewards.ClaimReward(r.Context(), userID, claim.ID)
	if err != nil {
		httpCode, resp := claimErrorResponse(err)
		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("claim failed",
			"error", err,
			"rewardId", claim.ID,
			"userId", userID,
			"status", httpCode,
			"handler", ClaimReward,
			"request_id", requestId)
		return
	}

	h.respond(w, record, http.StatusOK, requestId)
}

func claimErrorResponse(err error) (int, Response) {
	resp := Response{
		Message: "Could not claim reward",
		Error:   err.Error(),
	}

	switch {
	case errors.Is(err, core.ErrRewardNotFound):
		resp.Code = CodeNotFound
		return http.StatusNotFound, resp
	case errors.Is(err, core.ErrAlreadyClaimed),
		errors.Is(err, core.ErrNoWallet),
		errors.Is(err, core.ErrInvalidWallet):
		resp.Code = CodeBadRequest
		return http.StatusBadRequest, resp
	case errors.Is(err, core.ErrConcurrentModification):
		resp.Code = CodeConflict
		return http.StatusConflict, resp
	case errors.Is(err, core.ErrTransferFailed):
		resp.Code = CodeTransfer
		resp.Error = core.ErrTransferFailed.Error()
		return http.StatusBadGateway, resp
	case errors.Is(err, core.ErrNotConfigured):
		resp.Code = CodeInternal
		return http.StatusInternalServerError, resp
	default:
		resp.Code = CodeInternal
		resp.Error = "unexpected error occurred"
		return http.StatusInternalServerError, resp
	}
}

// authenticate resolves the caller from the AUTH_TOKEN header and writes a 401
// when it cannot.
func (h *RewardHandler) authenticate(w http.ResponseWriter, r *http.Request, handlerName, requestId string) (string, bool) {
	authToken := r.Header.Get(AuthHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Code:    CodeUnauthorized,
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", handlerName, "request_id", requestId)
		return "", false
	}

	userID, err := h.rewards.Identify(authToken)
	if err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Code:    CodeUnauthorized,
			Error:   core.ErrUnauthorized.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("invalid auth token", "error", err, "handler", handlerName, "request_id", requestId)
		return "", false
	}

	return userID, true
}

func (h *RewardHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return requestId
}
