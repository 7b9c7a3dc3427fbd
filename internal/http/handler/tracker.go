package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"txwatch/internal/auth"
	"txwatch/internal/core"
	"txwatch/internal/ethereum"
	"txwatch/internal/http/handler/middleware"
	"txwatch/internal/http/payload"
	"txwatch/internal/store"

	"go.uber.org/zap"
)

var (
	Authenticate      = "POST /tracker/authenticate"
	ListTransactions  = "GET /tracker/transactions"
	SubmitTransaction = "POST /tracker/transactions"
	CheckTransaction  = "POST /tracker/transactions/{id}/check"
	PollTransaction   = "POST /tracker/transactions/{id}/poll"
	DeleteTransaction = "DELETE /tracker/transactions/{id}"
)

var ErrNotPending error = errors.New("transaction is not pending")

type TrackerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	authenticator    Authenticator
	store            TransactionStore
	trackers         TrackerService
	resolver         TransactionResolver
}

func NewTrackerHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	authenticator Authenticator,
	store TransactionStore,
	trackers TrackerService,
	resolver TransactionResolver,
) *TrackerHandler {
	return &TrackerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		authenticator:    authenticator,
		store:            store,
		trackers:         trackers,
		resolver:         resolver,
	}
}

func (h *TrackerHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.authenticator.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, auth.ErrOperatorNotFound) || errors.Is(err, auth.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{"token": token}, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	filter := payload.StatusFilter{
		Status: core.TransactionStatus(r.URL.Query().Get("status")),
	}
	if err := filter.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate query parameters: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to validate query parameters",
			"error", err,
			"handler", ListTransactions,
			"request_id", requestId)
		return
	}

	transactions := h.store.Transactions()
	if filter.Status != "" {
		filtered := make([]core.Transaction, 0, len(transactions))
		for _, tx := range transactions {
			if tx.Status == filter.Status {
				filtered = append(filtered, tx)
			}
		}
		transactions = filtered
	}

	h.respond(w, TransactionsResponse{Transactions: transactions}, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandleSubmitTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.SubmitTransactionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not register transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SubmitTransaction,
			"request_id", requestId)
		return
	}

	tx, err := h.resolver.ResolveTransaction(r.Context(), req.NetworkClientID, req.RawTx, req.Hash)
	if err != nil {
		h.fail(w, "Could not register transaction", err, SubmitTransaction, requestId)
		return
	}
	tx.Type = req.Type

	tx, err = h.store.Add(r.Context(), tx)
	if err != nil {
		h.fail(w, "Could not register transaction", err, SubmitTransaction, requestId)
		return
	}

	h.logs.Infow("transaction registered",
		"id", tx.ID,
		"hash", tx.Hash,
		"networkClientId", tx.NetworkClientID,
		"handler", SubmitTransaction,
		"request_id", requestId)

	h.respond(w, TransactionResponse{Transaction: tx}, http.StatusCreated, requestId)
}

func (h *TrackerHandler) HandleCheckTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	tx, err := h.pendingTransaction(r)
	if err != nil {
		h.fail(w, "Could not check transaction", err, CheckTransaction, requestId)
		return
	}

	if err := h.trackers.ForceCheckTransaction(r.Context(), tx); err != nil {
		h.fail(w, "Could not check transaction", err, CheckTransaction, requestId)
		return
	}

	h.respond(w, Response{Message: "Transaction checked"}, http.StatusOK, requestId)
}

func (h *TrackerHandler) HandlePollTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	tx, err := h.pendingTransaction(r)
	if err != nil {
		h.fail(w, "Could not poll transaction", err, PollTransaction, requestId)
		return
	}

	if err := h.trackers.AddTransactionToPoll(tx); err != nil {
		h.fail(w, "Could not poll transaction", err, PollTransaction, requestId)
		return
	}

	h.respond(w, Response{Message: "Transaction scheduled for the next block"}, http.StatusAccepted, requestId)
}

func (h *TrackerHandler) HandleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	if err := h.store.Remove(r.Context(), r.PathValue("id")); err != nil {
		h.fail(w, "Could not remove transaction", err, DeleteTransaction, requestId)
		return
	}

	h.respond(w, Response{Message: "Transaction removed"}, http.StatusOK, requestId)
}

func (h *TrackerHandler) pendingTransaction(r *http.Request) (core.Transaction, error) {
	tx, err := h.store.Get(r.PathValue("id"))
	if err != nil {
		return core.Transaction{}, err
	}
	if !tx.IsPending() {
		return core.Transaction{}, fmt.Errorf("%w: %s is %s", ErrNotPending, tx.ID, tx.Status)
	}
	return tx, nil
}

func (h *TrackerHandler) fail(w http.ResponseWriter, message string, err error, route, requestId string) {
	code := statusCode(err)
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}
	if code == http.StatusInternalServerError {
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, code, requestId)
	h.logs.Errorw(message,
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, core.ErrTransactionNotFound), errors.Is(err, ethereum.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrAlreadyTracked), errors.Is(err, ErrNotPending):
		return http.StatusConflict
	case errors.Is(err, core.ErrUnknownNetworkClient),
		errors.Is(err, ethereum.ErrInvalidRawTransaction),
		errors.Is(err, ethereum.ErrHashMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *TrackerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
