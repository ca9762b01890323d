package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"lp-publisher/internal/core/domain"
)

// fundingRequest carries the amount as a decimal string, e.g. "100.04".
type fundingRequest struct {
	Amount       string `json:"amount" validate:"required,numeric"`
	Confirmation string `json:"confirmation" validate:"omitempty,max=255"`
}

type fundingResponse struct {
	ID           int64  `json:"id"`
	Amount       string `json:"amount"`
	PaymentDate  string `json:"payment_date"`
	Confirmation string `json:"confirmation"`
}

// handleFunding records a manual payment for the campaign in the path.
// Invalid bodies and amounts produce HTTP 400, unknown campaigns 404.
func (h *Handler) handleFunding(w http.ResponseWriter, r *http.Request) {
	uniqueID := chi.URLParam(r, "uniqueID")

	var req fundingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	amount, err := domain.ParseMoney(req.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.funding.FundCampaign(r.Context(), uniqueID, amount, req.Confirmation)
	if err != nil {
		h.writeError(w, r, "fund campaign error", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, fundingResponse{
		ID:           rec.ID,
		Amount:       rec.Amount.String(),
		PaymentDate:  rec.PaymentDate.Format(time.RFC3339),
		Confirmation: rec.Confirmation,
	})
}

type balanceResponse struct {
	UniqueID  string `json:"unique_id"`
	State     string `json:"state"`
	Funded    string `json:"funded"`
	Consumed  string `json:"consumed"`
	Remaining string `json:"remaining"`
}

// handleBalance returns the budget position of a campaign.
func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	b, err := h.funding.Balance(r.Context(), chi.URLParam(r, "uniqueID"))
	if err != nil {
		h.writeError(w, r, "balance error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, balanceResponse{
		UniqueID:  b.UniqueID,
		State:     string(b.State),
		Funded:    b.Funded.String(),
		Consumed:  b.Consumed.String(),
		Remaining: b.Remaining.String(),
	})
}
