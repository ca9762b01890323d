package httpadapter

import (
	"log/slog"
	"net/http"

	"lp-publisher/internal/core/domain"
	"lp-publisher/internal/core/port"
)

type reportIssue struct {
	Index      int    `json:"index"`
	CampaignID string `json:"campaign_id"`
	InvoiceID  string `json:"invoice_id"`
	Error      string `json:"error"`
}

type statsResponse struct {
	Key        string        `json:"key"`
	Date       string        `json:"date"`
	Total      int           `json:"total"`
	Processed  int           `json:"processed"`
	Duplicates int           `json:"duplicates"`
	Skipped    int           `json:"skipped"`
	Failed     int           `json:"failed"`
	Charged    string        `json:"charged"`
	Issues     []reportIssue `json:"issues"`
	Error      string        `json:"error,omitempty"`
}

func newStatsResponse(run *port.StatsRun) statsResponse {
	resp := statsResponse{
		Key:        run.Key,
		Date:       run.Date.Format(domain.DateLayout),
		Total:      run.Total,
		Processed:  run.Processed,
		Duplicates: run.Duplicates,
		Skipped:    run.Skipped,
		Failed:     run.Failed,
		Charged:    run.Charged.String(),
		Issues:     make([]reportIssue, 0, len(run.Issues)),
	}
	for _, issue := range run.Issues {
		resp.Issues = append(resp.Issues, reportIssue{
			Index:      issue.Index,
			CampaignID: issue.CampaignID,
			InvoiceID:  issue.InvoiceID,
			Error:      issue.Err.Error(),
		})
	}
	return resp
}

// handleReconcileStats charges yesterday's delivery report. A run that
// charged part of the report but failed on some entries answers 500 with
// the summary so the operator can see what is left.
func (h *Handler) handleReconcileStats(w http.ResponseWriter, r *http.Request) {
	run, err := h.reconciler.UpdateCampaignsStatsFromSharedStorage(r.Context())
	if err != nil && run == nil {
		h.writeError(w, r, "reconcile stats error", err)
		return
	}
	resp := newStatsResponse(run)
	status := http.StatusOK
	if err != nil {
		h.logger.Error("reconcile stats incomplete", slog.Any("error", err))
		resp.Error = err.Error()
		status = http.StatusInternalServerError
	}
	h.writeJSON(w, status, resp)
}

type quotaResponse struct {
	Key         string `json:"key"`
	Date        string `json:"date"`
	Published   int    `json:"published"`
	Impressions int64  `json:"impressions"`
}

// handleReconcileQuota publishes today's impression quota.
func (h *Handler) handleReconcileQuota(w http.ResponseWriter, r *http.Request) {
	run, err := h.reconciler.PostCampaignsImpressionQuotaToSharedStorage(r.Context())
	if err != nil {
		h.writeError(w, r, "publish quota error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, quotaResponse{
		Key:         run.Key,
		Date:        run.Date.Format(domain.DateLayout),
		Published:   run.Published,
		Impressions: run.Impressions,
	})
}

// handleRenew rolls finished monthly campaigns into a new period.
func (h *Handler) handleRenew(w http.ResponseWriter, r *http.Request) {
	n, err := h.reconciler.RenewMonthlyCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, "renew campaigns error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"renewed": n})
}
