package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a campaign cannot be resolved.
	ErrNotFound = errors.New("campaign not found")
	// ErrStorageUnavailable marks shared store failures that abort a run.
	ErrStorageUnavailable = errors.New("shared storage unavailable")
	// ErrReportNotAvailable is returned while the partner has not uploaded
	// the delivery report of the day being reconciled.
	ErrReportNotAvailable = errors.New("delivery report not available yet")
	// ErrMalformedReport marks a delivery report entry with a bad shape.
	ErrMalformedReport = errors.New("malformed report")
	// ErrInvalidAmount is returned for non-positive or unparsable amounts.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ReportError describes why a single delivery report entry was skipped.
type ReportError struct {
	Index      int
	CampaignID string
	InvoiceID  string
	Err        error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report #%d (campaign %q, invoice %q): %v", e.Index, e.CampaignID, e.InvoiceID, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}
