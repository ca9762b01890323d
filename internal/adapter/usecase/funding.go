package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lp-publisher/internal/core/domain"
	"lp-publisher/internal/core/port"
)

// FundingUseCase records manual payments and reports campaign balances.
// It implements port.FundingUseCase.
type FundingUseCase struct {
	repo     port.CampaignRepository
	location *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// NewFundingUseCase creates the funding use case. A nil location means UTC.
func NewFundingUseCase(repo port.CampaignRepository, location *time.Location, logger *slog.Logger) *FundingUseCase {
	if location == nil {
		location = time.UTC
	}
	return &FundingUseCase{
		repo:     repo,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

func (u *FundingUseCase) campaign(ctx context.Context, uniqueID string) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaignByUniqueID(ctx, uniqueID)
	if err != nil {
		return nil, err
	}
	if c == nil || c.Removed {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, uniqueID)
	}
	return c, nil
}

// FundCampaign adds a payment to the campaign. An empty confirmation gets a
// generated reference.
func (u *FundingUseCase) FundCampaign(ctx context.Context, uniqueID string, amount domain.Money, confirmation string) (*domain.FundingRecord, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %s must be positive", domain.ErrInvalidAmount, amount)
	}
	c, err := u.campaign(ctx, uniqueID)
	if err != nil {
		return nil, err
	}
	if confirmation == "" {
		confirmation = uuid.NewString()
	}

	rec := &domain.FundingRecord{
		CampaignID:   c.ID,
		Amount:       amount,
		PaymentDate:  u.now().In(u.location),
		Confirmation: confirmation,
	}
	if err = u.repo.RecordFunding(ctx, rec); err != nil {
		return nil, err
	}

	u.logger.Info("campaign funded",
		slog.String("campaign", uniqueID),
		slog.String("amount", amount.String()),
		slog.String("confirmation", confirmation))
	return rec, nil
}

// Balance returns the budget position of the campaign as of today.
func (u *FundingUseCase) Balance(ctx context.Context, uniqueID string) (*port.Balance, error) {
	c, err := u.campaign(ctx, uniqueID)
	if err != nil {
		return nil, err
	}
	return &port.Balance{
		UniqueID:  c.UniqueID,
		State:     c.StateOn(u.now().In(u.location)),
		Funded:    c.FundedAmount,
		Consumed:  c.ConsumedAmount,
		Remaining: c.RemainingBudget(),
	}, nil
}
