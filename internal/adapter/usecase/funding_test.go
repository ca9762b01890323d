package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lp-publisher/internal/core/domain"
	"lp-publisher/internal/core/port/mocks"
)

func newTestFunding(repo *mocks.MockCampaignRepository) *FundingUseCase {
	u := NewFundingUseCase(repo, time.UTC, discardLogger())
	u.now = func() time.Time { return fixedNow }
	return u
}

func TestFundCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaignByUniqueID(mock.Anything, "great").Return(campaignFixture(7, "great", 0, 0, 1000), nil)
	repo.EXPECT().
		RecordFunding(mock.Anything, mock.AnythingOfType("*domain.FundingRecord")).
		Run(func(_ context.Context, rec *domain.FundingRecord) {
			rec.ID = 42
		}).
		Return(nil)

	rec, err := newTestFunding(repo).FundCampaign(context.Background(), "great", 10004, "pay-123")
	require.NoError(t, err)
	assert.Equal(t, int64(42), rec.ID)
	assert.Equal(t, int64(7), rec.CampaignID)
	assert.Equal(t, domain.Money(10004), rec.Amount)
	assert.Equal(t, "pay-123", rec.Confirmation)
	assert.True(t, rec.PaymentDate.Equal(fixedNow))
}

func TestFundCampaignGeneratesConfirmation(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaignByUniqueID(mock.Anything, "great").Return(campaignFixture(7, "great", 0, 0, 1000), nil)
	repo.EXPECT().RecordFunding(mock.Anything, mock.Anything).Return(nil)

	rec, err := newTestFunding(repo).FundCampaign(context.Background(), "great", 500, "")
	require.NoError(t, err)
	_, err = uuid.Parse(rec.Confirmation)
	assert.NoError(t, err)
}

func TestFundCampaignRejects(t *testing.T) {
	t.Run("non-positive amount", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		_, err := newTestFunding(repo).FundCampaign(context.Background(), "great", 0, "")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		_, err = newTestFunding(repo).FundCampaign(context.Background(), "great", -100, "")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		repo.EXPECT().GetCampaignByUniqueID(mock.Anything, "ghost").Return(nil, nil)
		_, err := newTestFunding(repo).FundCampaign(context.Background(), "ghost", 100, "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("removed campaign", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		c := campaignFixture(1, "gone", 0, 0, 1000)
		c.Removed = true
		repo.EXPECT().GetCampaignByUniqueID(mock.Anything, "gone").Return(c, nil)
		_, err := newTestFunding(repo).FundCampaign(context.Background(), "gone", 100, "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

// TestBalance checks the remaining budget of a campaign funded 100.04 that
// consumed 52.06.
func TestBalance(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaignByUniqueID(mock.Anything, "great").Return(campaignFixture(1, "great", 10004, 5206, 1000), nil)

	b, err := newTestFunding(repo).Balance(context.Background(), "great")
	require.NoError(t, err)
	assert.Equal(t, "great", b.UniqueID)
	assert.Equal(t, domain.StateActive, b.State)
	assert.Equal(t, "100.04", b.Funded.String())
	assert.Equal(t, "52.06", b.Consumed.String())
	assert.Equal(t, "47.98", b.Remaining.String())
}
