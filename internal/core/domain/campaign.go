package domain

import "time"

// BillingCadence tells how a plan renews.
type BillingCadence string

const (
	BillingOneTime BillingCadence = "one_time"
	BillingMonthly BillingCadence = "monthly"
)

// Plan is the pricing a campaign is billed with. CPM is the price of one
// thousand impressions in minor currency units.
type Plan struct {
	ID      int64
	Name    string
	CPM     int64
	Cadence BillingCadence
}

// Campaign represents an advertising campaign of an organization.
// Amounts are stored in integer minor units (e.g. cents).
type Campaign struct {
	ID             int64
	UniqueID       string // slug shared with the delivery partner
	OrganizationID int64
	Name           string
	Plan           Plan
	Approved       bool
	Enabled        bool
	Draft          bool
	Removed        bool
	StartDate      time.Time
	EndDate        *time.Time
	FundedAmount   Money
	ConsumedAmount Money
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// State is the delivery state of a campaign, derived from its flags and
// date range. It is never stored.
type State string

const (
	StateDraft   State = "draft"
	StatePending State = "pending"
	StateActive  State = "active"
	StatePaused  State = "paused"
	StateExpired State = "expired"
	StateRemoved State = "removed"
)

// RemainingBudget returns funded minus consumed. It may be negative when
// the partner delivered more than was funded.
func (c *Campaign) RemainingBudget() Money {
	return c.FundedAmount - c.ConsumedAmount
}

// StateOn derives the campaign state for the given day.
func (c *Campaign) StateOn(day time.Time) State {
	day = DayOf(day)
	switch {
	case c.Removed:
		return StateRemoved
	case c.Draft:
		return StateDraft
	case c.EndDate != nil && day.After(DayOf(c.EndDate.In(day.Location()))):
		return StateExpired
	case !c.Approved || day.Before(DayOf(c.StartDate.In(day.Location()))):
		return StatePending
	case !c.Enabled:
		return StatePaused
	default:
		return StateActive
	}
}

// EligibleForQuota reports whether the campaign should receive delivery
// quota on day.
func (c *Campaign) EligibleForQuota(day time.Time) bool {
	return c.StateOn(day) == StateActive && c.RemainingBudget() > 0
}

// AcceptsReports reports whether delivery reports may be charged to the
// campaign. Only removed campaigns are refused.
func (c *Campaign) AcceptsReports() bool {
	return !c.Removed
}

// DayOf truncates t to midnight in its own location.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
