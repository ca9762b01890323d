package domain

// DateLayout is the ISO date layout used in shared store keys and report
// dates.
const DateLayout = "2006-01-02"

// DeliveryReport is one entry of the partner's daily delivery report.
type DeliveryReport struct {
	CampaignID      string `json:"campaign_id" validate:"required,max=64"`
	InvoiceID       string `json:"invoice_id" validate:"required,max=32"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	ImpressionCount int64  `json:"impression_count" validate:"gte=0,max=1000000000000"`
}
