package entities

// DashboardMetrics holds the KPI card values with month-over-month changes
type DashboardMetrics struct {
	TotalRevenue         float64 `json:"totalRevenue"`
	TotalRevenueChange   float64 `json:"totalRevenueChange"`
	ActiveDeals          int64   `json:"activeDeals"`
	ActiveDealsChange    float64 `json:"activeDealsChange"`
	ConversionRate       float64 `json:"conversionRate"`
	ConversionRateChange float64 `json:"conversionRateChange"`
	NewContacts          int64   `json:"newContacts"`
	NewContactsChange    float64 `json:"newContactsChange"`
}

// PerformancePeriod selects the sales-performance bucketing
type PerformancePeriod string

const (
	PeriodMonthly   PerformancePeriod = "monthly"
	PeriodQuarterly PerformancePeriod = "quarterly"
	PeriodYearly    PerformancePeriod = "yearly"
)

// PerformancePoint is one bucket of the sales-performance series
type PerformancePoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DealOwner is the owner info embedded in a deal summary
type DealOwner struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// DealSummary is the deal shape rendered inside a pipeline column
type DealSummary struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Value       float64   `json:"value"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   string    `json:"updatedAt"`
	Owner       DealOwner `json:"owner"`
}

// StageColumn is one pipeline stage with its deals and total value
type StageColumn struct {
	ID         uint          `json:"id"`
	Name       string        `json:"name"`
	Color      string        `json:"color"`
	Order      int           `json:"order"`
	TotalValue float64       `json:"totalValue"`
	Deals      []DealSummary `json:"deals"`
}
