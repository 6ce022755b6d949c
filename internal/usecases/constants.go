package usecases

const (
	// OverviewDealLimit caps the deals returned per stage on the dashboard
	// overview. Stage totals are still computed over every deal in the stage.
	OverviewDealLimit = 5

	// RecentContactsLimit and RecentActivitiesLimit bound the dashboard feeds.
	RecentContactsLimit   = 4
	RecentActivitiesLimit = 5

	// Cache keys for the aggregate views invalidated on mutation.
	CacheKeyDashboardMetrics = "dashboard:metrics"
	CacheKeyPipelineOverview = "dashboard:pipeline"
)
