package entity

// DashboardStats is the summary shown on the admin landing page.
type DashboardStats struct {
	Products           int64 `json:"products"`
	OutOfStockVariants int64 `json:"outOfStockVariants"`
	Users              int64 `json:"users"`
}
