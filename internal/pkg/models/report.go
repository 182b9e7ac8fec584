package models

// DailyStats aggregates one day of marketplace activity
type DailyStats struct {
	Date               string  `json:"date"`
	TotalBookings      int     `json:"total_bookings"`
	Pending            int     `json:"pending"`
	Matched            int     `json:"matched"`
	Confirmed          int     `json:"confirmed"`
	Completed          int     `json:"completed"`
	Cancelled          int     `json:"cancelled"`
	TotalRevenue       int64   `json:"total_revenue"`
	PlatformCommission int64   `json:"platform_commission"`
	NewDrivers         int     `json:"new_drivers"`
	ActiveDrivers      int     `json:"active_drivers"`
	AvgRating          float64 `json:"avg_rating"`
}

// DailyReport is the admin daily report: the stats plus a rendered text body
type DailyReport struct {
	Stats  DailyStats `json:"stats"`
	Report string     `json:"report"`
}
