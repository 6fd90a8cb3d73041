package dto

// ReportRangeParams bounds the statistics report. Dates are YYYY-MM-DD, both inclusive.
type ReportRangeParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// DailyReportParams selects the day of the daily report; empty means today.
type DailyReportParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}
