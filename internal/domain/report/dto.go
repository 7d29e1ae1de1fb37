package report

type MonthlyReportResponse struct {
	Month      string  `json:"month"`
	TotalHours float64 `json:"totalHours"`
}

func NewMonthlyReportResponse(r *MonthlyReport) *MonthlyReportResponse {
	return &MonthlyReportResponse{
		Month:      r.Month,
		TotalHours: r.TotalHours,
	}
}
