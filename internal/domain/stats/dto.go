package stats

// TodayStatus describes where the caller stands right now.
type TodayStatus struct {
	CheckedIn      bool    `json:"checkedIn"`
	CheckInTime    *string `json:"checkInTime"`
	CheckOutTime   *string `json:"checkOutTime"`
	HoursWorked    float64 `json:"hoursWorked"`
	IsSick         bool    `json:"isSick"`
	OnBreak        bool    `json:"onBreak"`
	BreakStartTime *string `json:"breakStartTime"`
	TotalBreakTime float64 `json:"totalBreakTime"`
}

type MyStatsResponse struct {
	MonthlyHours    float64     `json:"monthlyHours"`
	TodayStatus     TodayStatus `json:"todayStatus"`
	TotalDaysWorked int         `json:"totalDaysWorked"`
}
