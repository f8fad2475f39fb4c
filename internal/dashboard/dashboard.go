package dashboard

type Stats struct {
	TotalEmployees     int `json:"total_employees"`
	OnLeaveToday       int `json:"on_leave_today"`
	PendingRequests    int `json:"pending_requests"`
	BirthdaysThisMonth int `json:"birthdays_this_month"`
}
