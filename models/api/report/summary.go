package reportapimodels

type Summary struct {
	TotalMinutes      int            `json:"total_minutes"`
	AvgPerWeekMinutes float64        `json:"avg_per_week_minutes"`
	PerProject        map[string]int `json:"per_project"`
	Weekly            map[string]int `json:"weekly"`  // YYYY-Wnn
	Monthly           map[string]int `json:"monthly"` // YYYY-MM
	StatusCounts      map[string]int `json:"status_counts"`
	EntryCount        int            `json:"entry_count"`
}
