package entities

// route GET /dashboard
type DashboardSummary struct {
	TotalRooms       int     `json:"totalRooms"`
	Vacant           int     `json:"vacant"`
	Ready            int     `json:"ready"`
	Occupied         int     `json:"occupied"`
	PendingCleanings int     `json:"pendingCleanings"`
	OccupancyRate    float64 `json:"occupancyRate"` // percent of rooms occupied
}
