package entities

const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// RequestedAtLayout renders like the en-US locale string the front desk pages show,
// e.g. "Oct 19, 2026, 03:04 PM". It is for display only.
const RequestedAtLayout = "Jan 02, 2006, 03:04 PM"

type CleaningTask struct {
	TaskID      string `json:"taskId"`
	RoomID      string `json:"roomId"`
	RequestedAt string `json:"requestedAt"`
	Status      string `json:"status"`
}

// Request body for POST /cleaning-requests
type CleaningRequest struct {
	RoomID string `json:"room" form:"room" validate:"required"`
}
