package entities

type Guest struct {
	GuestID string `json:"guestId"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	RoomID  string `json:"roomId"`
}

// Request body for POST /checkin
type CheckInRequest struct {
	GuestName string `json:"guestName" form:"guestName" validate:"required"`
	Contact   string `json:"contact" form:"contact"`
	RoomID    string `json:"room" form:"room" validate:"required"`
}
