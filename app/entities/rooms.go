package entities

import "encoding/json"

const (
	RoomStatusVacant   = "vacant"
	RoomStatusReady    = "ready"
	RoomStatusOccupied = "occupied"
)

type AssignedGuest struct {
	Name string `json:"name"`
}

// Room is one record of the rooms document.
type Room struct {
	RoomID        string         `json:"roomId"`
	Type          string         `json:"type,omitempty"`
	Floor         Floor          `json:"floor,omitempty"`
	Status        string         `json:"status"`
	AssignedGuest *AssignedGuest `json:"assignedGuest,omitempty"`
}

// Available reports whether the room can take a check-in.
func (r Room) Available() bool {
	return r.Status == RoomStatusVacant || r.Status == RoomStatusReady
}

// Floor is stored either as a number or a string and reads as its text.
type Floor string

func (f *Floor) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = Floor(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = Floor(n.String())
	return nil
}
