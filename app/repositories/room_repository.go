package repositories

import (
	"context"

	"github.com/IanAndy202/Hotel-App/app/entities"
)

type RoomRepository interface {
	GetRooms(ctx context.Context) ([]entities.Room, error)
	SaveRooms(ctx context.Context, rooms []entities.Room) error
	// UpdateRoom sets fields (JSON name -> value) on the room with roomID and reports
	// whether it was found. Other rooms and fields are kept as stored.
	UpdateRoom(ctx context.Context, roomID string, fields map[string]any) (bool, error)
}

type roomRepository struct {
	rooms table[entities.Room]
}

func NewRoomRepository(store RecordStore) RoomRepository {
	return &roomRepository{rooms: newTable[entities.Room](store, RoomsDocument)}
}

func (r *roomRepository) GetRooms(ctx context.Context) ([]entities.Room, error) {
	return r.rooms.all(ctx)
}

func (r *roomRepository) SaveRooms(ctx context.Context, rooms []entities.Room) error {
	return r.rooms.save(ctx, rooms)
}

func (r *roomRepository) UpdateRoom(ctx context.Context, roomID string, fields map[string]any) (bool, error) {
	return r.rooms.patch(ctx, "roomId", roomID, fields)
}
