package usecases

import (
	"context"

	"github.com/IanAndy202/Hotel-App/app/entities"
	"github.com/IanAndy202/Hotel-App/app/repositories"
)

type RoomUsecase interface {
	GetRooms(ctx context.Context) ([]entities.Room, error)
	// GetAvailableRooms lists vacant and ready rooms.
	GetAvailableRooms(ctx context.Context) ([]entities.Room, error)
}

type roomUsecase struct {
	roomRepo repositories.RoomRepository
}

func NewRoomUsecase(roomRepo repositories.RoomRepository) RoomUsecase {
	return &roomUsecase{roomRepo: roomRepo}
}

func (u *roomUsecase) GetRooms(ctx context.Context) ([]entities.Room, error) {
	return u.roomRepo.GetRooms(ctx)
}

func (u *roomUsecase) GetAvailableRooms(ctx context.Context) ([]entities.Room, error) {
	rooms, err := u.roomRepo.GetRooms(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]entities.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Available() {
			available = append(available, r)
		}
	}
	return available, nil
}
