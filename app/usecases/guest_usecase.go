package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/IanAndy202/Hotel-App/app/entities"
	"github.com/IanAndy202/Hotel-App/app/metrics"
	"github.com/IanAndy202/Hotel-App/app/repositories"
	"github.com/IanAndy202/Hotel-App/app/utils"
)

type GuestUsecase interface {
	CheckInGuest(ctx context.Context, req entities.CheckInRequest) (entities.Guest, error)
	GetGuests(ctx context.Context) ([]entities.Guest, error)
}

type guestUsecase struct {
	guestRepo repositories.GuestRepository
	roomRepo  repositories.RoomRepository
	ids       utils.IDGenerator
	metrics   *metrics.Metrics
}

func NewGuestUsecase(guestRepo repositories.GuestRepository, roomRepo repositories.RoomRepository, ids utils.IDGenerator, m *metrics.Metrics) GuestUsecase {
	return &guestUsecase{guestRepo: guestRepo, roomRepo: roomRepo, ids: ids, metrics: m}
}

// CheckInGuest appends the guest and then marks the room occupied.
// The two documents are written separately; a failure on the rooms write
// leaves the guest recorded. An unknown room is not an error.
func (u *guestUsecase) CheckInGuest(ctx context.Context, req entities.CheckInRequest) (entities.Guest, error) {
	guest := entities.Guest{
		GuestID: u.ids.NewID(),
		Name:    req.GuestName,
		Contact: req.Contact,
		RoomID:  req.RoomID,
	}
	if err := u.guestRepo.AddGuest(ctx, guest); err != nil {
		return entities.Guest{}, fmt.Errorf("add guest: %w", err)
	}

	found, err := u.roomRepo.UpdateRoom(ctx, req.RoomID, map[string]any{
		"status":        entities.RoomStatusOccupied,
		"assignedGuest": entities.AssignedGuest{Name: req.GuestName},
	})
	if err != nil {
		return guest, fmt.Errorf("occupy room %s: %w", req.RoomID, err)
	}
	if !found {
		slog.WarnContext(ctx, "checked in guest to unknown room", "guestId", guest.GuestID, "roomId", req.RoomID)
	}

	u.metrics.CheckIn()
	return guest, nil
}

func (u *guestUsecase) GetGuests(ctx context.Context) ([]entities.Guest, error) {
	return u.guestRepo.GetGuests(ctx)
}
