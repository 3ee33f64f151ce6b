package repositories

import (
	"context"

	"github.com/IanAndy202/Hotel-App/app/entities"
)

type GuestRepository interface {
	GetGuests(ctx context.Context) ([]entities.Guest, error)
	SaveGuests(ctx context.Context, guests []entities.Guest) error
	AddGuest(ctx context.Context, guest entities.Guest) error
}

type guestRepository struct {
	guests table[entities.Guest]
}

func NewGuestRepository(store RecordStore) GuestRepository {
	return &guestRepository{guests: newTable[entities.Guest](store, GuestsDocument)}
}

func (r *guestRepository) GetGuests(ctx context.Context) ([]entities.Guest, error) {
	return r.guests.all(ctx)
}

func (r *guestRepository) SaveGuests(ctx context.Context, guests []entities.Guest) error {
	return r.guests.save(ctx, guests)
}

func (r *guestRepository) AddGuest(ctx context.Context, guest entities.Guest) error {
	return r.guests.add(ctx, guest)
}
