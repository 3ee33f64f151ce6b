package repositories

import (
	"context"

	"github.com/IanAndy202/Hotel-App/app/entities"
)

type UserRepository interface {
	GetUsers(ctx context.Context) ([]entities.User, error)
	SaveUsers(ctx context.Context, users []entities.User) error
}

type userRepository struct {
	users table[entities.User]
}

func NewUserRepository(store RecordStore) UserRepository {
	return &userRepository{users: newTable[entities.User](store, UsersDocument)}
}

func (r *userRepository) GetUsers(ctx context.Context) ([]entities.User, error) {
	return r.users.all(ctx)
}

func (r *userRepository) SaveUsers(ctx context.Context, users []entities.User) error {
	return r.users.save(ctx, users)
}
