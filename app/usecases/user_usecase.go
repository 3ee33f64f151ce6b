package usecases

import (
	"context"
	"log/slog"

	"github.com/IanAndy202/Hotel-App/app/entities"
	"github.com/IanAndy202/Hotel-App/app/metrics"
	"github.com/IanAndy202/Hotel-App/app/repositories"
)

type UserUsecase interface {
	Login(ctx context.Context, username, password string) (entities.User, error)
	GetUsers(ctx context.Context) ([]entities.User, error)
}

type userUsecase struct {
	userRepo repositories.UserRepository
	metrics  *metrics.Metrics
}

func NewUserUsecase(userRepo repositories.UserRepository, m *metrics.Metrics) UserUsecase {
	return &userUsecase{userRepo: userRepo, metrics: m}
}

// Login returns the user matching both username and password, or ErrInvalidCredentials.
func (u *userUsecase) Login(ctx context.Context, username, password string) (entities.User, error) {
	users, err := u.userRepo.GetUsers(ctx)
	if err != nil {
		return entities.User{}, err
	}

	for _, user := range users {
		if user.Username == username && passwordMatches(user.Password, password) {
			u.metrics.LoginAttempt(true)
			slog.InfoContext(ctx, "user logged in", "userId", user.UserID, "role", user.Role)
			return user, nil
		}
	}

	u.metrics.LoginAttempt(false)
	return entities.User{}, unauthorized("Invalid credentials", ErrInvalidCredentials)
}

func (u *userUsecase) GetUsers(ctx context.Context) ([]entities.User, error) {
	return u.userRepo.GetUsers(ctx)
}
