package usecases

import (
	"context"
	"fmt"
	"math"

	"github.com/IanAndy202/Hotel-App/app/entities"
	"github.com/IanAndy202/Hotel-App/app/repositories"
)

type DashboardUsecase interface {
	GetSummary(ctx context.Context) (entities.DashboardSummary, error)
}

type dashboardUsecase struct {
	roomRepo repositories.RoomRepository
	taskRepo repositories.CleaningTaskRepository
}

func NewDashboardUsecase(roomRepo repositories.RoomRepository, taskRepo repositories.CleaningTaskRepository) DashboardUsecase {
	return &dashboardUsecase{roomRepo: roomRepo, taskRepo: taskRepo}
}

// GetSummary counts rooms per status and the cleaning tasks still pending.
// Statuses other than vacant, ready and occupied only count towards the total.
func (u *dashboardUsecase) GetSummary(ctx context.Context) (entities.DashboardSummary, error) {
	rooms, err := u.roomRepo.GetRooms(ctx)
	if err != nil {
		return entities.DashboardSummary{}, fmt.Errorf("load rooms: %w", err)
	}
	tasks, err := u.taskRepo.GetCleaningTasks(ctx)
	if err != nil {
		return entities.DashboardSummary{}, fmt.Errorf("load cleaning tasks: %w", err)
	}

	summary := entities.DashboardSummary{TotalRooms: len(rooms)}
	for _, room := range rooms {
		switch room.Status {
		case entities.RoomStatusVacant:
			summary.Vacant++
		case entities.RoomStatusReady:
			summary.Ready++
		case entities.RoomStatusOccupied:
			summary.Occupied++
		}
	}
	for _, task := range tasks {
		if task.Status == entities.TaskStatusPending {
			summary.PendingCleanings++
		}
	}
	if summary.TotalRooms > 0 {
		rate := float64(summary.Occupied) / float64(summary.TotalRooms) * 100
		summary.OccupancyRate = math.Round(rate*10) / 10
	}
	return summary, nil
}
