package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/IanAndy202/Hotel-App/app/entities"
	"github.com/IanAndy202/Hotel-App/app/metrics"
	"github.com/IanAndy202/Hotel-App/app/repositories"
	"github.com/IanAndy202/Hotel-App/app/utils"
)

// CleaningNotifier is told about every new cleaning task.
type CleaningNotifier interface {
	CleaningRequested(ctx context.Context, task entities.CleaningTask) error
}

type CleaningUsecase interface {
	GetCleaningTasks(ctx context.Context) ([]entities.CleaningTask, error)
	// AddCleaningTask records a pending task; a zero requestedAt means now.
	AddCleaningTask(ctx context.Context, roomID string, requestedAt time.Time) (entities.CleaningTask, error)
	// CompleteCleaningTask is a no-op for an unknown taskID.
	CompleteCleaningTask(ctx context.Context, taskID string) error
}

type cleaningUsecase struct {
	taskRepo repositories.CleaningTaskRepository
	ids      utils.IDGenerator
	now      func() time.Time
	notifier CleaningNotifier
	metrics  *metrics.Metrics
}

// NewCleaningUsecase accepts a nil notifier and a nil clock (time.Now).
func NewCleaningUsecase(taskRepo repositories.CleaningTaskRepository, ids utils.IDGenerator, now func() time.Time, notifier CleaningNotifier, m *metrics.Metrics) CleaningUsecase {
	if now == nil {
		now = time.Now
	}
	return &cleaningUsecase{taskRepo: taskRepo, ids: ids, now: now, notifier: notifier, metrics: m}
}

func (u *cleaningUsecase) GetCleaningTasks(ctx context.Context) ([]entities.CleaningTask, error) {
	return u.taskRepo.GetCleaningTasks(ctx)
}

func (u *cleaningUsecase) AddCleaningTask(ctx context.Context, roomID string, requestedAt time.Time) (entities.CleaningTask, error) {
	if requestedAt.IsZero() {
		requestedAt = u.now()
	}
	task := entities.CleaningTask{
		TaskID:      u.ids.NewID(),
		RoomID:      roomID,
		RequestedAt: requestedAt.Format(entities.RequestedAtLayout),
		Status:      entities.TaskStatusPending,
	}
	if err := u.taskRepo.AddCleaningTask(ctx, task); err != nil {
		return entities.CleaningTask{}, fmt.Errorf("add cleaning task: %w", err)
	}
	u.metrics.CleaningTaskCreated()

	if u.notifier != nil {
		if err := u.notifier.CleaningRequested(ctx, task); err != nil {
			slog.ErrorContext(ctx, "failed to notify housekeeping", "taskId", task.TaskID, "error", err)
		}
	}
	return task, nil
}

func (u *cleaningUsecase) CompleteCleaningTask(ctx context.Context, taskID string) error {
	found, err := u.taskRepo.UpdateCleaningTask(ctx, taskID, map[string]any{
		"status": entities.TaskStatusCompleted,
	})
	if err != nil {
		return fmt.Errorf("complete cleaning task %s: %w", taskID, err)
	}
	if found {
		u.metrics.CleaningTaskCompleted()
	}
	return nil
}
