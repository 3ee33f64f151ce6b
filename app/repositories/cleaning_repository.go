package repositories

import (
	"context"

	"github.com/IanAndy202/Hotel-App/app/entities"
)

type CleaningTaskRepository interface {
	GetCleaningTasks(ctx context.Context) ([]entities.CleaningTask, error)
	SaveCleaningTasks(ctx context.Context, tasks []entities.CleaningTask) error
	AddCleaningTask(ctx context.Context, task entities.CleaningTask) error
	// UpdateCleaningTask sets fields on the task with taskID and reports whether it was found.
	UpdateCleaningTask(ctx context.Context, taskID string, fields map[string]any) (bool, error)
}

type cleaningTaskRepository struct {
	tasks table[entities.CleaningTask]
}

func NewCleaningTaskRepository(store RecordStore) CleaningTaskRepository {
	return &cleaningTaskRepository{tasks: newTable[entities.CleaningTask](store, CleaningTasksDocument)}
}

func (r *cleaningTaskRepository) GetCleaningTasks(ctx context.Context) ([]entities.CleaningTask, error) {
	return r.tasks.all(ctx)
}

func (r *cleaningTaskRepository) SaveCleaningTasks(ctx context.Context, tasks []entities.CleaningTask) error {
	return r.tasks.save(ctx, tasks)
}

func (r *cleaningTaskRepository) AddCleaningTask(ctx context.Context, task entities.CleaningTask) error {
	return r.tasks.add(ctx, task)
}

func (r *cleaningTaskRepository) UpdateCleaningTask(ctx context.Context, taskID string, fields map[string]any) (bool, error) {
	return r.tasks.patch(ctx, "taskId", taskID, fields)
}
