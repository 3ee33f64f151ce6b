package usecases

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IanAndy202/Hotel-App/app/entities"
	"github.com/IanAndy202/Hotel-App/app/repositories"
)

func TestDashboardUsecase_GetSummary(t *testing.T) {
	store := newStore(t, map[string]string{
		repositories.RoomsDocument: `{"rooms":[
			{"roomId":"101","status":"vacant"},
			{"roomId":"102","status":"ready"},
			{"roomId":"103","status":"occupied"},
			{"roomId":"104","status":"occupied"},
			{"roomId":"105","status":"maintenance"}
		]}`,
		repositories.CleaningTasksDocument: `{"cleaningTasks":[
			{"taskId":"1","roomId":"101","requestedAt":"x","status":"pending"},
			{"taskId":"2","roomId":"102","requestedAt":"x","status":"completed"}
		]}`,
	})
	uc := NewDashboardUsecase(repositories.NewRoomRepository(store), repositories.NewCleaningTaskRepository(store))

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.DashboardSummary{
		TotalRooms:       5,
		Vacant:           1,
		Ready:            1,
		Occupied:         2,
		PendingCleanings: 1,
		OccupancyRate:    40,
	}, summary)
}

func TestDashboardUsecase_Empty(t *testing.T) {
	store := newStore(t, nil)
	uc := NewDashboardUsecase(repositories.NewRoomRepository(store), repositories.NewCleaningTaskRepository(store))

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary)
}

func TestDashboardUsecase_StoreError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rooms.json"), []byte(`{"rooms":[]}`), 0o644))
	store := repositories.NewJSONFileStore(dir)
	uc := NewDashboardUsecase(repositories.NewRoomRepository(store), repositories.NewCleaningTaskRepository(store))

	_, err := uc.GetSummary(context.Background())
	assert.ErrorIs(t, err, repositories.ErrIO)
}
