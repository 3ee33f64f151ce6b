package usecases

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IanAndy202/Hotel-App/app/repositories"
)

// newStore seeds a temp data dir with the given documents (name -> JSON body).
func newStore(t *testing.T, docs map[string]string) repositories.RecordStore {
	t.Helper()
	dir := t.TempDir()
	defaults := map[string]string{
		repositories.UsersDocument:         `{"users":[]}`,
		repositories.RoomsDocument:         `{"rooms":[]}`,
		repositories.GuestsDocument:        `{"guests":[]}`,
		repositories.CleaningTasksDocument: `{"cleaningTasks":[]}`,
	}
	for name, body := range docs {
		defaults[name] = body
	}
	for name, body := range defaults {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(body), 0o644))
	}
	return repositories.NewJSONFileStore(dir)
}
