package mongodb

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukane-philemon/gradeboard/internal/db"
	"github.com/ukane-philemon/gradeboard/internal/pagestate"
	"github.com/ukane-philemon/gradeboard/internal/student"
)

// newTestDB connects to the server at DB_URL using a throwaway database.
func newTestDB(t *testing.T) *MongoDB {
	t.Helper()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		t.Skip("DB_URL is not set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	dbName := fmt.Sprintf("test_gradeboard_%d", time.Now().UnixNano())
	mdb, err := New(ctx, dbName, dbURL, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		assert.NoError(t, mdb.db.Drop(shutdownCtx))
		assert.NoError(t, mdb.Shutdown(shutdownCtx))
		cancel()
	})

	return mdb
}

func TestRoster(t *testing.T) {
	mdb := newTestDB(t)

	n, err := mdb.SeedStudents(student.Seed())
	require.NoError(t, err)
	assert.Equal(t, 29, n)

	n, err = mdb.SeedStudents(student.Seed())
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := mdb.Students()
	require.NoError(t, err)
	require.Len(t, all, 29)
	assert.Equal(t, "Andrew Young", all[0].Name)

	first, err := mdb.Student("100000003")
	require.NoError(t, err)
	assert.Equal(t, "17/01/2024", first.Date)

	added, err := mdb.AddStudent(&student.NewStudent{Name: "New Student", Date: "01/03/2024", Grade: 70, Subject: "Physics"})
	require.NoError(t, err)
	assert.Equal(t, "100000030", added.ID)

	all, err = mdb.Students()
	require.NoError(t, err)
	assert.Equal(t, "New Student", all[len(all)-1].Name)

	grade := 55.0
	updated, err := mdb.UpdateStudent("100000003", &student.UpdateStudent{Grade: &grade})
	require.NoError(t, err)
	assert.Equal(t, grade, updated.Grade)
	assert.Equal(t, "17/01/2024", updated.Date)

	require.NoError(t, mdb.RemoveStudent("100000003"))
	second, err := mdb.Student("100000003")
	require.NoError(t, err)
	assert.Equal(t, "19/01/2024", second.Date)

	require.NoError(t, mdb.RemoveStudent("100000003"))
	assert.True(t, errors.Is(mdb.RemoveStudent("100000003"), db.ErrorNotFound))
	_, err = mdb.Student("100000003")
	assert.True(t, errors.Is(err, db.ErrorNotFound))

	require.NoError(t, mdb.ClearStudents())
	all, err = mdb.Students()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStorageBackend(t *testing.T) {
	mdb := newTestDB(t)
	ctx := context.Background()

	_, found, err := mdb.GetItem(ctx, pagestate.StorageKey)
	require.NoError(t, err)
	assert.False(t, found)

	s := pagestate.New(ctx, mdb, nil)
	require.NoError(t, s.SetMonitorPage(pagestate.MonitorPage{NameFilter: "sam", ShowFailed: true}))

	reloaded := pagestate.New(ctx, mdb, nil)
	assert.Equal(t, "sam", reloaded.MonitorPage().NameFilter)

	reloaded.ClearAll()
	_, found, err = mdb.GetItem(ctx, pagestate.StorageKey)
	require.NoError(t, err)
	assert.False(t, found)
}
