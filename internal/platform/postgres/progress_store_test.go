//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/finstart-api/internal/platform/postgres"
	"github.com/phrazzld/finstart-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresProgressStore_GetOrCreate(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresProgressStore(tx, nil)
		userID := "user-" + uuid.NewString()
		now := time.Now().UTC()

		p, err := s.GetOrCreate(ctx, userID, now)
		require.NoError(t, err)
		assert.Equal(t, userID, p.UserID)
		assert.Empty(t, p.CompletedLessons)
		assert.Empty(t, p.QuizScores)

		again, err := s.GetOrCreate(ctx, userID, now.Add(time.Hour))
		require.NoError(t, err)
		assert.WithinDuration(t, p.LastActive, again.LastActive, time.Millisecond,
			"reading an existing record must not touch last_active")
	})
}

func TestPostgresProgressStore_AddCompletedLessonIsIdempotent(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresProgressStore(tx, nil)
		userID := "user-" + uuid.NewString()
		now := time.Now().UTC()

		require.NoError(t, s.AddCompletedLesson(ctx, userID, "l1", now))
		require.NoError(t, s.AddCompletedLesson(ctx, userID, "l2", now))
		require.NoError(t, s.AddCompletedLesson(ctx, userID, "l1", now.Add(time.Minute)))

		p, err := s.GetOrCreate(ctx, userID, now)
		require.NoError(t, err)
		assert.Equal(t, []string{"l1", "l2"}, p.CompletedLessons)
		assert.WithinDuration(t, now.Add(time.Minute), p.LastActive, time.Millisecond)
	})
}

func TestPostgresProgressStore_SetQuizScoreOverwrites(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresProgressStore(tx, nil)
		userID := "user-" + uuid.NewString()
		now := time.Now().UTC()

		require.NoError(t, s.SetQuizScore(ctx, userID, "l1", 60, now))
		require.NoError(t, s.SetQuizScore(ctx, userID, "l2", 75.5, now))
		require.NoError(t, s.SetQuizScore(ctx, userID, "l1", 90, now))

		p, err := s.GetOrCreate(ctx, userID, now)
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"l1": 90, "l2": 75.5}, p.QuizScores)
	})
}

func TestPostgresProgressStore_AddCompletedSimulation(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresProgressStore(tx, nil)
		userID := "user-" + uuid.NewString()
		now := time.Now().UTC()

		require.NoError(t, s.AddCompletedSimulation(ctx, userID, "emi_calculator", now))
		require.NoError(t, s.AddCompletedSimulation(ctx, userID, "emi_calculator", now))
		require.NoError(t, s.AddCompletedLesson(ctx, userID, "l1", now))

		p, err := s.GetOrCreate(ctx, userID, now)
		require.NoError(t, err)
		assert.Equal(t, []string{"emi_calculator"}, p.SimulationsCompleted)
		assert.Equal(t, []string{"l1"}, p.CompletedLessons)
	})
}

// Concurrent completions for one user must all land.
func TestPostgresProgressStore_ConcurrentCompletions(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()
	s := postgres.NewPostgresProgressStore(db, nil)
	userID := "user-" + uuid.NewString()
	t.Cleanup(func() {
		_, _ = db.ExecContext(context.Background(), "DELETE FROM progress WHERE user_id = $1", userID)
	})

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- s.AddCompletedLesson(ctx, userID, fmt.Sprintf("lesson-%02d", i), time.Now())
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	p, err := s.GetOrCreate(ctx, userID, time.Now())
	require.NoError(t, err)
	assert.Len(t, p.CompletedLessons, n)
}
