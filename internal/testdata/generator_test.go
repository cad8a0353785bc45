package testdata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/guesstimate/internal/angle"
	"github.com/jask/guesstimate/internal/config"
	"github.com/jask/guesstimate/internal/database/repository"
	"github.com/jask/guesstimate/internal/fraction"
	"github.com/jask/guesstimate/internal/random"
)

type memRepo struct{ rounds []repository.Round }

func (m *memRepo) Insert(_ context.Context, r repository.Round) (repository.Round, error) {
	m.rounds = append(m.rounds, r)
	return r, nil
}

func TestSeed(t *testing.T) {
	t.Parallel()

	repo := &memRepo{}
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, Seed(context.Background(), repo, random.New(42), 10, now))
	require.Len(t, repo.rounds, 10)

	for i, r := range repo.rounds {
		if i%2 == 0 {
			require.Equal(t, config.GameAngle, r.Game)
			require.Equal(t, angle.GradeFor(r.Difference), angle.Grade(r.Grade))
			require.LessOrEqual(t, r.Difference, 180.0)
		} else {
			require.Equal(t, config.GameFraction, r.Game)
			require.Equal(t, fraction.GradeFor(r.Difference), fraction.Grade(r.Grade))
			require.GreaterOrEqual(t, r.GuessVal, 0.0)
			require.LessOrEqual(t, r.GuessVal, 1.0)
		}
	}
	require.Equal(t, now.Add(-9*time.Minute), repo.rounds[0].CreatedAt)
	require.Equal(t, now, repo.rounds[9].CreatedAt)
}

func TestSeedIsDeterministic(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	a, b := &memRepo{}, &memRepo{}
	require.NoError(t, Seed(context.Background(), a, random.New(7), 6, now))
	require.NoError(t, Seed(context.Background(), b, random.New(7), 6, now))
	require.Equal(t, a.rounds, b.rounds)
}
