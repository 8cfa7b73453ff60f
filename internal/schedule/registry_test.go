package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 5, 1, hour, min, 0, 0, time.Local)
}

func TestAddAndList(t *testing.T) {
	t.Parallel()
	r := New()

	start := at(9, 0)
	end := at(9, 15)
	require.NoError(t, r.Add("Standup", start, end))

	tasks := r.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Standup", tasks[0].Name)
	assert.True(t, tasks[0].Start.Equal(start))
	assert.True(t, tasks[0].End.Equal(end))
	assert.Equal(t, 15*time.Minute, tasks[0].Duration())
}

func TestAddNonPositiveDuration(t *testing.T) {
	t.Parallel()
	r := New()

	err := r.Add("backwards", at(10, 0), at(9, 0))
	require.ErrorIs(t, err, ErrNonPositiveDuration)

	err = r.Add("zero", at(10, 0), at(10, 0))
	require.ErrorIs(t, err, ErrNonPositiveDuration)

	assert.Equal(t, 0, r.Len(), "failed add must not mutate")
}

func TestAddConflict(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		start, end   time.Time
		wantConflict bool
	}{
		{"identical", at(9, 0), at(10, 0), true},
		{"starts inside", at(9, 30), at(10, 30), true},
		{"ends inside", at(8, 30), at(9, 30), true},
		{"surrounds", at(8, 0), at(11, 0), true},
		{"contained", at(9, 15), at(9, 45), true},
		{"touching after", at(10, 0), at(11, 0), false},
		{"touching before", at(8, 0), at(9, 0), false},
		{"disjoint", at(12, 0), at(13, 0), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := New()
			require.NoError(t, r.Add("base", at(9, 0), at(10, 0)))

			err := r.Add("candidate", tt.start, tt.end)
			if tt.wantConflict {
				require.ErrorIs(t, err, ErrConflict)
				var ce ConflictError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, "base", ce.Existing.Name)
				assert.Equal(t, 1, r.Len())
			} else {
				require.NoError(t, err)
				assert.Equal(t, 2, r.Len())
			}
		})
	}
}

func TestDurationCheckedBeforeConflict(t *testing.T) {
	t.Parallel()
	r := New()
	require.NoError(t, r.Add("base", at(9, 0), at(10, 0)))

	// Inverted interval inside an occupied slot: the duration failure wins.
	err := r.Add("candidate", at(9, 45), at(9, 15))
	require.ErrorIs(t, err, ErrNonPositiveDuration)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestRemove(t *testing.T) {
	t.Parallel()
	r := New()
	require.NoError(t, r.Add("A", at(9, 0), at(10, 0)))
	require.NoError(t, r.Add("B", at(10, 0), at(11, 0)))
	require.NoError(t, r.Add("C", at(11, 0), at(12, 0)))

	assert.Equal(t, 1, r.Remove("B"))

	names := make([]string, 0, 2)
	for _, task := range r.List() {
		names = append(names, task.Name)
	}
	assert.Equal(t, []string{"A", "C"}, names, "relative order preserved")

	// Removal is idempotent.
	assert.Equal(t, 0, r.Remove("B"))
	assert.Equal(t, 2, r.Len())

	// Unknown names are a no-op.
	assert.Equal(t, 0, r.Remove("nope"))
}

func TestRemoveAllMatches(t *testing.T) {
	t.Parallel()
	r := New()
	require.NoError(t, r.Add("dup", at(9, 0), at(10, 0)))
	require.NoError(t, r.Add("dup", at(10, 0), at(11, 0)))
	require.NoError(t, r.Add("other", at(11, 0), at(12, 0)))

	assert.Equal(t, 2, r.Remove("dup"))
	require.Len(t, r.List(), 1)
	assert.Equal(t, "other", r.List()[0].Name)
}

func TestRemoveIsCaseSensitive(t *testing.T) {
	t.Parallel()
	r := New()
	require.NoError(t, r.Add("Standup", at(9, 0), at(10, 0)))

	assert.Equal(t, 0, r.Remove("standup"))
	assert.Equal(t, 1, r.Len())
}

func TestHasConflict(t *testing.T) {
	t.Parallel()
	r := New()
	assert.False(t, r.HasConflict(at(9, 0), at(10, 0)), "empty registry never conflicts")

	require.NoError(t, r.Add("base", at(9, 0), at(10, 0)))
	assert.True(t, r.HasConflict(at(9, 30), at(10, 30)))
	assert.False(t, r.HasConflict(at(10, 0), at(11, 0)))

	// Pure query: no mutation either way.
	assert.Equal(t, 1, r.Len())
}

func TestListReturnsSnapshot(t *testing.T) {
	t.Parallel()
	r := New()
	require.NoError(t, r.Add("A", at(9, 0), at(10, 0)))

	tasks := r.List()
	tasks[0].Name = "mutated"

	assert.Equal(t, "A", r.List()[0].Name)
}

func TestScenarioStandup(t *testing.T) {
	t.Parallel()
	r := New()

	require.NoError(t, r.Add("Standup", at(9, 0), at(9, 15)))

	tasks := r.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Standup", tasks[0].Name)

	err := r.Add("Overlap", at(9, 10), at(9, 30))
	require.ErrorIs(t, err, ErrConflict)

	r.Remove("Standup")
	assert.Empty(t, r.List())
}
