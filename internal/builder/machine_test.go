package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kids-burger-backend/internal/builder"
	"kids-burger-backend/internal/catalog"
	"kids-burger-backend/internal/models"
)

func newMachine() *builder.Machine {
	return builder.NewMachine(catalog.Default().Lookup)
}

func TestMachine_DropOnTargetCommits(t *testing.T) {
	m := newMachine()

	require.NoError(t, m.Pick(models.Ingredient{ID: 3}))
	assert.Equal(t, builder.StateHolding, m.State())

	m.EnterTarget()
	assert.Equal(t, builder.StateArmed, m.State())

	ing, ok := m.Release()
	assert.True(t, ok)
	assert.Equal(t, "Beef Patty", ing.Name)
	assert.Equal(t, builder.StateIdle, m.State())
}

func TestMachine_ReleaseOutsideTargetIsNoop(t *testing.T) {
	m := newMachine()

	require.NoError(t, m.Pick(models.Ingredient{ID: 3}))
	m.EnterTarget()
	m.LeaveTarget()
	assert.Equal(t, builder.StateHolding, m.State())

	_, ok := m.Release()
	assert.False(t, ok)
	assert.Equal(t, builder.StateIdle, m.State())
}

func TestMachine_SecondReleaseWithoutPickIsNoop(t *testing.T) {
	m := newMachine()

	require.NoError(t, m.Pick(models.Ingredient{ID: 10}))
	m.EnterTarget()
	_, ok := m.Release()
	require.True(t, ok)

	m.EnterTarget()
	_, ok = m.Release()
	assert.False(t, ok)
}

func TestMachine_EnterWhileIdleIsIgnored(t *testing.T) {
	m := newMachine()

	m.EnterTarget()
	assert.Equal(t, builder.StateIdle, m.State())
	_, ok := m.Release()
	assert.False(t, ok)
}

func TestMachine_PickReplacesHeld(t *testing.T) {
	m := newMachine()

	require.NoError(t, m.Pick(models.Ingredient{ID: 3}))
	require.NoError(t, m.Pick(models.Ingredient{ID: 12}))

	held, ok := m.Held()
	require.True(t, ok)
	assert.Equal(t, "Ketchup", held.Name)
}

func TestMachine_PickUsesCatalogCopy(t *testing.T) {
	m := newMachine()

	require.NoError(t, m.Pick(models.Ingredient{ID: 3, Name: "Beef Patty"}))
	m.EnterTarget()
	ing, ok := m.Release()
	require.True(t, ok)
	assert.Equal(t, "100", ing.Price.String())
}

func TestMachine_PickRejectsUnknownAndMismatched(t *testing.T) {
	m := newMachine()

	err := m.Pick(models.Ingredient{ID: 999})
	assert.ErrorIs(t, err, builder.ErrInvalidIngredient)
	assert.Equal(t, builder.StateIdle, m.State())

	require.NoError(t, m.Pick(models.Ingredient{ID: 3}))
	err = m.Pick(models.Ingredient{ID: 3, Name: "Golden Patty"})
	assert.ErrorIs(t, err, builder.ErrInvalidIngredient)
	assert.Equal(t, builder.StateIdle, m.State(), "a rejected pick resets the machine")
}

func TestMachine_PickRejectsUnavailable(t *testing.T) {
	c, err := catalog.New([]models.Ingredient{
		{ID: 1, Name: "Truffle", Type: models.CategorySauce, IsAvailable: false},
	}, nil)
	require.NoError(t, err)
	m := builder.NewMachine(c.Lookup)

	assert.ErrorIs(t, m.Pick(models.Ingredient{ID: 1}), builder.ErrUnavailable)
}

func TestMachine_Cancel(t *testing.T) {
	m := newMachine()

	require.NoError(t, m.Pick(models.Ingredient{ID: 3}))
	m.EnterTarget()
	m.Cancel()

	assert.Equal(t, builder.StateIdle, m.State())
	_, held := m.Held()
	assert.False(t, held)
}

// For any event sequence the selection grows by at most one per release,
// and only when the release happens while armed.
func TestMachine_RandomSequencesCommitOnlyFromArmed(t *testing.T) {
	c := catalog.Default()
	rng := rand.New(rand.NewSource(42))
	kinds := []builder.EventKind{
		builder.EventPick, builder.EventEnterTarget, builder.EventLeaveTarget,
		builder.EventRelease, builder.EventCancel,
	}

	for run := 0; run < 200; run++ {
		m := builder.NewMachine(c.Lookup)
		selected, releases := 0, 0

		for step := 0; step < 40; step++ {
			ev := builder.Event{Kind: kinds[rng.Intn(len(kinds))]}
			if ev.Kind == builder.EventPick {
				ev.Ingredient = models.Ingredient{ID: int64(rng.Intn(c.Len()+2) + 1)}
			}

			if ev.Kind == builder.EventRelease {
				releases++
			}
			before := m.State()
			_, committed, _ := m.Apply(ev)
			if committed {
				selected++
			}

			if committed {
				assert.Equal(t, builder.EventRelease, ev.Kind)
				assert.Equal(t, builder.StateArmed, before)
			}
			if before == builder.StateIdle || before == builder.StateHolding {
				assert.False(t, committed, "committed from %s on %s", before, ev.Kind)
			}
		}
		assert.LessOrEqual(t, selected, releases)
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", builder.StateIdle.String())
	assert.Equal(t, "holding", builder.StateHolding.String())
	assert.Equal(t, "armed", builder.StateArmed.String())
	assert.Equal(t, "committed", builder.StateCommitted.String())
	assert.Equal(t, "release", builder.EventRelease.String())
}
