// Package builder implements the burger build interaction: the drag/drop
// selection state machine, the pointer and touch input adapters that feed it,
// and build sessions that own a selection list.
package builder

import (
	"errors"
	"fmt"

	"kids-burger-backend/internal/models"
	"kids-burger-backend/internal/pricing"
)

type State int

const (
	StateIdle State = iota
	StateHolding
	StateArmed
	// StateCommitted is transient: Release passes through it and lands in
	// StateIdle before returning.
	StateCommitted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHolding:
		return "holding"
	case StateArmed:
		return "armed"
	case StateCommitted:
		return "committed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrInvalidIngredient = errors.New("ingredient is not in the catalog")
	ErrUnavailable       = errors.New("ingredient is not available")
)

type EventKind int

const (
	EventPick EventKind = iota
	EventEnterTarget
	EventLeaveTarget
	EventRelease
	EventCancel
)

func (k EventKind) String() string {
	switch k {
	case EventPick:
		return "pick"
	case EventEnterTarget:
		return "enterTarget"
	case EventLeaveTarget:
		return "leaveTarget"
	case EventRelease:
		return "release"
	case EventCancel:
		return "cancel"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a modality-independent input to the Machine. Only EventPick
// carries an ingredient.
type Event struct {
	Kind       EventKind
	Ingredient models.Ingredient
}

// Machine tracks the ingredient currently held and whether it hovers over
// the drop target. It is not safe for concurrent use; Session serializes
// access.
type Machine struct {
	state  State
	held   models.Ingredient
	lookup pricing.Lookup
}

func NewMachine(lookup pricing.Lookup) *Machine {
	return &Machine{state: StateIdle, lookup: lookup}
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Held() (models.Ingredient, bool) {
	if m.state == StateHolding || m.state == StateArmed {
		return m.held, true
	}
	return models.Ingredient{}, false
}

// Pick picks up an ingredient. The reference must resolve to an available
// catalog ingredient with the same name; the catalog copy is what gets held,
// so a forged price never reaches the selection. Picking while already
// holding replaces the held ingredient. A rejected pick leaves the machine
// idle.
func (m *Machine) Pick(ref models.Ingredient) error {
	ing, ok := m.lookup(ref.ID)
	if !ok || (ref.Name != "" && ref.Name != ing.Name) {
		m.reset()
		return fmt.Errorf("%w: %d", ErrInvalidIngredient, ref.ID)
	}
	if !ing.IsAvailable {
		m.reset()
		return fmt.Errorf("%w: %s", ErrUnavailable, ing.Name)
	}
	m.held = ing
	m.state = StateHolding
	return nil
}

func (m *Machine) EnterTarget() {
	if m.state == StateHolding {
		m.state = StateArmed
	}
}

func (m *Machine) LeaveTarget() {
	if m.state == StateArmed {
		m.state = StateHolding
	}
}

// Release ends the gesture. Only an armed machine commits; the committed
// ingredient is returned with ok set. Any other state resets to idle without
// committing, so a second release without a new pick is a no-op.
func (m *Machine) Release() (models.Ingredient, bool) {
	if m.state != StateArmed {
		m.reset()
		return models.Ingredient{}, false
	}
	m.state = StateCommitted
	committed := m.held
	m.reset()
	return committed, true
}

func (m *Machine) Cancel() {
	m.reset()
}

// Apply routes one event through the transition table.
func (m *Machine) Apply(ev Event) (models.Ingredient, bool, error) {
	switch ev.Kind {
	case EventPick:
		return models.Ingredient{}, false, m.Pick(ev.Ingredient)
	case EventEnterTarget:
		m.EnterTarget()
	case EventLeaveTarget:
		m.LeaveTarget()
	case EventRelease:
		ing, ok := m.Release()
		return ing, ok, nil
	case EventCancel:
		m.Cancel()
	default:
		return models.Ingredient{}, false, fmt.Errorf("unknown event kind %v", ev.Kind)
	}
	return models.Ingredient{}, false, nil
}

func (m *Machine) reset() {
	m.state = StateIdle
	m.held = models.Ingredient{}
}
