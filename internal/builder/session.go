package builder

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"kids-burger-backend/internal/models"
	"kids-burger-backend/internal/pricing"
)

var (
	ErrEmptyBuild      = errors.New("add at least one ingredient before completing the burger")
	ErrSubmitInFlight  = errors.New("an order for this burger is already being placed")
	ErrInvalidTarget   = errors.New("drop target must have a positive width and height")
	ErrNotSubmitting   = errors.New("no submission in progress")
	ErrSessionNotFound = errors.New("build session not found")
)

// Selection is the ordered list of committed ingredients. Duplicates are
// kept as separate entries.
type Selection struct {
	entries []models.SelectionEntry
	next    int
}

func (s *Selection) Append(ing models.Ingredient) models.SelectionEntry {
	e := models.SelectionEntry{Sequence: s.next, Ingredient: ing}
	s.next++
	s.entries = append(s.entries, e)
	return e
}

func (s *Selection) Entries() []models.SelectionEntry {
	return append([]models.SelectionEntry(nil), s.entries...)
}

func (s *Selection) Len() int {
	return len(s.entries)
}

func (s *Selection) Count(id int64) int {
	n := 0
	for _, e := range s.entries {
		if e.Ingredient.ID == id {
			n++
		}
	}
	return n
}

// DropFirst removes the first n entries and renumbers the rest.
func (s *Selection) DropFirst(n int) {
	if n > len(s.entries) {
		n = len(s.entries)
	}
	rest := append([]models.SelectionEntry(nil), s.entries[n:]...)
	for i := range rest {
		rest[i].Sequence = i
	}
	s.entries = rest
	s.next = len(rest)
}

func (s *Selection) Clear() {
	s.entries = nil
	s.next = 0
}

// Step is the progress indicator shown above the builder: 1 while empty,
// 2 with one or two ingredients, 3 from the third ingredient or once an
// order has been placed.
func Step(selected int, ordered bool) int {
	switch {
	case ordered || selected >= 3:
		return 3
	case selected >= 1:
		return 2
	default:
		return 1
	}
}

type Summary struct {
	ID              uuid.UUID
	State           State
	Held            *models.Ingredient
	Entries         []models.SelectionEntry
	Groups          []pricing.Group
	Total           decimal.Decimal
	Step            int
	CanComplete     bool
	Submitting      bool
	LastAdded       *models.Ingredient
	DropTarget      Rect
	LastOrderNumber string
}

// Session is one build: a machine, its selection and the drop target used
// for touch hit-testing. All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id         uuid.UUID
	machine    *Machine
	selection  Selection
	target     Rect
	lastAdded  *models.Ingredient
	submitting bool
	submitted  int
	ordered    bool
	lastOrder  string
	touchedAt  time.Time
	clock      func() time.Time
}

func NewSession(lookup pricing.Lookup, target Rect) *Session {
	return newSession(uuid.New(), lookup, target, time.Now)
}

func newSession(id uuid.UUID, lookup pricing.Lookup, target Rect, clock func() time.Time) *Session {
	if !target.Valid() {
		target = DefaultDropTarget
	}
	return &Session{
		id:        id,
		machine:   NewMachine(lookup),
		target:    target,
		touchedAt: clock(),
		clock:     clock,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Dispatch feeds one raw input through the modality's adapter. It reports
// whether an ingredient was committed to the selection. Malformed input
// resets the machine to idle and commits nothing.
func (s *Session) Dispatch(modality Modality, in Input) (bool, error) {
	adapter, err := AdapterFor(modality)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchedAt = s.clock()

	events, err := adapter.Translate(in, s.target)
	if err != nil {
		s.machine.Cancel()
		return false, err
	}

	committed := false
	for _, ev := range events {
		ing, ok, err := s.machine.Apply(ev)
		if err != nil {
			return committed, err
		}
		if ok {
			s.commit(ing)
			committed = true
		}
	}
	return committed, nil
}

func (s *Session) commit(ing models.Ingredient) {
	s.selection.Append(ing)
	held := ing
	s.lastAdded = &held
	s.ordered = false
}

func (s *Session) SetDropTarget(r Rect) error {
	if !r.Valid() {
		return ErrInvalidTarget
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = r
	s.touchedAt = s.clock()
	return nil
}

// Clear discards the selection and any held ingredient.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Clear()
	s.submitted = 0
	s.machine.Cancel()
	s.lastAdded = nil
	s.ordered = false
	s.lastOrder = ""
	s.touchedAt = s.clock()
}

// BeginSubmit marks a submission as outstanding and returns the entries to
// submit. Only one submission may be in flight per session.
func (s *Session) BeginSubmit() ([]models.SelectionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return nil, ErrSubmitInFlight
	}
	if s.selection.Len() == 0 {
		return nil, ErrEmptyBuild
	}
	s.submitting = true
	s.submitted = s.selection.Len()
	s.touchedAt = s.clock()
	return s.selection.Entries(), nil
}

// EndSubmit closes the outstanding submission. On success the submitted
// entries are discarded and anything committed after BeginSubmit stays; on
// failure the whole selection is kept so the order can be retried.
func (s *Session) EndSubmit(orderNumber string, submitErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.submitting {
		return ErrNotSubmitting
	}
	s.submitting = false
	submitted := s.submitted
	s.submitted = 0
	s.touchedAt = s.clock()
	if submitErr != nil {
		return nil
	}
	s.selection.DropFirst(submitted)
	if s.selection.Len() == 0 {
		s.lastAdded = nil
	}
	s.ordered = true
	s.lastOrder = orderNumber
	return nil
}

func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.selection.Entries()
	sum := Summary{
		ID:              s.id,
		State:           s.machine.State(),
		Entries:         entries,
		Groups:          pricing.GroupByIdentity(entries),
		Total:           pricing.ComputeTotal(entries),
		Step:            Step(len(entries), s.ordered),
		CanComplete:     len(entries) > 0 && !s.submitting,
		Submitting:      s.submitting,
		DropTarget:      s.target,
		LastOrderNumber: s.lastOrder,
	}
	if held, ok := s.machine.Held(); ok {
		sum.Held = &held
	}
	if s.lastAdded != nil {
		last := *s.lastAdded
		sum.LastAdded = &last
	}
	return sum
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return 0
	}
	return now.Sub(s.touchedAt)
}
