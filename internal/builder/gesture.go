package builder

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"kids-burger-backend/internal/models"
)

var (
	ErrMalformedPayload = errors.New("malformed ingredient payload")
	ErrUnknownModality  = errors.New("unknown input modality")
	ErrUnknownGesture   = errors.New("unknown gesture type")
)

type Modality string

const (
	ModalityPointer Modality = "pointer"
	ModalityTouch   Modality = "touch"
)

// Input is one raw event from a client. Payload is the serialized ingredient
// carried by a drag; IngredientID is used when no payload is sent. X and Y
// are client coordinates, used by touch hit-testing.
type Input struct {
	Type         string
	Payload      string
	IngredientID int64
	X            float64
	Y            float64
}

// Rect is the drop target's bounds in client coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var DefaultDropTarget = Rect{X: 0, Y: 0, Width: 360, Height: 480}

func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Contains reports whether (x, y) lies within r, edges included.
func (r Rect) Contains(x, y float64) bool {
	if !r.Valid() {
		return false
	}
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Adapter translates one modality's raw input into machine events.
type Adapter interface {
	Translate(in Input, target Rect) ([]Event, error)
}

func AdapterFor(m Modality) (Adapter, error) {
	switch m {
	case ModalityPointer:
		return PointerAdapter{}, nil
	case ModalityTouch:
		return TouchAdapter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModality, m)
	}
}

// PointerAdapter maps HTML5 drag-and-drop events. The drop target reports
// enter and leave itself, so the target rectangle is not consulted.
type PointerAdapter struct{}

func (PointerAdapter) Translate(in Input, _ Rect) ([]Event, error) {
	switch strings.ToLower(in.Type) {
	case "dragstart", "pointerdown":
		ing, err := pickedIngredient(in)
		if err != nil {
			return nil, err
		}
		return []Event{{Kind: EventPick, Ingredient: ing}}, nil
	case "click":
		return tapEvents(in)
	case "dragenter", "dragover":
		return []Event{{Kind: EventEnterTarget}}, nil
	case "dragleave":
		return []Event{{Kind: EventLeaveTarget}}, nil
	case "drop", "pointerup":
		return []Event{{Kind: EventRelease}}, nil
	case "dragend", "pointercancel":
		return []Event{{Kind: EventCancel}}, nil
	default:
		return nil, fmt.Errorf("%w: pointer %q", ErrUnknownGesture, in.Type)
	}
}

// TouchAdapter has no native drop events, so enter, leave and completion are
// resolved by hit-testing coordinates against the drop target.
type TouchAdapter struct{}

func (TouchAdapter) Translate(in Input, target Rect) ([]Event, error) {
	switch strings.ToLower(in.Type) {
	case "touchstart":
		ing, err := pickedIngredient(in)
		if err != nil {
			return nil, err
		}
		return []Event{{Kind: EventPick, Ingredient: ing}}, nil
	case "tap":
		return tapEvents(in)
	case "touchmove":
		if target.Contains(in.X, in.Y) {
			return []Event{{Kind: EventEnterTarget}}, nil
		}
		return []Event{{Kind: EventLeaveTarget}}, nil
	case "touchend":
		if target.Contains(in.X, in.Y) {
			return []Event{{Kind: EventEnterTarget}, {Kind: EventRelease}}, nil
		}
		return []Event{{Kind: EventLeaveTarget}, {Kind: EventRelease}}, nil
	case "touchcancel":
		return []Event{{Kind: EventCancel}}, nil
	default:
		return nil, fmt.Errorf("%w: touch %q", ErrUnknownGesture, in.Type)
	}
}

// tapEvents adds an ingredient in one step (tap or click on its card) by
// running a full pick, enter, release cycle through the machine.
func tapEvents(in Input) ([]Event, error) {
	ing, err := pickedIngredient(in)
	if err != nil {
		return nil, err
	}
	return []Event{
		{Kind: EventPick, Ingredient: ing},
		{Kind: EventEnterTarget},
		{Kind: EventRelease},
	}, nil
}

type ingredientPayload struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

func pickedIngredient(in Input) (models.Ingredient, error) {
	if in.Payload == "" {
		if in.IngredientID == 0 {
			return models.Ingredient{}, fmt.Errorf("%w: no ingredient given", ErrMalformedPayload)
		}
		return models.Ingredient{ID: in.IngredientID}, nil
	}

	var p ingredientPayload
	if err := json.Unmarshal([]byte(in.Payload), &p); err != nil {
		return models.Ingredient{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if p.ID == nil {
		return models.Ingredient{}, fmt.Errorf("%w: missing id", ErrMalformedPayload)
	}
	return models.Ingredient{ID: *p.ID, Name: p.Name}, nil
}
