// Package pricing folds a burger selection into totals, grouped display rows
// and order submission payloads. All amounts are fixed-point decimals with two
// fraction digits.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"kids-burger-backend/internal/models"
)

// BunsPerBurger is the top and bottom bun every burger is charged for.
const BunsPerBurger = 2

var BaseBunPrice = decimal.NewFromInt(50)

var (
	ErrUnknownIngredient = errors.New("unknown ingredient")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
)

// Lookup resolves an ingredient id against the catalog.
type Lookup func(id int64) (models.Ingredient, bool)

// BaseCost is the price of the two buns, charged even for an empty build.
func BaseCost() decimal.Decimal {
	return BaseBunPrice.Mul(decimal.NewFromInt(BunsPerBurger))
}

// ComputeTotal returns 2 x bun price plus every selected ingredient's price,
// counted with multiplicity.
func ComputeTotal(entries []models.SelectionEntry) decimal.Decimal {
	total := BaseCost()
	for _, e := range entries {
		total = total.Add(e.Ingredient.Price)
	}
	return total.Round(2)
}

type Group struct {
	Ingredient models.Ingredient
	Count      int
}

func (g Group) Subtotal() decimal.Decimal {
	return g.Ingredient.Price.Mul(decimal.NewFromInt(int64(g.Count)))
}

type groupKey struct {
	id   int64
	name string
}

// GroupByIdentity collapses entries into (ingredient, count) rows keyed by
// id and name, in order of first appearance. The input is not modified.
func GroupByIdentity(entries []models.SelectionEntry) []Group {
	index := make(map[groupKey]int, len(entries))
	groups := make([]Group, 0, len(entries))
	for _, e := range entries {
		key := groupKey{id: e.Ingredient.ID, name: e.Ingredient.Name}
		if i, ok := index[key]; ok {
			groups[i].Count++
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{Ingredient: e.Ingredient, Count: 1})
	}
	return groups
}

// Submission is the payload sent to the order store.
type Submission struct {
	Ingredients []models.OrderLine
	TotalPrice  string
	Status      models.OrderStatus
}

// BuildSubmission aggregates entries by ingredient id and attaches the
// computed total. An empty selection still yields a submission; callers gate
// completion on a non-empty build.
func BuildSubmission(entries []models.SelectionEntry) Submission {
	index := make(map[int64]int, len(entries))
	lines := make([]models.OrderLine, 0, len(entries))
	for _, e := range entries {
		if i, ok := index[e.Ingredient.ID]; ok {
			lines[i].Quantity++
			continue
		}
		index[e.Ingredient.ID] = len(lines)
		lines = append(lines, models.OrderLine{ID: e.Ingredient.ID, Quantity: 1})
	}

	return Submission{
		Ingredients: lines,
		TotalPrice:  ComputeTotal(entries).StringFixed(2),
		Status:      models.OrderStatusPending,
	}
}

// TotalForLines recomputes an order total from (id, quantity) pairs.
func TotalForLines(lines []models.OrderLine, lookup Lookup) (decimal.Decimal, error) {
	total := BaseCost()
	for _, line := range lines {
		if line.Quantity < 1 {
			return decimal.Zero, fmt.Errorf("%w: ingredient %d", ErrInvalidQuantity, line.ID)
		}
		ing, ok := lookup(line.ID)
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %d", ErrUnknownIngredient, line.ID)
		}
		total = total.Add(ing.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.Round(2), nil
}
