package catalog

import (
	"context"
	"errors"
	"fmt"

	"kids-burger-backend/internal/models"
)

var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrNoNutritionFacts   = errors.New("no nutrition facts for ingredient")
)

// Source loads catalog rows from an external system at startup.
type Source interface {
	LoadIngredients(ctx context.Context) ([]models.Ingredient, error)
}

// Catalog is the read-only set of purchasable ingredients. It is built once
// and never mutated, so it is safe for concurrent use without locking.
type Catalog struct {
	ordered   []models.Ingredient
	byID      map[int64]models.Ingredient
	nutrition map[string]models.NutritionFacts
}

func New(ingredients []models.Ingredient, nutrition map[string]models.NutritionFacts) (*Catalog, error) {
	c := &Catalog{
		ordered:   make([]models.Ingredient, 0, len(ingredients)),
		byID:      make(map[int64]models.Ingredient, len(ingredients)),
		nutrition: make(map[string]models.NutritionFacts, len(nutrition)),
	}

	for _, ing := range ingredients {
		if _, dup := c.byID[ing.ID]; dup {
			return nil, fmt.Errorf("duplicate ingredient id %d", ing.ID)
		}
		if ing.Name == "" {
			return nil, fmt.Errorf("ingredient %d has no name", ing.ID)
		}
		if !ing.Type.Valid() {
			return nil, fmt.Errorf("ingredient %d has unknown type %q", ing.ID, ing.Type)
		}
		if ing.Price.IsNegative() {
			return nil, fmt.Errorf("ingredient %d has negative price %s", ing.ID, ing.Price)
		}
		c.ordered = append(c.ordered, ing)
		c.byID[ing.ID] = ing
	}

	for name, facts := range nutrition {
		c.nutrition[name] = facts
	}

	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(seedIngredients(), seedNutrition())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// Load builds a catalog from src. Nutrition facts always come from the
// built-in table and are matched by ingredient name.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	ingredients, err := src.LoadIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}
	if len(ingredients) == 0 {
		return nil, errors.New("ingredient source returned no rows")
	}
	return New(ingredients, seedNutrition())
}

// List returns every available ingredient in catalog order.
func (c *Catalog) List() []models.Ingredient {
	out := make([]models.Ingredient, 0, len(c.ordered))
	for _, ing := range c.ordered {
		if ing.IsAvailable {
			out = append(out, ing)
		}
	}
	return out
}

// ListByType returns the available ingredients of one category. An unknown
// category yields an empty list.
func (c *Catalog) ListByType(category models.Category) []models.Ingredient {
	out := make([]models.Ingredient, 0)
	for _, ing := range c.ordered {
		if ing.IsAvailable && ing.Type == category {
			out = append(out, ing)
		}
	}
	return out
}

// Get returns an ingredient by id whether or not it is available.
func (c *Catalog) Get(id int64) (models.Ingredient, error) {
	ing, ok := c.byID[id]
	if !ok {
		return models.Ingredient{}, fmt.Errorf("%w: %d", ErrIngredientNotFound, id)
	}
	return ing, nil
}

func (c *Catalog) Lookup(id int64) (models.Ingredient, bool) {
	ing, ok := c.byID[id]
	return ing, ok
}

func (c *Catalog) Nutrition(id int64) (models.NutritionFacts, error) {
	ing, err := c.Get(id)
	if err != nil {
		return models.NutritionFacts{}, err
	}
	facts, ok := c.nutrition[ing.Name]
	if !ok {
		return models.NutritionFacts{}, fmt.Errorf("%w: %s", ErrNoNutritionFacts, ing.Name)
	}
	return facts, nil
}

// Tip is the short kid-friendly line shown after an ingredient is added.
func (c *Catalog) Tip(ing models.Ingredient) string {
	facts, ok := c.nutrition[ing.Name]
	if !ok {
		return fmt.Sprintf("Nice choice! Added %s to your burger.", ing.Name)
	}
	return fmt.Sprintf("Great choice! %s has %d calories and %s of protein. %s",
		ing.Name, facts.Calories, facts.Protein, facts.FunFact)
}

func (c *Catalog) Len() int {
	return len(c.ordered)
}
