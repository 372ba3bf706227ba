package supabase

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"kids-burger-backend/internal/catalog"
	"kids-burger-backend/internal/models"
)

const ingredientsTable = "ingredients"

// ingredientRow is one row of the ingredients table as PostgREST returns it.
type ingredientRow struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	IsAvailable bool            `json:"is_available"`
}

func (r ingredientRow) toModel() models.Ingredient {
	return models.Ingredient{
		ID:          r.ID,
		Name:        r.Name,
		Type:        models.Category(r.Type),
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		IsAvailable: r.IsAvailable,
	}
}

// IngredientSource loads the catalog from the Supabase ingredients table.
type IngredientSource struct {
	fetch func() ([]ingredientRow, error)
}

var _ catalog.Source = (*IngredientSource)(nil)

func NewIngredientSource(c *Client) *IngredientSource {
	return &IngredientSource{
		fetch: func() ([]ingredientRow, error) {
			var rows []ingredientRow
			if _, err := c.Supabase.From(ingredientsTable).Select("*", "", false).ExecuteTo(&rows); err != nil {
				return nil, err
			}
			return rows, nil
		},
	}
}

func (s *IngredientSource) LoadIngredients(ctx context.Context) ([]models.Ingredient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.fetch()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", ingredientsTable, err)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	out := make([]models.Ingredient, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}
