package models

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryBun       Category = "bun"
	CategoryProtein   Category = "protein"
	CategoryCheese    Category = "cheese"
	CategoryVegetable Category = "vegetable"
	CategorySauce     Category = "sauce"
)

var Categories = []Category{
	CategoryBun,
	CategoryProtein,
	CategoryCheese,
	CategoryVegetable,
	CategorySauce,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Ingredient is a catalog row. Price carries two fraction digits.
type Ingredient struct {
	ID          int64
	Name        string
	Type        Category
	Price       decimal.Decimal
	ImageURL    string
	IsAvailable bool
}

type NutritionFacts struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Vitamins string `json:"vitamins"`
	FunFact  string `json:"funFact"`
}

// SelectionEntry is one ingredient placed on a burger, with its position in
// the build order.
type SelectionEntry struct {
	Sequence   int
	Ingredient Ingredient
}
