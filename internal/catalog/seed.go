package catalog

import (
	"github.com/shopspring/decimal"
	"kids-burger-backend/internal/models"
)

func seedIngredients() []models.Ingredient {
	rows := []struct {
		name     string
		category models.Category
		price    int64
		imageURL string
	}{
		{"Sesame Bun", models.CategoryBun, 50, "https://cdn.pixabay.com/photo/2022/01/24/19/57/bread-6964507_1280.jpg"},
		{"Wheat Bun", models.CategoryBun, 50, "https://cdn.pixabay.com/photo/2018/03/24/12/49/food-3256557_960_720.jpg"},
		{"Beef Patty", models.CategoryProtein, 100, "https://images.unsplash.com/photo-1558030006-450675393462?w=300&h=200"},
		{"Chicken Breast", models.CategoryProtein, 85, "https://images.unsplash.com/photo-1532550907401-a500c9a57435?w=300&h=200"},
		{"Veggie Patty", models.CategoryProtein, 75, "https://images.unsplash.com/photo-1585238342024-78d387f4a707?w=300&h=200"},
		{"Fresh Lettuce", models.CategoryVegetable, 80, "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=300&h=200"},
		{"Tomato Slices", models.CategoryVegetable, 200, "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?w=300&h=200"},
		{"Pickles", models.CategoryVegetable, 150, "https://images.unsplash.com/photo-1628773822503-930a7eaecf80?w=300&h=200"},
		{"Onion Rings", models.CategoryVegetable, 180, "https://images.unsplash.com/photo-1578849278619-e73505e9610f?w=300&h=200"},
		{"Cheddar Cheese", models.CategoryCheese, 300, "https://cdn.pixabay.com/photo/2010/12/16/12/09/keens-cheddar-3514_1280.jpg"},
		{"Mozzarella Cheese", models.CategoryCheese, 350, "https://cdn.pixabay.com/photo/2010/12/16/12/12/mozarella-3521_1280.jpg"},
		{"Ketchup", models.CategorySauce, 80, "https://cdn.pixabay.com/photo/2014/05/28/12/26/ketchup-356439_1280.jpg"},
		{"BBQ Sauce", models.CategorySauce, 90, "https://cdn.pixabay.com/photo/2015/01/30/08/52/ketchup-617231_1280.jpg"},
		{"Mayo", models.CategorySauce, 100, "https://cdn.pixabay.com/photo/2017/09/02/16/49/fast-food-2707831_1280.jpg"},
	}

	out := make([]models.Ingredient, len(rows))
	for i, r := range rows {
		out[i] = models.Ingredient{
			ID:          int64(i + 1),
			Name:        r.name,
			Type:        r.category,
			Price:       decimal.NewFromInt(r.price),
			ImageURL:    r.imageURL,
			IsAvailable: true,
		}
	}
	return out
}

func seedNutrition() map[string]models.NutritionFacts {
	return map[string]models.NutritionFacts{
		"Sesame Bun":      {Calories: 150, Protein: "4g", Vitamins: "B vitamins", FunFact: "Sesame seeds are tiny powerhouses of nutrition!"},
		"Wheat Bun":       {Calories: 130, Protein: "5g", Vitamins: "Fiber & B vitamins", FunFact: "Whole wheat gives you energy all day long!"},
		"Beef Patty":      {Calories: 220, Protein: "20g", Vitamins: "Iron & B12", FunFact: "Beef is packed with muscle-building protein!"},
		"Chicken Breast":  {Calories: 180, Protein: "25g", Vitamins: "Niacin & B6", FunFact: "Chicken helps you grow big and strong!"},
		"Veggie Patty":    {Calories: 150, Protein: "12g", Vitamins: "Fiber & folate", FunFact: "Plants give you superpowers!"},
		"Fresh Lettuce":   {Calories: 5, Protein: "0.5g", Vitamins: "Vitamin K & A", FunFact: "Lettuce is 95% water - nature's drink!"},
		"Tomato Slices":   {Calories: 20, Protein: "1g", Vitamins: "Vitamin C & lycopene", FunFact: "Tomatoes are actually fruits, not vegetables!"},
		"Pickles":         {Calories: 4, Protein: "0.2g", Vitamins: "Vitamin K", FunFact: "Pickles are cucumbers that went swimming!"},
		"Onion Rings":     {Calories: 30, Protein: "1g", Vitamins: "Vitamin C", FunFact: "Onions can make you cry happy tears!"},
		"American Cheese": {Calories: 80, Protein: "5g", Vitamins: "Calcium & B12", FunFact: "Cheese helps build super strong bones!"},
		"Cheddar Cheese":  {Calories: 90, Protein: "6g", Vitamins: "Calcium & A", FunFact: "Cheddar gets tastier as it ages, just like wisdom!"},
		"Ketchup":         {Calories: 15, Protein: "0g", Vitamins: "Vitamin A", FunFact: "Ketchup was once sold as medicine!"},
		"Mustard":         {Calories: 5, Protein: "0.3g", Vitamins: "Turmeric", FunFact: "Mustard seeds are ancient spice treasures!"},
		"Mayo":            {Calories: 90, Protein: "0.1g", Vitamins: "Vitamin E", FunFact: "Mayo makes everything creamy and delicious!"},
	}
}
