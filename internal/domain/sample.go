package domain

// SampleState returns a small demo aggregate for first runs with -seed.
// It is never loaded implicitly; the default state is empty.
func SampleState() *AppState {
	s := NewDefaultState()
	s.Recipes = []Recipe{
		{
			ID:          NewID(),
			Name:        "Margherita Pizza",
			Description: "Thin crust, tomato, mozzarella, basil. The classic for a reason.",
			Ingredients: []RecipeIngredient{
				{Ingredient: Ingredient{ID: NewID(), Name: "Pizza Dough", Amount: 1, Unit: "pieces", Category: "Bakery"}},
				{Ingredient: Ingredient{ID: NewID(), Name: "Tomato Sauce", Amount: 100, Unit: "ml", Category: "Pantry"}},
				{Ingredient: Ingredient{ID: NewID(), Name: "Mozzarella", Amount: 125, Unit: "g", Category: "Dairy"}},
				{Ingredient: Ingredient{ID: NewID(), Name: "Fresh Basil", Amount: 1, Unit: "handful", Category: "Produce"}, Optional: true},
			},
			Instructions: "Stretch the dough. Sauce, cheese, bake at max heat until blistered. Basil after the oven, not before.",
			Tags:         []string{"Dinner", "Vegetarian", "Quick"},
			PrepMinutes:  25,
		},
		{
			ID:          NewID(),
			Name:        "Avocado Toast",
			Description: "Breakfast in five minutes. Good bread is the whole dish.",
			Ingredients: []RecipeIngredient{
				{Ingredient: Ingredient{ID: NewID(), Name: "Sourdough Bread", Amount: 2, Unit: "slices", Category: "Bakery"}},
				{Ingredient: Ingredient{ID: NewID(), Name: "Avocado", Amount: 1, Unit: "pieces", Category: "Produce"}},
				{Ingredient: Ingredient{ID: NewID(), Name: "Chili Flakes", Amount: 1, Unit: "pinch", Category: "Pantry"}, Optional: true},
			},
			Instructions: "Toast the bread. Mash the avocado with salt. Spread, top, eat immediately.",
			Tags:         []string{"Breakfast", "Vegan", "Quick"},
			PrepMinutes:  5,
		},
	}
	s.Inventory = []Ingredient{
		{ID: NewID(), Name: "Tomato Sauce", Amount: 50, Unit: "ml", Category: "Pantry"},
		{ID: NewID(), Name: "Avocado", Amount: 0, Unit: "pieces", Category: "Produce", Untracked: true, Status: StockIn},
		{ID: NewID(), Name: "Milk", Amount: 1, Unit: "l", Category: "Dairy", Status: StockLow},
		{ID: NewID(), Name: "Dish Soap", Amount: 0, Unit: "", Category: "Household", Untracked: true, Status: StockOut},
	}
	return s
}
