package catalog

import "github.com/shopspring/decimal"

// CategoryAll matches every category in a filter.
const CategoryAll = "all"

// Categories lists the filterable menu categories, CategoryAll first.
var Categories = []string{
	CategoryAll,
	"pizza",
	"burger",
	"salad",
	"indian",
	"dessert",
	"mexican",
}

func price(half, full string) Price {
	return Price{
		Half: decimal.RequireFromString(half),
		Full: decimal.RequireFromString(full),
	}
}

var seedProducts = []Product{
	{
		ID:          1,
		Name:        "Margherita Pizza",
		Description: "Fresh tomatoes, mozzarella cheese, basil leaves",
		ImageURL:    "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?w=500&h=300&fit=crop&crop=center&auto=format&q=60",
		Rating:      4.5,
		Price:       price("12.99", "18.99"),
		Category:    "Pizza",
	},
	{
		ID:          2,
		Name:        "Chicken Burger",
		Description: "Grilled chicken breast with lettuce, tomato, mayo",
		ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=500&h=300&fit=crop&crop=center&auto=format&q=60",
		Rating:      4.7,
		Price:       price("8.99", "14.99"),
		Category:    "Burger",
	},
	{
		ID:          3,
		Name:        "Caesar Salad",
		Description: "Crisp romaine lettuce, parmesan, croutons, caesar dressing",
		ImageURL:    "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=500&h=300&fit=crop&crop=center&auto=format&q=60",
		Rating:      4.3,
		Price:       price("6.99", "11.99"),
		Category:    "Salad",
	},
	{
		ID:          4,
		Name:        "Chicken Biryani",
		Description: "Aromatic basmati rice with tender chicken and spices",
		ImageURL:    "https://images.unsplash.com/photo-1563379091339-03246963d25c?w=500&h=300&fit=crop&crop=center&auto=format&q=60",
		Rating:      4.8,
		Price:       price("9.99", "16.99"),
		Category:    "Indian",
	},
	{
		ID:          5,
		Name:        "Chocolate Cake",
		Description: "Rich chocolate cake with creamy chocolate frosting",
		ImageURL:    "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=500&h=300&fit=crop&crop=center&auto=format&q=60",
		Rating:      4.9,
		Price:       price("4.99", "8.99"),
		Category:    "Dessert",
	},
	{
		ID:          6,
		Name:        "Fish Tacos",
		Description: "Grilled fish with fresh salsa and avocado cream",
		ImageURL:    "https://images.unsplash.com/photo-1565299585323-38174c4a6233?w=500&h=300&fit=crop&crop=center&auto=format&q=60",
		Rating:      4.4,
		Price:       price("7.99", "13.99"),
		Category:    "Mexican",
	},
	{
		ID:          7,
		Name:        "Pepperoni Pizza",
		Description: "Classic pepperoni with mozzarella cheese and tomato sauce",
		ImageURL:    "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=500&h=300&fit=crop&crop=center&auto=format&q=60",
		Rating:      4.6,
		Price:       price("14.99", "22.99"),
		Category:    "Pizza",
	},
	{
		ID:          8,
		Name:        "Beef Burger",
		Description: "Juicy beef patty with cheese, lettuce, tomato, and special sauce",
		ImageURL:    "https://images.unsplash.com/photo-1553979459-d2229ba7433a?w=500&h=300&fit=crop&crop=center&auto=format&q=60",
		Rating:      4.5,
		Price:       price("9.99", "16.99"),
		Category:    "Burger",
	},
	{
		ID:          9,
		Name:        "Greek Salad",
		Description: "Fresh vegetables with feta cheese, olives, and olive oil dressing",
		ImageURL:    "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=500&h=300&fit=crop&crop=center&auto=format&q=60",
		Rating:      4.2,
		Price:       price("7.99", "12.99"),
		Category:    "Salad",
	},
	{
		ID:          10,
		Name:        "Butter Chicken",
		Description: "Creamy tomato-based curry with tender chicken pieces",
		ImageURL:    "https://images.unsplash.com/photo-1588166524941-3bf61a9c41db?w=500&h=300&fit=crop&crop=center&auto=format&q=60",
		Rating:      4.7,
		Price:       price("11.99", "18.99"),
		Category:    "Indian",
	},
	{
		ID:          11,
		Name:        "Tiramisu",
		Description: "Classic Italian dessert with coffee-soaked ladyfingers and mascarpone",
		ImageURL:    "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=500&h=300&fit=crop&crop=center&auto=format&q=60",
		Rating:      4.8,
		Price:       price("5.99", "9.99"),
		Category:    "Dessert",
	},
	{
		ID:          12,
		Name:        "Chicken Quesadilla",
		Description: "Grilled tortilla filled with chicken, cheese, and peppers",
		ImageURL:    "https://images.unsplash.com/photo-1599974042762-64d2b8cfb4d1?w=500&h=300&fit=crop&crop=center&auto=format&q=60",
		Rating:      4.3,
		Price:       price("8.99", "14.99"),
		Category:    "Mexican",
	},
}
