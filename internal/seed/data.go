// Package seed bundles the fixed dataset used to reset the catalog to a known
// state.
package seed

import "katalog/internal/services"

// Products is the seed dataset. Price and stock are intentionally mixed
// string/number values to exercise the seeding coercion path.
var Products = []services.SeedProduct{
	{
		Title:       "Men's Chill Crew Neck Sweatshirt",
		Price:       75,
		Stock:       7,
		Description: "Introducing the softest crew neck in the collection, made from recycled cotton.",
		Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"sweatshirt"},
		Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
	},
	{
		Title:       "Men's Quilted Shirt Jacket",
		Price:       "200",
		Stock:       "5",
		Description: "A lightweight quilted jacket with a relaxed silhouette.",
		Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"jacket"},
		Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
	},
	{
		Title:       "Men's Raven Lightweight Zip Up Bomber Jacket",
		Slug:        "men_raven_lightweight_zip_up_bomber_jacket",
		Price:       130,
		Stock:       10,
		Description: "A classic bomber with modern details, cut from lightweight shell.",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Gender:      "men",
		Tags:        []string{"shirt"},
		Images:      []string{"1740250-00-A_0_2000.jpg", "1740250-00-A_1.jpg"},
	},
	{
		Title:       "Women's Cropped Puffer Jacket",
		Price:       225,
		Stock:       85,
		Description: "A cropped silhouette with a drawcord hem and hidden zip pockets.",
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "women",
		Tags:        []string{"hoodie"},
		Images:      []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
	},
	{
		Title:       "Kids Cyberquad Bomber Jacket",
		Price:       "65",
		Stock:       "10",
		Description: "A scaled-down bomber for the younger rider.",
		Sizes:       []string{"XS", "S", "M"},
		Gender:      "kid",
		Tags:        []string{"shirt"},
		Images:      []string{"1742702-00-A_0_2000.jpg", "1742702-00-A_1.jpg"},
	},
	{
		Title:       "Women's Chill Half Zip Cropped Hoodie",
		Price:       64,
		Stock:       10,
		Description: "A relaxed fit with a cropped hem and half zip placket.",
		Sizes:       []string{"XS", "S", "M", "XXL"},
		Gender:      "women",
		Tags:        []string{"hoodie"},
		Images:      []string{"1740226-00-A_0_2000.jpg", "1740226-00-A_1.jpg"},
	},
}
