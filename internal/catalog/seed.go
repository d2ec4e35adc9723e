// This file defines the built-in product list and reviews. The catalog is a
// fixed demonstration dataset; there is no backing service to fetch from.
package catalog

import "github.com/velvetlane/storefront/pkg/types"

var seedProducts = []types.Product{
	{
		ID: "1", Slug: "essential-crewneck-tee", Name: "Essential Crewneck Tee",
		Description:     "A soft organic-cotton tee for every day.",
		FullDescription: "Mid-weight organic cotton with a reinforced collar. Pre-shrunk, garment-dyed, and cut with a relaxed fit that holds its shape wash after wash.",
		Price:           29.99,
		Images:          []string{"/images/products/crewneck-tee-1.jpg", "/images/products/crewneck-tee-2.jpg"},
		Category:        "tops",
		Sizes:           []string{"XS", "S", "M", "L", "XL"},
		Colors: []types.ColorOption{
			{Name: "Black", Hex: "#1a1a1a"},
			{Name: "White", Hex: "#fafafa"},
			{Name: "Sage", Hex: "#9caf88"},
		},
		Rating: 4.6, ReviewCount: 128, InStock: true, Featured: true,
	},
	{
		ID: "2", Slug: "heavyweight-zip-hoodie", Name: "Heavyweight Zip Hoodie",
		Description:     "Brushed fleece hoodie with a full zip.",
		FullDescription: "450gsm brushed-back fleece, YKK zip, and a double-lined hood. Runs true to size with room to layer.",
		Price:           64.50, CompareAtPrice: 85.00,
		Images:   []string{"/images/products/zip-hoodie-1.jpg"},
		Category: "tops",
		Sizes:    []string{"S", "M", "L", "XL", "XXL"},
		Colors: []types.ColorOption{
			{Name: "Charcoal", Hex: "#36454f"},
			{Name: "Oat", Hex: "#d8cfc0"},
		},
		Rating: 4.8, ReviewCount: 86, InStock: true, Featured: true,
	},
	{
		ID: "3", Slug: "tapered-selvedge-denim", Name: "Tapered Selvedge Denim",
		Description:     "Japanese selvedge denim with a modern taper.",
		FullDescription: "13.5oz sanforized selvedge woven on shuttle looms. High rise, tapered leg, chain-stitched hems.",
		Price:           128.00,
		Images:          []string{"/images/products/selvedge-denim-1.jpg", "/images/products/selvedge-denim-2.jpg"},
		Category:        "bottoms",
		Sizes:           []string{"28", "30", "32", "34", "36"},
		Colors: []types.ColorOption{
			{Name: "Indigo", Hex: "#264469"},
			{Name: "Black", Hex: "#1a1a1a"},
		},
		Rating: 4.7, ReviewCount: 54, InStock: true,
	},
	{
		ID: "4", Slug: "wool-overshirt", Name: "Wool Overshirt",
		Description:     "A structured overshirt in Italian wool.",
		FullDescription: "Brushed Italian wool blend with corozo buttons and two chest pockets. Wear it open as a light jacket or buttoned as a shirt.",
		Price:           148.00, CompareAtPrice: 189.00,
		Images:   []string{"/images/products/wool-overshirt-1.jpg"},
		Category: "outerwear",
		Sizes:    []string{"S", "M", "L", "XL"},
		Colors: []types.ColorOption{
			{Name: "Camel", Hex: "#c19a6b"},
			{Name: "Forest", Hex: "#2c4f3b"},
		},
		Rating: 4.9, ReviewCount: 37, InStock: true, Featured: true,
	},
	{
		ID: "5", Slug: "court-leather-sneaker", Name: "Court Leather Sneaker",
		Description:     "Minimal leather sneaker, made in Portugal.",
		FullDescription: "Full-grain leather upper, margom cup sole, and a leather-lined footbed. Fits true to size.",
		Price:           139.00,
		Images:          []string{"/images/products/court-sneaker-1.jpg", "/images/products/court-sneaker-2.jpg"},
		Category:        "shoes",
		Sizes:           []string{"40", "41", "42", "43", "44", "45"},
		Colors: []types.ColorOption{
			{Name: "White", Hex: "#fafafa"},
			{Name: "Black", Hex: "#1a1a1a"},
		},
		Rating: 4.5, ReviewCount: 203, InStock: true,
	},
	{
		ID: "6", Slug: "merino-beanie", Name: "Merino Beanie",
		Description:     "Fine-gauge merino beanie.",
		FullDescription: "Extra-fine merino knit in a double-layer rib. One size, breathable and itch-free.",
		Price:           32.00,
		Images:          []string{"/images/products/merino-beanie-1.jpg"},
		Category:        "accessories",
		Sizes:           []string{"One Size"},
		Colors: []types.ColorOption{
			{Name: "Navy", Hex: "#1f2a44"},
			{Name: "Rust", Hex: "#b7410e"},
			{Name: "Oat", Hex: "#d8cfc0"},
		},
		Rating: 4.4, ReviewCount: 61, InStock: true, New: true,
	},
	{
		ID: "7", Slug: "pleated-wide-trouser", Name: "Pleated Wide Trouser",
		Description:     "Drapey wide-leg trouser with a single pleat.",
		FullDescription: "Mid-weight twill with a single forward pleat, side adjusters, and a cropped wide leg.",
		Price:           98.00,
		Images:          []string{"/images/products/wide-trouser-1.jpg"},
		Category:        "bottoms",
		Sizes:           []string{"S", "M", "L", "XL"},
		Colors: []types.ColorOption{
			{Name: "Stone", Hex: "#b8b2a7"},
			{Name: "Black", Hex: "#1a1a1a"},
		},
		Rating: 4.3, ReviewCount: 29, InStock: true, New: true,
	},
	{
		ID: "8", Slug: "quilted-liner-jacket", Name: "Quilted Liner Jacket",
		Description:     "Lightweight quilted jacket for shoulder seasons.",
		FullDescription: "Recycled insulation in an onion-quilted nylon shell. Packs into its own chest pocket.",
		Price:           119.00, CompareAtPrice: 150.00,
		Images:   []string{"/images/products/liner-jacket-1.jpg"},
		Category: "outerwear",
		Sizes:    []string{"S", "M", "L", "XL"},
		Colors: []types.ColorOption{
			{Name: "Olive", Hex: "#556b2f"},
			{Name: "Black", Hex: "#1a1a1a"},
		},
		Rating: 4.6, ReviewCount: 48, InStock: false,
	},
	{
		ID: "9", Slug: "canvas-tote", Name: "Canvas Tote",
		Description:     "Heavy canvas tote with an internal pocket.",
		FullDescription: "18oz waxed canvas, leather handles, and a zipped internal pocket sized for a 13-inch laptop.",
		Price:           58.00,
		Images:          []string{"/images/products/canvas-tote-1.jpg"},
		Category:        "accessories",
		Sizes:           []string{"One Size"},
		Colors: []types.ColorOption{
			{Name: "Natural", Hex: "#e8e0d0"},
			{Name: "Black", Hex: "#1a1a1a"},
		},
		Rating: 4.7, ReviewCount: 92, InStock: true,
	},
	{
		ID: "10", Slug: "ribbed-turtleneck", Name: "Ribbed Turtleneck",
		Description:     "A slim ribbed turtleneck in extra-fine merino.",
		FullDescription: "Two-by-two rib in extra-fine merino. Slim through the body with a generous roll neck.",
		Price:           74.00,
		Images:          []string{"/images/products/ribbed-turtleneck-1.jpg"},
		Category:        "tops",
		Sizes:           []string{"XS", "S", "M", "L", "XL"},
		Colors: []types.ColorOption{
			{Name: "Cream", Hex: "#f5f0e1"},
			{Name: "Charcoal", Hex: "#36454f"},
		},
		Rating: 4.5, ReviewCount: 33, InStock: true, New: true,
	},
	{
		ID: "11", Slug: "suede-chukka-boot", Name: "Suede Chukka Boot",
		Description:     "Unlined suede chukka on a crepe sole.",
		FullDescription: "Soft calf suede, two-eyelet lacing, and a natural crepe sole. Ages beautifully with wear.",
		Price:           165.00,
		Images:          []string{"/images/products/chukka-boot-1.jpg"},
		Category:        "shoes",
		Sizes:           []string{"40", "41", "42", "43", "44"},
		Colors: []types.ColorOption{
			{Name: "Sand", Hex: "#d2b48c"},
			{Name: "Dark Brown", Hex: "#4b3621"},
		},
		Rating: 4.8, ReviewCount: 71, InStock: true, Featured: true,
	},
	{
		ID: "12", Slug: "linen-camp-shirt", Name: "Linen Camp Shirt",
		Description:     "Breezy camp-collar shirt in washed linen.",
		FullDescription: "Garment-washed European linen with a camp collar and straight hem. Boxy fit, wears cool.",
		Price:           69.00, CompareAtPrice: 88.00,
		Images:   []string{"/images/products/camp-shirt-1.jpg"},
		Category: "tops",
		Sizes:    []string{"S", "M", "L", "XL"},
		Colors: []types.ColorOption{
			{Name: "White", Hex: "#fafafa"},
			{Name: "Terracotta", Hex: "#c1654f"},
		},
		Rating: 4.2, ReviewCount: 18, InStock: true, New: true,
	},
}

var seedReviews = []types.Review{
	{ID: "r1", ProductID: "1", Author: "Maya K.", Rating: 5, Date: "2025-06-14", Comment: "Perfect weight, holds up in the wash. Bought two more.", Verified: true},
	{ID: "r2", ProductID: "1", Author: "Tom R.", Rating: 4, Date: "2025-05-02", Comment: "Great fit, collar stays crisp. Sage color runs slightly darker than pictured.", Verified: true},
	{ID: "r3", ProductID: "2", Author: "Priya S.", Rating: 5, Date: "2025-07-21", Comment: "Heaviest hoodie I own, zip feels indestructible.", Verified: true},
	{ID: "r4", ProductID: "4", Author: "Daniel O.", Rating: 5, Date: "2025-03-30", Comment: "Wore it through spring as a jacket. The wool is soft enough for bare arms.", Verified: false},
	{ID: "r5", ProductID: "5", Author: "Lena W.", Rating: 4, Date: "2025-08-09", Comment: "Clean look, comfortable out of the box. White marks easily.", Verified: true},
	{ID: "r6", ProductID: "5", Author: "Chris B.", Rating: 5, Date: "2025-04-17", Comment: "Third pair. Nothing else comes close at this price.", Verified: true},
	{ID: "r7", ProductID: "11", Author: "Aisha M.", Rating: 5, Date: "2025-02-11", Comment: "The crepe sole is a cloud. Sized down one from my sneaker size.", Verified: true},
}
