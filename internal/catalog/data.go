package catalog

// products is the static storefront catalog.
var products = []Product{
	{
		ID:          1,
		Name:        "Sony WH-1000XM5 Headphones",
		Category:    "electronics",
		Price:       399,
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&q=80",
		Description: "Industry-leading noise cancellation with premium sound quality",
		Stock:       50,
		Rating:      4.8,
		Reviews:     1250,
	},
	{
		ID:          2,
		Name:        "Apple Watch Series 9",
		Category:    "electronics",
		Price:       499,
		Image:       "https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?w=500&q=80",
		Description: "Advanced health features with stunning display",
		Stock:       35,
		Rating:      4.9,
		Reviews:     2100,
	},
	{
		ID:          3,
		Name:        "Ray-Ban Aviator Sunglasses",
		Category:    "fashion",
		Price:       199,
		Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500&q=80",
		Description: "Classic aviator style with UV protection",
		Stock:       100,
		Rating:      4.7,
		Reviews:     850,
	},
	{
		ID:          4,
		Name:        "Premium Leather Wallet",
		Category:    "accessories",
		Price:       89,
		Image:       "https://images.unsplash.com/photo-1627123424574-724758594e93?w=500&q=80",
		Description: "Handcrafted genuine leather wallet",
		Stock:       75,
		Rating:      4.6,
		Reviews:     420,
	},
	{
		ID:          5,
		Name:        "JBL Charge 5 Speaker",
		Category:    "electronics",
		Price:       179,
		Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500&q=80",
		Description: "Powerful portable Bluetooth speaker",
		Stock:       60,
		Rating:      4.7,
		Reviews:     980,
	},
	{
		ID:          6,
		Name:        "Designer Leather Handbag",
		Category:    "fashion",
		Price:       799,
		Image:       "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=500&q=80",
		Description: "Luxury designer handbag with premium finish",
		Stock:       25,
		Rating:      4.9,
		Reviews:     650,
	},
	{
		ID:          7,
		Name:        "Nike Premium Backpack",
		Category:    "accessories",
		Price:       149,
		Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&q=80",
		Description: "Durable backpack with multiple compartments",
		Stock:       80,
		Rating:      4.5,
		Reviews:     720,
	},
	{
		ID:          8,
		Name:        "Canon EOS R6 Camera",
		Category:    "electronics",
		Price:       2499,
		Image:       "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?w=500&q=80",
		Description: "Professional mirrorless camera",
		Stock:       15,
		Rating:      4.9,
		Reviews:     340,
	},
	{
		ID:          9,
		Name:        "Oakley Sport Sunglasses",
		Category:    "fashion",
		Price:       249,
		Image:       "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=500&q=80",
		Description: "High-performance sport sunglasses",
		Stock:       45,
		Rating:      4.6,
		Reviews:     530,
	},
	{
		ID:          10,
		Name:        "Wireless Earbuds Pro",
		Category:    "electronics",
		Price:       249,
		Image:       "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=500&q=80",
		Description: "Premium wireless earbuds with ANC",
		Stock:       90,
		Rating:      4.7,
		Reviews:     1450,
	},
	{
		ID:          11,
		Name:        "Luxury Wrist Watch",
		Category:    "accessories",
		Price:       899,
		Image:       "https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=500&q=80",
		Description: "Elegant timepiece with premium craftsmanship",
		Stock:       30,
		Rating:      4.8,
		Reviews:     290,
	},
	{
		ID:          12,
		Name:        "Premium Denim Jacket",
		Category:    "fashion",
		Price:       189,
		Image:       "https://images.unsplash.com/photo-1551537482-f2075a1d41f2?w=500&q=80",
		Description: "Timeless denim jacket with modern fit",
		Stock:       55,
		Rating:      4.5,
		Reviews:     610,
	},
}
