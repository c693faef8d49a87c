package mockapi

import "qkart/internal/domain"

// SampleCatalog returns the catalog served by the development server
func SampleCatalog() []domain.Product {
	return []domain.Product{
		{ID: "BW0jAAeDJmlZCF8i", Name: "YONEX Smash Badminton Racquet", Category: "Sports", Cost: 100, Rating: 5, Image: "https://crio-directus-assets.s3.ap-south-1.amazonaws.com/64b930f7-3c82-4a29-a433-dbc6f1493578.png"},
		{ID: "KCRwjF7lN97HnEaY", Name: "Tan Leatherette Weekender Duffle", Category: "Fashion", Cost: 150, Rating: 4, Image: "https://crio-directus-assets.s3.ap-south-1.amazonaws.com/ff071a1c-1099-48f9-9b03-f858ccc53832.png"},
		{ID: "PmInA797xJhMIPti", Name: "Atomberg 1200mm BLDC motor with Remote", Category: "Home & Kitchen", Cost: 80, Rating: 3, Image: "https://crio-directus-assets.s3.ap-south-1.amazonaws.com/d8b4c6da-a6e3-4e1e-8b77-ef3d08ae8b8d.png"},
		{ID: "TwMbDDrRuZRH6EpR", Name: "iPhone XR", Category: "Phones", Cost: 100, Rating: 4, Image: "https://i.imgur.com/lulqWzW.jpg"},
		{ID: "a4sLtEcMpzabRyfx", Name: "Basketball", Category: "Sports", Cost: 100, Rating: 5, Image: "https://i.imgur.com/lulqWzW.jpg"},
		{ID: "upLK9JbQ4rMhTwt4", Name: "Nike Running Shoes", Category: "Fashion", Cost: 120, Rating: 4, Image: "https://crio-directus-assets.s3.ap-south-1.amazonaws.com/0b2d2b7b-3d4e-4a05-9a52-d0fce1ca54e7.png"},
		{ID: "v4sLtEcMpzabRyfx", Name: "Stainless Steel Water Bottle", Category: "Home & Kitchen", Cost: 25, Rating: 4, Image: "https://crio-directus-assets.s3.ap-south-1.amazonaws.com/32a7bd1a-0a6c-4b8c-9c5f-5e8dbfb4a4f1.png"},
		{ID: "x7dBfMOnDtxPbNDL", Name: "Noise-cancelling Headphones", Category: "Electronics", Cost: 250, Rating: 5, Image: "https://crio-directus-assets.s3.ap-south-1.amazonaws.com/7f1c3a1f-6a58-4d0c-9a5b-9bd4b3c1f3b4.png"},
	}
}
