package models

import (
	"gorm.io/gorm"
)

type ProductCategory string

const (
	CategoryDogSupplies  ProductCategory = "Dog Supplies"
	CategoryCatSupplies  ProductCategory = "Cat Supplies"
	CategoryFishAquatics ProductCategory = "Fish & Aquatics"
	CategorySmallAnimals ProductCategory = "Small Animals"
	CategoryPetFood      ProductCategory = "Pet Food"
	CategoryToys         ProductCategory = "Toys"
	CategoryGrooming     ProductCategory = "Grooming Tools"
	CategoryHealth       ProductCategory = "Health & Wellness"
)

type Product struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    ProductCategory `json:"category"`
}
