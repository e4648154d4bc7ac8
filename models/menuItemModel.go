package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryAppetizers Category = "Appetizers"
	CategoryMainCourse Category = "MainCourse"
	CategoryDesserts   Category = "Desserts"
	CategoryBeverages  Category = "Beverages"
	CategorySides      Category = "Sides"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryAppetizers, CategoryMainCourse, CategoryDesserts, CategoryBeverages, CategorySides:
		return true
	}
	return false
}

const DefaultPreparationMinutes = 15

type MenuItem struct {
	ID                 int             `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name               string          `json:"name" gorm:"size:100;not null" binding:"required"`
	Description        string          `json:"description" gorm:"size:500"`
	Price              decimal.Decimal `json:"price" gorm:"type:decimal(18,2)" binding:"required"`
	Category           Category        `json:"category" gorm:"size:20" binding:"required"`
	IsAvailable        bool            `json:"isAvailable"`
	ImagePath          string          `json:"imagePath" gorm:"size:200"`
	PreparationMinutes int             `json:"preparationMinutes"`
}

func (m MenuItem) String() string {
	return fmt.Sprintf("%s - $%s", m.Name, m.Price.StringFixed(2))
}
