package models

// Category represents a product category.
// Deleting a category deletes the groceries that reference it.
type Category struct {
	ID    uint   `gorm:"primaryKey"`
	Title string `gorm:"size:255;not null"`
}

func (c *Category) TableName() string {
	return "categories"
}
