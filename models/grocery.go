package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Grocery represents a grocery product belonging to exactly one category.
type Grocery struct {
	ID          uint            `gorm:"primaryKey"`
	ProductTag  string          `gorm:"size:10;not null"`
	Name        string          `gorm:"size:255;not null"`
	CategoryID  uint            `gorm:"not null;index"`
	Category    Category        `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null"`
	ImageURL    string          `gorm:"column:imageurl;size:200;not null"`
	Status      bool            `gorm:"not null"`
	DateCreated time.Time       `gorm:"<-:create;type:date;not null;index"`
}

func (g *Grocery) TableName() string {
	return "groceries"
}

func (g *Grocery) BeforeCreate(tx *gorm.DB) error {
	if g.DateCreated.IsZero() {
		g.DateCreated = today()
	}
	return nil
}
