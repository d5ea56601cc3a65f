package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultAuthor is stored when a book is created without an author.
const DefaultAuthor = "John Doe"

// Book represents a book in the catalog.
// DateCreated is written once on insert and never updated.
type Book struct {
	ID          uint            `gorm:"primaryKey"`
	Title       string          `gorm:"size:255;not null"`
	Author      string          `gorm:"size:255;not null;default:'John Doe'"`
	ISBN        string          `gorm:"column:isbn;size:13;not null"`
	Pages       int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null"`
	Description string          `gorm:"type:text;not null"`
	Status      bool            `gorm:"not null"`
	DateCreated time.Time       `gorm:"<-:create;type:date;not null;index"`
}

func (b *Book) TableName() string {
	return "books"
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.Author == "" {
		b.Author = DefaultAuthor
	}
	if b.DateCreated.IsZero() {
		b.DateCreated = today()
	}
	return nil
}

// today is the creation date stamped on new rows, at day precision in UTC.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
