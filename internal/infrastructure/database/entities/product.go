package entities

import "time"

// Product models a catalog product scraped by clients. The search link flow never reads it.
type Product struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:text;not null;index:idx_products_title"`
	Platform  string    `gorm:"type:varchar(64);not null;index:idx_products_platform"`
	Price     float64   `gorm:"type:numeric(12,2);index:idx_products_price"`
	URL       string    `gorm:"type:text"`
	ImageURL  string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
