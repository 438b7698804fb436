package model

import "time"

type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `gorm:"type:varchar(50);not null" json:"category"`
	ImageURL    string    `gorm:"type:varchar(200);not null" json:"image_url"`
	Stock       int64     `gorm:"not null;default:0" json:"stock"`
	Badge       string    `gorm:"type:varchar(20);not null;default:''" json:"badge"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
