package db

import (
	"vastrakala/internal/domain/model"

	"gorm.io/gorm"
)

// Migrate はスキーマを作成する（初回起動時）。
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	)
}

// SeedProducts は商品が空のときだけサンプル商品を投入する。
func SeedProducts(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []model.Product{
		{
			Name:        "Handloom Saree",
			Description: "Elegant, handwoven saree with traditional motifs. Available in multiple colors and patterns.",
			Price:       2499.0,
			Category:    "Saree",
			ImageURL:    "https://encrypted-tbn1.gstatic.com/shopping?q=tbn:ANd9GcQWGJkt-ll5GyIDZ1YRjgD3MXIrYcxDy_mUTvezl3M-fkea_KFdlVGU7b-iEu5ZrsyiXH3a0K1Swz6l0zfCxwaVlxDtWBWujvMFP9cxALIY",
			Stock:       10,
			Badge:       "Best Seller",
		},
		{
			Name:        "Men's Kurta",
			Description: "Classic cotton kurta for festive occasions. Breathable fabric, available in all sizes.",
			Price:       1299.0,
			Category:    "Kurta",
			ImageURL:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTStgxh9rbG0qTu55w82ZkRARnUvVhKQ3Ii0w&s",
			Stock:       15,
			Badge:       "New",
		},
	}

	return gormDB.Create(&samples).Error
}
