package model

// 注文時点の価格を保存する（商品の現在価格とは切り離す）。
type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64   `gorm:"not null;index" json:"order_id"`
	ProductID int64   `gorm:"not null;index" json:"product_id"`
	Quantity  int64   `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}
