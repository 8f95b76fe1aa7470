package models

type Product struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"not null"                 json:"name"`
	Price float64 `gorm:"not null"                 json:"price"`
}

// CartItem is one line of the single global cart: a product reference
// plus a quantity. Quantity is signed and stored as-is, zero and
// negative values included.
type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint    `gorm:"index;not null"           json:"-"`
	Product   Product `gorm:"foreignKey:ProductID"     json:"product"`
	Quantity  int     `gorm:"not null"                 json:"quantity"`
}
