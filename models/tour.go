// tour.go - Defines the Tour model and the purchase relation

package models

// Tour is a purchasable travel package leaving from one departure city.
type Tour struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Country     string `json:"country"`
	Departure   string `gorm:"index;not null" json:"departure"` // Departure city code, e.g. "kyiv"
	Picture     string `json:"picture"`
	Price       int    `json:"price"`
	Stars       int    `json:"stars"`
	Nights      int    `json:"nights"`
	Date        string `json:"date"`
}

// Purchase links a user to a tour they bought. The composite key makes
// buying the same tour twice a no-op.
type Purchase struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false"`
	TourID uint `gorm:"primaryKey;autoIncrement:false;index"`
}
