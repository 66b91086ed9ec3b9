// seed.go - Loads the bundled tour catalogue

package database

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"go-tour-booking/models"

	"gorm.io/gorm"
)

//go:embed seed/tours.json
var seedTours []byte

// SeedTours inserts the bundled catalogue when the tours table is empty and
// returns the number of tours inserted.
func SeedTours(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.Tour{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	var tours []models.Tour
	if err := json.Unmarshal(seedTours, &tours); err != nil {
		return 0, fmt.Errorf("decode seed catalogue: %w", err)
	}
	if len(tours) == 0 {
		return 0, nil
	}
	if err := db.Create(&tours).Error; err != nil {
		return 0, err
	}
	return len(tours), nil
}
