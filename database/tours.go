// tours.go - Tour queries

package database

import (
	"context"
	"errors"
	"fmt"

	"go-tour-booking/models"

	"gorm.io/gorm"
)

// TourRepository reads and deletes tours.
type TourRepository struct {
	db *gorm.DB
}

// NewTourRepository creates a tour repository over db.
func NewTourRepository(db *gorm.DB) *TourRepository {
	return &TourRepository{db: db}
}

// All returns every tour ordered by id.
func (r *TourRepository) All(ctx context.Context) ([]models.Tour, error) {
	tours := []models.Tour{}
	if err := r.db.WithContext(ctx).Order("id").Find(&tours).Error; err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	return tours, nil
}

// ByDeparture returns the tours leaving from the given city code. An unknown
// code yields an empty list.
func (r *TourRepository) ByDeparture(ctx context.Context, code string) ([]models.Tour, error) {
	tours := []models.Tour{}
	err := r.db.WithContext(ctx).Where("departure = ?", code).Order("id").Find(&tours).Error
	if err != nil {
		return nil, fmt.Errorf("list tours from %q: %w", code, err)
	}
	return tours, nil
}

// ByID returns one tour or ErrNotFound.
func (r *TourRepository) ByID(ctx context.Context, id uint) (*models.Tour, error) {
	var tour models.Tour
	err := r.db.WithContext(ctx).First(&tour, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tour %d: %w", id, err)
	}
	return &tour, nil
}

// Create inserts a tour and fills in its id.
func (r *TourRepository) Create(ctx context.Context, tour *models.Tour) error {
	if err := r.db.WithContext(ctx).Create(tour).Error; err != nil {
		return fmt.Errorf("create tour: %w", err)
	}
	return nil
}

// Count returns the number of stored tours.
func (r *TourRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Tour{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count tours: %w", err)
	}
	return n, nil
}

// Delete removes the tour together with every purchase of it, in one
// transaction. Returns ErrNotFound when the tour does not exist.
func (r *TourRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Tour{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete tour %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("tour_id = ?", id).Delete(&models.Purchase{}).Error; err != nil {
			return fmt.Errorf("delete purchases of tour %d: %w", id, err)
		}
		return nil
	})
}
