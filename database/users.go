// users.go - User queries and the purchase relation

package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-tour-booking/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository stores users and the tours they purchased.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository over db.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user. A duplicate email yields ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.Email = NormalizeEmail(user.Email)
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// ByID returns one user or ErrNotFound.
func (r *UserRepository) ByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

// ByEmail returns the user registered with email or ErrNotFound.
func (r *UserRepository) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

// AddTour records that the user purchased the tour. Purchasing a tour the user
// already owns is a no-op.
func (r *UserRepository) AddTour(ctx context.Context, userID, tourID uint) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Purchase{UserID: userID, TourID: tourID}).Error
	if err != nil {
		return fmt.Errorf("add tour %d to user %d: %w", tourID, userID, err)
	}
	return nil
}

// RemoveTour drops the tour from the user's purchases. Returns ErrNotFound
// when the user does not own it.
func (r *UserRepository) RemoveTour(ctx context.Context, userID, tourID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND tour_id = ?", userID, tourID).
		Delete(&models.Purchase{})
	if res.Error != nil {
		return fmt.Errorf("remove tour %d from user %d: %w", tourID, userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// HasTour reports whether the user owns the tour.
func (r *UserRepository) HasTour(ctx context.Context, userID, tourID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Purchase{}).
		Where("user_id = ? AND tour_id = ?", userID, tourID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check purchase: %w", err)
	}
	return n > 0, nil
}

// PurchasedTours returns the tours owned by the user, ordered by tour id.
func (r *UserRepository) PurchasedTours(ctx context.Context, userID uint) ([]models.Tour, error) {
	tours := []models.Tour{}
	err := r.db.WithContext(ctx).
		Joins("JOIN purchases ON purchases.tour_id = tours.id").
		Where("purchases.user_id = ?", userID).
		Order("tours.id").
		Find(&tours).Error
	if err != nil {
		return nil, fmt.Errorf("list tours of user %d: %w", userID, err)
	}
	return tours, nil
}

// NormalizeEmail trims and lower-cases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
