// store.go - Session stores backed by the database and by redis

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go-tour-booking/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// GormSessionStore keeps sessions in the application database.
type GormSessionStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormSessionStore creates a store over db. The sessions table is created
// by the database migrations.
func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{db: db, now: time.Now}
}

func (s *GormSessionStore) Save(ctx context.Context, id string, userID uint, expiresAt time.Time) error {
	return s.db.WithContext(ctx).Create(&models.Session{ID: id, UserID: userID, ExpiresAt: expiresAt}).Error
}

func (s *GormSessionStore) Lookup(ctx context.Context, id string) (uint, error) {
	var session models.Session
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrInvalidSession
	}
	if err != nil {
		return 0, fmt.Errorf("lookup session: %w", err)
	}
	if !session.ExpiresAt.After(s.now()) {
		_ = s.Delete(ctx, id)
		return 0, ErrInvalidSession
	}
	return session.UserID, nil
}

func (s *GormSessionStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Session{}).Error
}

// RedisSessionStore keeps sessions in redis, expiring them with key TTLs.
type RedisSessionStore struct {
	rdb *redis.Client
}

// NewRedisSessionStore creates a store over rdb.
func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func sessionKey(id string) string { return "session:" + id }

func (s *RedisSessionStore) Save(ctx context.Context, id string, userID uint, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, sessionKey(id), strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (s *RedisSessionStore) Lookup(ctx context.Context, id string) (uint, error) {
	value, err := s.rdb.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrInvalidSession
	}
	if err != nil {
		return 0, fmt.Errorf("lookup session: %w", err)
	}
	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, ErrInvalidSession
	}
	return uint(userID), nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}
