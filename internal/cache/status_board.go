package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/vilasclinic/frontdesk/internal/dto"
)

const statusBoardKey = "doctors:status"

// NewRedisClient returns nil when no address is configured or redis is
// unreachable; the status board then always recomputes from the database.
func NewRedisClient(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, status board cache disabled: %v", err)
		_ = rdb.Close()
		return nil
	}

	return rdb
}

// StatusBoard caches the computed doctor status list. The projection is
// clock-dependent, so entries live only a few seconds and directory changes
// invalidate eagerly.
type StatusBoard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatusBoard(rdb *redis.Client, ttl time.Duration) *StatusBoard {
	return &StatusBoard{rdb: rdb, ttl: ttl}
}

func (b *StatusBoard) Get(ctx context.Context) ([]dto.DoctorWithStatus, bool) {
	if b == nil || b.rdb == nil {
		return nil, false
	}

	raw, err := b.rdb.Get(ctx, statusBoardKey).Bytes()
	if err != nil {
		return nil, false
	}

	var rows []dto.DoctorWithStatus
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (b *StatusBoard) Set(ctx context.Context, rows []dto.DoctorWithStatus) {
	if b == nil || b.rdb == nil {
		return
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := b.rdb.Set(ctx, statusBoardKey, raw, b.ttl).Err(); err != nil {
		log.Println("status board cache write failed:", err)
	}
}

func (b *StatusBoard) Invalidate(ctx context.Context) {
	if b == nil || b.rdb == nil {
		return
	}
	if err := b.rdb.Del(ctx, statusBoardKey).Err(); err != nil {
		log.Println("status board cache invalidation failed:", err)
	}
}
