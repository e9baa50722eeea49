package repository

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"
)

// BlockedIPRepository backs the security middleware with a relational table
// instead of a process-global file-backed set, so blocks survive restarts and
// apply across replicas. Reads go through a short-lived in-process cache.
type BlockedIPRepository struct {
	db *gorm.DB

	mu        sync.RWMutex
	cache     map[string]struct{}
	refreshed time.Time
	ttl       time.Duration
}

func NewBlockedIPRepository(db *gorm.DB) *BlockedIPRepository {
	return &BlockedIPRepository{
		db:    db,
		cache: make(map[string]struct{}),
		ttl:   30 * time.Second,
	}
}

type blockedIPModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	IP        string    `gorm:"column:ip;uniqueIndex:idx_blocked_ips_ip"`
	Reason    *string   `gorm:"column:reason"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (blockedIPModel) TableName() string { return "blocked_ips" }

func (r *BlockedIPRepository) IsBlocked(ctx context.Context, ip string) (bool, error) {
	r.mu.RLock()
	fresh := time.Since(r.refreshed) < r.ttl
	_, blocked := r.cache[ip]
	r.mu.RUnlock()

	if fresh {
		return blocked, nil
	}

	var ips []string
	if err := r.db.WithContext(ctx).Model(&blockedIPModel{}).Pluck("ip", &ips).Error; err != nil {
		return false, err
	}

	next := make(map[string]struct{}, len(ips))
	for _, v := range ips {
		next[v] = struct{}{}
	}

	r.mu.Lock()
	r.cache = next
	r.refreshed = time.Now()
	r.mu.Unlock()

	_, blocked = next[ip]
	return blocked, nil
}

func (r *BlockedIPRepository) Block(ctx context.Context, ip, reason string) error {
	m := blockedIPModel{IP: ip}
	if reason != "" {
		m.Reason = &reason
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *BlockedIPRepository) Unblock(ctx context.Context, ip string) error {
	if err := r.db.WithContext(ctx).Where("ip = ?", ip).Delete(&blockedIPModel{}).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *BlockedIPRepository) invalidate() {
	r.mu.Lock()
	r.refreshed = time.Time{}
	r.mu.Unlock()
}
