package unit

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Upsert(ctx context.Context, u *Unit) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *Repo) FindByID(ctx context.Context, id string) (*Unit, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var u Unit
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// List 支持按小区过滤 + 分页。
func (r *Repo) List(ctx context.Context, associationID string, offset, limit int) ([]Unit, int64, error) {
	if r == nil || r.db == nil {
		return nil, 0, fmt.Errorf("repo db is nil")
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	q := r.db.WithContext(ctx).Model(&Unit{})
	if associationID != "" {
		q = q.Where("association_id = ?", associationID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var units []Unit
	if err := q.Order("number asc").Offset(offset).Limit(limit).Find(&units).Error; err != nil {
		return nil, 0, err
	}
	return units, total, nil
}
