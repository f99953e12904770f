package permit

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

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

func (r *Repo) Create(ctx context.Context, p *Permit) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(p).Error
}

func (r *Repo) Update(ctx context.Context, p *Permit) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Save(p).Error
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Permit, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var p Permit
	if err := db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByUnit 返回一户名下的全部许可（容量计算的输入，不分页）。
func (r *Repo) ListByUnit(ctx context.Context, unitID string) ([]Permit, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var permits []Permit
	if err := db.Where("unit_id = ?", unitID).Order("issued_at asc").Find(&permits).Error; err != nil {
		return nil, err
	}
	return permits, nil
}

// NumberTaken 检查证号在小区内是否已被占用（excludeID 用于换证场景）。
func (r *Repo) NumberTaken(ctx context.Context, associationID, number, excludeID string) (bool, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return false, fmt.Errorf("repo db is nil")
	}
	q := db.Model(&Permit{}).
		Where("association_id = ? AND permit_number = ?", associationID, number)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// List 支持按户 / 状态 / 类型过滤 + 分页（管理端列表页）。
func (r *Repo) List(ctx context.Context, unitID string, status Status, typ Type, offset, limit int) ([]Permit, int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, 0, fmt.Errorf("repo db is nil")
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	q := db.Model(&Permit{})
	if unitID != "" {
		q = q.Where("unit_id = ?", unitID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if typ != "" {
		q = q.Where("type = ?", typ)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var permits []Permit
	if err := q.Order("issued_at DESC").Offset(offset).Limit(limit).Find(&permits).Error; err != nil {
		return nil, 0, err
	}
	return permits, total, nil
}
