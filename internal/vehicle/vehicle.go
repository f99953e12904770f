package vehicle

import "time"

const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Vehicle 是 vehicles 表的 GORM 模型（登记在某户名下的车辆）。
type Vehicle struct {
	ID          string    `gorm:"primaryKey;size:36"`
	UnitID      string    `gorm:"index;size:36;not null"`
	PlateNumber string    `gorm:"uniqueIndex;size:32;not null"`
	Make        string    `gorm:"size:64"`
	Model       string    `gorm:"size:64"`
	Status      string    `gorm:"size:16;not null"` // active / archived
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// IsActive 车辆未归档时才可挂到新许可上。
func (v *Vehicle) IsActive() bool {
	return v != nil && v.Status == StatusActive
}
