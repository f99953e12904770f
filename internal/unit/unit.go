package unit

import "time"

// Unit 是 units 表的 GORM 模型（小区里的一户）。
// Bedrooms 仅在所属小区按卧室分配时参与容量计算。
type Unit struct {
	ID            string    `gorm:"primaryKey;size:36"`
	AssociationID string    `gorm:"index;size:36;not null"`
	Number        string    `gorm:"size:32;not null"` // 户号，如 "3-1-502"
	Bedrooms      int       `gorm:"not null;default:1"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}
