package db

import "time"

// Skill 定义了技能条目
// Category 为开放的字符串集合（frontend/backend/database/mobile/tools 等）
// Percentage 表示掌握程度，展示用，不做范围校验
// DisplayOrder 值越小越靠前

type Skill struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Category     string    `gorm:"not null;index" json:"category"`
	Percentage   int       `gorm:"not null" json:"percentage"`
	Color        string    `gorm:"not null" json:"color"`
	IconName     string    `gorm:"not null" json:"iconName"`
	DisplayOrder int       `gorm:"not null;default:0" json:"displayOrder"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}
