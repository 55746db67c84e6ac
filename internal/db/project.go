package db

import "time"

// Project 定义了作品集中的项目
// ImageURL/IconName/DemoLink/CodeLink 均可为空
// Tags 为一对多关联，读取时由 storage 层显式填充

type Project struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Title        string       `gorm:"not null" json:"title"`
	Description  string       `gorm:"not null" json:"description"`
	ImageURL     *string      `gorm:"column:image_url" json:"imageUrl"`
	IconName     *string      `json:"iconName"`
	DemoLink     *string      `json:"demoLink"`
	CodeLink     *string      `json:"codeLink"`
	DisplayOrder int          `gorm:"not null;default:0" json:"displayOrder"`
	IsActive     bool         `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time    `json:"createdAt"`
	Tags         []ProjectTag `gorm:"-" json:"tags"`
}

// ProjectTag 定义了项目标签，外键指向所属项目，不在项目间共享
type ProjectTag struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"not null;index" json:"projectId"`
	Label     string `gorm:"not null" json:"label"`
	Color     string `gorm:"not null" json:"color"`
}
