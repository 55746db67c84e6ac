package db

// TechnologySliderItem 定义首页技术轮播条目
type TechnologySliderItem struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	IconName     string `gorm:"not null" json:"iconName"`
	Color        string `gorm:"not null" json:"color"`
	DisplayOrder int    `gorm:"not null;default:0" json:"displayOrder"`
	IsActive     bool   `gorm:"not null;default:true" json:"isActive"`
}

// TableName 返回自定义表名，沿用前端已有的接口约定
func (TechnologySliderItem) TableName() string {
	return "technology_slider"
}
