package db

import "time"

// PersonalInfo 保存首页展示的个人信息，全库至多一行
// 写入时若已有记录则整体覆盖，由 storage 层保证单例语义

type PersonalInfo struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	Name                  string    `gorm:"not null" json:"name"`
	Title                 string    `gorm:"not null" json:"title"`
	Description           string    `gorm:"not null" json:"description"`
	Phone                 string    `gorm:"not null" json:"phone"`
	Email                 string    `gorm:"not null" json:"email"`
	Whatsapp              string    `gorm:"not null" json:"whatsapp"`
	YearsExperience       int       `gorm:"not null" json:"yearsExperience"`
	ProjectsCompleted     int       `gorm:"not null" json:"projectsCompleted"`
	TechnologiesCount     int       `gorm:"not null" json:"technologiesCount"`
	ClientSatisfaction    int       `gorm:"not null" json:"clientSatisfaction"`
	About                 string    `gorm:"not null" json:"about"`
	Journey               string    `gorm:"not null" json:"journey"`
	Education             string    `gorm:"not null" json:"education"`
	EducationFocus        string    `gorm:"not null" json:"educationFocus"`
	Experience            string    `gorm:"not null" json:"experience"`
	ExperienceCompany     string    `gorm:"not null" json:"experienceCompany"`
	ExperienceDescription string    `gorm:"not null" json:"experienceDescription"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// TableName 返回自定义表名，保持与前端约定一致
func (PersonalInfo) TableName() string {
	return "personal_info"
}
