package storage

import (
	"errors"
	"fmt"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// Store 是 Storage 的关系型数据库实现，进程内构造一次后全程复用
type Store struct {
	db *gorm.DB
}

var _ Storage = (*Store)(nil)

// New 构造数据库存储
func New(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

// GetUser 根据主键获取用户
func (s *Store) GetUser(id string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// GetUserByUsername 根据用户名获取用户
func (s *Store) GetUserByUsername(username string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &user, nil
}

// CreateUser 新建用户，密码按调用方给定的形式原样保存
func (s *Store) CreateUser(input UserInput) (*db.User, error) {
	user := db.User{Username: input.Username, Password: input.Password}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// GetPersonalInfo 返回个人信息单例，不存在时返回 (nil, nil)
func (s *Store) GetPersonalInfo() (*db.PersonalInfo, error) {
	var info db.PersonalInfo
	if err := s.db.First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get personal info: %w", err)
	}
	return &info, nil
}

// UpsertPersonalInfo 覆盖或创建个人信息单例
// 读取与写入包在同一个事务里，保证并发调用下也只会有一行
func (s *Store) UpsertPersonalInfo(input PersonalInfoInput) (*db.PersonalInfo, error) {
	var result db.PersonalInfo
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing db.PersonalInfo
		err := tx.First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		applyPersonalInfoInput(&existing, input)
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		result = existing
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("upsert personal info: %w", err)
	}
	return &result, nil
}

func applyPersonalInfoInput(info *db.PersonalInfo, input PersonalInfoInput) {
	info.Name = input.Name
	info.Title = input.Title
	info.Description = input.Description
	info.Phone = input.Phone
	info.Email = input.Email
	info.Whatsapp = input.Whatsapp
	info.YearsExperience = input.YearsExperience
	info.ProjectsCompleted = input.ProjectsCompleted
	info.TechnologiesCount = input.TechnologiesCount
	info.ClientSatisfaction = input.ClientSatisfaction
	info.About = input.About
	info.Journey = input.Journey
	info.Education = input.Education
	info.EducationFocus = input.EducationFocus
	info.Experience = input.Experience
	info.ExperienceCompany = input.ExperienceCompany
	info.ExperienceDescription = input.ExperienceDescription
}

// ListSkills 返回前台展示的技能列表，只含 is_active=true
func (s *Store) ListSkills() ([]db.Skill, error) {
	items := make([]db.Skill, 0)
	if err := s.db.
		Where("is_active = ?", true).
		Order("display_order ASC, name ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return items, nil
}

// ListSkillsByCategory 按分类返回技能
// 注意：这里沿用既有行为，不过滤 is_active，与 ListSkills 不对称
func (s *Store) ListSkillsByCategory(category string) ([]db.Skill, error) {
	items := make([]db.Skill, 0)
	if err := s.db.
		Where("category = ?", category).
		Order("display_order ASC, name ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list skills by category: %w", err)
	}
	return items, nil
}

// CreateSkill 新建技能条目
func (s *Store) CreateSkill(input SkillInput) (*db.Skill, error) {
	skill := db.Skill{
		Name:       input.Name,
		Category:   input.Category,
		Percentage: input.Percentage,
		Color:      input.Color,
		IconName:   input.IconName,
		IsActive:   true,
	}
	if input.DisplayOrder != nil {
		skill.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		skill.IsActive = *input.IsActive
	}

	if err := s.db.Create(&skill).Error; err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return &skill, nil
}

// UpdateSkill 部分更新指定技能，记录不存在时返回 (nil, nil)
func (s *Store) UpdateSkill(id uint, input SkillUpdate) (*db.Skill, error) {
	var skill db.Skill
	if err := s.db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("update skill: %w", err)
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Percentage != nil {
		updates["percentage"] = *input.Percentage
	}
	if input.Color != nil {
		updates["color"] = *input.Color
	}
	if input.IconName != nil {
		updates["icon_name"] = *input.IconName
	}
	if input.DisplayOrder != nil {
		updates["display_order"] = *input.DisplayOrder
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(&skill).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update skill: %w", err)
		}
	}
	return &skill, nil
}

// ListProjects 返回前台展示的项目列表并逐个附带标签
// 项目按 display_order 升序、created_at 降序排列，标签查询失败会让整个调用失败
func (s *Store) ListProjects() ([]db.Project, error) {
	projects := make([]db.Project, 0)
	if err := s.db.
		Where("is_active = ?", true).
		Order("display_order ASC, created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	for i := range projects {
		tags, err := s.ListProjectTags(projects[i].ID)
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		projects[i].Tags = tags
	}
	return projects, nil
}

// GetProject 根据主键获取项目并附带标签，不存在时返回 (nil, nil)
func (s *Store) GetProject(id uint) (*db.Project, error) {
	var project db.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	tags, err := s.ListProjectTags(project.ID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	project.Tags = tags
	return &project, nil
}

// CreateProject 新建项目，此时不带任何标签
func (s *Store) CreateProject(input ProjectInput) (*db.Project, error) {
	project := db.Project{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IconName:    input.IconName,
		DemoLink:    input.DemoLink,
		CodeLink:    input.CodeLink,
		IsActive:    true,
	}
	if input.DisplayOrder != nil {
		project.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		project.IsActive = *input.IsActive
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	project.Tags = make([]db.ProjectTag, 0)
	return &project, nil
}

// UpdateProject 部分更新指定项目，记录不存在时返回 (nil, nil)
func (s *Store) UpdateProject(id uint, input ProjectUpdate) (*db.Project, error) {
	var project db.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("update project: %w", err)
	}

	updates := map[string]any{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.IconName != nil {
		updates["icon_name"] = *input.IconName
	}
	if input.DemoLink != nil {
		updates["demo_link"] = *input.DemoLink
	}
	if input.CodeLink != nil {
		updates["code_link"] = *input.CodeLink
	}
	if input.DisplayOrder != nil {
		updates["display_order"] = *input.DisplayOrder
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(&project).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update project: %w", err)
		}
	}
	return &project, nil
}

// CreateProjectTag 为项目新增标签
func (s *Store) CreateProjectTag(input ProjectTagInput) (*db.ProjectTag, error) {
	tag := db.ProjectTag{
		ProjectID: input.ProjectID,
		Label:     input.Label,
		Color:     input.Color,
	}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, fmt.Errorf("create project tag: %w", err)
	}
	return &tag, nil
}

// ListProjectTags 返回指定项目的标签，顺序为插入顺序
func (s *Store) ListProjectTags(projectID uint) ([]db.ProjectTag, error) {
	tags := make([]db.ProjectTag, 0)
	if err := s.db.
		Where("project_id = ?", projectID).
		Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list project tags: %w", err)
	}
	return tags, nil
}

// CreateContactMessage 保存一条联系留言，总是插入，不去重
func (s *Store) CreateContactMessage(input ContactMessageInput) (*db.ContactMessage, error) {
	message := db.ContactMessage{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return &message, nil
}

// ListContactMessages 返回全部联系留言，最新的在前
func (s *Store) ListContactMessages() ([]db.ContactMessage, error) {
	messages := make([]db.ContactMessage, 0)
	if err := s.db.
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

// ListTechnologySlider 返回前台技术轮播条目，只含 is_active=true
func (s *Store) ListTechnologySlider() ([]db.TechnologySliderItem, error) {
	items := make([]db.TechnologySliderItem, 0)
	if err := s.db.
		Where("is_active = ?", true).
		Order("display_order ASC, name ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list technology slider: %w", err)
	}
	return items, nil
}

// CreateTechnologySliderItem 新建技术轮播条目
func (s *Store) CreateTechnologySliderItem(input TechnologySliderInput) (*db.TechnologySliderItem, error) {
	item := db.TechnologySliderItem{
		Name:     input.Name,
		IconName: input.IconName,
		Color:    input.Color,
		IsActive: true,
	}
	if input.DisplayOrder != nil {
		item.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create technology slider item: %w", err)
	}
	return &item, nil
}
