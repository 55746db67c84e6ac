package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/devfolio/internal/db"
	"github.com/google/uuid"
)

// MemStore 是 Storage 的内存实现，仅用于测试替身
// 排序与过滤语义与数据库实现保持一致
type MemStore struct {
	mu sync.Mutex

	// FailWith 非 nil 时所有操作直接返回该错误，用于模拟存储故障
	FailWith error

	users        []db.User
	personalInfo *db.PersonalInfo
	skills       []db.Skill
	projects     []db.Project
	projectTags  []db.ProjectTag
	messages     []db.ContactMessage
	slider       []db.TechnologySliderItem

	nextID uint
}

var _ Storage = (*MemStore)(nil)

// NewMemStore 构造内存存储
func NewMemStore() *MemStore {
	return &MemStore{nextID: 1}
}

func (m *MemStore) allocID() uint {
	id := m.nextID
	m.nextID++
	return id
}

func (m *MemStore) GetUser(id string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, user := range m.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MemStore) GetUserByUsername(username string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, user := range m.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MemStore) CreateUser(input UserInput) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	user := db.User{ID: uuid.NewString(), Username: input.Username, Password: input.Password}
	m.users = append(m.users, user)
	return &user, nil
}

func (m *MemStore) GetPersonalInfo() (*db.PersonalInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	if m.personalInfo == nil {
		return nil, nil
	}
	found := *m.personalInfo
	return &found, nil
}

func (m *MemStore) UpsertPersonalInfo(input PersonalInfoInput) (*db.PersonalInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	if m.personalInfo == nil {
		m.personalInfo = &db.PersonalInfo{ID: m.allocID()}
	}
	applyPersonalInfoInput(m.personalInfo, input)
	m.personalInfo.UpdatedAt = time.Now()
	found := *m.personalInfo
	return &found, nil
}

func (m *MemStore) ListSkills() ([]db.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	items := make([]db.Skill, 0)
	for _, skill := range m.skills {
		if skill.IsActive {
			items = append(items, skill)
		}
	}
	sortSkills(items)
	return items, nil
}

func (m *MemStore) ListSkillsByCategory(category string) ([]db.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	// 与数据库实现一致：分类查询不过滤 IsActive
	items := make([]db.Skill, 0)
	for _, skill := range m.skills {
		if skill.Category == category {
			items = append(items, skill)
		}
	}
	sortSkills(items)
	return items, nil
}

func sortSkills(items []db.Skill) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DisplayOrder != items[j].DisplayOrder {
			return items[i].DisplayOrder < items[j].DisplayOrder
		}
		return items[i].Name < items[j].Name
	})
}

func (m *MemStore) CreateSkill(input SkillInput) (*db.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	skill := db.Skill{
		ID:         m.allocID(),
		Name:       input.Name,
		Category:   input.Category,
		Percentage: input.Percentage,
		Color:      input.Color,
		IconName:   input.IconName,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
	if input.DisplayOrder != nil {
		skill.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		skill.IsActive = *input.IsActive
	}
	m.skills = append(m.skills, skill)
	return &skill, nil
}

func (m *MemStore) UpdateSkill(id uint, input SkillUpdate) (*db.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for i := range m.skills {
		if m.skills[i].ID != id {
			continue
		}
		skill := &m.skills[i]
		if input.Name != nil {
			skill.Name = *input.Name
		}
		if input.Category != nil {
			skill.Category = *input.Category
		}
		if input.Percentage != nil {
			skill.Percentage = *input.Percentage
		}
		if input.Color != nil {
			skill.Color = *input.Color
		}
		if input.IconName != nil {
			skill.IconName = *input.IconName
		}
		if input.DisplayOrder != nil {
			skill.DisplayOrder = *input.DisplayOrder
		}
		if input.IsActive != nil {
			skill.IsActive = *input.IsActive
		}
		found := *skill
		return &found, nil
	}
	return nil, nil
}

func (m *MemStore) ListProjects() ([]db.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	projects := make([]db.Project, 0)
	for _, project := range m.projects {
		if project.IsActive {
			projects = append(projects, project)
		}
	}
	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].DisplayOrder != projects[j].DisplayOrder {
			return projects[i].DisplayOrder < projects[j].DisplayOrder
		}
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	for i := range projects {
		projects[i].Tags = m.tagsOf(projects[i].ID)
	}
	return projects, nil
}

func (m *MemStore) GetProject(id uint) (*db.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for _, project := range m.projects {
		if project.ID == id {
			found := project
			found.Tags = m.tagsOf(id)
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MemStore) tagsOf(projectID uint) []db.ProjectTag {
	tags := make([]db.ProjectTag, 0)
	for _, tag := range m.projectTags {
		if tag.ProjectID == projectID {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (m *MemStore) CreateProject(input ProjectInput) (*db.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	project := db.Project{
		ID:          m.allocID(),
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IconName:    input.IconName,
		DemoLink:    input.DemoLink,
		CodeLink:    input.CodeLink,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if input.DisplayOrder != nil {
		project.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		project.IsActive = *input.IsActive
	}
	m.projects = append(m.projects, project)
	found := project
	found.Tags = make([]db.ProjectTag, 0)
	return &found, nil
}

func (m *MemStore) UpdateProject(id uint, input ProjectUpdate) (*db.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	for i := range m.projects {
		if m.projects[i].ID != id {
			continue
		}
		project := &m.projects[i]
		if input.Title != nil {
			project.Title = *input.Title
		}
		if input.Description != nil {
			project.Description = *input.Description
		}
		if input.ImageURL != nil {
			project.ImageURL = input.ImageURL
		}
		if input.IconName != nil {
			project.IconName = input.IconName
		}
		if input.DemoLink != nil {
			project.DemoLink = input.DemoLink
		}
		if input.CodeLink != nil {
			project.CodeLink = input.CodeLink
		}
		if input.DisplayOrder != nil {
			project.DisplayOrder = *input.DisplayOrder
		}
		if input.IsActive != nil {
			project.IsActive = *input.IsActive
		}
		found := *project
		return &found, nil
	}
	return nil, nil
}

func (m *MemStore) CreateProjectTag(input ProjectTagInput) (*db.ProjectTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	tag := db.ProjectTag{
		ID:        m.allocID(),
		ProjectID: input.ProjectID,
		Label:     input.Label,
		Color:     input.Color,
	}
	m.projectTags = append(m.projectTags, tag)
	return &tag, nil
}

func (m *MemStore) ListProjectTags(projectID uint) ([]db.ProjectTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.tagsOf(projectID), nil
}

func (m *MemStore) CreateContactMessage(input ContactMessageInput) (*db.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	message := db.ContactMessage{
		ID:        m.allocID(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}
	m.messages = append(m.messages, message)
	return &message, nil
}

func (m *MemStore) ListContactMessages() ([]db.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	messages := make([]db.ContactMessage, 0, len(m.messages))
	messages = append(messages, m.messages...)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}

func (m *MemStore) ListTechnologySlider() ([]db.TechnologySliderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	items := make([]db.TechnologySliderItem, 0)
	for _, item := range m.slider {
		if item.IsActive {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DisplayOrder != items[j].DisplayOrder {
			return items[i].DisplayOrder < items[j].DisplayOrder
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (m *MemStore) CreateTechnologySliderItem(input TechnologySliderInput) (*db.TechnologySliderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	item := db.TechnologySliderItem{
		ID:       m.allocID(),
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
	m.slider = append(m.slider, item)
	return &item, nil
}
