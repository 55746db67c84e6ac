package storage

import "github.com/devfolio/internal/db"

// Storage 是持久层的唯一入口，每个读写需求对应一个方法
// 所有按 id 查询的方法在记录不存在时返回 (nil, nil)，由调用方翻译为 404
// 所有列表方法在没有记录时返回空切片而不是 nil 错误
type Storage interface {
	// 用户方法，预留给后续认证，当前未接入任何路由
	GetUser(id string) (*db.User, error)
	GetUserByUsername(username string) (*db.User, error)
	CreateUser(input UserInput) (*db.User, error)

	// 个人信息方法
	GetPersonalInfo() (*db.PersonalInfo, error)
	UpsertPersonalInfo(input PersonalInfoInput) (*db.PersonalInfo, error)

	// 技能方法
	ListSkills() ([]db.Skill, error)
	ListSkillsByCategory(category string) ([]db.Skill, error)
	CreateSkill(input SkillInput) (*db.Skill, error)
	UpdateSkill(id uint, input SkillUpdate) (*db.Skill, error)

	// 项目方法
	ListProjects() ([]db.Project, error)
	GetProject(id uint) (*db.Project, error)
	CreateProject(input ProjectInput) (*db.Project, error)
	UpdateProject(id uint, input ProjectUpdate) (*db.Project, error)

	// 项目标签方法
	CreateProjectTag(input ProjectTagInput) (*db.ProjectTag, error)
	ListProjectTags(projectID uint) ([]db.ProjectTag, error)

	// 联系留言方法
	CreateContactMessage(input ContactMessageInput) (*db.ContactMessage, error)
	ListContactMessages() ([]db.ContactMessage, error)

	// 技术轮播方法
	ListTechnologySlider() ([]db.TechnologySliderItem, error)
	CreateTechnologySliderItem(input TechnologySliderInput) (*db.TechnologySliderItem, error)
}

// UserInput 描述创建用户时可设置的字段
type UserInput struct {
	Username string
	Password string
}

// PersonalInfoInput 描述写入个人信息时可设置的字段，时间戳由存储层维护
type PersonalInfoInput struct {
	Name                  string
	Title                 string
	Description           string
	Phone                 string
	Email                 string
	Whatsapp              string
	YearsExperience       int
	ProjectsCompleted     int
	TechnologiesCount     int
	ClientSatisfaction    int
	About                 string
	Journey               string
	Education             string
	EducationFocus        string
	Experience            string
	ExperienceCompany     string
	ExperienceDescription string
}

// SkillInput 描述创建技能时可设置的字段
// DisplayOrder/IsActive 使用指针判断是否显式传入
type SkillInput struct {
	Name         string
	Category     string
	Percentage   int
	Color        string
	IconName     string
	DisplayOrder *int
	IsActive     *bool
}

// SkillUpdate 描述部分更新技能时的字段，nil 表示不修改
type SkillUpdate struct {
	Name         *string
	Category     *string
	Percentage   *int
	Color        *string
	IconName     *string
	DisplayOrder *int
	IsActive     *bool
}

// ProjectInput 描述创建项目时可设置的字段
// ImageURL/IconName/DemoLink/CodeLink 为可空列，nil 表示留空
type ProjectInput struct {
	Title        string
	Description  string
	ImageURL     *string
	IconName     *string
	DemoLink     *string
	CodeLink     *string
	DisplayOrder *int
	IsActive     *bool
}

// ProjectUpdate 描述部分更新项目时的字段，nil 表示不修改
type ProjectUpdate struct {
	Title        *string
	Description  *string
	ImageURL     *string
	IconName     *string
	DemoLink     *string
	CodeLink     *string
	DisplayOrder *int
	IsActive     *bool
}

// ProjectTagInput 描述创建项目标签时可设置的字段
type ProjectTagInput struct {
	ProjectID uint
	Label     string
	Color     string
}

// ContactMessageInput 描述联系表单写入的字段，须先经过 schema 校验
type ContactMessageInput struct {
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Message   string
}

// TechnologySliderInput 描述创建技术轮播条目时可设置的字段
type TechnologySliderInput struct {
	Name         string
	IconName     string
	Color        string
	DisplayOrder *int
	IsActive     *bool
}
