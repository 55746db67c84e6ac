package main

import (
	"fmt"
	"log"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/storage"
	"github.com/joho/godotenv"
)

// 种子数据生成器：填充个人信息、技术轮播、技能与示例项目
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	store := storage.New(db.DB)

	fmt.Println("开始填充种子数据...")

	if err := seedPersonalInfo(store); err != nil {
		log.Fatal("个人信息填充失败:", err)
	}
	if err := seedTechnologySlider(store); err != nil {
		log.Fatal("技术轮播填充失败:", err)
	}
	if err := seedSkills(store); err != nil {
		log.Fatal("技能填充失败:", err)
	}
	if err := seedProjects(store); err != nil {
		log.Fatal("项目填充失败:", err)
	}
	if err := db.EnsureUser(cfg.AdminUserName, cfg.AdminPassword); err != nil {
		log.Fatal("管理员账号创建失败:", err)
	}

	fmt.Println("种子数据填充完成！")
}

func seedPersonalInfo(store storage.Storage) error {
	if _, err := store.UpsertPersonalInfo(storage.PersonalInfoInput{
		Name:                  "Rishabh Vishwakarma",
		Title:                 "Full Stack Developer",
		Description:           "Full Stack Developer crafting digital experiences with MERN stack, Java, PHP, and Flutter",
		Phone:                 "+91 7803094853",
		Email:                 "rvish230801@gmail.com",
		Whatsapp:              "+91 7803094853",
		YearsExperience:       2,
		ProjectsCompleted:     15,
		TechnologiesCount:     6,
		ClientSatisfaction:    100,
		About:                 "Passionate full-stack developer with expertise in modern web technologies and mobile app development",
		Journey:               "I'm a passionate full-stack developer with over 2 years of experience in creating innovative web and mobile applications. My expertise spans across the MERN stack, Java, PHP, and Flutter development. I believe in writing clean, maintainable code and creating user experiences that make a difference. My goal is to leverage technology to solve real-world problems and bring creative ideas to life.",
		Education:             "Computer Science Engineering",
		EducationFocus:        "Focus on Software Development & Data Structures",
		Experience:            "Full Stack Developer",
		ExperienceCompany:     "Freelance & Personal Projects",
		ExperienceDescription: "2+ years developing web and mobile applications",
	}); err != nil {
		return err
	}

	fmt.Println("✅ 个人信息已填充")
	return nil
}

func seedTechnologySlider(store storage.Storage) error {
	existing, err := store.ListTechnologySlider()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Println("技术轮播已存在，跳过填充")
		return nil
	}

	technologies := []storage.TechnologySliderInput{
		{Name: "React", IconName: "Globe", Color: "text-primary", DisplayOrder: intPtr(1)},
		{Name: "Node.js", IconName: "Server", Color: "text-green-500", DisplayOrder: intPtr(2)},
		{Name: "MongoDB", IconName: "Database", Color: "text-green-600", DisplayOrder: intPtr(3)},
		{Name: "Java", IconName: "Code", Color: "text-blue-600", DisplayOrder: intPtr(4)},
		{Name: "Flutter", IconName: "Smartphone", Color: "text-blue-400", DisplayOrder: intPtr(5)},
		{Name: "PHP", IconName: "Terminal", Color: "text-purple-600", DisplayOrder: intPtr(6)},
	}

	for _, tech := range technologies {
		if _, err := store.CreateTechnologySliderItem(tech); err != nil {
			return err
		}
	}

	fmt.Println("✅ 技术轮播已填充")
	return nil
}

func seedSkills(store storage.Storage) error {
	existing, err := store.ListSkills()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Println("技能已存在，跳过填充")
		return nil
	}

	skills := []storage.SkillInput{
		// 前端
		{Name: "React.js", Category: "frontend", Percentage: 90, Color: "primary", IconName: "Globe", DisplayOrder: intPtr(1)},
		{Name: "HTML/CSS", Category: "frontend", Percentage: 95, Color: "accent", IconName: "Layout", DisplayOrder: intPtr(2)},
		{Name: "JavaScript", Category: "frontend", Percentage: 85, Color: "chart-3", IconName: "Code", DisplayOrder: intPtr(3)},

		// 后端
		{Name: "Node.js", Category: "backend", Percentage: 88, Color: "chart-2", IconName: "Server", DisplayOrder: intPtr(1)},
		{Name: "Java", Category: "backend", Percentage: 80, Color: "destructive", IconName: "Coffee", DisplayOrder: intPtr(2)},
		{Name: "PHP", Category: "backend", Percentage: 75, Color: "chart-5", IconName: "Terminal", DisplayOrder: intPtr(3)},

		// 数据库与工具
		{Name: "MongoDB", Category: "database", Percentage: 85, Color: "chart-2", IconName: "Database", DisplayOrder: intPtr(1)},
		{Name: "Git/GitHub", Category: "tools", Percentage: 90, Color: "accent", IconName: "GitBranch", DisplayOrder: intPtr(1)},

		// 移动端
		{Name: "Flutter", Category: "mobile", Percentage: 78, Color: "primary", IconName: "Smartphone", DisplayOrder: intPtr(1)},
		{Name: "Dart", Category: "mobile", Percentage: 76, Color: "chart-5", IconName: "Tablet", DisplayOrder: intPtr(2)},
	}

	for _, skill := range skills {
		if _, err := store.CreateSkill(skill); err != nil {
			return err
		}
	}

	fmt.Println("✅ 技能已填充")
	return nil
}

type seedProject struct {
	input storage.ProjectInput
	tags  []storage.ProjectTagInput
}

func seedProjects(store storage.Storage) error {
	existing, err := store.ListProjects()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Println("项目已存在，跳过填充")
		return nil
	}

	projects := []seedProject{
		{
			input: storage.ProjectInput{
				Title:        "ShopEasy Platform",
				Description:  "Full-stack e-commerce platform with payment integration, user authentication, and admin dashboard.",
				ImageURL:     strPtr("https://images.unsplash.com/photo-1563013544-824ae1b704d3?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=800&h=400"),
				DemoLink:     strPtr("#"),
				CodeLink:     strPtr("#"),
				DisplayOrder: intPtr(1),
			},
			tags: []storage.ProjectTagInput{
				{Label: "MERN Stack", Color: "bg-primary/10 text-primary"},
				{Label: "E-commerce", Color: "bg-accent/10 text-accent-foreground"},
			},
		},
		{
			input: storage.ProjectInput{
				Title:        "TaskFlow Mobile",
				Description:  "Cross-platform task management app with offline sync, notifications, and team collaboration.",
				ImageURL:     strPtr("https://images.unsplash.com/photo-1611224923853-80b023f02d71?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=800&h=400"),
				DemoLink:     strPtr("#"),
				CodeLink:     strPtr("#"),
				DisplayOrder: intPtr(2),
			},
			tags: []storage.ProjectTagInput{
				{Label: "Flutter", Color: "bg-blue-100 text-blue-600"},
				{Label: "Mobile", Color: "bg-green-100 text-green-600"},
			},
		},
		{
			input: storage.ProjectInput{
				Title:        "Analytics Pro",
				Description:  "Business analytics dashboard with real-time data visualization and reporting features.",
				ImageURL:     strPtr("https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=800&h=400"),
				DemoLink:     strPtr("#"),
				CodeLink:     strPtr("#"),
				DisplayOrder: intPtr(3),
			},
			tags: []storage.ProjectTagInput{
				{Label: "Java", Color: "bg-purple-100 text-purple-600"},
				{Label: "Dashboard", Color: "bg-orange-100 text-orange-600"},
			},
		},
		{
			input: storage.ProjectInput{
				Title:        "ContentHub CMS",
				Description:  "Custom content management system with role-based access and media management.",
				IconName:     strPtr("Globe"),
				DemoLink:     strPtr("#"),
				CodeLink:     strPtr("#"),
				DisplayOrder: intPtr(4),
			},
			tags: []storage.ProjectTagInput{
				{Label: "PHP", Color: "bg-red-100 text-red-600"},
				{Label: "CMS", Color: "bg-blue-100 text-blue-600"},
			},
		},
		{
			input: storage.ProjectInput{
				Title:        "LearnSpace Platform",
				Description:  "Online learning platform with course management, quizzes, and progress tracking.",
				IconName:     strPtr("BookOpen"),
				DemoLink:     strPtr("#"),
				CodeLink:     strPtr("#"),
				DisplayOrder: intPtr(5),
			},
			tags: []storage.ProjectTagInput{
				{Label: "React", Color: "bg-primary/10 text-primary"},
				{Label: "Education", Color: "bg-green-100 text-green-600"},
			},
		},
		{
			input: storage.ProjectInput{
				Title:        "HealthTracker App",
				Description:  "Personal health tracking mobile app with fitness goals and medical records.",
				IconName:     strPtr("Heart"),
				DemoLink:     strPtr("#"),
				CodeLink:     strPtr("#"),
				DisplayOrder: intPtr(6),
			},
			tags: []storage.ProjectTagInput{
				{Label: "Flutter", Color: "bg-blue-100 text-blue-600"},
				{Label: "Health", Color: "bg-red-100 text-red-600"},
			},
		},
	}

	for _, entry := range projects {
		project, err := store.CreateProject(entry.input)
		if err != nil {
			return err
		}
		for _, tag := range entry.tags {
			tag.ProjectID = project.ID
			if _, err := store.CreateProjectTag(tag); err != nil {
				return err
			}
		}
	}

	fmt.Println("✅ 项目与标签已填充")
	return nil
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}
