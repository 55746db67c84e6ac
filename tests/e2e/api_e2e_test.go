package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/handler"
	"github.com/devfolio/internal/router"
	"github.com/devfolio/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type e2eSuite struct {
	handler http.Handler
	store   *storage.Store
	project *db.Project
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.PersonalInfo{},
		&db.Skill{},
		&db.Project{},
		&db.ProjectTag{},
		&db.ContactMessage{},
		&db.TechnologySliderItem{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.DB = gdb

	store := storage.New(gdb)
	return &e2eSuite{
		handler: router.Setup(handler.NewAPI(store)),
		store:   store,
	}
}

func (s *e2eSuite) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *e2eSuite) postJSON(t *testing.T, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func TestE2E_AllEndpoints(t *testing.T) {
	suite := newE2ESuite(t)

	t.Run("empty database responses", suite.testEmptyDatabase)
	suite.seed(t)
	t.Run("content endpoints", suite.testContentEndpoints)
	t.Run("contact flow", suite.testContactFlow)
}

func (s *e2eSuite) testEmptyDatabase(t *testing.T) {
	if w := s.get(t, "/api/personal-info"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before seeding, got %d", w.Code)
	}
	for _, path := range []string{"/api/skills", "/api/projects", "/api/technology-slider", "/api/contact-messages"} {
		w := s.get(t, path)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("%s: expected empty array, got %q", path, w.Body.String())
		}
	}
}

func (s *e2eSuite) seed(t *testing.T) {
	t.Helper()

	if _, err := s.store.UpsertPersonalInfo(storage.PersonalInfoInput{
		Name:              "Rishabh Vishwakarma",
		Title:             "Full Stack Developer",
		Description:       "desc",
		Phone:             "+91 7803094853",
		Email:             "rvish230801@gmail.com",
		Whatsapp:          "+91 7803094853",
		YearsExperience:   2,
		ProjectsCompleted: 15,
		TechnologiesCount: 6, ClientSatisfaction: 100,
		About: "about", Journey: "journey",
		Education: "CS", EducationFocus: "focus",
		Experience: "dev", ExperienceCompany: "freelance", ExperienceDescription: "2+ years",
	}); err != nil {
		t.Fatalf("seed personal info failed: %v", err)
	}

	order := 1
	if _, err := s.store.CreateSkill(storage.SkillInput{Name: "React.js", Category: "frontend", Percentage: 90, Color: "primary", IconName: "Globe", DisplayOrder: &order}); err != nil {
		t.Fatalf("seed skill failed: %v", err)
	}

	project, err := s.store.CreateProject(storage.ProjectInput{Title: "ShopEasy Platform", Description: "E-commerce platform"})
	if err != nil {
		t.Fatalf("seed project failed: %v", err)
	}
	s.project = project
	for _, label := range []string{"MERN Stack", "E-commerce"} {
		if _, err := s.store.CreateProjectTag(storage.ProjectTagInput{ProjectID: project.ID, Label: label, Color: "c"}); err != nil {
			t.Fatalf("seed tag failed: %v", err)
		}
	}

	if _, err := s.store.CreateTechnologySliderItem(storage.TechnologySliderInput{Name: "React", IconName: "Globe", Color: "text-primary"}); err != nil {
		t.Fatalf("seed slider item failed: %v", err)
	}
}

func (s *e2eSuite) testContentEndpoints(t *testing.T) {
	w := s.get(t, "/api/personal-info")
	if w.Code != http.StatusOK {
		t.Fatalf("personal-info: expected 200, got %d", w.Code)
	}
	var info map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("failed to decode personal info: %v", err)
	}
	if info["name"] != "Rishabh Vishwakarma" {
		t.Fatalf("unexpected personal info: %v", info)
	}

	w = s.get(t, "/api/skills")
	var skills []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &skills); err != nil {
		t.Fatalf("failed to decode skills: %v", err)
	}
	if len(skills) != 1 || skills[0]["category"] != "frontend" {
		t.Fatalf("unexpected skills: %v", skills)
	}

	w = s.get(t, "/api/skills/frontend")
	if err := json.Unmarshal(w.Body.Bytes(), &skills); err != nil {
		t.Fatalf("failed to decode skills by category: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("expected 1 frontend skill, got %v", skills)
	}

	w = s.get(t, "/api/projects")
	var projects []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &projects); err != nil {
		t.Fatalf("failed to decode projects: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %v", projects)
	}
	tags, ok := projects[0]["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %v", projects[0]["tags"])
	}

	w = s.get(t, fmt.Sprintf("/api/projects/%d", s.project.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("project by id: expected 200, got %d", w.Code)
	}

	if w := s.get(t, "/api/projects/abc"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-integer id, got %d", w.Code)
	}
	if w := s.get(t, "/api/projects/99999"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing project, got %d", w.Code)
	}

	w = s.get(t, "/api/technology-slider")
	var slider []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &slider); err != nil {
		t.Fatalf("failed to decode slider: %v", err)
	}
	if len(slider) != 1 || slider[0]["name"] != "React" {
		t.Fatalf("unexpected slider: %v", slider)
	}
}

func (s *e2eSuite) testContactFlow(t *testing.T) {
	w := s.postJSON(t, "/api/contact", map[string]any{
		"firstName": "A",
		"lastName":  "B",
		"email":     "a@b.com",
		"subject":   "Hi",
		"message":   "Hello",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("contact: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var result map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode contact response: %v", err)
	}
	if _, ok := result["id"].(float64); !ok {
		t.Fatalf("expected numeric id, got %v", result["id"])
	}

	w = s.postJSON(t, "/api/contact", map[string]any{"firstName": "A"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete payload, got %d", w.Code)
	}
	var failure map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &failure); err != nil {
		t.Fatalf("failed to decode failure response: %v", err)
	}
	if _, ok := failure["errors"].([]any); !ok {
		t.Fatalf("expected field errors, got %v", failure)
	}

	w = s.get(t, "/api/contact-messages")
	var messages []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &messages); err != nil {
		t.Fatalf("failed to decode messages: %v", err)
	}
	if len(messages) != 1 || messages[0]["firstName"] != "A" {
		t.Fatalf("unexpected messages: %v", messages)
	}
	if messages[0]["isRead"] != false {
		t.Fatalf("expected unread message, got %v", messages[0]["isRead"])
	}
}
