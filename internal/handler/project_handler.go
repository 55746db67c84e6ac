package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProjects 返回前台展示的项目列表，每个项目附带标签
func (a *API) GetProjects(c *gin.Context) {
	projects, err := a.store.ListProjects()
	if err != nil {
		log.Printf("get projects error: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject 根据路径中的整数 id 返回单个项目
func (a *API) GetProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := a.store.GetProject(id)
	if err != nil {
		log.Printf("get project error: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch project")
		return
	}
	if project == nil {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}

	c.JSON(http.StatusOK, project)
}
