package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSkills 返回前台展示的技能列表
func (a *API) GetSkills(c *gin.Context) {
	skills, err := a.store.ListSkills()
	if err != nil {
		log.Printf("get skills error: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}

	c.JSON(http.StatusOK, skills)
}

// GetSkillsByCategory 按分类返回技能，分类不存在时返回空数组
func (a *API) GetSkillsByCategory(c *gin.Context) {
	category := c.Param("category")

	skills, err := a.store.ListSkillsByCategory(category)
	if err != nil {
		log.Printf("get skills by category error: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}

	c.JSON(http.StatusOK, skills)
}
