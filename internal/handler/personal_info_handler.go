package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPersonalInfo 返回个人信息单例，未初始化时返回 404
func (a *API) GetPersonalInfo(c *gin.Context) {
	info, err := a.store.GetPersonalInfo()
	if err != nil {
		log.Printf("get personal info error: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch personal info")
		return
	}
	if info == nil {
		respondError(c, http.StatusNotFound, "Personal info not found")
		return
	}

	c.JSON(http.StatusOK, info)
}
