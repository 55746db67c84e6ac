package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTechnologySlider 返回首页技术轮播条目
func (a *API) GetTechnologySlider(c *gin.Context) {
	items, err := a.store.ListTechnologySlider()
	if err != nil {
		log.Printf("get technology slider error: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch technology slider")
		return
	}

	c.JSON(http.StatusOK, items)
}
