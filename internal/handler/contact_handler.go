package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/devfolio/internal/schema"
	"github.com/devfolio/internal/storage"
	"github.com/gin-gonic/gin"
)

// SubmitContactMessage 处理联系表单提交
// 载荷先经过 schema 校验，字段级错误一次性返回，校验失败不会写库
func (a *API) SubmitContactMessage(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		// 无法解析的请求体按空载荷处理，让校验列出全部缺失字段
		raw = map[string]any{}
	}

	cleaned, err := schema.Validate(schema.KindContactMessage, raw)
	if err != nil {
		var vErr *schema.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Please fill in all required fields correctly",
				"errors":  vErr.Fields,
			})
			return
		}
		log.Printf("contact form error: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to send message. Please try again.")
		return
	}

	message, err := a.store.CreateContactMessage(storage.ContactMessageInput{
		FirstName: cleaned["firstName"].(string),
		LastName:  cleaned["lastName"].(string),
		Email:     cleaned["email"].(string),
		Subject:   cleaned["subject"].(string),
		Message:   cleaned["message"].(string),
	})
	if err != nil {
		log.Printf("contact form error: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to send message. Please try again.")
		return
	}

	log.Printf("contact form submission saved: id=%d name=%s %s email=%s subject=%s",
		message.ID, message.FirstName, message.LastName, message.Email, message.Subject)

	c.JSON(http.StatusOK, gin.H{
		"message": "Message sent successfully! I'll get back to you soon.",
		"id":      message.ID,
	})
}

// GetContactMessages 返回全部联系留言，最新的在前，预留给后台使用
func (a *API) GetContactMessages(c *gin.Context) {
	messages, err := a.store.ListContactMessages()
	if err != nil {
		log.Printf("get contact messages error: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch contact messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}
