package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required,min=10"`
}

type ContactHandler struct{}

func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

//
// POST /v1/contact
//

// Submit validates a contact-form message and records it in the log.
// There is no mail backend; the shop reads these from the server logs.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	log.Printf("contact form from %s <%s> (%s): %s - %s", req.Name, req.Email, req.Phone, req.Subject, req.Message)

	c.JSON(http.StatusOK, gin.H{"message": "message received, we will get back to you soon"})
}
