package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitebarber/barbershop-backend/internal/auth"
	"github.com/elitebarber/barbershop-backend/internal/staff"
)

type AuthHandler struct {
	staffService staff.Service
	jwtManager   *auth.JWTManager
}

func NewAuthHandler(staffService staff.Service, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		staffService: staffService,
		jwtManager:   jwtManager,
	}
}

//
// POST /v1/auth/login
//

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	member, err := h.staffService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(member.ID, member.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		StaffID:     member.ID,
		DisplayName: member.DisplayName,
	})
}
