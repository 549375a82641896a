package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloghub/internal/db"
	"bloghub/internal/models"
	"bloghub/internal/services"
	"bloghub/internal/utils"
	"bloghub/internal/validate"
)

type AuthHandler struct {
	tokens *services.TokenService
}

func NewAuthHandler(tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a signed token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, "Some required fields are missing")
		return
	}

	if verr := validate.Login(req.Email, req.Password); verr != nil {
		rejected(c, verr)
		return
	}

	var user models.User
	if err := db.DB.WithContext(c.Request.Context()).Where("email = ?", req.Email).First(&user).Error; err != nil {
		message(c, http.StatusBadRequest, "Invalid fields")
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		message(c, http.StatusBadRequest, "Invalid fields")
		return
	}

	token, err := h.tokens.Issue(&user)
	if err != nil {
		storeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
