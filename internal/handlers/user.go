package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bloghub/internal/db"
	"bloghub/internal/middleware"
	"bloghub/internal/models"
	"bloghub/internal/services"
	"bloghub/internal/utils"
	"bloghub/internal/validate"
)

type UserHandler struct {
	tokens *services.TokenService
}

func NewUserHandler(tokens *services.TokenService) *UserHandler {
	return &UserHandler{tokens: tokens}
}

type createUserRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Image       string `json:"image"`
}

// Create registers a user and immediately issues a token.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, "Some required fields are missing")
		return
	}

	if verr := validate.NewUser(req.DisplayName, req.Email, req.Password); verr != nil {
		rejected(c, verr)
		return
	}

	var existing models.User
	err := db.DB.WithContext(c.Request.Context()).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		message(c, http.StatusConflict, "User already registered")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		storeFailure(c, err)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		storeFailure(c, err)
		return
	}

	user := models.User{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Password:    hash,
		Image:       req.Image,
	}
	if err := db.DB.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		storeFailure(c, err)
		return
	}

	token, err := h.tokens.Issue(&user)
	if err != nil {
		storeFailure(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// List returns all users. Passwords never serialize.
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := db.DB.WithContext(c.Request.Context()).Find(&users).Error; err != nil {
		storeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get returns a single user by id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		message(c, http.StatusNotFound, "User does not exist")
		return
	}

	var user models.User
	if err := db.DB.WithContext(c.Request.Context()).First(&user, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			message(c, http.StatusNotFound, "User does not exist")
			return
		}
		storeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteMe removes the authenticated user together with their posts and
// link rows, in one transaction so a partial delete never survives.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	err := db.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.BlogPost{}).Where("user_id = ?", user.ID).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.PostCategory{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.BlogPost{}, postIDs).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, user.ID).Error
	})
	if err != nil {
		storeFailure(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
