package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bloghub/internal/db"
	"bloghub/internal/middleware"
	"bloghub/internal/models"
	"bloghub/internal/utils"
	"bloghub/internal/validate"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

type createPostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	CategoryIDs []uint `json:"categoryIds"`
}

type updatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type postDetail struct {
	models.BlogPost
	ContentHTML string `json:"contentHtml"`
}

// Create inserts the post and its category links in one transaction, so a
// failed link insert rolls back the post. Unknown category ids are
// dropped; at least one must resolve.
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, "Some required fields are missing")
		return
	}

	if verr := validate.Post(req.Title, req.Content); verr != nil {
		rejected(c, verr)
		return
	}

	var categories []models.Category
	if err := db.DB.WithContext(c.Request.Context()).Where("id IN ?", req.CategoryIDs).Find(&categories).Error; err != nil {
		storeFailure(c, err)
		return
	}
	if len(categories) < 1 {
		message(c, http.StatusBadRequest, `"categoryIds" not found`)
		return
	}

	user := middleware.CurrentUser(c)
	now := time.Now()
	post := models.BlogPost{
		Title:     req.Title,
		Content:   req.Content,
		UserID:    user.ID,
		Published: now,
		Updated:   now,
	}

	err := db.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		for _, category := range categories {
			link := models.PostCategory{PostID: post.ID, CategoryID: category.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		storeFailure(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// List returns all posts with author and categories.
func (h *PostHandler) List(c *gin.Context) {
	var posts []models.BlogPost
	if err := db.DB.WithContext(c.Request.Context()).
		Preload("User").
		Preload("Categories").
		Find(&posts).Error; err != nil {
		storeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Search matches q against title or content. An empty q returns all
// posts, same as List.
func (h *PostHandler) Search(c *gin.Context) {
	q := c.Query("q")

	var posts []models.BlogPost
	if err := db.DB.WithContext(c.Request.Context()).
		Preload("User").
		Preload("Categories").
		Where("title LIKE ? OR content LIKE ?", "%"+q+"%", "%"+q+"%").
		Find(&posts).Error; err != nil {
		storeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Detail returns one post with its content rendered to sanitized HTML.
func (h *PostHandler) Detail(c *gin.Context) {
	post, ok := h.findPost(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, postDetail{
		BlogPost:    *post,
		ContentHTML: utils.RenderMarkdown(post.Content),
	})
}

// Update lets the author change title and content. Categories stay as
// they were at creation.
func (h *PostHandler) Update(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, "Some required fields are missing")
		return
	}
	if verr := validate.Post(req.Title, req.Content); verr != nil {
		rejected(c, verr)
		return
	}

	post, ok := h.findPost(c)
	if !ok {
		return
	}
	if post.UserID != middleware.CurrentUser(c).ID {
		message(c, http.StatusUnauthorized, "Unauthorized user")
		return
	}

	post.Title = req.Title
	post.Content = req.Content
	post.Updated = time.Now()
	if err := db.DB.WithContext(c.Request.Context()).
		Model(&models.BlogPost{ID: post.ID}).
		Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
			"updated": post.Updated,
		}).Error; err != nil {
		storeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete removes the author's post and its link rows together.
func (h *PostHandler) Delete(c *gin.Context) {
	post, ok := h.findPost(c)
	if !ok {
		return
	}
	if post.UserID != middleware.CurrentUser(c).ID {
		message(c, http.StatusUnauthorized, "Unauthorized user")
		return
	}

	err := db.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostCategory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BlogPost{}, post.ID).Error
	})
	if err != nil {
		storeFailure(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// findPost loads the :id post with its associations, writing the 404
// itself when missing.
func (h *PostHandler) findPost(c *gin.Context) (*models.BlogPost, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		message(c, http.StatusNotFound, "Post does not exist")
		return nil, false
	}

	var post models.BlogPost
	err = db.DB.WithContext(c.Request.Context()).
		Preload("User").
		Preload("Categories").
		First(&post, uint(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			message(c, http.StatusNotFound, "Post does not exist")
		} else {
			storeFailure(c, err)
		}
		return nil, false
	}
	return &post, true
}
