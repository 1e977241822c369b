package handlers

import (
	"errors"
	"net/http"
	"technews/internal/db"
	"technews/internal/middleware"
	"technews/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

type createPostInput struct {
	Title   string `json:"title" binding:"required"`
	PostURL string `json:"post_url" binding:"required,url"`
	UserID  uint   `json:"user_id" binding:"required"`
}

type upvoteInput struct {
	PostID uint `json:"post_id" binding:"required"`
}

type updatePostInput struct {
	Title string `json:"title" binding:"required"`
}

// postQuery builds the shared read query: vote_count from the correlated
// subquery plus the author's and each commenter's username.
func postQuery() *gorm.DB {
	return db.DB.Model(&models.Post{}).
		Select(models.VoteCountSelect).
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "comment_text", "post_id", "user_id", "created_at")
		}).
		Preload("Comments.User", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "username")
		}).
		Preload("User", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "username")
		})
}

// List - GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	var posts []models.Post
	if err := postQuery().Order("created_at DESC").Find(&posts).Error; err != nil {
		InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetByID - GET /api/posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	var post models.Post
	if err := postQuery().First(&post, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "no post found with this id.")
			return
		}
		InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create - POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var input createPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		InternalError(c, err)
		return
	}

	post := models.Post{
		Title:   input.Title,
		PostURL: input.PostURL,
		UserID:  input.UserID,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Upvote - PUT /api/posts/upvote
// The voter is the session user, never the request body. The insert and the
// count re-query are separate autocommitted statements, so the returned count
// can already include other voters that landed in between.
func (h *PostHandler) Upvote(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "please log in first."})
		return
	}

	var input upvoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}

	vote := models.Vote{UserID: user.ID, PostID: input.PostID}
	if err := db.DB.Create(&vote).Error; err != nil {
		BadRequest(c, err.Error())
		return
	}

	var post models.Post
	err := db.DB.Model(&models.Post{}).
		Select(models.VoteCountSelect).
		First(&post, input.PostID).Error
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, post)
}

// Update - PUT /api/posts/:id
// Only the title is editable.
func (h *PostHandler) Update(c *gin.Context) {
	var input updatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		InternalError(c, err)
		return
	}

	res := db.DB.Model(&models.Post{}).Where("id = ?", c.Param("id")).Update("title", input.Title)
	if res.Error != nil {
		InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "no post found with this id.")
		return
	}
	c.Status(http.StatusOK)
}

// Delete - DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	res := db.DB.Delete(&models.Post{}, c.Param("id"))
	if res.Error != nil {
		InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "no post found with this id.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": res.RowsAffected})
}
