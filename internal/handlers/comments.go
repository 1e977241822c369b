package handlers

import (
	"net/http"
	"technews/internal/db"
	"technews/internal/middleware"
	"technews/internal/models"
	"technews/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

type createCommentInput struct {
	CommentText string `json:"comment_text" binding:"required"`
	PostID      uint   `json:"post_id" binding:"required"`
}

// List - GET /api/comments
func (h *CommentHandler) List(c *gin.Context) {
	var comments []models.Comment
	err := db.DB.Preload("User", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "username")
	}).Find(&comments).Error
	if err != nil {
		InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Create - POST /api/comments
// The author is always the session user. Submitted text is stripped of any
// markup before it is stored.
func (h *CommentHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "please log in first."})
		return
	}

	var input createCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		InternalError(c, err)
		return
	}

	text := utils.SanitizeComment(input.CommentText)
	if text == "" {
		BadRequest(c, "comment text is required.")
		return
	}

	comment := models.Comment{
		CommentText: text,
		UserID:      user.ID,
		PostID:      input.PostID,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete - DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	res := db.DB.Delete(&models.Comment{}, c.Param("id"))
	if res.Error != nil {
		InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "no comment found with this id.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": res.RowsAffected})
}
