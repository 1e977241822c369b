package handlers

import (
	"errors"
	"net/http"
	"technews/internal/db"
	"technews/internal/models"
	"technews/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

type createUserInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateUserInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=4"`
}

// setLoginSession establishes the logged-in session after signup or login.
func setLoginSession(c *gin.Context, user *models.User) {
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	session.Set("logged_in", true)
	session.Save()
}

// List - GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := db.DB.Omit("password").Find(&users).Error; err != nil {
		InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetByID - GET /api/users/:id
// Returns the user with their posts, their comments (each carrying the parent
// post's title) and the posts they voted on through the votes join table.
func (h *UserHandler) GetByID(c *gin.Context) {
	var user models.User
	err := db.DB.Omit("password").
		Preload("Posts", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "title", "post_url", "created_at", "user_id")
		}).
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "comment_text", "created_at", "user_id", "post_id")
		}).
		Preload("Comments.Post", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "title")
		}).
		Preload("VotedPosts", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("posts.id", "posts.title")
		}).
		First(&user, c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "no user found with this id.")
			return
		}
		InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create - POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var input createUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		InternalError(c, err)
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		InternalError(c, err)
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		InternalError(c, err)
		return
	}

	setLoginSession(c, &user)
	// Echoes the inserted row as-is, hash included.
	c.JSON(http.StatusOK, user)
}

// Login - POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			BadRequest(c, "no user with that email address.")
			return
		}
		InternalError(c, err)
		return
	}

	if !user.CheckPassword(input.Password) {
		BadRequest(c, "incorrect password.")
		return
	}

	setLoginSession(c, &user)
	c.JSON(http.StatusOK, gin.H{"user": user, "message": "you are now logged in."})
}

// Update - PUT /api/users/:id
// Accepts partial fields; an incoming password is re-hashed before it hits
// the row, so a plaintext never lands in the table on update either.
func (h *UserHandler) Update(c *gin.Context) {
	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		InternalError(c, err)
		return
	}

	values := map[string]interface{}{}
	if input.Username != nil {
		values["username"] = *input.Username
	}
	if input.Email != nil {
		values["email"] = *input.Email
	}
	if input.Password != nil {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			InternalError(c, err)
			return
		}
		values["password"] = hash
	}

	res := db.DB.Model(&models.User{}).Where("id = ?", c.Param("id")).Updates(values)
	if res.Error != nil {
		InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "no user found with this id.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": res.RowsAffected})
}

// Delete - DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	res := db.DB.Delete(&models.User{}, c.Param("id"))
	if res.Error != nil {
		InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "no user found with this id.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": res.RowsAffected})
}

// Logout - POST /api/users/logout
func (h *UserHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	loggedIn, ok := session.Get("logged_in").(bool)
	if !ok || !loggedIn {
		c.Status(http.StatusNotFound)
		return
	}
	session.Clear()
	session.Save()
	c.Status(http.StatusNoContent)
}
