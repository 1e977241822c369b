package models

import (
	"technews/internal/utils"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"password,omitempty"` // bcrypt hash; read queries omit the column

	Posts      []Post    `json:"posts,omitempty"`
	Comments   []Comment `json:"comments,omitempty"`
	Votes      []Vote    `json:"votes,omitempty"`
	VotedPosts []Post    `gorm:"many2many:votes" json:"voted_posts,omitempty"`
}

// CheckPassword compares a plaintext login password against the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	return utils.CheckPasswordHash(plaintext, u.Password)
}
