package models

import (
	"time"
)

type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CommentText string    `gorm:"type:text;not null" json:"comment_text"`
	UserID      uint      `gorm:"index" json:"user_id"`
	User        *User     `json:"user,omitempty"`
	PostID      uint      `gorm:"index" json:"post_id"`
	Post        *Post     `json:"post,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}
