package models

import (
	"time"
)

// VoteCountSelect is the attribute list for annotated post reads: the row's
// own columns plus the vote tally from a correlated subquery against the
// votes table, so the count is always the live row count. user_id rides along
// so the author association can be resolved.
const VoteCountSelect = `posts.id, posts.post_url, posts.title, posts.created_at, posts.user_id, (SELECT COUNT(*) FROM votes WHERE votes.post_id = posts.id) AS vote_count`

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	PostURL   string    `gorm:"not null" json:"post_url"`
	UserID    uint      `gorm:"index" json:"user_id,omitempty"`
	User      *User     `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`

	Comments []Comment `json:"comments,omitempty"`
	Votes    []Vote    `json:"votes,omitempty"`
	VotedBy  []User    `gorm:"many2many:votes" json:"-"`

	// Filled by VoteCountSelect, never written or migrated.
	VoteCount int64 `gorm:"->;-:migration" json:"vote_count"`
}
