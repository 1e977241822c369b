package models

// Vote is the join table between users and posts: one row per endorsement.
// There is deliberately no unique (user_id, post_id) index, so nothing stops
// a user voting the same post twice.
type Vote struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	PostID uint `gorm:"index" json:"post_id"`
}
