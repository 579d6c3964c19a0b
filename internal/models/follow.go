package models

import "time"

// Follow is a directed edge recording that UserID wants AuthorID's posts in
// their personalized feed. The (user_id, author_id) pair is unique; the
// follow service treats a conflicting insert as an already-following no-op.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"user_id"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`

	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
