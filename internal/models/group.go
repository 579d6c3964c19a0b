package models

import "time"

// Group is a topical category posts can be filed under. The slug is the
// immutable identifier used in URLs.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:GroupID" json:"posts,omitempty"`
}

// TableName specifies the table name for GORM
func (Group) TableName() string {
	return "groups"
}
