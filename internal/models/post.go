package models

import "time"

// Post is a text publication by an author, optionally filed under a group and
// optionally carrying an opaque image blob reference.
//
// CreatedAt is assigned by the server on create and never touched by edits;
// repositories update posts with explicit column lists to keep it immutable.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	GroupID  *uint  `gorm:"index" json:"group_id,omitempty"`
	Group    *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	// ImageKey is an opaque key under the posts/ blob namespace. Content is
	// never inspected here; the storage boundary validates it on upload.
	ImageKey string `json:"image_key,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int64     `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
