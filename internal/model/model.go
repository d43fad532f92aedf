// Package model defines the persisted entities and their relationships.
package model

import "time"

// User is a person account. Deleting a user cascades to their posts.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:50;not null" json:"first_name"`
	LastName  string    `gorm:"size:50;not null" json:"last_name"`
	Nickname  string    `gorm:"uniqueIndex;size:30;not null" json:"nickname"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Birthdate time.Time `gorm:"type:date;not null" json:"birthdate"`
	Location  *string   `gorm:"size:100" json:"location"`
	Gender    *string   `gorm:"size:20" json:"gender"`
	JobTitle  *string   `gorm:"size:100" json:"job_title"`
	Phone     *string   `gorm:"size:20" json:"phone"`
	CreatedAt time.Time `json:"created_at"`

	Posts []Post `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}

// Post is an article authored by exactly one user.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorID    uint      `gorm:"index;not null" json:"author_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	Rating      int       `gorm:"default:0" json:"rating"`
	Views       int       `gorm:"default:0" json:"views"`
	IsPublished bool      `gorm:"default:true" json:"is_published"`
	UpdatedAt   time.Time `json:"updated_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Tags   []Tag `gorm:"many2many:posts_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}

// Tag is a label attached to posts. Deleting a tag only removes the
// association rows, never the posts.
type Tag struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"uniqueIndex;size:50;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	Posts []Post `gorm:"many2many:posts_tags" json:"posts,omitempty"`
}

// PostTag is the posts_tags join row. It carries its own creation
// timestamp and cascades away when either side is deleted.
type PostTag struct {
	PostID    uint      `gorm:"primaryKey"`
	TagID     uint      `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (PostTag) TableName() string { return "posts_tags" }
