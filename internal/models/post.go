package models

import (
	"time"
)

type BlogPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
	Published time.Time `json:"published"`
	Updated   time.Time `json:"updated"`

	Categories []Category `gorm:"many2many:post_categories;foreignKey:ID;joinForeignKey:PostID;references:ID;joinReferences:CategoryID" json:"categories,omitempty"`
}

// PostCategory is the join row between posts and categories. Rows are
// written explicitly inside the post-creation transaction rather than
// through gorm's association helpers, so failures roll back the post too.
type PostCategory struct {
	PostID     uint `gorm:"primaryKey" json:"postId"`
	CategoryID uint `gorm:"primaryKey" json:"categoryId"`
}

func (PostCategory) TableName() string {
	return "post_categories"
}
