package models

type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	DisplayName string `gorm:"not null" json:"displayName"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Image       string `json:"image"`
}
