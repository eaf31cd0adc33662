package model

import (
	"time"

	"gorm.io/gorm"
)

// User is a registered account. EmailAddress is the login identifier and
// Password only ever holds the salted hash.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	FirstName    string    `gorm:"type:varchar(255);not null"`
	LastName     string    `gorm:"type:varchar(255);not null"`
	EmailAddress string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password     string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// FullName is "<first> <last>".
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}
