package model

import (
	"time"

	usermodel "github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/model"
	"gorm.io/gorm"
)

// Course is owned by exactly one user; UserID never changes after creation.
type Course struct {
	ID              int64          `gorm:"primaryKey;autoIncrement"`
	Title           string         `gorm:"type:varchar(255);not null"`
	Description     string         `gorm:"type:text;not null"`
	EstimatedTime   *string        `gorm:"type:varchar(255)"`
	MaterialsNeeded *string        `gorm:"type:text"`
	UserID          int64          `gorm:"not null;index"`
	User            usermodel.User `gorm:"foreignKey:UserID"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

func (Course) TableName() string {
	return "courses"
}

// Changes is a course update. Nil optional fields keep their stored value.
type Changes struct {
	Title           string
	Description     string
	EstimatedTime   *string
	MaterialsNeeded *string
}

// Columns renders the update as a column map, so empty strings are written too.
func (c Changes) Columns(now time.Time) map[string]interface{} {
	cols := map[string]interface{}{
		"title":       c.Title,
		"description": c.Description,
		"updated_at":  now,
	}
	if c.EstimatedTime != nil {
		cols["estimated_time"] = *c.EstimatedTime
	}
	if c.MaterialsNeeded != nil {
		cols["materials_needed"] = *c.MaterialsNeeded
	}
	return cols
}

// AutoMigrate creates courses together with the users table it references.
func AutoMigrate(db *gorm.DB) error {
	if err := usermodel.AutoMigrate(db); err != nil {
		return err
	}
	return db.AutoMigrate(&Course{})
}
