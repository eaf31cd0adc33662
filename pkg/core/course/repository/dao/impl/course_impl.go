package dao

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/errors"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/model"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/repository/dao"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var courseColumns = []string{"id", "title", "description", "estimated_time", "materials_needed", "user_id"}

type GormCourseRepository struct {
	db *gorm.DB
}

func NewGormCourseRepository(db *gorm.DB) *GormCourseRepository {
	return &GormCourseRepository{db: db}
}

var _ dao.CourseRepository = (*GormCourseRepository)(nil)

// withOwner preloads only the public owner columns.
func withOwner(db *gorm.DB) *gorm.DB {
	return db.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "first_name", "last_name", "email_address")
	})
}

func (r *GormCourseRepository) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := withOwner(r.db.WithContext(ctx)).
		Select(courseColumns).
		Order("id").
		Find(&courses).
		Error
	if err != nil {
		return nil, fmt.Errorf("course list failed: %w", apperrors.WrapGormError(err, apperrors.ErrCourseNotFound))
	}
	return courses, nil
}

func (r *GormCourseRepository) QueryByID(ctx context.Context, id int64) (model.Course, error) {
	var course model.Course
	err := withOwner(r.db.WithContext(ctx)).
		Select(courseColumns).
		Where("id = ?", id).
		First(&course).
		Error
	if err != nil {
		return model.Course{}, fmt.Errorf("course query failed: %w", apperrors.WrapGormError(err, apperrors.ErrCourseNotFound))
	}
	return course, nil
}

func (r *GormCourseRepository) Create(ctx context.Context, course *model.Course) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(course).
		Error
	if err != nil {
		return fmt.Errorf("course creation failed: %w", apperrors.WrapGormError(err, apperrors.ErrCourseNotFound))
	}
	return nil
}

// UpdateOwned is a conditional update: a row owned by someone else matches nothing.
func (r *GormCourseRepository) UpdateOwned(ctx context.Context, id, ownerID int64, changes model.Changes) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(changes.Columns(time.Now()))
	if result.Error != nil {
		return 0, fmt.Errorf("course update failed: %w", apperrors.WrapGormError(result.Error, apperrors.ErrCourseNotFound))
	}
	return result.RowsAffected, nil
}

func (r *GormCourseRepository) DeleteOwned(ctx context.Context, id, ownerID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Course{})
	if result.Error != nil {
		return 0, fmt.Errorf("course deletion failed: %w", apperrors.WrapGormError(result.Error, apperrors.ErrCourseNotFound))
	}
	return result.RowsAffected, nil
}

func (r *GormCourseRepository) WithTx(ctx context.Context, fn func(repo dao.CourseRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormCourseRepository{db: tx})
	})
}
