package service

import (
	"context"

	apperrors "github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/errors"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/model"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/repository/dao"
	usermodel "github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/model"
)

type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
	Get(ctx context.Context, id int64) (model.Course, error)
	// Create makes owner the course's owner.
	Create(ctx context.Context, owner usermodel.User, fields model.Changes) (model.Course, error)
	// Update and Delete fail with ErrCourseNotFound before ErrForbidden.
	Update(ctx context.Context, identity usermodel.User, id int64, changes model.Changes) error
	Delete(ctx context.Context, identity usermodel.User, id int64) error
}

type courseService struct {
	repo dao.CourseRepository
}

func NewCourseService(repo dao.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	return s.repo.List(ctx)
}

func (s *courseService) Get(ctx context.Context, id int64) (model.Course, error) {
	return s.repo.QueryByID(ctx, id)
}

func (s *courseService) Create(ctx context.Context, owner usermodel.User, fields model.Changes) (model.Course, error) {
	course := model.Course{
		Title:           fields.Title,
		Description:     fields.Description,
		EstimatedTime:   fields.EstimatedTime,
		MaterialsNeeded: fields.MaterialsNeeded,
		UserID:          owner.ID,
	}
	if err := s.repo.Create(ctx, &course); err != nil {
		return model.Course{}, err
	}
	return course, nil
}

func (s *courseService) Update(ctx context.Context, identity usermodel.User, id int64, changes model.Changes) error {
	return s.repo.WithTx(ctx, func(repo dao.CourseRepository) error {
		if err := authorizeExisting(ctx, repo, identity, id); err != nil {
			return err
		}
		n, err := repo.UpdateOwned(ctx, id, identity.ID, changes)
		if err != nil {
			return err
		}
		return checkMatched(n)
	})
}

func (s *courseService) Delete(ctx context.Context, identity usermodel.User, id int64) error {
	return s.repo.WithTx(ctx, func(repo dao.CourseRepository) error {
		if err := authorizeExisting(ctx, repo, identity, id); err != nil {
			return err
		}
		n, err := repo.DeleteOwned(ctx, id, identity.ID)
		if err != nil {
			return err
		}
		return checkMatched(n)
	})
}

// authorizeExisting resolves the course first, so a missing id is NotFound
// rather than Forbidden.
func authorizeExisting(ctx context.Context, repo dao.CourseRepository, identity usermodel.User, id int64) error {
	course, err := repo.QueryByID(ctx, id)
	if err != nil {
		return err
	}
	return Authorize(identity, course)
}

// checkMatched: the conditional write matched nothing, so ownership no longer holds.
func checkMatched(n int64) error {
	if n == 0 {
		return apperrors.ErrForbidden
	}
	return nil
}
