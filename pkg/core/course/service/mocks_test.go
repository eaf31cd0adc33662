package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/model"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/repository/dao"
)

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) List(ctx context.Context) ([]model.Course, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Course), args.Error(1)
}

func (m *MockCourseRepository) QueryByID(ctx context.Context, id int64) (model.Course, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Course), args.Error(1)
}

func (m *MockCourseRepository) Create(ctx context.Context, course *model.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) UpdateOwned(ctx context.Context, id, ownerID int64, changes model.Changes) (int64, error) {
	args := m.Called(ctx, id, ownerID, changes)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCourseRepository) DeleteOwned(ctx context.Context, id, ownerID int64) (int64, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// WithTx runs fn against the mock itself.
func (m *MockCourseRepository) WithTx(ctx context.Context, fn func(repo dao.CourseRepository) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}
