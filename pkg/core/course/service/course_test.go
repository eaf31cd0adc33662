package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apperrors "github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/errors"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/model"
	usermodel "github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/model"
)

var (
	owner    = usermodel.User{ID: 1, FirstName: "Jo", LastName: "Doe", EmailAddress: "jo@example.com"}
	stranger = usermodel.User{ID: 2, FirstName: "Al", LastName: "Smith", EmailAddress: "al@example.com"}
	changes  = model.Changes{Title: "Intro", Description: "Basics"}
)

func TestAuthorize(t *testing.T) {
	course := model.Course{ID: 10, UserID: owner.ID}

	assert.NoError(t, Authorize(owner, course))
	assert.ErrorIs(t, Authorize(stranger, course), apperrors.ErrForbidden)
	assert.ErrorIs(t, Authorize(usermodel.User{}, model.Course{}), apperrors.ErrForbidden)
}

func TestCreate_AssignsOwner(t *testing.T) {
	repo := new(MockCourseRepository)
	svc := NewCourseService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(c *model.Course) bool {
		return c.UserID == owner.ID && c.Title == "Intro"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Course).ID = 42
	}).Return(nil)

	course, err := svc.Create(ctx, owner, changes)
	require.NoError(t, err)

	assert.Equal(t, int64(42), course.ID)
	assert.Equal(t, owner.ID, course.UserID)
	repo.AssertExpectations(t)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("deadlock")

	tests := []struct {
		name     string
		identity usermodel.User
		setup    func(repo *MockCourseRepository)
		wantErr  error
	}{
		{
			name:     "owner updates",
			identity: owner,
			setup: func(repo *MockCourseRepository) {
				repo.On("QueryByID", ctx, int64(10)).Return(model.Course{ID: 10, UserID: owner.ID}, nil)
				repo.On("UpdateOwned", ctx, int64(10), owner.ID, changes).Return(int64(1), nil)
			},
		},
		{
			name:     "missing course is not found before ownership",
			identity: stranger,
			setup: func(repo *MockCourseRepository) {
				repo.On("QueryByID", ctx, int64(10)).Return(model.Course{}, apperrors.ErrCourseNotFound)
			},
			wantErr: apperrors.ErrCourseNotFound,
		},
		{
			name:     "stranger is forbidden",
			identity: stranger,
			setup: func(repo *MockCourseRepository) {
				repo.On("QueryByID", ctx, int64(10)).Return(model.Course{ID: 10, UserID: owner.ID}, nil)
			},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:     "conditional update matched nothing",
			identity: owner,
			setup: func(repo *MockCourseRepository) {
				repo.On("QueryByID", ctx, int64(10)).Return(model.Course{ID: 10, UserID: owner.ID}, nil)
				repo.On("UpdateOwned", ctx, int64(10), owner.ID, changes).Return(int64(0), nil)
			},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:     "store error propagates",
			identity: owner,
			setup: func(repo *MockCourseRepository) {
				repo.On("QueryByID", ctx, int64(10)).Return(model.Course{ID: 10, UserID: owner.ID}, nil)
				repo.On("UpdateOwned", ctx, int64(10), owner.ID, changes).Return(int64(0), boom)
			},
			wantErr: boom,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockCourseRepository)
			repo.On("WithTx", ctx).Return(nil)
			tc.setup(repo)

			err := NewCourseService(repo).Update(ctx, tc.identity, 10, changes)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUpdate_ForbiddenNeverWrites(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCourseRepository)
	repo.On("WithTx", ctx).Return(nil)
	repo.On("QueryByID", ctx, int64(10)).Return(model.Course{ID: 10, UserID: owner.ID}, nil)

	err := NewCourseService(repo).Update(ctx, stranger, 10, changes)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	repo.AssertNotCalled(t, "UpdateOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		repo := new(MockCourseRepository)
		repo.On("WithTx", ctx).Return(nil)
		repo.On("QueryByID", ctx, int64(10)).Return(model.Course{ID: 10, UserID: owner.ID}, nil)
		repo.On("DeleteOwned", ctx, int64(10), owner.ID).Return(int64(1), nil)

		require.NoError(t, NewCourseService(repo).Delete(ctx, owner, 10))
		repo.AssertExpectations(t)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		repo := new(MockCourseRepository)
		repo.On("WithTx", ctx).Return(nil)
		repo.On("QueryByID", ctx, int64(10)).Return(model.Course{ID: 10, UserID: owner.ID}, nil)

		err := NewCourseService(repo).Delete(ctx, stranger, 10)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		repo.AssertNotCalled(t, "DeleteOwned", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing course", func(t *testing.T) {
		repo := new(MockCourseRepository)
		repo.On("WithTx", ctx).Return(nil)
		repo.On("QueryByID", ctx, int64(99)).Return(model.Course{}, apperrors.ErrCourseNotFound)

		err := NewCourseService(repo).Delete(ctx, owner, 99)

		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})

	t.Run("transaction cannot start", func(t *testing.T) {
		repo := new(MockCourseRepository)
		repo.On("WithTx", ctx).Return(apperrors.ErrDatabaseInternal)

		err := NewCourseService(repo).Delete(ctx, owner, 10)

		assert.ErrorIs(t, err, apperrors.ErrDatabaseInternal)
	})
}

func TestListAndGet(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCourseRepository)
	repo.On("List", ctx).Return([]model.Course{{ID: 1}, {ID: 2}}, nil)
	repo.On("QueryByID", ctx, int64(2)).Return(model.Course{ID: 2}, nil)
	svc := NewCourseService(repo)

	courses, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	course, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), course.ID)
}
