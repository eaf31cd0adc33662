package dao

import (
	"context"

	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/model"
)

type CourseRepository interface {
	List(ctx context.Context) ([]model.Course, error)
	QueryByID(ctx context.Context, id int64) (model.Course, error) // owner summary preloaded
	Create(ctx context.Context, course *model.Course) error
	// UpdateOwned and DeleteOwned only touch the row when it belongs to ownerID
	// and return the number of rows matched.
	UpdateOwned(ctx context.Context, id, ownerID int64, changes model.Changes) (int64, error)
	DeleteOwned(ctx context.Context, id, ownerID int64) (int64, error)
	// WithTx runs fn against a repository bound to a single transaction.
	WithTx(ctx context.Context, fn func(repo CourseRepository) error) error
}
