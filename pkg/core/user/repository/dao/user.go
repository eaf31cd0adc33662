package dao

import (
	"context"

	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/model"
)

type UserRepository interface {
	QueryByID(ctx context.Context, id int64) (model.User, error)
	QueryByEmail(ctx context.Context, email string) (model.User, error) // includes the password hash
	IsEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *model.User) error
}
