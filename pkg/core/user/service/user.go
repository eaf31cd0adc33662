package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/errors"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/password"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/model"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/repository/dao"
)

// MsgEmailTaken is reported for a duplicate emailAddress, before or after the insert.
const MsgEmailTaken = "Email address is already in use"

type UserService interface {
	// Register stores a new user with a hashed password.
	Register(ctx context.Context, firstName, lastName, email, plainPassword string) (model.User, error)
	// Authenticate resolves Basic credentials to a user; see the apperrors auth kinds.
	Authenticate(ctx context.Context, email, plainPassword string) (model.User, error)
}

type userService struct {
	repo   dao.UserRepository
	hasher *password.BcryptHasher
}

func NewUserService(repo dao.UserRepository, hasher *password.BcryptHasher) UserService {
	return &userService{repo: repo, hasher: hasher}
}

func (s *userService) Register(ctx context.Context, firstName, lastName, email, plainPassword string) (model.User, error) {
	exists, err := s.repo.IsEmailExists(ctx, email)
	if err != nil {
		return model.User{}, err
	}
	if exists {
		return model.User{}, apperrors.NewValidationError(MsgEmailTaken)
	}

	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		FirstName:    firstName,
		LastName:     lastName,
		EmailAddress: email,
		Password:     hash,
	}
	if err := s.repo.CreateUser(ctx, &user); err != nil {
		// lost the race against a concurrent registration
		if errors.Is(err, apperrors.ErrDuplicateEntry) {
			return model.User{}, apperrors.NewValidationError(MsgEmailTaken)
		}
		return model.User{}, err
	}

	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, plainPassword string) (model.User, error) {
	user, err := s.repo.QueryByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		s.hasher.Burn(plainPassword)
		return model.User{}, apperrors.ErrUnknownIdentifier
	}
	if err != nil {
		return model.User{}, err
	}

	ok, err := s.hasher.Verify(plainPassword, user.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return model.User{}, apperrors.ErrInvalidSecret
	}

	return user, nil
}
