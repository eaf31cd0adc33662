package model

import (
	usermodel "github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/user/model"
)

type (
	// RegisterReq fields are validated in declaration order.
	RegisterReq struct {
		FirstName    string `json:"firstName" validate:"required"`
		LastName     string `json:"lastName" validate:"required"`
		EmailAddress string `json:"emailAddress" validate:"required,email"`
		Password     string `json:"password" validate:"required,min=8,max=100"`
	}

	CurrentUserRes struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	OwnerRes struct {
		ID           int64  `json:"id"`
		FirstName    string `json:"firstName"`
		LastName     string `json:"lastName"`
		EmailAddress string `json:"emailAddress"`
	}
)

func NewCurrentUserRes(u usermodel.User) CurrentUserRes {
	return CurrentUserRes{ID: u.ID, Name: u.FullName(), Email: u.EmailAddress}
}

func NewOwnerRes(u usermodel.User) OwnerRes {
	return OwnerRes{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, EmailAddress: u.EmailAddress}
}
