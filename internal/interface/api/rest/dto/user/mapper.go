package user

import (
	"files-manager-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	return User{
		ID:    uDomain.ID,
		Email: uDomain.Email,
	}
}
