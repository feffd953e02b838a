package user

import (
	"github.com/google/uuid"
)

type (
	User struct {
		ID    uuid.UUID `json:"id"`
		Email string    `json:"email"`
	}
	Request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
)
