package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   = uuid.UUID
	User struct {
		ID           ID
		Email        string
		PasswordHash string

		CreatedAt time.Time
	}
	Users []*User
)
