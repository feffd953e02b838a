package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID         uuid.UUID
		UserID     uuid.UUID
		Name       string
		Type       string
		ParentID   *uuid.UUID
		IsPublic   bool
		StorageKey *string

		CreatedAt time.Time
	}
	Files []*File
)
