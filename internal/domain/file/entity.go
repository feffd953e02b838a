package file

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"files-manager-api/internal/domain/user"
)

var (
	ErrParentNotFound     = errors.New("parent not found")
	ErrParentNotAFolder   = errors.New("parent is not a folder")
	ErrNotFound           = errors.New("file not found")
	ErrFolderHasNoContent = errors.New("a folder doesn't have content")
	ErrInvalidData        = errors.New("invalid data")
)

// Type is the kind of a stored record. Images are regular files that
// additionally get thumbnail derivatives.
type Type string

const (
	TypeFolder Type = "folder"
	TypeFile   Type = "file"
	TypeImage  Type = "image"
)

func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeFolder, TypeFile, TypeImage:
		return Type(s), true
	}
	return "", false
}

type (
	ID   = uuid.UUID
	File struct {
		ID       ID
		UserID   user.ID
		Name     string
		Type     Type
		ParentID *ID // nil is the root sentinel
		IsPublic bool
		// StorageKey locates the content blob; nil for folders.
		StorageKey *string

		CreatedAt time.Time
	}
	Files []*File
)
