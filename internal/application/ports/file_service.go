package ports

import (
	"context"

	"files-manager-api/internal/domain/file"
	"files-manager-api/internal/domain/user"
)

type FileService interface {
	Upload(ctx context.Context, actorID user.ID, in file.UploadInput) (*file.File, error)
	FindUserFiles(ctx context.Context, actorID user.ID, parentID *file.ID, page int) (file.Files, error)
	FindUserFile(ctx context.Context, actorID user.ID, fileID file.ID) (*file.File, error)
	SetVisibility(ctx context.Context, actorID user.ID, fileID file.ID, isPublic bool) (*file.File, error)
	// Content serves original bytes (width 0) or a thumbnail derivative,
	// gated by the access rules. A nil actorID is an anonymous read.
	Content(ctx context.Context, actorID *user.ID, fileID file.ID, width int) ([]byte, string, error)
	CountFiles(ctx context.Context) (uint64, error)
}
