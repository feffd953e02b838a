package file

import (
	"context"

	"files-manager-api/internal/domain/user"
)

// PageSize is the fixed number of records per listing page.
const PageSize = 20

type Repository interface {
	// FetchFile loads a record regardless of owner. Callers gate access
	// themselves via CanRead/CanWrite.
	FetchFile(ctx context.Context, id ID) (*File, error)
	// FetchUserFile loads a record scoped to its owner.
	FetchUserFile(ctx context.Context, ownerID user.ID, id ID) (*File, error)
	// FetchUserFiles returns page (0-indexed) of the owner's records under
	// parentID, newest first. A nil parentID selects root-level records.
	FetchUserFiles(ctx context.Context, ownerID user.ID, parentID *ID, page int) (Files, error)
	CreateFile(ctx context.Context, req *File) (*File, error)
	// SetVisibility flips is_public on an owner's record and returns the
	// updated row, or nil when no owned record matches.
	SetVisibility(ctx context.Context, ownerID user.ID, id ID, isPublic bool) (*File, error)
	CountFiles(ctx context.Context) (uint64, error)
}
