package file

import (
	"github.com/google/uuid"

	"files-manager-api/internal/domain/user"
)

// CanRead decides read access for a requester. Anonymous requesters are
// represented by a nil requester ID. A DENY here must surface to clients
// exactly like a missing record, so private files stay unknowable.
func CanRead(requesterID *user.ID, f *File) bool {
	if f == nil {
		return false
	}
	if f.IsPublic {
		return true
	}
	return requesterID != nil && *requesterID == f.UserID
}

// CanWrite decides mutation access (publish/unpublish). Only the owner
// may write, folders and files alike.
func CanWrite(requesterID user.ID, f *File) bool {
	return f != nil && requesterID != uuid.Nil && requesterID == f.UserID
}
