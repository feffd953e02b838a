package file

import (
	"files-manager-api/internal/domain/file"
)

// RootParentID is how the root sentinel is rendered to clients.
const RootParentID = "0"

// ToResponseFile strips storage internals; the blob key never leaves
// the service.
func ToResponseFile(fDomain file.File) File {
	parentID := RootParentID
	if fDomain.ParentID != nil {
		parentID = fDomain.ParentID.String()
	}

	return File{
		ID:       fDomain.ID,
		UserID:   fDomain.UserID,
		Name:     fDomain.Name,
		Type:     string(fDomain.Type),
		IsPublic: fDomain.IsPublic,
		ParentID: parentID,
	}
}

func ToResponseFiles(fsDomain file.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}
