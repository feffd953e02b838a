package file

import (
	"github.com/google/uuid"
)

type (
	// UploadRequest mirrors the original API body; Data is base64.
	UploadRequest struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		ParentID string `json:"parentId"`
		IsPublic bool   `json:"isPublic"`
		Data     string `json:"data"`
	}
	File struct {
		ID       uuid.UUID `json:"id"`
		UserID   uuid.UUID `json:"userId"`
		Name     string    `json:"name"`
		Type     string    `json:"type"`
		IsPublic bool      `json:"isPublic"`
		// ParentID is "0" for root-level records.
		ParentID string `json:"parentId"`
	}
	Files []File
)
