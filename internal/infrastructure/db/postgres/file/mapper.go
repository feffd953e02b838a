package file

import (
	domain "files-manager-api/internal/domain/file"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:         model.ID,
		UserID:     model.UserID,
		Name:       model.Name,
		Type:       domain.Type(model.Type),
		ParentID:   model.ParentID,
		IsPublic:   model.IsPublic,
		StorageKey: model.StorageKey,

		CreatedAt: model.CreatedAt,
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
