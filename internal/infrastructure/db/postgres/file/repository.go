package file

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"files-manager-api/internal/domain/file"
	"files-manager-api/internal/domain/user"
	"files-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFile(ctx context.Context, id file.ID) (*file.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectFileByID, id).Scan(
		&f.ID,
		&f.UserID,
		&f.Name,
		&f.Type,
		&f.ParentID,
		&f.IsPublic,
		&f.StorageKey,
		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchUserFile(ctx context.Context, ownerID user.ID, id file.ID) (*file.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectUserFileByID, id, ownerID).Scan(
		&f.ID,
		&f.UserID,
		&f.Name,
		&f.Type,
		&f.ParentID,
		&f.IsPublic,
		&f.StorageKey,
		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchUserFiles(ctx context.Context, ownerID user.ID, parentID *file.ID, page int) (file.Files, error) {
	rows, err := r.db.Query(ctx, SelectUserFiles, ownerID, parentID, file.PageSize, file.PageSize*page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.UserID,
			&f.Name,
			&f.Type,
			&f.ParentID,
			&f.IsPublic,
			&f.StorageKey,
			&f.CreatedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) CreateFile(ctx context.Context, req *file.File) (*file.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.UserID, req.Name, string(req.Type), req.ParentID, req.IsPublic, req.StorageKey,
	).Scan(
		&f.ID,
		&f.UserID,
		&f.Name,
		&f.Type,
		&f.ParentID,
		&f.IsPublic,
		&f.StorageKey,
		&f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) SetVisibility(ctx context.Context, ownerID user.ID, id file.ID, isPublic bool) (*file.File, error) {
	f := new(File)

	err := r.db.QueryRow(ctx, UpdateFileVisibility, id, ownerID, isPublic).Scan(
		&f.ID,
		&f.UserID,
		&f.Name,
		&f.Type,
		&f.ParentID,
		&f.IsPublic,
		&f.StorageKey,
		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) CountFiles(ctx context.Context) (uint64, error) {
	var n uint64
	if err := r.db.QueryRow(ctx, CountFiles).Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}
