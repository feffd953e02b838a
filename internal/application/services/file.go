package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"files-manager-api/internal/application/ports"
	domain "files-manager-api/internal/domain/file"
	"files-manager-api/internal/domain/user"
	"files-manager-api/internal/infrastructure/mq"
)

const defaultContentType = "application/octet-stream"

type FileService struct {
	fileRepository domain.Repository
	blobs          ports.BlobStore
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewFileService(
	fileRepository domain.Repository,
	blobs ports.BlobStore,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		fileRepository: fileRepository,
		blobs:          blobs,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// Upload runs the creation pipeline: parent check, content write,
// metadata insert, thumbnail enqueue. The content blob is written before
// the metadata row so no record ever points at missing content; if the
// insert fails the orphaned blob is removed again. The thumbnail job is
// enqueued only after the insert returns, so a job never references a
// file ID the store does not know.
func (fs *FileService) Upload(ctx context.Context, actorID user.ID, in domain.UploadInput) (*domain.File, error) {
	if in.ParentID != nil {
		parent, err := fs.fileRepository.FetchFile(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrParentNotFound
		}
		if parent.Type != domain.TypeFolder {
			return nil, domain.ErrParentNotAFolder
		}
	}

	f := &domain.File{
		UserID:   actorID,
		Name:     in.Name,
		Type:     in.Type,
		ParentID: in.ParentID,
		IsPublic: in.IsPublic,
	}

	if in.Type == domain.TypeFolder {
		out, err := fs.fileRepository.CreateFile(ctx, f)
		if err != nil {
			return nil, err
		}

		fs.mCounter.WithLabelValues("files_created_total").Inc()

		return out, nil
	}

	data, err := base64.StdEncoding.DecodeString(in.Data)
	if err != nil {
		return nil, domain.ErrInvalidData
	}

	key := genStorageKey(in.Name)
	if err = fs.blobs.Put(ctx, key, data); err != nil {
		return nil, fmt.Errorf("write content: %w", err)
	}

	f.StorageKey = &key
	out, err := fs.fileRepository.CreateFile(ctx, f)
	if err != nil {
		// compensate: the blob has no owner record
		_ = fs.blobs.Delete(ctx, key)
		return nil, err
	}

	if out.Type == domain.TypeImage {
		fs.mq.GetInputChan() <- mq.Job{
			Id:     uuid.New(),
			TS:     time.Now(),
			Kind:   mq.KindThumbnail,
			FileID: out.ID,
			UserID: out.UserID,
		}
	}

	fs.mCounter.WithLabelValues("files_created_total").Inc()

	return out, nil
}

func (fs *FileService) FindUserFiles(ctx context.Context, actorID user.ID, parentID *domain.ID, page int) (domain.Files, error) {
	return fs.fileRepository.FetchUserFiles(ctx, actorID, parentID, page)
}

func (fs *FileService) FindUserFile(ctx context.Context, actorID user.ID, fileID domain.ID) (*domain.File, error) {
	return fs.fileRepository.FetchUserFile(ctx, actorID, fileID)
}

func (fs *FileService) SetVisibility(ctx context.Context, actorID user.ID, fileID domain.ID, isPublic bool) (*domain.File, error) {
	f, err := fs.fileRepository.SetVisibility(ctx, actorID, fileID, isPublic)
	if err != nil {
		return nil, err
	}
	if f == nil {
		// absent and not-owned answer identically
		return nil, domain.ErrNotFound
	}

	return f, nil
}

// Content gates reads through the access rules at request time; already
// generated thumbnails of a since-unpublished file stay private.
func (fs *FileService) Content(ctx context.Context, actorID *user.ID, fileID domain.ID, width int) ([]byte, string, error) {
	f, err := fs.fileRepository.FetchFile(ctx, fileID)
	if err != nil {
		return nil, "", err
	}
	if !domain.CanRead(actorID, f) {
		return nil, "", domain.ErrNotFound
	}
	if f.Type == domain.TypeFolder {
		return nil, "", domain.ErrFolderHasNoContent
	}

	key := *f.StorageKey
	if width > 0 {
		key = fmt.Sprintf("%s_%d", key, width)
	}

	data, err := fs.blobs.Get(ctx, key)
	if err != nil {
		// missing derivative is a cache miss, missing original a lost
		// blob; neither existence is disclosed
		return nil, "", domain.ErrNotFound
	}

	contentType := mime.TypeByExtension(filepath.Ext(f.Name))
	if contentType == "" {
		contentType = defaultContentType
	}

	return data, contentType, nil
}

func (fs *FileService) CountFiles(ctx context.Context) (uint64, error) {
	return fs.fileRepository.CountFiles(ctx)
}
