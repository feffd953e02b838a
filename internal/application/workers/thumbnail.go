package workers

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"files-manager-api/internal/application/ports"
	"files-manager-api/internal/domain/file"
	"files-manager-api/internal/infrastructure/mq"
)

// ThumbnailWidths is the fixed descending derivative set.
var ThumbnailWidths = []int{500, 250, 100}

// ThumbnailWorker turns one queued job into the full derivative set for
// an image. Derivative keys are deterministic ("<key>_<width>") and
// writes overwrite, so rerunning the same job is harmless.
type ThumbnailWorker struct {
	logger         *zap.Logger
	fileRepository file.Repository
	blobs          ports.BlobStore
	resizer        ports.Resizer
	mCounter       *prometheus.CounterVec
}

func NewThumbnailWorker(
	logger *zap.Logger,
	fileRepository file.Repository,
	blobs ports.BlobStore,
	resizer ports.Resizer,
	mCounter *prometheus.CounterVec,
) *ThumbnailWorker {
	return &ThumbnailWorker{
		logger:         logger,
		fileRepository: fileRepository,
		blobs:          blobs,
		resizer:        resizer,
		mCounter:       mCounter,
	}
}

func (w *ThumbnailWorker) Handle(ctx context.Context, job mq.Job) error {
	if job.FileID == uuid.Nil {
		return fmt.Errorf("%w: missing file_id", ErrTerminal)
	}
	if job.UserID == uuid.Nil {
		return fmt.Errorf("%w: missing user_id", ErrTerminal)
	}

	f, err := w.fileRepository.FetchFile(ctx, job.FileID)
	if err != nil {
		return fmt.Errorf("fetch file %s: %w", job.FileID, err)
	}
	if f == nil || f.StorageKey == nil {
		// the record will never appear; retrying is pointless
		return fmt.Errorf("%w: file %s not found", ErrTerminal, job.FileID)
	}

	src, err := w.blobs.Get(ctx, *f.StorageKey)
	if err != nil {
		return fmt.Errorf("read source %s: %w", *f.StorageKey, err)
	}

	for _, width := range ThumbnailWidths {
		thumb, err := w.resizer.Resize(src, width)
		if err != nil {
			// undecodable content cannot become decodable later
			return fmt.Errorf("%w: resize %s to %d: %v", ErrTerminal, *f.StorageKey, width, err)
		}
		key := fmt.Sprintf("%s_%d", *f.StorageKey, width)
		if err = w.blobs.Put(ctx, key, thumb); err != nil {
			return fmt.Errorf("write derivative %s: %w", key, err)
		}
	}

	w.mCounter.WithLabelValues("thumbnails_generated_total").Inc()
	w.logger.Info("thumbnails generated",
		zap.Stringer("file_id", f.ID),
		zap.Ints("widths", ThumbnailWidths),
	)

	return nil
}
