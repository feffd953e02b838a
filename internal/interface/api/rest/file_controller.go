package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"files-manager-api/internal/application/ports"
	domain "files-manager-api/internal/domain/file"
	userDomain "files-manager-api/internal/domain/user"
	"files-manager-api/internal/interface/api/rest/dto/file"
	"files-manager-api/internal/interface/api/rest/middleware"
	"files-manager-api/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService ports.FileService
	authService ports.Auth
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	authService ports.Auth,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		authService: authService,
		logger:      logger,
	}

	auth := middleware.AuthMiddleware(authService)
	r.POST(RouteFiles, auth, fc.UploadHandler)
	r.GET(RouteFiles, auth, fc.GetFilesHandler)
	r.GET(RouteFile, auth, fc.GetFileHandler)
	r.PUT(RouteFilePublish, auth, fc.PublishHandler)
	r.PUT(RouteFileUnpublish, auth, fc.UnpublishHandler)
	// content is also served anonymously for public files
	r.GET(RouteFileData, fc.GetFileDataHandler)

	return fc
}

func (fc *FileController) UploadHandler(c *gin.Context) {
	actorID := c.MustGet(middleware.CtxUserID).(userDomain.ID)

	var req file.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	fType, err := validator.ValidateUpload(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	parentID, err := validator.ParseParentID(req.ParentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := fc.fileService.Upload(c.Request.Context(), actorID, domain.UploadInput{
		Name:     req.Name,
		Type:     fType,
		ParentID: parentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParentNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent not found"})
		case errors.Is(err, domain.ErrParentNotAFolder):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent is not a folder"})
		case errors.Is(err, domain.ErrInvalidData):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to create a file"},
			)
			fc.logger.Error("Upload() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusCreated, file.ToResponseFile(*f))
}

func (fc *FileController) GetFilesHandler(c *gin.Context) {
	actorID := c.MustGet(middleware.CtxUserID).(userDomain.ID)

	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	parentID, err := validator.ParseParentID(c.Query("parentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fs, err := fc.fileService.FindUserFiles(c.Request.Context(), actorID, parentID, page)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindUserFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, file.ToResponseFiles(fs))
}

func (fc *FileController) GetFileHandler(c *gin.Context) {
	actorID := c.MustGet(middleware.CtxUserID).(userDomain.ID)

	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	f, err := fc.fileService.FindUserFile(c.Request.Context(), actorID, fileID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a file"},
		)
		fc.logger.Error("FindUserFile() error", zap.Error(err))
		return
	}
	if f == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, file.ToResponseFile(*f))
}

func (fc *FileController) PublishHandler(c *gin.Context)   { fc.setVisibility(c, true) }
func (fc *FileController) UnpublishHandler(c *gin.Context) { fc.setVisibility(c, false) }

func (fc *FileController) setVisibility(c *gin.Context, isPublic bool) {
	actorID := c.MustGet(middleware.CtxUserID).(userDomain.ID)

	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	f, err := fc.fileService.SetVisibility(c.Request.Context(), actorID, fileID, isPublic)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a file"},
		)
		fc.logger.Error("SetVisibility() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, file.ToResponseFile(*f))
}

func (fc *FileController) GetFileDataHandler(c *gin.Context) {
	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	width, err := validator.ValidateSize(c.Query("size"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// the token is optional here: unresolved callers read as anonymous
	var actorID *userDomain.ID
	if token := c.GetHeader(middleware.TokenHeader); token != "" {
		if id, rErr := fc.authService.Resolve(c.Request.Context(), token); rErr == nil {
			actorID = &id
		}
	}

	data, contentType, err := fc.fileService.Content(c.Request.Context(), actorID, fileID, width)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFolderHasNoContent):
			c.JSON(http.StatusBadRequest, gin.H{"error": "A folder doesn't have content"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to get file content"},
			)
			fc.logger.Error("Content() error", zap.Error(err))
		}
		return
	}

	c.Data(http.StatusOK, contentType, data)
}
