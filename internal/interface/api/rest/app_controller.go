package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"files-manager-api/internal/application/ports"
)

// Pinger reports database liveness for the status endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type AppController struct {
	db          Pinger
	mq          ports.RabbitMQ
	userService ports.UserService
	fileService ports.FileService
	logger      *zap.Logger
}

func NewAppController(
	r *gin.Engine,
	db Pinger,
	mq ports.RabbitMQ,
	userService ports.UserService,
	fileService ports.FileService,
	logger *zap.Logger,
) *AppController {
	ac := &AppController{
		db:          db,
		mq:          mq,
		userService: userService,
		fileService: fileService,
		logger:      logger,
	}

	r.GET(RouteStatus, ac.StatusHandler)
	r.GET(RouteStats, ac.StatsHandler)

	return ac
}

func (ac *AppController) StatusHandler(c *gin.Context) {
	dbAlive := ac.db.Ping(c.Request.Context()) == nil

	mqAlive := false
	if conn := ac.mq.GetConn(); conn != nil {
		mqAlive = !conn.IsClosed()
	}

	c.JSON(http.StatusOK, gin.H{"db": dbAlive, "mq": mqAlive})
}

func (ac *AppController) StatsHandler(c *gin.Context) {
	users, err := ac.userService.CountUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		ac.logger.Error("CountUsers() error", zap.Error(err))
		return
	}
	files, err := ac.fileService.CountFiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		ac.logger.Error("CountFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "files": files})
}
