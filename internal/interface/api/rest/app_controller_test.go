package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"files-manager-api/internal/infrastructure/mq"
)

type fakePinger struct{ err error }

func (f *fakePinger) Ping(context.Context) error { return f.err }

type fakeMQ struct{}

func (fakeMQ) Connect(context.Context, string) error { return nil }
func (fakeMQ) Init() error                           { return nil }
func (fakeMQ) PublisherWorker(context.Context)       {}
func (fakeMQ) GetInputChan() chan mq.Job             { return nil }
func (fakeMQ) GetConn() *amqp091.Connection          { return nil }

func TestAppController_StatusHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		dbErr  error
		wantDB bool
	}{
		{"db up", nil, true},
		{"db down", errors.New("no route"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			NewAppController(r, &fakePinger{err: tt.dbErr}, fakeMQ{},
				&FakeUserService{}, &FakeFileService{}, zap.NewNop())

			rr := doReq(t, r, http.MethodGet, RouteStatus, nil, nil)
			require.Equal(t, http.StatusOK, rr.Code)

			var resp map[string]bool
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantDB, resp["db"])
			assert.False(t, resp["mq"], "nil connection reads as down")
		})
	}
}

func TestAppController_StatsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("200 with counts", func(t *testing.T) {
		r := gin.New()
		NewAppController(r, &fakePinger{}, fakeMQ{},
			&FakeUserService{
				CountUsersFunc: func(ctx context.Context) (uint64, error) { return 12, nil },
			},
			&FakeFileService{
				CountFilesFunc: func(ctx context.Context) (uint64, error) { return 1231, nil },
			},
			zap.NewNop())

		rr := doReq(t, r, http.MethodGet, RouteStats, nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"users":12,"files":1231}`, rr.Body.String())
	})

	t.Run("500 when a count fails", func(t *testing.T) {
		r := gin.New()
		NewAppController(r, &fakePinger{}, fakeMQ{},
			&FakeUserService{
				CountUsersFunc: func(ctx context.Context) (uint64, error) {
					return 0, errors.New("db down")
				},
			},
			&FakeFileService{}, zap.NewNop())

		rr := doReq(t, r, http.MethodGet, RouteStats, nil, nil)
		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
