package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	fileDomain "files-manager-api/internal/domain/file"
	"files-manager-api/internal/domain/session"
	"files-manager-api/internal/domain/user"
	"files-manager-api/internal/infrastructure/mq"
)

var errNotUsed = errors.New("not used")

type FakeUserRepo struct {
	FetchUserByIDFunc    func(ctx context.Context, id user.ID) (*user.User, error)
	FetchUserByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	CreateUserFunc       func(ctx context.Context, req user.User) (*user.User, error)
	CountUsersFunc       func(ctx context.Context) (uint64, error)
}

func (f *FakeUserRepo) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	if f.FetchUserByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUserByIDFunc(ctx, id)
}
func (f *FakeUserRepo) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *FakeUserRepo) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateUserFunc(ctx, req)
}
func (f *FakeUserRepo) CountUsers(ctx context.Context) (uint64, error) {
	if f.CountUsersFunc == nil {
		return 0, errNotUsed
	}
	return f.CountUsersFunc(ctx)
}

type FakeSessionRepo struct {
	CreateSessionFunc func(ctx context.Context, req session.Session) error
	FetchSessionFunc  func(ctx context.Context, token string) (*session.Session, error)
	DeleteSessionFunc func(ctx context.Context, token string) (bool, error)
	PurgeExpiredFunc  func(ctx context.Context) (int64, error)
}

func (f *FakeSessionRepo) CreateSession(ctx context.Context, req session.Session) error {
	if f.CreateSessionFunc == nil {
		return errNotUsed
	}
	return f.CreateSessionFunc(ctx, req)
}
func (f *FakeSessionRepo) FetchSession(ctx context.Context, token string) (*session.Session, error) {
	if f.FetchSessionFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchSessionFunc(ctx, token)
}
func (f *FakeSessionRepo) DeleteSession(ctx context.Context, token string) (bool, error) {
	if f.DeleteSessionFunc == nil {
		return false, errNotUsed
	}
	return f.DeleteSessionFunc(ctx, token)
}
func (f *FakeSessionRepo) PurgeExpired(ctx context.Context) (int64, error) {
	if f.PurgeExpiredFunc == nil {
		return 0, errNotUsed
	}
	return f.PurgeExpiredFunc(ctx)
}

type FakeFileRepo struct {
	FetchFileFunc      func(ctx context.Context, id fileDomain.ID) (*fileDomain.File, error)
	FetchUserFileFunc  func(ctx context.Context, ownerID user.ID, id fileDomain.ID) (*fileDomain.File, error)
	FetchUserFilesFunc func(ctx context.Context, ownerID user.ID, parentID *fileDomain.ID, page int) (fileDomain.Files, error)
	CreateFileFunc     func(ctx context.Context, req *fileDomain.File) (*fileDomain.File, error)
	SetVisibilityFunc  func(ctx context.Context, ownerID user.ID, id fileDomain.ID, isPublic bool) (*fileDomain.File, error)
	CountFilesFunc     func(ctx context.Context) (uint64, error)
}

func (f *FakeFileRepo) FetchFile(ctx context.Context, id fileDomain.ID) (*fileDomain.File, error) {
	if f.FetchFileFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchFileFunc(ctx, id)
}
func (f *FakeFileRepo) FetchUserFile(ctx context.Context, ownerID user.ID, id fileDomain.ID) (*fileDomain.File, error) {
	if f.FetchUserFileFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUserFileFunc(ctx, ownerID, id)
}
func (f *FakeFileRepo) FetchUserFiles(ctx context.Context, ownerID user.ID, parentID *fileDomain.ID, page int) (fileDomain.Files, error) {
	if f.FetchUserFilesFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUserFilesFunc(ctx, ownerID, parentID, page)
}
func (f *FakeFileRepo) CreateFile(ctx context.Context, req *fileDomain.File) (*fileDomain.File, error) {
	if f.CreateFileFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateFileFunc(ctx, req)
}
func (f *FakeFileRepo) SetVisibility(ctx context.Context, ownerID user.ID, id fileDomain.ID, isPublic bool) (*fileDomain.File, error) {
	if f.SetVisibilityFunc == nil {
		return nil, errNotUsed
	}
	return f.SetVisibilityFunc(ctx, ownerID, id, isPublic)
}
func (f *FakeFileRepo) CountFiles(ctx context.Context) (uint64, error) {
	if f.CountFilesFunc == nil {
		return 0, errNotUsed
	}
	return f.CountFilesFunc(ctx)
}

// FakeBlobStore records every call in Ops so tests can assert ordering
// against the metadata insert.
type FakeBlobStore struct {
	Data    map[string][]byte
	Ops     []string
	PutErr  error
	GetErr  error
	DestErr error
}

func NewFakeBlobStore() *FakeBlobStore {
	return &FakeBlobStore{Data: map[string][]byte{}}
}

func (f *FakeBlobStore) Put(_ context.Context, key string, data []byte) error {
	f.Ops = append(f.Ops, "put:"+key)
	if f.PutErr != nil {
		return f.PutErr
	}
	f.Data[key] = data
	return nil
}
func (f *FakeBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	f.Ops = append(f.Ops, "get:"+key)
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	d, ok := f.Data[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return d, nil
}
func (f *FakeBlobStore) Delete(_ context.Context, key string) error {
	f.Ops = append(f.Ops, "delete:"+key)
	if f.DestErr != nil {
		return f.DestErr
	}
	delete(f.Data, key)
	return nil
}

// FakeRabbitMQ is a buffered channel standing in for the publisher.
type FakeRabbitMQ struct {
	In chan mq.Job
}

func NewFakeRabbitMQ() *FakeRabbitMQ {
	return &FakeRabbitMQ{In: make(chan mq.Job, 16)}
}

func (f *FakeRabbitMQ) Connect(context.Context, string) error { return nil }
func (f *FakeRabbitMQ) Init() error                           { return nil }
func (f *FakeRabbitMQ) PublisherWorker(context.Context)       {}
func (f *FakeRabbitMQ) GetInputChan() chan mq.Job             { return f.In }
func (f *FakeRabbitMQ) GetConn() *amqp091.Connection          { return nil }

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"},
	)
}
