package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"files-manager-api/internal/application/ports"
	domain "files-manager-api/internal/domain/user"
	"files-manager-api/internal/infrastructure/mq"
)

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := us.userRepository.CreateUser(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	if u != nil {
		us.mq.GetInputChan() <- mq.Job{
			Id:     uuid.New(),
			TS:     time.Now(),
			Kind:   mq.KindWelcome,
			UserID: u.ID,
		}
	}

	us.mCounter.WithLabelValues("users_created_total").Inc()

	return u, nil
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) CountUsers(ctx context.Context) (uint64, error) {
	return us.userRepository.CountUsers(ctx)
}
