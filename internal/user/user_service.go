package user

import (
	"context"
	"time"

	"github.com/Ziyadh-ali/workwave-client-sub001/internal/employeeform"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/contextutil"
	usererrors "github.com/Ziyadh-ali/workwave-client-sub001/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	AddUser(ctx context.Context, payload employeeform.Payload) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
}

type service struct {
	repo       Repository
	bcryptCost int
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(repo Repository, bcryptCost int, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &service{
		repo:       repo,
		bcryptCost: bcryptCost,
		now:        time.Now,
		logger:     l,
	}
}

// AddUser receives a validated employee form payload and appends it to the user list.
func (s *service) AddUser(ctx context.Context, payload employeeform.Payload) (UserResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	log.Debug("add user requested",
		zap.String("request_id", rid),
		zap.String("email", payload.Email),
		zap.String("role", string(payload.Role)),
		zap.String("department", string(payload.Department)),
	)

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), s.bcryptCost)
	if err != nil {
		log.Error("add user hash password failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		ID:           uuid.New(),
		FullName:     payload.FullName,
		Email:        payload.Email,
		Role:         payload.Role,
		Department:   payload.Department,
		Salary:       payload.Salary,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == usererrors.ErrUserAlreadyExists {
			log.Warn("add user email already exists", zap.String("email", payload.Email))
		} else {
			log.Error("add user persist failed", zap.Error(err))
		}
		return UserResponse{}, mapped
	}

	log.Info("add user success",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
	)
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all users failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		FullName:   u.FullName,
		Email:      u.Email,
		Role:       string(u.Role),
		Department: string(u.Department),
		Salary:     u.Salary,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
