package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Ziyadh-ali/workwave-client-sub001/internal/employeeform"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/shared/apperror"
	"github.com/Ziyadh-ali/workwave-client-sub001/internal/user"
	usererrors "github.com/Ziyadh-ali/workwave-client-sub001/internal/user/errors"
	userMock "github.com/Ziyadh-ali/workwave-client-sub001/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type serviceDeps struct {
	service user.Service
	repo    *userMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service: user.NewService(repo, bcrypt.MinCost),
		repo:    repo,
	}
}

func janePayload() employeeform.Payload {
	return employeeform.Payload{
		FullName:   "Jane Doe",
		Email:      "jane@x.com",
		Role:       employeeform.RoleDeveloper,
		Department: employeeform.DepartmentSoftwareDeveloper,
		Password:   "Passw0rd!",
		Salary:     50000,
	}
}

func TestUserService_AddUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success - hashes password", func(t *testing.T) {
		deps := setupServiceTest(t)
		payload := janePayload()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *user.User) error {
				assert.NotEqual(t, uuid.Nil, u.ID)
				assert.Equal(t, payload.FullName, u.FullName)
				assert.Equal(t, payload.Salary, u.Salary)
				assert.True(t, u.IsActive)
				assert.NoError(t, bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(payload.Password)))
				return nil
			})

		resp, err := deps.service.AddUser(ctx, payload)

		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", resp.FullName)
		assert.Equal(t, "developer", resp.Role)
		assert.Equal(t, "softwareDeveloper", resp.Department)
		assert.Equal(t, float64(50000), resp.Salary)
	})

	t.Run("duplicate email - conflict", func(t *testing.T) {
		deps := user.NewService(user.NewRepository(), bcrypt.MinCost)

		_, err := deps.AddUser(ctx, janePayload())
		assert.NoError(t, err)

		dup := janePayload()
		dup.Email = "JANE@x.com"
		_, err = deps.AddUser(ctx, dup)
		assert.ErrorIs(t, err, usererrors.ErrUserAlreadyExists)
	})

	t.Run("repository error - wrapped as internal", func(t *testing.T) {
		deps := setupServiceTest(t)
		boom := errors.New("boom")
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(boom)

		_, err := deps.service.AddUser(ctx, janePayload())

		assert.ErrorIs(t, err, boom)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "boom")
	})
}

func TestUserService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	id := uuid.New()

	deps.repo.EXPECT().FindAll(ctx).Return([]user.User{
		{ID: id, FullName: "Jane Doe", Email: "jane@x.com", Role: employeeform.RoleHR, Department: employeeform.DepartmentHR, Salary: 2000},
	}, nil)

	resp, err := deps.service.GetAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, id.String(), resp[0].ID)
	assert.Equal(t, "hr", resp[0].Role)
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetByID(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := user.NewService(user.NewRepository(), bcrypt.MinCost)

		_, err := svc.GetByID(ctx, uuid.NewString())

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("found", func(t *testing.T) {
		svc := user.NewService(user.NewRepository(), bcrypt.MinCost)
		created, err := svc.AddUser(ctx, janePayload())
		assert.NoError(t, err)

		got, err := svc.GetByID(ctx, created.ID)

		assert.NoError(t, err)
		assert.Equal(t, created, got)
	})
}
