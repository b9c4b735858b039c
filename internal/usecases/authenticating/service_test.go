package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/robotads/robotads-api/infrastructure/repository/mocks"
	"github.com/robotads/robotads-api/internal/config"
	"github.com/robotads/robotads-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(ctrl *gomock.Controller) (Authenticator, *mocks.MockUserRepository) {
	repo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{SecretKey: "test-secret"}

	return NewService(repo, cfg), repo
}

func storedUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           7,
		Name:         "Demo",
		Lastname:     "User",
		Email:        "demo@robotads.com.br",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       3,
	}
}

func TestService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo := newTestService(ctrl)

	repo.EXPECT().GetUserByID(7).Return(storedUser(t, "Correta1!"), nil)

	err := service.ChangePassword(7, "errada", "NovaSenha1!")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_ChangePassword_WeakNewPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo := newTestService(ctrl)

	repo.EXPECT().GetUserByID(7).Return(storedUser(t, "Correta1!"), nil)

	err := service.ChangePassword(7, "Correta1!", "fraca")

	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestService_ChangePassword_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo := newTestService(ctrl)

	repo.EXPECT().GetUserByID(99).Return(nil, nil)

	err := service.ChangePassword(99, "qualquer", "NovaSenha1!")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_GenerateStrongPassword_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo := newTestService(ctrl)

	requester := storedUser(t, "Correta1!")
	repo.EXPECT().GetUserByID(7).Return(requester, nil)

	_, err := service.GenerateStrongPassword(7, 8)

	assert.ErrorIs(t, err, ErrNoAdminPrivileges)
}

func TestService_GenerateStrongPassword_TargetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo := newTestService(ctrl)

	admin := storedUser(t, "Correta1!")
	admin.RoleID = 1

	repo.EXPECT().GetUserByID(7).Return(admin, nil)
	repo.EXPECT().GetUserByID(8).Return(nil, nil)

	_, err := service.GenerateStrongPassword(7, 8)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"senha forte passa", "Forte#123", true},
		{"curta demais", "Ab#1", false},
		{"sem maiúscula", "fraca#123", false},
		{"sem número", "Fraca#abc", false},
		{"sem caractere especial", "Fraca1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrWeakPassword)
		})
	}
}
