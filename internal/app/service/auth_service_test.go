package service

import (
	"context"
	"testing"
	"time"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthServiceTest(t *testing.T) AuthService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	userRepo := repository.NewUserRepository(testDB)
	return NewAuthService(
		userRepo,
		"test-jwt-secret",
		15*time.Minute,
		7*24*time.Hour,
	)
}

func registerTestUser(t *testing.T, authService AuthService, email string) *model.User {
	user, err := authService.Register(RegisterInput{
		Email:        email,
		Password:     "password123",
		Name:         "테스트 점주",
		Phone:        "010-1234-5678",
		BusinessName: "카페120 강남점",
		BusinessNo:   "123-45-67890",
	})
	require.NoError(t, err)
	return user
}

func TestAuthService_Register(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user := registerTestUser(t, authService, "owner@example.com")
	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Equal(t, model.StatusPending, user.Status)
	assert.Equal(t, model.MembershipNone, user.Membership)
	assert.NotEqual(t, "password123", user.PasswordHash)

	// 같은 이메일 재가입은 거부
	_, err := authService.Register(RegisterInput{
		Email:    "owner@example.com",
		Password: "other-password",
		Name:     "다른 사람",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_Login_PendingUserRejected(t *testing.T) {
	authService := setupAuthServiceTest(t)
	registerTestUser(t, authService, "pending@example.com")

	user, tokens, err := authService.Login("pending@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserNotApproved)
	assert.Nil(t, user)
	assert.Nil(t, tokens)
}

func TestAuthService_Login_AfterApproval(t *testing.T) {
	authService := setupAuthServiceTest(t)
	registered := registerTestUser(t, authService, "approved@example.com")

	// 관리자 승인 + 멤버십 부여
	active := model.StatusActive
	tier := model.MembershipCafe120
	updated, err := authService.AdminUpdateUser(registered.ID, AdminUserUpdate{
		Status:     &active,
		Membership: &tier,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, updated.Status)
	assert.Equal(t, model.MembershipCafe120, updated.Membership)

	user, tokens, err := authService.Login("approved@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	authService := setupAuthServiceTest(t)
	registered := registerTestUser(t, authService, "user@example.com")

	active := model.StatusActive
	_, err := authService.AdminUpdateUser(registered.ID, AdminUserUpdate{Status: &active})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"Unknown email", "nobody@example.com", "password123"},
		{"Wrong password", "user@example.com", "wrong-password"},
	}

	// 계정 존재 여부가 드러나지 않도록 두 경우 모두 같은 에러
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := authService.Login(tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_SuspendedUserRejected(t *testing.T) {
	authService := setupAuthServiceTest(t)
	registered := registerTestUser(t, authService, "suspended@example.com")

	suspended := model.StatusSuspended
	_, err := authService.AdminUpdateUser(registered.ID, AdminUserUpdate{Status: &suspended})
	require.NoError(t, err)

	_, _, err = authService.Login("suspended@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserNotApproved)
}

func TestAuthService_Refresh(t *testing.T) {
	authService := setupAuthServiceTest(t)
	registered := registerTestUser(t, authService, "refresh@example.com")

	active := model.StatusActive
	_, err := authService.AdminUpdateUser(registered.ID, AdminUserUpdate{Status: &active})
	require.NoError(t, err)

	_, tokens, err := authService.Login("refresh@example.com", "password123")
	require.NoError(t, err)

	newTokens, err := authService.Refresh(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, newTokens.AccessToken)

	// 갱신 전에 정지된 계정은 새 토큰을 받을 수 없다
	suspended := model.StatusSuspended
	_, err = authService.AdminUpdateUser(registered.ID, AdminUserUpdate{Status: &suspended})
	require.NoError(t, err)

	_, err = authService.Refresh(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrUserNotApproved)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, err := authService.Refresh(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestAuthService_AdminUpdateUser_PartialUpdate(t *testing.T) {
	authService := setupAuthServiceTest(t)
	registered := registerTestUser(t, authService, "partial@example.com")

	memo := "3월 승인, 계약서 수령 완료"
	updated, err := authService.AdminUpdateUser(registered.ID, AdminUserUpdate{Memo: &memo})
	require.NoError(t, err)

	// 지정하지 않은 필드는 그대로
	assert.Equal(t, memo, updated.Memo)
	assert.Equal(t, registered.Name, updated.Name)
	assert.Equal(t, model.StatusPending, updated.Status)
}

func TestAuthService_AdminUpdateUser_NotFound(t *testing.T) {
	authService := setupAuthServiceTest(t)

	name := "없는 사람"
	_, err := authService.AdminUpdateUser(9999, AdminUserUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_DeleteUser(t *testing.T) {
	authService := setupAuthServiceTest(t)
	registered := registerTestUser(t, authService, "delete@example.com")

	require.NoError(t, authService.DeleteUser(registered.ID))

	_, err := authService.GetUserByID(registered.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, authService.DeleteUser(registered.ID), ErrUserNotFound)
}

func TestAuthService_ListUsers(t *testing.T) {
	authService := setupAuthServiceTest(t)
	registerTestUser(t, authService, "a@example.com")
	registerTestUser(t, authService, "b@example.com")

	users, err := authService.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
