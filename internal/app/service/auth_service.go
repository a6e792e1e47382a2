package service

import (
	"context"
	"errors"
	"time"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"github.com/cafe120/cafe120-backend/pkg/redis"
	"github.com/cafe120/cafe120-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserNotApproved    = errors.New("user is not approved")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

type RegisterInput struct {
	Email         string
	Password      string
	Name          string
	Phone         string
	BusinessName  string
	BusinessNo    string
	Address       string
	DetailAddress string
}

// AdminUserUpdate 관리자가 수정할 수 있는 필드 (nil이면 변경 없음)
type AdminUserUpdate struct {
	Name         *string
	Phone        *string
	BusinessName *string
	BusinessNo   *string
	Membership   *model.MembershipTier
	Status       *model.UserStatus
	Memo         *string
}

type AuthService interface {
	Register(input RegisterInput) (*model.User, error)
	Login(email, password string) (*model.User, *util.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*util.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUserByID(id uint) (*model.User, error)
	ListUsers() ([]model.User, error)
	AdminUpdateUser(id uint, update AdminUserUpdate) (*model.User, error)
	DeleteUser(id uint) error
}

type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	jwtSecret string,
	accessExpiry, refreshExpiry time.Duration,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// Register 가입 신청을 생성한다. 신규 사용자는 승인 대기 상태로 시작하며
// 승인 전에는 로그인할 수 없으므로 토큰을 발급하지 않는다.
func (s *authService) Register(input RegisterInput) (*model.User, error) {
	logger.Info("Attempting user registration", map[string]interface{}{
		"email": input.Email,
		"name":  input.Name,
	})

	// 사전 확인은 안내용이고 실제 보장은 email unique index가 한다
	existingUser, err := s.userRepo.FindByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing user", err, map[string]interface{}{
			"email": input.Email,
		})
		return nil, err
	}
	if existingUser != nil {
		logger.Warn("Registration failed: email already exists", map[string]interface{}{
			"email": input.Email,
		})
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := util.HashPassword(input.Password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": input.Email,
		})
		return nil, err
	}

	user := &model.User{
		Email:         input.Email,
		PasswordHash:  hashedPassword,
		Name:          input.Name,
		Phone:         input.Phone,
		BusinessName:  input.BusinessName,
		BusinessNo:    input.BusinessNo,
		Address:       input.Address,
		DetailAddress: input.DetailAddress,
		Role:          model.RoleUser,
		Membership:    model.MembershipNone,
		Status:        model.StatusPending,
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": input.Email,
		})
		return nil, err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"status":  user.Status,
	})

	return user, nil
}

// Login 이메일이 없는 경우와 비밀번호가 틀린 경우를 같은 에러로 돌려준다
func (s *authService) Login(email, password string) (*model.User, *util.TokenPair, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
	})

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: user not found", map[string]interface{}{
				"email": email,
			})
			return nil, nil, ErrInvalidCredentials
		}
		logger.Error("Failed to find user", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email":   email,
			"user_id": user.ID,
		})
		return nil, nil, ErrInvalidCredentials
	}

	if user.Status != model.StatusActive {
		logger.Warn("Login failed: user not approved", map[string]interface{}{
			"email":   email,
			"user_id": user.ID,
			"status":  user.Status,
		})
		return nil, nil, ErrUserNotApproved
	}

	tokens, err := util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": user.ID,
			"email":   email,
		})
		return nil, nil, err
	}

	logger.Info("User logged in successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    user.Role,
	})

	return user, tokens, nil
}

// Refresh 폐기되지 않은 refresh 토큰으로 새 토큰 쌍을 발급한다
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*util.TokenPair, error) {
	claims, err := util.ValidateToken(refreshToken, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	revoked, err := redis.IsTokenBlacklisted(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if revoked {
		logger.Warn("Refresh rejected: token revoked", map[string]interface{}{
			"user_id": claims.UserID,
		})
		return nil, ErrTokenRevoked
	}

	// 갱신 시점의 권한/상태를 반영하기 위해 사용자를 다시 읽는다
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Status != model.StatusActive {
		return nil, ErrUserNotApproved
	}

	return util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
}

// Logout refresh 토큰을 남은 수명 동안 블랙리스트에 올린다
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := util.ValidateToken(refreshToken, s.jwtSecret)
	if err != nil {
		// 이미 만료된 토큰은 폐기할 필요가 없다
		if errors.Is(err, util.ErrExpiredToken) {
			return nil
		}
		return err
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}

	logger.Info("Logging out user", map[string]interface{}{
		"user_id": claims.UserID,
	})

	return redis.BlacklistToken(ctx, refreshToken, remaining)
}

func (s *authService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("User not found", map[string]interface{}{
				"user_id": id,
			})
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to fetch user", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}

	return user, nil
}

func (s *authService) ListUsers() ([]model.User, error) {
	return s.userRepo.FindAll()
}

func (s *authService) AdminUpdateUser(id uint, update AdminUserUpdate) (*model.User, error) {
	logger.Info("Admin updating user", map[string]interface{}{
		"user_id": id,
	})

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to fetch user for update", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.BusinessName != nil {
		user.BusinessName = *update.BusinessName
	}
	if update.BusinessNo != nil {
		user.BusinessNo = *update.BusinessNo
	}
	if update.Membership != nil {
		user.Membership = *update.Membership
	}
	if update.Status != nil {
		user.Status = *update.Status
	}
	if update.Memo != nil {
		user.Memo = *update.Memo
	}

	if err := s.userRepo.Update(user); err != nil {
		logger.Error("Failed to update user", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}

	logger.Info("User updated successfully", map[string]interface{}{
		"user_id":    user.ID,
		"membership": user.Membership,
		"status":     user.Status,
	})

	return user, nil
}

func (s *authService) DeleteUser(id uint) error {
	logger.Info("Deleting user", map[string]interface{}{
		"user_id": id,
	})

	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return s.userRepo.Delete(id)
}
