package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/service"
	apperrors "github.com/cafe120/cafe120-backend/internal/errors"
	"github.com/cafe120/cafe120-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UserController 관리자용 회원 관리 API
type UserController struct {
	authService service.AuthService
}

func NewUserController(authService service.AuthService) *UserController {
	return &UserController{
		authService: authService,
	}
}

type AdminUpdateUserRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	BusinessName *string `json:"business_name"`
	BusinessNo   *string `json:"business_no"`
	Membership   *string `json:"membership"`
	Status       *string `json:"status"`
	Memo         *string `json:"memo"`
}

// ListUsers returns all registered users
// GET /api/v1/users
func (ctrl *UserController) ListUsers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	users, err := ctrl.authService.ListUsers()
	if err != nil {
		log.Error("Failed to list users", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	views := make([]gin.H, 0, len(users))
	for i := range users {
		view := userView(&users[i])
		view["memo"] = users[i].Memo
		view["created_at"] = users[i].CreatedAt
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"users": views,
		"count": len(views),
	})
}

// UpdateUser updates membership, approval status and profile fields
// PATCH /api/v1/users/:id
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 사용자 ID입니다")
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid user update request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	update := service.AdminUserUpdate{
		Name:         req.Name,
		Phone:        req.Phone,
		BusinessName: req.BusinessName,
		BusinessNo:   req.BusinessNo,
		Memo:         req.Memo,
	}
	if req.Membership != nil {
		tier := model.MembershipTier(*req.Membership)
		update.Membership = &tier
	}
	if req.Status != nil {
		status := model.UserStatus(*req.Status)
		update.Status = &status
	}

	user, err := ctrl.authService.AdminUpdateUser(uint(id), update)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to update user", err, map[string]interface{}{
			"user_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	view := userView(user)
	view["memo"] = user.Memo

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    view,
	})
}

// DeleteUser permanently removes a user
// DELETE /api/v1/users/:id
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 사용자 ID입니다")
		return
	}

	if err := ctrl.authService.DeleteUser(uint(id)); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete user", err, map[string]interface{}{
			"user_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}
