package handler

import (
	"github.com/gin-gonic/gin"

	"roster-admin/internal/service"
	"roster-admin/pkg/response"
)

// StatsHandler 概览统计 HTTP 处理器
type StatsHandler struct {
	statsSvc service.StatsService
}

// NewStatsHandler 创建 StatsHandler
func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// GetStats 概览统计
// GET /api/stats?team_id=
func (h *StatsHandler) GetStats(c *gin.Context) {
	scope, ok := MustGetTeamScope(c, c.Query("team_id"))
	if !ok {
		return
	}

	result, err := h.statsSvc.Overview(c.Request.Context(), scope)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
