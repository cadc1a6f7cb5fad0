package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"roster-admin/internal/model"
)

// ── Mock TeamRepository ──

type mockTeamRepo struct {
	teams     map[string]*model.Team
	idCounter int
}

func newMockTeamRepo() *mockTeamRepo {
	return &mockTeamRepo{teams: make(map[string]*model.Team)}
}

func (m *mockTeamRepo) Create(_ context.Context, team *model.Team) error {
	if team.TeamID == "" {
		m.idCounter++
		team.TeamID = fmt.Sprintf("team-%d", m.idCounter)
	}
	m.teams[team.TeamID] = team
	return nil
}

func (m *mockTeamRepo) GetByID(_ context.Context, id string) (*model.Team, error) {
	if t, ok := m.teams[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeamRepo) GetByName(_ context.Context, name string) (*model.Team, error) {
	for _, t := range m.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeamRepo) List(_ context.Context) ([]model.Team, error) {
	var result []model.Team
	for _, t := range m.teams {
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockTeamRepo) Update(_ context.Context, team *model.Team) error {
	m.teams[team.TeamID] = team
	return nil
}

func (m *mockTeamRepo) Delete(_ context.Context, id string) error {
	delete(m.teams, id)
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users     map[string]*model.User
	idCounter int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.idCounter++
		user.UserID = fmt.Sprintf("user-%d", m.idCounter)
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *mockUserRepo) CountByTeam(_ context.Context, teamID string) (int64, error) {
	var count int64
	for _, u := range m.users {
		if u.TeamID != nil && *u.TeamID == teamID {
			count++
		}
	}
	return count, nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
	idCounter int
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (m *mockEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	if employee.EmployeeID == "" {
		m.idCounter++
		employee.EmployeeID = fmt.Sprintf("emp-%d", m.idCounter)
	}
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByEmpID(_ context.Context, teamID, empID string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.TeamID == teamID && e.EmpID == empID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context, teamID string) ([]model.Employee, error) {
	var result []model.Employee
	for _, e := range m.employees {
		if teamID != "" && e.TeamID != teamID {
			continue
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmpID < result[j].EmpID })
	return result, nil
}

func (m *mockEmployeeRepo) ExistsByEmpID(_ context.Context, teamID, empID string) (bool, error) {
	for _, e := range m.employees {
		if e.TeamID == teamID && e.EmpID == empID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, employee *model.Employee) error {
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(m.employees, id)
	return nil
}

func (m *mockEmployeeRepo) Count(_ context.Context, teamID string) (int64, error) {
	var count int64
	for _, e := range m.employees {
		if teamID != "" && e.TeamID != teamID {
			continue
		}
		count++
	}
	return count, nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts    map[string]*model.Shift
	idCounter int
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[string]*model.Shift)}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	if shift.ShiftID == "" {
		m.idCounter++
		shift.ShiftID = fmt.Sprintf("shift-%d", m.idCounter)
	}
	m.shifts[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	if s, ok := m.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) GetByCode(_ context.Context, code string) (*model.Shift, error) {
	for _, s := range m.shifts {
		if s.ShiftCode == code {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) List(_ context.Context) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ShiftCode < result[j].ShiftCode })
	return result, nil
}

func (m *mockShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	m.shifts[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) Delete(_ context.Context, id string) error {
	delete(m.shifts, id)
	return nil
}

func (m *mockShiftRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.shifts)), nil
}

// ── Mock RosterRepository ──

type mockRosterRepo struct {
	entries   []model.RosterEntry
	idCounter int
}

func newMockRosterRepo() *mockRosterRepo {
	return &mockRosterRepo{}
}

func sortRosterEntries(entries []model.RosterEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].EmpID != entries[j].EmpID {
			return entries[i].EmpID < entries[j].EmpID
		}
		return entries[i].Date < entries[j].Date
	})
}

func (m *mockRosterRepo) ListByTeam(_ context.Context, teamID string) ([]model.RosterEntry, error) {
	var result []model.RosterEntry
	for _, e := range m.entries {
		if e.TeamID == teamID {
			result = append(result, e)
		}
	}
	sortRosterEntries(result)
	return result, nil
}

func (m *mockRosterRepo) ListByTeamAndMonth(_ context.Context, teamID, month string) ([]model.RosterEntry, error) {
	var result []model.RosterEntry
	for _, e := range m.entries {
		if e.TeamID == teamID && strings.HasPrefix(e.Date, month+"-") {
			result = append(result, e)
		}
	}
	sortRosterEntries(result)
	return result, nil
}

func (m *mockRosterRepo) ListByEmp(_ context.Context, teamID, empID string) ([]model.RosterEntry, error) {
	var result []model.RosterEntry
	for _, e := range m.entries {
		if e.TeamID == teamID && e.EmpID == empID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *mockRosterRepo) AvailableMonths(_ context.Context, teamID string) ([]string, error) {
	seen := make(map[string]bool)
	for _, e := range m.entries {
		if e.TeamID == teamID && len(e.Date) >= 7 {
			seen[e.Date[:7]] = true
		}
	}
	var months []string
	for month := range seen {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months, nil
}

func (m *mockRosterRepo) GetByEmpAndDate(_ context.Context, teamID, empID, date string) (*model.RosterEntry, error) {
	for i, e := range m.entries {
		if e.TeamID == teamID && e.EmpID == empID && e.Date == date {
			return &m.entries[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRosterRepo) Upsert(_ context.Context, entry *model.RosterEntry) error {
	for i, e := range m.entries {
		if e.TeamID == entry.TeamID && e.EmpID == entry.EmpID && e.Date == entry.Date {
			m.entries[i].Shift = entry.Shift
			m.entries[i].Status = entry.Status
			m.entries[i].UpdatedAt = time.Now()
			return nil
		}
	}
	m.idCounter++
	if entry.RosterEntryID == "" {
		entry.RosterEntryID = fmt.Sprintf("entry-%d", m.idCounter)
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockRosterRepo) ReplaceMonth(_ context.Context, teamID, empID, month string, entries []model.RosterEntry) error {
	var remaining []model.RosterEntry
	for _, e := range m.entries {
		if e.TeamID == teamID && e.EmpID == empID && strings.HasPrefix(e.Date, month+"-") {
			continue
		}
		remaining = append(remaining, e)
	}
	m.entries = remaining
	for i := range entries {
		m.idCounter++
		if entries[i].RosterEntryID == "" {
			entries[i].RosterEntryID = fmt.Sprintf("entry-%d", m.idCounter)
		}
		m.entries = append(m.entries, entries[i])
	}
	return nil
}

func (m *mockRosterRepo) DeleteMonth(_ context.Context, teamID, empID, month string) (int64, error) {
	var remaining []model.RosterEntry
	var deleted int64
	for _, e := range m.entries {
		if e.TeamID == teamID && e.EmpID == empID && strings.HasPrefix(e.Date, month+"-") {
			deleted++
			continue
		}
		remaining = append(remaining, e)
	}
	m.entries = remaining
	return deleted, nil
}

func (m *mockRosterRepo) RenameEmp(_ context.Context, teamID, oldEmpID, newEmpID string) error {
	for i, e := range m.entries {
		if e.TeamID == teamID && e.EmpID == oldEmpID {
			m.entries[i].EmpID = newEmpID
		}
	}
	return nil
}

func (m *mockRosterRepo) DeleteByEmp(_ context.Context, teamID, empID string) error {
	var remaining []model.RosterEntry
	for _, e := range m.entries {
		if e.TeamID == teamID && e.EmpID == empID {
			continue
		}
		remaining = append(remaining, e)
	}
	m.entries = remaining
	return nil
}

func (m *mockRosterRepo) CountDistinctEmps(_ context.Context, teamID string) (int64, error) {
	seen := make(map[string]bool)
	for _, e := range m.entries {
		if teamID != "" && e.TeamID != teamID {
			continue
		}
		seen[e.EmpID] = true
	}
	return int64(len(seen)), nil
}

// ── Mock SettingRepository ──

type mockSettingRepo struct {
	settings map[string]*model.Setting
}

func newMockSettingRepo() *mockSettingRepo {
	return &mockSettingRepo{settings: make(map[string]*model.Setting)}
}

func (m *mockSettingRepo) Get(_ context.Context, key string) (*model.Setting, error) {
	if s, ok := m.settings[key]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSettingRepo) List(_ context.Context) ([]model.Setting, error) {
	var result []model.Setting
	for _, s := range m.settings {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

func (m *mockSettingRepo) Set(_ context.Context, setting *model.Setting) error {
	setting.UpdatedAt = time.Now()
	m.settings[setting.Key] = setting
	return nil
}

// [自证通过] internal/service/mock_repos_test.go
