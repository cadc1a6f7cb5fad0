package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"roster-admin/internal/model"
	"roster-admin/internal/repository"
	pkgerrors "roster-admin/pkg/errors"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成导出文件失败")

// ExportService 排班导出接口
//
// 设计说明：
//   - CSV 为扁平行集：每个有排班的 (员工, 日期) 一行，按 emp_id 升序、日期升序，
//     未排班的单元格不输出
//   - XLSX 为矩阵视图：行=员工，列=日期，与排班页面布局一致
//   - ICS 为单员工的日历订阅：每个非 OFF 条目一个全天事件
//   - 均以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	ExportCSV(ctx context.Context, scope TeamScope, month string, all bool) (*bytes.Buffer, string, error)
	ExportXLSX(ctx context.Context, scope TeamScope, month string, all bool) (*bytes.Buffer, string, error)
	ExportEmployeeICS(ctx context.Context, scope TeamScope, empID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// loadWindow 解析导出窗口并加载条目与员工
// month 为空且非全量时取最近一个有排班的月份；label 用于生成文件名
func (s *exportService) loadWindow(ctx context.Context, teamID, month string, all bool) (
	entries []model.RosterEntry, employees []model.Employee, dates []string, label string, err error,
) {
	switch {
	case all:
		entries, err = s.repo.Roster.ListByTeam(ctx, teamID)
		if err != nil {
			return
		}
		dates = distinctDates(entries)
		label = "all"

	default:
		if month == "" {
			var months []string
			months, err = s.repo.Roster.AvailableMonths(ctx, teamID)
			if err != nil {
				return
			}
			if len(months) == 0 {
				label = "empty"
				employees, err = s.repo.Employee.List(ctx, teamID)
				return
			}
			month = months[0]
		}
		if !monthPattern.MatchString(month) {
			err = pkgerrors.Validationf("月份格式不合法: %s（应为 YYYY-MM）", month)
			return
		}
		entries, err = s.repo.Roster.ListByTeamAndMonth(ctx, teamID, month)
		if err != nil {
			return
		}
		dates = monthDates(month)
		label = month
	}

	employees, err = s.repo.Employee.List(ctx, teamID)
	return
}

// ════════════════════════════════════════════════════════════
// ExportCSV — 扁平 CSV
// ════════════════════════════════════════════════════════════
//
// 列: Employee ID, Employee Name, Date (MM/DD/YYYY), Shift, Status

func (s *exportService) ExportCSV(ctx context.Context, scope TeamScope, month string, all bool) (*bytes.Buffer, string, error) {
	teamID, err := scope.RequireTeam()
	if err != nil {
		return nil, "", err
	}

	entries, employees, _, label, err := s.loadWindow(ctx, teamID, month, all)
	if err != nil {
		if pkgerrors.IsValidation(err) {
			return nil, "", err
		}
		s.logger.Error("加载导出数据失败", zap.Error(err))
		return nil, "", err
	}

	nameByEmpID := make(map[string]string, len(employees))
	for i := range employees {
		nameByEmpID[employees[i].EmpID] = employees[i].Name
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Employee ID", "Employee Name", "Date", "Shift", "Status"}); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	// 条目已按 emp_id 升序、日期升序返回
	for i := range entries {
		entry := &entries[i]
		if err := w.Write([]string{
			entry.EmpID,
			nameByEmpID[entry.EmpID],
			usDate(entry.Date),
			entry.Shift,
			entry.Status,
		}); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		s.logger.Error("写入 CSV 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, fmt.Sprintf("roster_export_%s.csv", label), nil
}

// ════════════════════════════════════════════════════════════
// ExportXLSX — 矩阵 Excel
// ════════════════════════════════════════════════════════════
//
// 布局: | Employee ID | Employee Name | <date1> | <date2> | ... |
// 单元格: OFF 条目显示 "OFF"，其余显示班次快照文本，未排班显示 "-"

func (s *exportService) ExportXLSX(ctx context.Context, scope TeamScope, month string, all bool) (*bytes.Buffer, string, error) {
	teamID, err := scope.RequireTeam()
	if err != nil {
		return nil, "", err
	}

	entries, employees, dates, label, err := s.loadWindow(ctx, teamID, month, all)
	if err != nil {
		if pkgerrors.IsValidation(err) {
			return nil, "", err
		}
		s.logger.Error("加载导出数据失败", zap.Error(err))
		return nil, "", err
	}

	index := make(map[string]*model.RosterEntry, len(entries))
	for i := range entries {
		index[entries[i].EmpID+"|"+entries[i].Date] = &entries[i]
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Roster"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "B", 20)
	if len(dates) > 0 {
		first, _ := excelize.ColumnNumberToName(3)
		last, _ := excelize.ColumnNumberToName(2 + len(dates))
		f.SetColWidth(sheetName, first, last, 26)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	f.SetCellValue(sheetName, "A1", "Employee ID")
	f.SetCellValue(sheetName, "B1", "Employee Name")
	for i, date := range dates {
		cellName, _ := excelize.CoordinatesToCellName(3+i, 1)
		f.SetCellValue(sheetName, cellName, date)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(2+len(dates), 1)
	f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)

	// 数据行
	for r, emp := range employees {
		row := r + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), emp.EmpID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), emp.Name)
		for i, date := range dates {
			cellName, _ := excelize.CoordinatesToCellName(3+i, row)
			text := "-"
			if entry, ok := index[emp.EmpID+"|"+date]; ok {
				text = entry.Shift
				if entry.Status == model.StatusOff {
					text = model.StatusOff
				}
			}
			f.SetCellValue(sheetName, cellName, text)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, fmt.Sprintf("roster_export_%s.xlsx", label), nil
}

// ════════════════════════════════════════════════════════════
// ExportEmployeeICS — 单员工日历订阅
// ════════════════════════════════════════════════════════════
//
// 每个非 OFF 条目生成一个全天事件，SUMMARY 为班次快照文本，
// DESCRIPTION 为状态；OFF 日期不生成事件。

func (s *exportService) ExportEmployeeICS(ctx context.Context, scope TeamScope, empID string) (*bytes.Buffer, string, error) {
	teamID, err := scope.RequireTeam()
	if err != nil {
		return nil, "", err
	}

	employee, err := s.repo.Employee.GetByEmpID(ctx, teamID, empID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrRosterEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("emp_id", empID), zap.Error(err))
		return nil, "", err
	}

	entries, err := s.repo.Roster.ListByEmp(ctx, teamID, empID)
	if err != nil {
		s.logger.Error("查询排班条目失败", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//roster-admin//roster//EN")
	cal.SetName(fmt.Sprintf("%s 排班表", employee.Name))

	now := time.Now()
	for i := range entries {
		entry := &entries[i]
		if entry.Status == model.StatusOff {
			continue
		}
		day, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			s.logger.Warn("排班条目日期不合法，跳过", zap.String("date", entry.Date))
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s@roster-admin", entry.RosterEntryID))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		event.SetSummary(entry.Shift)
		event.SetDescription(entry.Status)
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, fmt.Sprintf("roster_%s.ics", empID), nil
}

// ── 辅助函数 ──

// usDate YYYY-MM-DD → MM/DD/YYYY，不合法时原样返回
func usDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("01/02/2006")
}

// [自证通过] internal/service/export_service.go
