//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"roster-admin/internal/model"
	"roster-admin/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=roster password=roster_password dbname=roster_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	err = testDB.AutoMigrate(
		&model.Team{},
		&model.User{},
		&model.Employee{},
		&model.Shift{},
		&model.RosterEntry{},
		&model.Setting{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// setupTestData 创建基础测试数据并返回清理函数
func setupTestData(t *testing.T) (team *model.Team, emp *model.Employee, cleanup func()) {
	t.Helper()
	ctx := context.Background()

	team = &model.Team{
		Name: fmt.Sprintf("测试团队-%d", time.Now().UnixNano()),
	}
	if err := testDB.WithContext(ctx).Create(team).Error; err != nil {
		t.Fatalf("创建团队失败: %v", err)
	}

	emp = &model.Employee{
		EmpID:  fmt.Sprintf("EMP%d", time.Now().UnixNano()),
		Name:   "测试员工",
		TeamID: team.TeamID,
	}
	if err := testDB.WithContext(ctx).Create(emp).Error; err != nil {
		t.Fatalf("创建员工失败: %v", err)
	}

	cleanup = func() {
		testDB.Where("team_id = ?", team.TeamID).Delete(&model.RosterEntry{})
		testDB.Where("employee_id = ?", emp.EmployeeID).Delete(&model.Employee{})
		testDB.Where("team_id = ?", team.TeamID).Delete(&model.Team{})
	}
	return
}

func entry(teamID, empID, date, shift, status string) model.RosterEntry {
	return model.RosterEntry{
		TeamID: teamID,
		EmpID:  empID,
		Date:   date,
		Shift:  shift,
		Status: status,
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Roster Upsert
// ═══════════════════════════════════════════════════════════

func TestRosterRepo_Upsert_Conflict(t *testing.T) {
	team, emp, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	first := entry(team.TeamID, emp.EmpID, "2025-01-10", "Morning (M1)", model.StatusFullDay)
	if err := repo.Roster.Upsert(ctx, &first); err != nil {
		t.Fatalf("首次 Upsert 失败: %v", err)
	}

	// 同 (team, emp, date) 再写：覆盖而非新增
	second := entry(team.TeamID, emp.EmpID, "2025-01-10", model.ShiftNone, model.StatusOff)
	if err := repo.Roster.Upsert(ctx, &second); err != nil {
		t.Fatalf("覆盖 Upsert 失败: %v", err)
	}

	found, err := repo.Roster.GetByEmpAndDate(ctx, team.TeamID, emp.EmpID, "2025-01-10")
	if err != nil {
		t.Fatalf("查询条目失败: %v", err)
	}
	if found.Status != model.StatusOff || found.Shift != model.ShiftNone {
		t.Errorf("覆盖后期望 (%s, %s)，实际=(%s, %s)", model.StatusOff, model.ShiftNone, found.Status, found.Shift)
	}

	entries, err := repo.Roster.ListByEmp(ctx, team.TeamID, emp.EmpID)
	if err != nil {
		t.Fatalf("查询条目列表失败: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("upsert 后期望 1 条，实际=%d", len(entries))
	}
}

// ═══════════════════════════════════════════════════════════
// Test: ReplaceMonth
// ═══════════════════════════════════════════════════════════

func TestRosterRepo_ReplaceMonth(t *testing.T) {
	team, emp, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	// 旧数据：2 条目标月 + 1 条相邻月
	old := []model.RosterEntry{
		entry(team.TeamID, emp.EmpID, "2025-01-05", "Morning (M1)", model.StatusFullDay),
		entry(team.TeamID, emp.EmpID, "2025-01-06", "Morning (M1)", model.StatusFullDay),
		entry(team.TeamID, emp.EmpID, "2025-02-01", "Morning (M1)", model.StatusFullDay),
	}
	for i := range old {
		if err := repo.Roster.Upsert(ctx, &old[i]); err != nil {
			t.Fatalf("准备旧数据失败: %v", err)
		}
	}

	replacement := []model.RosterEntry{
		entry(team.TeamID, emp.EmpID, "2025-01-10", model.ShiftNone, model.StatusOff),
	}
	if err := repo.Roster.ReplaceMonth(ctx, team.TeamID, emp.EmpID, "2025-01", replacement); err != nil {
		t.Fatalf("ReplaceMonth 失败: %v", err)
	}

	// 目标月只剩新数据，相邻月不受影响
	janEntries, err := repo.Roster.ListByTeamAndMonth(ctx, team.TeamID, "2025-01")
	if err != nil {
		t.Fatalf("查询 1 月条目失败: %v", err)
	}
	if len(janEntries) != 1 || janEntries[0].Date != "2025-01-10" {
		t.Errorf("替换后 1 月条目错误: %+v", janEntries)
	}
	febEntries, err := repo.Roster.ListByTeamAndMonth(ctx, team.TeamID, "2025-02")
	if err != nil {
		t.Fatalf("查询 2 月条目失败: %v", err)
	}
	if len(febEntries) != 1 {
		t.Errorf("2 月条目不应受影响，实际=%d", len(febEntries))
	}
}

// ═══════════════════════════════════════════════════════════
// Test: AvailableMonths / DeleteMonth / RenameEmp
// ═══════════════════════════════════════════════════════════

func TestRosterRepo_AvailableMonths_Distinct(t *testing.T) {
	team, emp, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	for _, e := range []model.RosterEntry{
		entry(team.TeamID, emp.EmpID, "2024-12-31", "Morning (M1)", model.StatusFullDay),
		entry(team.TeamID, emp.EmpID, "2025-01-01", "Morning (M1)", model.StatusFullDay),
		entry(team.TeamID, emp.EmpID, "2025-01-02", "Morning (M1)", model.StatusFullDay),
	} {
		e := e
		if err := repo.Roster.Upsert(ctx, &e); err != nil {
			t.Fatalf("准备数据失败: %v", err)
		}
	}

	months, err := repo.Roster.AvailableMonths(ctx, team.TeamID)
	if err != nil {
		t.Fatalf("AvailableMonths 失败: %v", err)
	}
	if len(months) != 2 || months[0] != "2025-01" || months[1] != "2024-12" {
		t.Errorf("期望去重倒序月份 [2025-01 2024-12]，实际=%v", months)
	}
}

func TestRosterRepo_DeleteMonth_RowsAffected(t *testing.T) {
	team, emp, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	for _, date := range []string{"2025-01-05", "2025-01-06", "2025-02-01"} {
		e := entry(team.TeamID, emp.EmpID, date, "Morning (M1)", model.StatusFullDay)
		if err := repo.Roster.Upsert(ctx, &e); err != nil {
			t.Fatalf("准备数据失败: %v", err)
		}
	}

	deleted, err := repo.Roster.DeleteMonth(ctx, team.TeamID, emp.EmpID, "2025-01")
	if err != nil {
		t.Fatalf("DeleteMonth 失败: %v", err)
	}
	if deleted != 2 {
		t.Errorf("期望删除 2 条，实际=%d", deleted)
	}

	// 空删除不报错
	deleted, err = repo.Roster.DeleteMonth(ctx, team.TeamID, emp.EmpID, "2025-01")
	if err != nil {
		t.Fatalf("空 DeleteMonth 失败: %v", err)
	}
	if deleted != 0 {
		t.Errorf("期望删除 0 条，实际=%d", deleted)
	}
}

func TestRosterRepo_RenameEmp(t *testing.T) {
	team, emp, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	e := entry(team.TeamID, emp.EmpID, "2025-01-05", "Morning (M1)", model.StatusFullDay)
	if err := repo.Roster.Upsert(ctx, &e); err != nil {
		t.Fatalf("准备数据失败: %v", err)
	}

	newEmpID := emp.EmpID + "-R"
	if err := repo.Roster.RenameEmp(ctx, team.TeamID, emp.EmpID, newEmpID); err != nil {
		t.Fatalf("RenameEmp 失败: %v", err)
	}

	entries, err := repo.Roster.ListByEmp(ctx, team.TeamID, newEmpID)
	if err != nil {
		t.Fatalf("查询改写后条目失败: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("期望改写 1 条，实际=%d", len(entries))
	}
	orphans, _ := repo.Roster.ListByEmp(ctx, team.TeamID, emp.EmpID)
	if len(orphans) != 0 {
		t.Errorf("旧工号不应残留条目，实际=%d", len(orphans))
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Employee 唯一性
// ═══════════════════════════════════════════════════════════

func TestEmployeeRepo_EmpIDUniquePerTeam(t *testing.T) {
	team, emp, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	exists, err := repo.Employee.ExistsByEmpID(ctx, team.TeamID, emp.EmpID)
	if err != nil {
		t.Fatalf("ExistsByEmpID 失败: %v", err)
	}
	if !exists {
		t.Error("已有员工的工号应报告占用")
	}

	// 同团队重复工号违反唯一索引
	dup := &model.Employee{EmpID: emp.EmpID, Name: "重复", TeamID: team.TeamID}
	if err := repo.Employee.Create(ctx, dup); err == nil {
		testDB.Where("employee_id = ?", dup.EmployeeID).Delete(&model.Employee{})
		t.Error("同团队重复工号应创建失败")
	}

	// 其他团队可复用同一工号
	other := &model.Team{Name: fmt.Sprintf("其他团队-%d", time.Now().UnixNano())}
	if err := testDB.WithContext(ctx).Create(other).Error; err != nil {
		t.Fatalf("创建团队失败: %v", err)
	}
	defer testDB.Where("team_id = ?", other.TeamID).Delete(&model.Team{})

	reuse := &model.Employee{EmpID: emp.EmpID, Name: "同工号", TeamID: other.TeamID}
	if err := repo.Employee.Create(ctx, reuse); err != nil {
		t.Errorf("跨团队复用工号应成功: %v", err)
	} else {
		testDB.Where("employee_id = ?", reuse.EmployeeID).Delete(&model.Employee{})
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Setting Upsert
// ═══════════════════════════════════════════════════════════

func TestSettingRepo_SetOverwrites(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	key := fmt.Sprintf("test_key_%d", time.Now().UnixNano())
	defer testDB.Where("key = ?", key).Delete(&model.Setting{})

	if err := repo.Setting.Set(ctx, &model.Setting{Key: key, Value: "1"}); err != nil {
		t.Fatalf("首次 Set 失败: %v", err)
	}
	if err := repo.Setting.Set(ctx, &model.Setting{Key: key, Value: "2"}); err != nil {
		t.Fatalf("覆盖 Set 失败: %v", err)
	}

	found, err := repo.Setting.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get 失败: %v", err)
	}
	if found.Value != "2" {
		t.Errorf("期望覆盖后 value=2，实际=%q", found.Value)
	}
}

// [自证通过] internal/repository/integration_test.go
