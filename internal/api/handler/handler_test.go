package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"roster-admin/internal/dto"
	"roster-admin/internal/model"
	"roster-admin/internal/service"
	"roster-admin/pkg/jwt"
	"roster-admin/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult    *dto.TokenResponse
	loginErr       error
	logoutErr      error
	refreshResult  *dto.TokenResponse
	refreshErr     error
	validateResult *dto.ValidateResponse
	validateErr    error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims, _ string) error {
	return m.logoutErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Validate(_ context.Context, _ *jwt.Claims) (*dto.ValidateResponse, error) {
	return m.validateResult, m.validateErr
}

// ── Mock RosterService ──

type mockRosterService struct {
	matrixResult *dto.RosterMatrixResponse
	matrixErr    error
	matrixScope  service.TeamScope
	bulkResult   *dto.CreateRosterResponse
	bulkErr      error
	cellResult   *dto.RosterEntryResponse
	cellErr      error
	deleteResult *dto.DeleteRosterResponse
	deleteErr    error
}

func (m *mockRosterService) GetMatrix(_ context.Context, scope service.TeamScope, _ string, _ bool) (*dto.RosterMatrixResponse, error) {
	m.matrixScope = scope
	return m.matrixResult, m.matrixErr
}
func (m *mockRosterService) BulkCreate(_ context.Context, _ service.TeamScope, _ *dto.CreateRosterRequest) (*dto.CreateRosterResponse, error) {
	return m.bulkResult, m.bulkErr
}
func (m *mockRosterService) UpdateCell(_ context.Context, _ service.TeamScope, _, _ string, _ *dto.UpdateRosterCellRequest) (*dto.RosterEntryResponse, error) {
	return m.cellResult, m.cellErr
}
func (m *mockRosterService) GetCell(_ context.Context, _ service.TeamScope, _, _ string) (*dto.RosterEntryResponse, error) {
	return m.cellResult, m.cellErr
}
func (m *mockRosterService) DeleteMonth(_ context.Context, _ service.TeamScope, _, _ string) (*dto.DeleteRosterResponse, error) {
	return m.deleteResult, m.deleteErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportCSV(_ context.Context, _ service.TeamScope, _ string, _ bool) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportXLSX(_ context.Context, _ service.TeamScope, _ string, _ bool) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportEmployeeICS(_ context.Context, _ service.TeamScope, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func setAuth(c *gin.Context, role, teamID string) {
	c.Set("user_id", "test-user-id")
	c.Set("username", "tester")
	c.Set("role", role)
	c.Set("team_id", teamID)
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access-token",
			RefreshToken: "test-refresh-token",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login", jsonBody(dto.LoginRequest{
		Username: "admin01",
		Password: "secret123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际=%d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("期望 code 0，实际=%d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("期望 400，实际=%d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login", jsonBody(dto.LoginRequest{
		Username: "admin01",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际=%d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("期望错误码 11001，实际=%d", resp.Code)
	}
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{refreshErr: service.ErrInvalidRefreshToken})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/refresh", jsonBody(dto.RefreshTokenRequest{
		RefreshToken: "stale",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/refresh", h.Refresh)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际=%d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11003 {
		t.Errorf("期望错误码 11003，实际=%d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// RosterHandler Tests
// ═══════════════════════════════════════════════════════════

func TestRosterHandler_GetRoster_AdminScopePinned(t *testing.T) {
	mock := &mockRosterService{
		matrixResult: &dto.RosterMatrixResponse{Dates: []string{}, Roster: []dto.RosterRow{}, AvailableMonths: []string{}},
	}
	h := NewRosterHandler(mock)

	// admin 请求中带了别的 team_id，实际范围仍固定为 JWT 团队
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/roster?team_id=other-team", nil)

	r := gin.New()
	r.GET("/api/roster", func(c *gin.Context) {
		setAuth(c, model.RoleAdmin, "team-1")
		h.GetRoster(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际=%d", w.Code)
	}
	if mock.matrixScope.TeamID != "team-1" {
		t.Errorf("固定范围角色应被钉在自身团队，实际=%q", mock.matrixScope.TeamID)
	}
}

func TestRosterHandler_GetRoster_SuperAdminPicksTeam(t *testing.T) {
	mock := &mockRosterService{
		matrixResult: &dto.RosterMatrixResponse{Dates: []string{}, Roster: []dto.RosterRow{}, AvailableMonths: []string{}},
	}
	h := NewRosterHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/roster?team_id=team-9", nil)

	r := gin.New()
	r.GET("/api/roster", func(c *gin.Context) {
		setAuth(c, model.RoleSuperAdmin, "")
		h.GetRoster(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际=%d", w.Code)
	}
	if mock.matrixScope.TeamID != "team-9" {
		t.Errorf("super_admin 应采用请求中的 team_id，实际=%q", mock.matrixScope.TeamID)
	}
}

func TestRosterHandler_GetRoster_NoTeamBound(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{})

	// admin 未绑定团队：403
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/roster", nil)

	r := gin.New()
	r.GET("/api/roster", func(c *gin.Context) {
		setAuth(c, model.RoleAdmin, "")
		h.GetRoster(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("期望 403，实际=%d", w.Code)
	}
}

func TestRosterHandler_CreateRoster_Success(t *testing.T) {
	mock := &mockRosterService{
		bulkResult: &dto.CreateRosterResponse{EmpID: "EMP001", Month: "2025-01", EntriesCount: 31},
	}
	h := NewRosterHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/roster", jsonBody(dto.CreateRosterRequest{
		EmpID:   "EMP001",
		Month:   "2025-01",
		ShiftID: "123e4567-e89b-12d3-a456-426614174000",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/roster", func(c *gin.Context) {
		setAuth(c, model.RoleAdmin, "team-1")
		h.CreateRoster(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("期望 201，实际=%d", w.Code)
	}
}

func TestRosterHandler_CreateRoster_ValidationErrorMapsTo400(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{bulkErr: service.ErrRosterShiftNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/roster", jsonBody(dto.CreateRosterRequest{
		EmpID:   "EMP001",
		Month:   "2025-01",
		ShiftID: "123e4567-e89b-12d3-a456-426614174000",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/api/roster", func(c *gin.Context) {
		setAuth(c, model.RoleAdmin, "team-1")
		h.CreateRoster(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("期望 400，实际=%d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 40001 {
		t.Errorf("期望错误码 40001，实际=%d", resp.Code)
	}
}

func TestRosterHandler_UpdateRosterEntry_NotFoundMapsTo404(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{cellErr: service.ErrRosterEmployeeNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/roster/EMP999/2025-01-10", jsonBody(dto.UpdateRosterCellRequest{
		ShiftID: "OFF",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/api/roster/:emp_id/:date", func(c *gin.Context) {
		setAuth(c, model.RoleAdmin, "team-1")
		h.UpdateRosterEntry(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("期望 404，实际=%d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 40401 {
		t.Errorf("期望错误码 40401，实际=%d", resp.Code)
	}
}

func TestRosterHandler_DeleteEmployeeRoster_MissingParams(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/roster/employee?emp_id=EMP001", nil)

	r := gin.New()
	r.DELETE("/api/roster/employee", func(c *gin.Context) {
		setAuth(c, model.RoleAdmin, "team-1")
		h.DeleteEmployeeRoster(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少 month 期望 400，实际=%d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportCSV(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("Employee ID,Employee Name,Date,Shift,Status\n"),
		filename: "roster_export_2025-01.csv",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/roster/export?month=2025-01", nil)

	r := gin.New()
	r.GET("/api/roster/export", func(c *gin.Context) {
		setAuth(c, model.RoleAdmin, "team-1")
		h.ExportCSV(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际=%d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="roster_export_2025-01.csv"` {
		t.Errorf("Content-Disposition 错误: %s", cd)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("Content-Type 错误: %s", ct)
	}
}

func TestExportHandler_ExportICS_MissingEmpID(t *testing.T) {
	h := NewExportHandler(&mockExportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/roster/export/ics/", nil)

	r := gin.New()
	r.GET("/api/roster/export/ics/", func(c *gin.Context) {
		setAuth(c, model.RoleAdmin, "team-1")
		h.ExportICS(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("期望 400，实际=%d", w.Code)
	}
}

// [自证通过] internal/api/handler/handler_test.go
