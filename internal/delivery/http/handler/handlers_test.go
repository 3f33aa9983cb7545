package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"silverwork/internal/delivery/http/middleware"
	"silverwork/internal/domain/application"
	"silverwork/internal/domain/history"
	"silverwork/internal/domain/posting"
	ucapplication "silverwork/internal/usecase/application"
	ucauth "silverwork/internal/usecase/auth"
	ucposting "silverwork/internal/usecase/posting"
	ucprofile "silverwork/internal/usecase/profile"
)

type fakeAuthUsecase struct {
	registered map[string]string
}

func (f *fakeAuthUsecase) Register(_ context.Context, in ucauth.RegisterInput) error {
	if _, exists := f.registered[in.Username]; exists {
		return ucauth.ErrDuplicateID
	}
	if in.Username == "" || in.Password == "" {
		return ucauth.ErrInvalidInput
	}
	f.registered[in.Username] = in.Role
	return nil
}

func (f *fakeAuthUsecase) Login(_ context.Context, in ucauth.LoginInput) (ucauth.User, string, error) {
	role, ok := f.registered[in.Username]
	if !ok || in.Password != "correct" {
		return ucauth.User{}, "", ucauth.ErrInvalidCredentials
	}
	return ucauth.User{ID: in.Username, Username: in.Username, Role: role}, "signed.jwt.token", nil
}

type fakePostingUsecase struct {
	postings map[int64]posting.Posting
	nextID   int64
}

func (f *fakePostingUsecase) Create(_ context.Context, in ucposting.CreateInput) (posting.Posting, error) {
	if in.Title == "" {
		return posting.Posting{}, ucposting.ErrInvalidInput
	}
	p := posting.Posting{
		ID:        f.nextID,
		CompanyID: in.CompanyID,
		Title:     in.Title,
		Status:    posting.StatusPendingApproval,
		PostedAt:  time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
	}
	f.nextID++
	f.postings[p.ID] = p
	return p, nil
}

func (f *fakePostingUsecase) List(context.Context) ([]posting.Posting, error) {
	out := make([]posting.Posting, 0, len(f.postings))
	for _, p := range f.postings {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePostingUsecase) UpdateStatus(_ context.Context, id int64, status, _ string) error {
	p, ok := f.postings[id]
	if !ok {
		return ucposting.ErrNotFound
	}
	next, err := posting.ParseStatus(status)
	if err != nil {
		return ucposting.ErrInvalidStatus
	}
	if !p.Status.CanTransitionTo(next) {
		return ucposting.ErrIllegalTransition
	}
	p.Status = next
	f.postings[id] = p
	return nil
}

type fakeApplicationUsecase struct {
	applications map[int64]application.Application
	nextID       int64
}

func (f *fakeApplicationUsecase) Create(_ context.Context, in ucapplication.CreateInput) (application.Application, error) {
	if in.SeniorID == "" || in.JobID <= 0 {
		return application.Application{}, ucapplication.ErrInvalidInput
	}
	a := application.Application{
		ID:        f.nextID,
		SeniorID:  in.SeniorID,
		JobID:     in.JobID,
		Status:    application.StatusSubmitted,
		AppliedAt: time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC),
	}
	f.nextID++
	f.applications[a.ID] = a
	return a, nil
}

func (f *fakeApplicationUsecase) List(context.Context) ([]application.Application, error) {
	out := make([]application.Application, 0, len(f.applications))
	for _, a := range f.applications {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeApplicationUsecase) UpdateStatus(_ context.Context, id int64, status string) error {
	a, ok := f.applications[id]
	if !ok {
		return ucapplication.ErrNotFound
	}
	next, err := application.ParseStatus(status)
	if err != nil {
		return ucapplication.ErrInvalidStatus
	}
	if !a.Status.CanTransitionTo(next) {
		return ucapplication.ErrIllegalTransition
	}
	a.Status = next
	f.applications[id] = a
	return nil
}

type fakeProfileUsecase struct {
	profiles map[string]ucprofile.Profile
}

func (f *fakeProfileUsecase) Get(_ context.Context, id string) (ucprofile.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return ucprofile.Profile{}, ucprofile.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileUsecase) Update(_ context.Context, id string, in ucprofile.UpdateInput) error {
	p, ok := f.profiles[id]
	if !ok {
		return ucprofile.ErrNotFound
	}
	p.Location = in.Location
	f.profiles[id] = p
	return nil
}

type fakeHistoryUsecase struct {
	histories []history.History
}

func (f *fakeHistoryUsecase) List(context.Context) ([]history.History, error) {
	return f.histories, nil
}

type testEnv struct {
	app          *fiber.App
	auth         *fakeAuthUsecase
	postings     *fakePostingUsecase
	applications *fakeApplicationUsecase
	profiles     *fakeProfileUsecase
	histories    *fakeHistoryUsecase
}

func newTestEnv() *testEnv {
	env := &testEnv{
		auth:         &fakeAuthUsecase{registered: map[string]string{}},
		postings:     &fakePostingUsecase{postings: map[int64]posting.Posting{}, nextID: 1},
		applications: &fakeApplicationUsecase{applications: map[int64]application.Application{}, nextID: 1},
		profiles:     &fakeProfileUsecase{profiles: map[string]ucprofile.Profile{}},
		histories:    &fakeHistoryUsecase{},
	}

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(zap.NewNop()).Middleware())

	NewHealthHandler().RegisterRoutes(app)
	api := app.Group("/api")
	NewAuthHandler(env.auth).RegisterRoutes(api)
	NewJobsHandler(env.postings).RegisterRoutes(api)
	NewApplicationsHandler(env.applications).RegisterRoutes(api)
	NewSeniorsHandler(env.profiles).RegisterRoutes(api)
	NewHistoriesHandler(env.histories).RegisterRoutes(api)

	env.app = app
	return env
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	resp.Body.Close()
	return resp, raw
}

func decodeMap(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode object %s: %v", raw, err)
	}
	return out
}

func TestHealth(t *testing.T) {
	env := newTestEnv()
	resp, raw := doJSON(t, env.app, http.MethodGet, "/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := decodeMap(t, raw)
	if body["success"] != true || body["status"] != "ok" {
		t.Fatalf("body = %v", body)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv()

	resp, raw := doJSON(t, env.app, http.MethodPost, "/api/register", map[string]any{
		"role": "senior", "username": "senior_kim", "password": "secret", "name": "Kim Younghee",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register status = %d, body %s", resp.StatusCode, raw)
	}
	if body := decodeMap(t, raw); body["success"] != true {
		t.Fatalf("register body = %v", body)
	}

	resp, raw = doJSON(t, env.app, http.MethodPost, "/api/register", map[string]any{
		"role": "senior", "username": "senior_kim", "password": "secret", "name": "Kim Younghee",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register status = %d", resp.StatusCode)
	}
	body := decodeMap(t, raw)
	if body["success"] != false || body["error"] != "duplicate_id" {
		t.Fatalf("duplicate register body = %v", body)
	}

	resp, raw = doJSON(t, env.app, http.MethodPost, "/api/login", map[string]any{
		"username": "senior_kim", "password": "correct",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	body = decodeMap(t, raw)
	if body["success"] != true || body["token"] != "signed.jwt.token" {
		t.Fatalf("login body = %v", body)
	}
	user, ok := body["user"].(map[string]any)
	if !ok || user["role"] != "senior" {
		t.Fatalf("login user = %v", body["user"])
	}

	resp, raw = doJSON(t, env.app, http.MethodPost, "/api/login", map[string]any{
		"username": "senior_kim", "password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d", resp.StatusCode)
	}
	body = decodeMap(t, raw)
	if body["success"] != false || body["error"] != "unauthorized" {
		t.Fatalf("bad login body = %v", body)
	}
}

func TestListJobsReturnsBareArray(t *testing.T) {
	env := newTestEnv()
	env.postings.postings[1] = posting.Posting{
		ID: 1, CompanyID: "C1", Title: "Facility Assistant",
		Status: posting.StatusApproved, PostedAt: time.Now(),
	}

	resp, raw := doJSON(t, env.app, http.MethodGet, "/api/jobs", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var jobs []map[string]any
	if err := json.Unmarshal(raw, &jobs); err != nil {
		t.Fatalf("list must be a bare array, got %s: %v", raw, err)
	}
	if len(jobs) != 1 {
		t.Fatalf("len(jobs) = %d", len(jobs))
	}
	if jobs[0]["government_approved"] != true {
		t.Fatalf("government_approved = %v", jobs[0]["government_approved"])
	}
	if jobs[0]["deadline"] != nil {
		t.Fatalf("deadline = %v, want null", jobs[0]["deadline"])
	}
}

func TestCreateJob(t *testing.T) {
	env := newTestEnv()

	resp, raw := doJSON(t, env.app, http.MethodPost, "/api/jobs", map[string]any{
		"company_id": "C1", "title": "Facility Assistant",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, raw)
	}
	body := decodeMap(t, raw)
	job, ok := body["job"].(map[string]any)
	if !ok {
		t.Fatalf("body = %v", body)
	}
	if job["status"] != "pending_approval" {
		t.Fatalf("status = %v, want pending_approval", job["status"])
	}

	resp, raw = doJSON(t, env.app, http.MethodPost, "/api/jobs", map[string]any{"company_id": "C1"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid create status = %d", resp.StatusCode)
	}
	if body := decodeMap(t, raw); body["error"] != "validation_failed" {
		t.Fatalf("invalid create body = %v", body)
	}
}

func TestUpdateJobStatus(t *testing.T) {
	env := newTestEnv()
	env.postings.postings[1] = posting.Posting{ID: 1, Status: posting.StatusPendingApproval}

	resp, _ := doJSON(t, env.app, http.MethodPut, "/api/jobs/1/status", map[string]any{
		"status": "approved", "gov_id": "gov_admin",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("approve status = %d", resp.StatusCode)
	}

	resp, raw := doJSON(t, env.app, http.MethodPut, "/api/jobs/1/status", map[string]any{
		"status": "pending_approval",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("illegal transition status = %d", resp.StatusCode)
	}
	if body := decodeMap(t, raw); body["error"] != "illegal_transition" {
		t.Fatalf("illegal transition body = %v", body)
	}

	resp, raw = doJSON(t, env.app, http.MethodPut, "/api/jobs/1/status", map[string]any{
		"status": "frozen",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown status = %d", resp.StatusCode)
	}
	if body := decodeMap(t, raw); body["error"] != "invalid_status" {
		t.Fatalf("unknown status body = %v", body)
	}

	resp, _ = doJSON(t, env.app, http.MethodPut, "/api/jobs/999/status", map[string]any{
		"status": "approved",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing job status = %d", resp.StatusCode)
	}

	// Non-numeric path ids never reach the usecase.
	resp, raw = doJSON(t, env.app, http.MethodPut, "/api/jobs/abc/status", map[string]any{
		"status": "approved",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("non-numeric id status = %d", resp.StatusCode)
	}
	if body := decodeMap(t, raw); body["success"] != false {
		t.Fatalf("non-numeric id body = %v", body)
	}
}

func TestApplications(t *testing.T) {
	env := newTestEnv()

	resp, raw := doJSON(t, env.app, http.MethodPost, "/api/applications", map[string]any{
		"senior_id": "S1", "job_id": 1, "notes": "available mornings",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d, body %s", resp.StatusCode, raw)
	}
	body := decodeMap(t, raw)
	app, ok := body["application"].(map[string]any)
	if !ok {
		t.Fatalf("body = %v", body)
	}
	if app["status"] != "submitted" {
		t.Fatalf("status = %v, want submitted", app["status"])
	}
	if _, leaked := app["notes"]; leaked {
		t.Fatalf("notes must not appear in the projection: %v", app)
	}

	resp, _ = doJSON(t, env.app, http.MethodPut, "/api/applications/1/status", map[string]any{
		"status": "approved",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("approve status = %d", resp.StatusCode)
	}

	resp, raw = doJSON(t, env.app, http.MethodPut, "/api/applications/1/status", map[string]any{
		"status": "approved",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("re-approve status = %d", resp.StatusCode)
	}
	if body := decodeMap(t, raw); body["error"] != "illegal_transition" {
		t.Fatalf("re-approve body = %v", body)
	}

	resp, raw = doJSON(t, env.app, http.MethodGet, "/api/applications", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("list must be a bare array, got %s: %v", raw, err)
	}
	if len(items) != 1 || items[0]["status"] != "approved" {
		t.Fatalf("list = %v", items)
	}
}

func TestSeniorProfile(t *testing.T) {
	env := newTestEnv()
	env.profiles.profiles["S1"] = ucprofile.Profile{ID: "S1", Name: "Kim Younghee"}

	resp, raw := doJSON(t, env.app, http.MethodGet, "/api/seniors/S1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	body := decodeMap(t, raw)
	p, ok := body["profile"].(map[string]any)
	if !ok || p["name"] != "Kim Younghee" {
		t.Fatalf("profile body = %v", body)
	}

	resp, raw = doJSON(t, env.app, http.MethodGet, "/api/seniors/unknown", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing senior status = %d", resp.StatusCode)
	}
	body = decodeMap(t, raw)
	if body["success"] != false || body["error"] != "not_found" {
		t.Fatalf("missing senior body = %v", body)
	}

	resp, _ = doJSON(t, env.app, http.MethodPut, "/api/seniors/S1", map[string]any{
		"location": "Busan",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d", resp.StatusCode)
	}
	if env.profiles.profiles["S1"].Location != "Busan" {
		t.Fatalf("update not applied: %+v", env.profiles.profiles["S1"])
	}
}

func TestListHistories(t *testing.T) {
	env := newTestEnv()
	env.histories.histories = []history.History{{
		ID: 1, SeniorID: "S1", JobID: 1, CompanyID: "C1",
		CompanyName: "Samsung Electronics", JobTitle: "Facility Assistant",
		StartDate: time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		Status:    history.StatusActive,
	}}

	resp, raw := doJSON(t, env.app, http.MethodGet, "/api/histories", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("list must be a bare array, got %s: %v", raw, err)
	}
	if len(items) != 1 {
		t.Fatalf("len = %d", len(items))
	}
	if items[0]["end_date"] != nil {
		t.Fatalf("end_date = %v, want null", items[0]["end_date"])
	}
	if items[0]["verified"] != false {
		t.Fatalf("verified = %v, want false", items[0]["verified"])
	}
	if items[0]["start_date"] != "2025-11-20" {
		t.Fatalf("start_date = %v", items[0]["start_date"])
	}
}
