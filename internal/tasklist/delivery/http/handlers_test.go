package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tasktree/internal/model"
	"tasktree/internal/tasklist"
	tasklistHTTP "tasktree/internal/tasklist/delivery/http"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	trees map[string][]model.Task
	saved map[string][]model.Task
}

func newMockUseCase() *mockUseCase {
	return &mockUseCase{
		trees: map[string][]model.Task{},
		saved: map[string][]model.Task{},
	}
}

func (m *mockUseCase) Load(ctx context.Context, authorID string) ([]model.Task, error) {
	tree, ok := m.trees[authorID]
	if !ok {
		return nil, tasklist.ErrUserNotFound
	}
	return tree, nil
}

func (m *mockUseCase) Save(ctx context.Context, authorID string, tasks []model.Task) error {
	if _, ok := m.trees[authorID]; !ok {
		return tasklist.ErrUserNotFound
	}
	m.saved[authorID] = tasks
	return nil
}

func (m *mockUseCase) Provision(ctx context.Context, authorID string) error   { return nil }
func (m *mockUseCase) Deprovision(ctx context.Context, authorID string) error { return nil }

func newRouter(uc tasklist.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := tasklistHTTP.New(&mockLogger{}, uc)
	tasklistHTTP.RegisterRoutes(r.Group("/api"), h)
	return r
}

func TestGetMissingAuthorID(t *testing.T) {
	r := newRouter(newMockUseCase())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetUnknownUser(t *testing.T) {
	r := newRouter(newMockUseCase())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks?authorId=ghost", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Success || body.Message == "" {
		t.Errorf("expected failure envelope with advisory, got %+v", body)
	}
}

func TestGetReturnsTree(t *testing.T) {
	uc := newMockUseCase()
	uc.trees["u1"] = []model.Task{
		{ID: "1", Text: "a", Subtasks: []model.Task{{ID: "1a", Text: "b", Subtasks: []model.Task{}}}},
	}
	r := newRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks?authorId=u1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Success bool         `json:"success"`
		Tasks   []model.Task `json:"tasks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !body.Success || len(body.Tasks) != 1 || body.Tasks[0].Subtasks[0].ID != "1a" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestGetEmptyTreeIsSuccess(t *testing.T) {
	uc := newMockUseCase()
	uc.trees["u1"] = []model.Task{}
	r := newRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks?authorId=u1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("saved-empty list must be 200, got %d", w.Code)
	}
	// The array must be present, not null.
	if !bytes.Contains(w.Body.Bytes(), []byte(`"tasks":[]`)) {
		t.Errorf("tasks should serialize as [], body=%s", w.Body.String())
	}
}

func TestSave(t *testing.T) {
	uc := newMockUseCase()
	uc.trees["u1"] = []model.Task{}
	r := newRouter(uc)

	payload := `{"authorId":"u1","tasks":[{"_id":"1","text":"x","completed":false,"subtasks":[],"collapsed":false}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(uc.saved["u1"]) != 1 || uc.saved["u1"][0].ID != "1" {
		t.Errorf("tree not forwarded to usecase: %+v", uc.saved["u1"])
	}
}

func TestSaveValidation(t *testing.T) {
	uc := newMockUseCase()
	uc.trees["u1"] = []model.Task{}
	r := newRouter(uc)

	cases := []struct {
		name    string
		payload string
		code    int
	}{
		{"missing authorId", `{"tasks":[]}`, 400},
		{"missing tasks", `{"authorId":"u1"}`, 400},
		{"null tasks", `{"authorId":"u1","tasks":null}`, 400},
		{"tasks not an array", `{"authorId":"u1","tasks":"nope"}`, 400},
		{"not json", `plain text`, 400},
		{"unknown user", `{"authorId":"ghost","tasks":[]}`, 404},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBufferString(tc.payload))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			if w.Code != tc.code {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tc.code, w.Body.String())
			}
		})
	}
}
