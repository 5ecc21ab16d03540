package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tasktree/internal/breakdown"
	breakdownHTTP "tasktree/internal/breakdown/delivery/http"
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
	lastInput breakdown.GenerateInput
	out       breakdown.GenerateOutput
	err       error
}

func (m *mockUseCase) Generate(ctx context.Context, input breakdown.GenerateInput) (breakdown.GenerateOutput, error) {
	m.lastInput = input
	return m.out, m.err
}

func newRouter(uc breakdown.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := breakdownHTTP.New(&mockLogger{}, uc)
	breakdownHTTP.RegisterRoutes(r.Group("/api"), h)
	return r
}

func post(r *gin.Engine, payload string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-subtasks", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateReturnsSubtasks(t *testing.T) {
	uc := &mockUseCase{out: breakdown.GenerateOutput{
		Subtasks:  []string{"Draft outline", "Review outline"},
		ParseTier: breakdown.TierJSON,
	}}
	r := newRouter(uc)

	w := post(r, `{"task":"Write report","subtaskFlatten":"Collect data","count":2,"intensity":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body struct {
		Subtasks []string `json:"subtasks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body.Subtasks) != 2 || body.Subtasks[0] != "Draft outline" {
		t.Errorf("unexpected body %+v", body)
	}

	in := uc.lastInput
	if in.Task != "Write report" || in.SubtaskFlatten != "Collect data" || in.Count != 2 || in.Intensity != 3 {
		t.Errorf("input not forwarded: %+v", in)
	}
}

func TestGenerateCountDefaultsToCap(t *testing.T) {
	uc := &mockUseCase{out: breakdown.GenerateOutput{Subtasks: []string{"x"}}}
	r := newRouter(uc)

	w := post(r, `{"task":"Write report"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.lastInput.Count != 5 {
		t.Errorf("count = %d, want default 5", uc.lastInput.Count)
	}
}

func TestGenerateEmptyResultSerializesAsArray(t *testing.T) {
	uc := &mockUseCase{out: breakdown.GenerateOutput{Subtasks: nil}}
	r := newRouter(uc)

	w := post(r, `{"task":"t","count":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"subtasks":[]`)) {
		t.Errorf("subtasks should serialize as [], body=%s", w.Body.String())
	}
}

func TestGenerateValidation(t *testing.T) {
	r := newRouter(&mockUseCase{})

	cases := []struct {
		name    string
		payload string
	}{
		{"missing task", `{"count":3}`},
		{"empty task", `{"task":"","count":3}`},
		{"count above cap", `{"task":"t","count":6}`},
		{"negative count", `{"task":"t","count":-1}`},
		{"not json", `plain text`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := post(r, tc.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestGenerateErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid input", breakdown.ErrInvalidInput, http.StatusBadRequest},
		{"missing api key", breakdown.ErrMissingAPIKey, http.StatusInternalServerError},
		{"upstream failure", breakdown.ErrUpstream, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(&mockUseCase{err: tc.err})
			w := post(r, `{"task":"t","count":2}`)
			if w.Code != tc.code {
				t.Errorf("status = %d, want %d", w.Code, tc.code)
			}
			var body struct {
				Error string `json:"error"`
			}
			json.Unmarshal(w.Body.Bytes(), &body)
			if body.Error == "" {
				t.Errorf("failure body must carry an error advisory: %s", w.Body.String())
			}
		})
	}
}
