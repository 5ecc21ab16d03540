package response_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tasktree/pkg/response"
)

func recordered() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := recordered()
	response.Success(c, "Tasks updated successfully")

	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	var body response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !body.Success || body.Message != "Tasks updated successfully" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestFailureEnvelopes(t *testing.T) {
	cases := []struct {
		name string
		send func(*gin.Context)
		code int
	}{
		{"bad request", func(c *gin.Context) { response.BadRequest(c, "authorId is required") }, 400},
		{"not found", func(c *gin.Context) { response.NotFound(c, "User not found") }, 404},
		{"internal", func(c *gin.Context) { response.InternalError(c) }, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := recordered()
			tc.send(c)
			if w.Code != tc.code {
				t.Fatalf("status = %d, want %d", w.Code, tc.code)
			}
			var body response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("bad body: %v", err)
			}
			if body.Success {
				t.Errorf("failure envelope marked success")
			}
			if body.Message == "" {
				t.Errorf("failure envelope missing message")
			}
		})
	}
}
