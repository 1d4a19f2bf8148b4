package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"career-advisor-bot/internal/chat"
	chatHTTP "career-advisor-bot/internal/chat/delivery/http"
	"career-advisor-bot/internal/model"
	pkgResponse "career-advisor-bot/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockChatUseCase struct {
	reply string
	err   error

	gotScope model.Scope
	gotInput chat.RespondInput
}

func (m *mockChatUseCase) Respond(ctx context.Context, sc model.Scope, input chat.RespondInput) (chat.RespondOutput, error) {
	m.gotScope = sc
	m.gotInput = input
	if m.err != nil {
		return chat.RespondOutput{}, m.err
	}
	// Mirror the usecase's own validation so handler tests exercise it.
	if input.Message == "" || sc.UserID == "" {
		return chat.RespondOutput{}, chat.ErrInvalidInput
	}
	return chat.RespondOutput{Reply: m.reply}, nil
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := chatHTTP.New(&mockLogger{}, uc)
	r.POST("/chat", h.HandleChat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, pkgResponse.Resp) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp pkgResponse.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v (%s)", err, w.Body.String())
	}
	return w, resp
}

func TestHandleChat_Success(t *testing.T) {
	uc := &mockChatUseCase{reply: "Hello! How can I assist?"}
	r := newTestRouter(uc)

	w, resp := postChat(t, r, `{"message": "hi", "user_id": "u-42"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("expected error_code 0, got %d", resp.ErrorCode)
	}

	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data payload: %v", resp.Data)
	}
	if data["response"] != "Hello! How can I assist?" {
		t.Errorf("unexpected reply: %v", data["response"])
	}

	if uc.gotScope.UserID != "u-42" || uc.gotInput.Message != "hi" {
		t.Errorf("usecase received %+v / %+v", uc.gotScope, uc.gotInput)
	}
}

func TestHandleChat_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing message", `{"user_id": "u-42"}`},
		{"missing user_id", `{"message": "hi"}`},
		{"empty body", `{}`},
		{"malformed json", `{"message": `},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&mockChatUseCase{reply: "unused"})

			w, resp := postChat(t, r, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if resp.ErrorCode != 1 {
				t.Errorf("expected error_code 1, got %d", resp.ErrorCode)
			}
		})
	}
}

func TestHandleChat_UnexpectedFailure(t *testing.T) {
	uc := &mockChatUseCase{err: context.DeadlineExceeded}
	r := newTestRouter(uc)

	w, resp := postChat(t, r, `{"message": "hi", "user_id": "u-42"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if resp.Message != pkgResponse.DefaultErrorMessage {
		t.Errorf("internal details leaked: %q", resp.Message)
	}
}
