package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medscroll/onboarding/internal/catalog"
	"github.com/medscroll/onboarding/internal/onboarding"
)

type fakeEngine struct {
	askFn   func(ctx context.Context, userID string, answer *onboarding.Answer) (catalog.Question, error)
	resetFn func(ctx context.Context, userID string) (int, error)
}

func (f *fakeEngine) Ask(ctx context.Context, userID string, answer *onboarding.Answer) (catalog.Question, error) {
	return f.askFn(ctx, userID, answer)
}

func (f *fakeEngine) Reset(ctx context.Context, userID string) (int, error) {
	return f.resetFn(ctx, userID)
}

func newTestServer(svc Engine, apiKey string) *Server {
	return NewServer(svc, zerolog.Nop(), apiKey)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&fakeEngine{}, "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s, want ok status", rec.Body.String())
	}
}

func TestAsk_HappyPath(t *testing.T) {
	var gotUser string
	var gotAnswer *onboarding.Answer
	srv := newTestServer(&fakeEngine{
		askFn: func(_ context.Context, userID string, answer *onboarding.Answer) (catalog.Question, error) {
			gotUser = userID
			gotAnswer = answer
			return catalog.Question{
				Prompt:   "What is your role?",
				Progress: 4,
				Options:  []catalog.Option{{Title: "Doctor", Route: "next"}},
			}, nil
		},
	}, "")

	body := `{"userId":"u1","answer":{"progress":3,"response":"Alex"}}`
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/onboarding/ask", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if gotUser != "u1" {
		t.Errorf("userID = %q, want %q", gotUser, "u1")
	}
	if gotAnswer == nil || gotAnswer.Response != "Alex" || gotAnswer.Progress != 3 {
		t.Errorf("answer = %+v, want progress 3 response Alex", gotAnswer)
	}

	var q catalog.Question
	if err := json.NewDecoder(rec.Body).Decode(&q); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if q.Progress != 4 {
		t.Errorf("question progress = %d, want 4", q.Progress)
	}
	if len(q.Options) != 1 || q.Options[0].Title != "Doctor" {
		t.Errorf("options = %+v, want single Doctor option", q.Options)
	}
}

func TestAsk_NoAnswerPassesNil(t *testing.T) {
	var gotAnswer *onboarding.Answer = &onboarding.Answer{}
	srv := newTestServer(&fakeEngine{
		askFn: func(_ context.Context, _ string, answer *onboarding.Answer) (catalog.Question, error) {
			gotAnswer = answer
			return catalog.Question{Progress: 1}, nil
		},
	}, "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/onboarding/ask", strings.NewReader(`{"userId":"u1"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotAnswer != nil {
		t.Errorf("answer = %+v, want nil when omitted", gotAnswer)
	}
}

func TestAsk_BadRequests(t *testing.T) {
	srv := newTestServer(&fakeEngine{
		askFn: func(context.Context, string, *onboarding.Answer) (catalog.Question, error) {
			return catalog.Question{}, &onboarding.ErrValidation{Reason: "missing response"}
		},
	}, "")

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"userId":`},
		{"missing user", `{"answer":{"response":"x"}}`},
		{"engine validation", `{"userId":"u1","answer":{"progress":1,"response":""}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/onboarding/ask", strings.NewReader(tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAsk_CollaboratorFailureIs502(t *testing.T) {
	srv := newTestServer(&fakeEngine{
		askFn: func(context.Context, string, *onboarding.Answer) (catalog.Question, error) {
			return catalog.Question{}, &onboarding.ErrCollaborator{Op: "taxonomy.specialties", Err: errors.New("down")}
		},
	}, "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/onboarding/ask", strings.NewReader(`{"userId":"u1"}`)))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestAsk_PersistenceFailureIs500(t *testing.T) {
	srv := newTestServer(&fakeEngine{
		askFn: func(context.Context, string, *onboarding.Answer) (catalog.Question, error) {
			return catalog.Question{}, &onboarding.ErrPersistence{Op: "conversation.append", Err: errors.New("disk full")}
		},
	}, "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/onboarding/ask", strings.NewReader(`{"userId":"u1"}`)))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "disk full") {
		t.Error("internal error detail leaked to client")
	}
}

func TestReset(t *testing.T) {
	srv := newTestServer(&fakeEngine{
		resetFn: func(_ context.Context, userID string) (int, error) {
			if userID != "u1" {
				return 0, errors.New("wrong user")
			}
			return 2, nil
		},
	}, "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/onboarding/u1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var resp map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["count"] != 2 {
		t.Errorf("count = %d, want 2", resp["count"])
	}
}

func TestAuth(t *testing.T) {
	srv := newTestServer(&fakeEngine{
		askFn: func(context.Context, string, *onboarding.Answer) (catalog.Question, error) {
			return catalog.Question{Progress: 1}, nil
		},
	}, "secret-key")

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong key", "Bearer wrong", http.StatusUnauthorized},
		{"malformed", "secret-key", http.StatusUnauthorized},
		{"valid", "Bearer secret-key", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/onboarding/ask", bytes.NewReader([]byte(`{"userId":"u1"}`)))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}

	// Health stays open even with auth enabled.
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}
