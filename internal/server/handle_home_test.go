package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/livinggrainco/site/internal/session"
)

func TestHome(t *testing.T) {
	v, store := newVisitor(t)

	rec := v.get("/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Craftsmanship Rooted in Tradition",
		"From Concept to Heirloom",
		"Live Edge Dining Table",
		`href="/custom-request"`,
		`href="tel:`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if v.cookie != nil || store.Len() != 0 {
		t.Error("home page started a wizard session")
	}
}

func TestContactForm(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid",
			form: url.Values{
				"name":        {"Ada Lovelace"},
				"email":       {"ada@example.com"},
				"projectType": {"desk"},
				"message":     {"A walnut writing desk."},
			},
			wantStatus: http.StatusOK,
			wantBody:   "Thank you for reaching out.",
		},
		{
			name:       "missing message",
			form:       url.Values{"name": {"Ada"}, "email": {"ada@example.com"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "Please fill in your name, email and message.",
		},
		{
			name:       "bad email",
			form:       url.Values{"name": {"Ada"}, "email": {"ada"}, "message": {"Hi"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "Please enter a valid email address.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newVisitor(t)

			rec := v.postForm("/contact", tt.form)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body missing %q", tt.wantBody)
			}
		})
	}
}

func TestContactFormKeepsInput(t *testing.T) {
	v, _ := newVisitor(t)

	rec := v.postForm("/contact", url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "projectType": {"shelving"}})
	body := rec.Body.String()
	if !strings.Contains(body, `value="Ada"`) {
		t.Error("name not kept after a failed submission")
	}
	if !strings.Contains(body, `<option value="shelving" selected>`) {
		t.Error("project type not kept after a failed submission")
	}
}

func TestContactLogsWithoutPersonalDetails(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	h := newRouter(logger, testDeps(session.NewMemoryStore(time.Hour)))

	form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "projectType": {"desk"}, "message": {"Hello"}}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := logs.String()
	if !strings.Contains(out, `"project_type":"desk"`) {
		t.Errorf("log missing project type: %s", out)
	}
	if strings.Contains(out, "ada@example.com") {
		t.Error("log contains the visitor's email")
	}
}

func TestAPIContact(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"name":"Ada","email":"ada@example.com","message":"Hello"}`, http.StatusAccepted},
		{"missing name", `{"email":"ada@example.com","message":"Hello"}`, http.StatusUnprocessableEntity},
		{"malformed", `{"name":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newVisitor(t)
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := v.do(req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
