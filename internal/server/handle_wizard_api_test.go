package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/livinggrainco/site/internal/wizard"
)

type apiWizard struct {
	View    wizard.View    `json:"view"`
	Answers map[string]any `json:"answers"`
}

func decodeWizard(t *testing.T, rec *httptest.ResponseRecorder) apiWizard {
	t.Helper()
	var got apiWizard
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return got
}

func TestAPIWizardWalk(t *testing.T) {
	v, _ := newVisitor(t)

	got := decodeWizard(t, v.api(http.MethodGet, "/api/wizard", nil))
	if got.View.Kind != wizard.StepIntent || got.View.Total != 6 {
		t.Fatalf("view = %q of %d, want intent of 6", got.View.Kind, got.View.Total)
	}

	rec := v.api(http.MethodPost, "/api/wizard/new-commission", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("new-commission status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = v.api(http.MethodPost, "/api/wizard/step", map[string]any{
		"answers": map[string]any{"projectType": "watch-box"},
		"action":  "select",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("step status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	got = decodeWizard(t, rec)
	if got.View.Kind != wizard.StepWatchCapacity || got.View.Number != 3 || got.View.Total != 8 {
		t.Errorf("view = %q %d/%d, want watch capacity 3/8", got.View.Kind, got.View.Number, got.View.Total)
	}

	// Action defaults to continue.
	rec = v.api(http.MethodPost, "/api/wizard/step", map[string]any{
		"answers": map[string]any{"watchCapacity": 12},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("step status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	got = decodeWizard(t, rec)
	if got.View.Kind != wizard.StepWatchBoxShape {
		t.Errorf("kind = %q, want watch box shape", got.View.Kind)
	}
	want := map[string]any{"projectType": "watch-box", "watchCapacity": float64(12)}
	if diff := cmp.Diff(want, got.Answers); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}

	got = decodeWizard(t, v.api(http.MethodPost, "/api/wizard/back", nil))
	if got.View.Kind != wizard.StepWatchCapacity {
		t.Errorf("after back kind = %q, want watch capacity", got.View.Kind)
	}

	id := v.cookie.Value
	got = decodeWizard(t, v.api(http.MethodDelete, "/api/wizard", nil))
	if got.View.Kind != wizard.StepIntent || len(got.Answers) != 0 {
		t.Errorf("after restart view = %q with %d answers, want empty intent", got.View.Kind, len(got.Answers))
	}
	if v.cookie.Value != id {
		t.Errorf("restart changed session id from %s to %s", id, v.cookie.Value)
	}
}

func TestAPIWizardErrors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"malformed body", http.MethodPost, "/api/wizard/step", `{"answers":`, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/api/wizard/step", `{"answers":{"colour":"red"}}`, http.StatusBadRequest},
		{"field of another step", http.MethodPost, "/api/wizard/step", `{"answers":{"watchCapacity":6}}`, http.StatusBadRequest},
		{"unknown action", http.MethodPost, "/api/wizard/step", `{"answers":{},"action":"jump"}`, http.StatusBadRequest},
		{"incomplete step", http.MethodPost, "/api/wizard/step", `{"answers":{},"action":"continue"}`, http.StatusConflict},
		{"existing order mid flow", http.MethodPost, "/api/wizard/existing-order", "", http.StatusConflict},
		{"book before summary", http.MethodPost, "/api/wizard/book", "", http.StatusConflict},
		{"start twice", http.MethodPost, "/api/wizard/new-commission", "", http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newVisitor(t)
			v.api(http.MethodPost, "/api/wizard/new-commission", nil)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := v.do(req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body)
			}
			var body ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding error: %v", err)
			}
			if body.Error == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestAPIIncompleteStepKeepsAnswers(t *testing.T) {
	v, _ := newVisitor(t)
	v.api(http.MethodPost, "/api/wizard/new-commission", nil)
	v.api(http.MethodPost, "/api/wizard/step", map[string]any{
		"answers": map[string]any{"projectType": "shadow-box"},
		"action":  "select",
	})

	rec := v.api(http.MethodPost, "/api/wizard/step", map[string]any{
		"answers": map[string]any{"shadowBoxDimensions": map[string]any{"height": "20"}},
		"action":  "continue",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}

	got := decodeWizard(t, v.api(http.MethodGet, "/api/wizard", nil))
	if got.View.Kind != wizard.StepShadowBoxDimensions {
		t.Errorf("kind = %q, want shadow box dimensions", got.View.Kind)
	}
	want := map[string]any{"height": "20"}
	if diff := cmp.Diff(want, got.Answers["shadowBoxDimensions"]); diff != "" {
		t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
	}
}

func TestAPIExistingOrder(t *testing.T) {
	v, _ := newVisitor(t)

	got := decodeWizard(t, v.api(http.MethodPost, "/api/wizard/existing-order", nil))
	if got.View.Kind != wizard.StepContactInfo || got.View.ShowProgress || !got.View.CanGoBack {
		t.Errorf("view = %+v, want contact info without progress", got.View)
	}
}

func TestAPIFlows(t *testing.T) {
	v, _ := newVisitor(t)

	rec := v.api(http.MethodGet, "/api/flows", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var flows []wizard.Flow
	if err := json.NewDecoder(rec.Body).Decode(&flows); err != nil {
		t.Fatalf("decoding flows: %v", err)
	}
	if diff := cmp.Diff(wizard.Flows(), flows); diff != "" {
		t.Errorf("flows mismatch (-want +got):\n%s", diff)
	}
}

func TestAPICORS(t *testing.T) {
	v, _ := newVisitor(t)

	tests := []struct {
		origin string
		want   string
	}{
		{"https://studio.example.com", "https://studio.example.com"},
		{"https://elsewhere.example.com", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodOptions, "/api/wizard/step", nil)
		req.Header.Set("Origin", tt.origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := v.do(req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("%s: allow-origin = %q, want %q", tt.origin, got, tt.want)
		}
	}
}
