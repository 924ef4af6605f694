package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/livinggrainco/site/internal/site"
	"github.com/livinggrainco/site/internal/wizard"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthStatus is the state of one backend dependency.
type HealthStatus struct {
	Status    string `json:"status" enum:"ok,error"`
	LatencyMS int64  `json:"latencyMs"`
}

// HealthResponse maps dependency names to their status.
type HealthResponse map[string]HealthStatus

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Living Grain Co. API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Commission request form and contact endpoints for the Living Grain Co. site. " +
		"Wizard state is kept in a session identified by the lgc_wizard cookie.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of the session backend.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/flows
	getFlows, _ := r.NewOperationContext(http.MethodGet, "/api/flows")
	getFlows.SetSummary("List flows")
	getFlows.SetDescription("Every flow variant with its ordered step kinds.")
	getFlows.AddRespStructure([]wizard.Flow{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getFlows)

	// GET /api/wizard
	getWizard, _ := r.NewOperationContext(http.MethodGet, "/api/wizard")
	getWizard.SetSummary("Current step")
	getWizard.SetDescription("Returns the current screen and the recorded answers. Starts a session when none exists.")
	getWizard.AddRespStructure(WizardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getWizard)

	// DELETE /api/wizard
	deleteWizard, _ := r.NewOperationContext(http.MethodDelete, "/api/wizard")
	deleteWizard.SetSummary("Start over")
	deleteWizard.SetDescription("Discards every answer and returns to the first step.")
	deleteWizard.AddRespStructure(WizardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(deleteWizard)

	// POST /api/wizard/step
	postStep, _ := r.NewOperationContext(http.MethodPost, "/api/wizard/step")
	postStep.SetSummary("Submit step")
	postStep.SetDescription("Records answers for the current step. A select advances when the step moves on by itself; " +
		"a continue advances when the step is complete.")
	postStep.AddReqStructure(StepRequest{})
	postStep.AddRespStructure(WizardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postStep.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postStep.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postStep)

	for _, c := range []struct {
		path, summary, description string
	}{
		{"/api/wizard/back", "Go back", "Closes the booking panel, the summary or the contact details, or returns to the previous step."},
		{"/api/wizard/new-commission", "New commission", "Leaves the first step for project type selection."},
		{"/api/wizard/existing-order", "Existing order", "Shows the workshop contact details. Only valid on the first step."},
		{"/api/wizard/book", "Book consultation", "Reveals the booking panel. Only valid on the summary."},
	} {
		op, _ := r.NewOperationContext(http.MethodPost, c.path)
		op.SetSummary(c.summary)
		op.SetDescription(c.description)
		op.AddRespStructure(WizardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
		op.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
		_ = r.AddOperation(op)
	}

	// POST /api/contact
	postContact, _ := r.NewOperationContext(http.MethodPost, "/api/contact")
	postContact.SetSummary("Contact inquiry")
	postContact.SetDescription("Validates and acknowledges a contact inquiry. Nothing is sent or stored.")
	postContact.AddReqStructure(site.Inquiry{})
	postContact.AddRespStructure(InquiryResponse{}, openapi.WithHTTPStatus(http.StatusAccepted))
	postContact.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postContact.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postContact)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
