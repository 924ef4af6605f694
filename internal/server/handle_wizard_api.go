package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/livinggrainco/site/internal/commission"
	"github.com/livinggrainco/site/internal/wizard"
)

// WizardResponse is the current screen and the answers recorded so far.
type WizardResponse struct {
	View    wizard.View        `json:"view"`
	Answers commission.Answers `json:"answers"`
}

// StepRequest submits answers owned by the current step. An empty string
// or null clears a field. The action defaults to continue.
type StepRequest struct {
	Answers commission.Patch `json:"answers"`
	Action  wizard.Action    `json:"action,omitempty" enum:"select,continue"`
}

func newWizardResponse(sess *wizard.Session) WizardResponse {
	return WizardResponse{View: sess.View(), Answers: sess.Answers}
}

func handleAPIWizard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newWizardResponse(sessionFrom(r)))
	}
}

func handleFlows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, wizard.Flows())
	}
}

func submitStep(sess *wizard.Session, r *http.Request) error {
	var req StepRequest
	if err := readJSON(r, &req); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}
	if req.Action == "" {
		req.Action = wizard.ActionContinue
	}
	return sess.Submit(req.Answers, req.Action)
}

// apiMutation runs cmd against the visitor's session and answers with the
// resulting screen. An incomplete step is saved before the conflict is
// reported, so partial answers survive.
func apiMutation(logger *slog.Logger, keeper *sessionKeeper, cmd command) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		from := sess.Current().Kind

		err := cmd(sess, r)
		if err != nil && !errors.Is(err, wizard.ErrStepIncomplete) {
			writeFailure(w, r, logger, err)
			return
		}
		if serr := keeper.save(w, r, sess); serr != nil {
			writeFailure(w, r, logger, serr)
			return
		}
		if err != nil {
			writeFailure(w, r, logger, err)
			return
		}

		logTransition(logger, r, sess, from)
		writeJSON(w, http.StatusOK, newWizardResponse(sess))
	}
}
