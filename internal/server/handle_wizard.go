package server

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/livinggrainco/site/internal/commission"
	"github.com/livinggrainco/site/internal/site"
	"github.com/livinggrainco/site/internal/wizard"
)

const (
	maxUploadBytes = 10 << 20

	// customPrefix names the free entry that sits next to preset options.
	customPrefix = "custom:"
)

// command is a wizard operation other than a step submission.
type command func(sess *wizard.Session, r *http.Request) error

func newCommission(sess *wizard.Session, _ *http.Request) error { return sess.NewCommission() }
func existingOrder(sess *wizard.Session, _ *http.Request) error { return sess.ExistingOrder() }
func book(sess *wizard.Session, _ *http.Request) error          { return sess.Book() }

func goBack(sess *wizard.Session, _ *http.Request) error {
	sess.GoBack()
	return nil
}

func restart(sess *wizard.Session, _ *http.Request) error {
	sess.Restart()
	return nil
}

var formCommands = map[string]command{
	"new-commission": newCommission,
	"existing-order": existingOrder,
	"back":           goBack,
	"book":           book,
	"restart":        restart,
}

func handleWizardPage(content site.Content) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, http.StatusOK, "wizard", wizardPage{Site: content, View: sessionFrom(r).View()})
	}
}

func handleWizardPost(logger *slog.Logger, keeper *sessionKeeper, content site.Content) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		fail := func(status int, msg string) {
			render(w, r, status, "wizard", wizardPage{Site: content, View: sess.View(), Error: msg})
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+1<<20)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				fail(http.StatusRequestEntityTooLarge, "Files must be smaller than 10 MB.")
				return
			}
			fail(http.StatusBadRequest, "The form could not be read. Please try again.")
			return
		}
		if r.MultipartForm != nil {
			defer r.MultipartForm.RemoveAll()
		}

		from := sess.Current().Kind
		var err error
		if cmd, ok := formCommands[r.PostForm.Get("action")]; ok {
			err = cmd(sess, r)
		} else {
			err = submitForm(sess, r)
		}

		switch status := statusFor(err); {
		case err == nil:
		case errors.Is(err, wizard.ErrStepIncomplete):
			if serr := keeper.save(w, r, sess); serr != nil {
				logger.Error("saving wizard session", "error", serr, "request_id", middleware.GetReqID(r.Context()))
			}
			fail(http.StatusUnprocessableEntity, "Please answer the questions above to continue.")
			return
		case status == http.StatusInternalServerError:
			logger.Error("wizard step failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
			fail(status, "Something went wrong. Please try again.")
			return
		default:
			fail(status, "That answer could not be used here. Please check it and try again.")
			return
		}

		if err := keeper.save(w, r, sess); err != nil {
			logger.Error("saving wizard session", "error", err, "request_id", middleware.GetReqID(r.Context()))
			fail(http.StatusInternalServerError, "Something went wrong. Please try again.")
			return
		}
		logTransition(logger, r, sess, from)
		http.Redirect(w, r, "/custom-request", http.StatusSeeOther)
	}
}

// submitForm commits the current step's fields. A post without an action
// comes from tapping an option.
func submitForm(sess *wizard.Session, r *http.Request) error {
	action := wizard.ActionSelect
	if v := r.PostForm.Get("action"); v != "" {
		action = wizard.Action(v)
	}
	return sess.Submit(formPatch(r, sess.Current()), action)
}

// formPatch collects the posted answers for step. Fields missing from the
// form are left untouched; uploads record the file name only.
func formPatch(r *http.Request, step wizard.Step) commission.Patch {
	p := commission.Patch{}
	for _, q := range step.Questions {
		key := string(q.Field)
		if q.Input == wizard.InputFile {
			if r.MultipartForm == nil {
				continue
			}
			if files := r.MultipartForm.File[key]; len(files) > 0 && files[0].Filename != "" {
				p[q.Field] = filepath.Base(files[0].Filename)
			}
			continue
		}
		if vs := r.PostForm[key]; len(vs) > 0 {
			p[q.Field] = vs[len(vs)-1]
		} else if v := r.PostForm.Get(customPrefix + key); v != "" {
			p[q.Field] = v
		}
	}
	return p
}

func logTransition(logger *slog.Logger, r *http.Request, sess *wizard.Session, from wizard.StepKind) {
	logger.Debug("wizard transition",
		"session", sess.ID,
		"from", from,
		"to", sess.Current().Kind,
		"index", sess.Index,
		"total", sess.Total(),
		"variant", sess.Variant,
		"request_id", middleware.GetReqID(r.Context()),
	)
}
