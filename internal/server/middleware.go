package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/livinggrainco/site/internal/session"
	"github.com/livinggrainco/site/internal/wizard"
)

const sessionCookie = "lgc_wizard"

type ctxKey int

const ctxKeySession ctxKey = iota

// sessionKeeper binds wizard sessions to the visitor's cookie.
type sessionKeeper struct {
	store  session.Store
	opts   wizard.Options
	ttl    time.Duration
	secure bool
}

func newSessionKeeper(deps Deps) *sessionKeeper {
	return &sessionKeeper{
		store:  deps.Sessions,
		opts:   deps.Wizard,
		ttl:    deps.SessionTTL,
		secure: deps.CookieSecure,
	}
}

// load returns the visitor's session, or a fresh one when the cookie is
// missing, malformed or points at an expired record.
func (k *sessionKeeper) load(r *http.Request) (sess *wizard.Session, fresh bool, err error) {
	if c, err := r.Cookie(sessionCookie); err == nil && session.ValidID(c.Value) {
		sess, err := k.store.Get(r.Context(), c.Value)
		switch {
		case err == nil:
			return sess, false, nil
		case !errors.Is(err, session.ErrNotFound):
			return nil, false, fmt.Errorf("loading session: %w", err)
		}
	}
	return wizard.New(session.NewID(), k.opts), true, nil
}

// save persists sess and refreshes the cookie.
func (k *sessionKeeper) save(w http.ResponseWriter, r *http.Request, sess *wizard.Session) error {
	if err := k.store.Save(r.Context(), sess); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(k.ttl.Seconds()),
		HttpOnly: true,
		Secure:   k.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (k *sessionKeeper) middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, fresh, err := k.load(r)
			if err == nil && fresh {
				err = k.save(w, r, sess)
				if err == nil {
					logger.Debug("wizard session started", "session", sess.ID, "request_id", middleware.GetReqID(r.Context()))
				}
			}
			if err != nil {
				logger.Error("session unavailable", "error", err, "request_id", middleware.GetReqID(r.Context()))
				if strings.HasPrefix(r.URL.Path, "/api/") {
					writeError(w, http.StatusServiceUnavailable, "session store unavailable")
					return
				}
				http.Error(w, "The request form is unavailable right now. Please try again shortly.", http.StatusServiceUnavailable)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFrom(r *http.Request) *wizard.Session {
	return r.Context().Value(ctxKeySession).(*wizard.Session)
}
