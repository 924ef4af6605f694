package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/livinggrainco/site/internal/site"
)

func handleHome(content site.Content) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, http.StatusOK, "home", homePage{Site: content})
	}
}

// handleContact acknowledges the home page contact form. Inquiries are
// logged without personal details and go nowhere else.
func handleContact(logger *slog.Logger, content site.Content) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render(w, r, http.StatusBadRequest, "home", homePage{Site: content, Error: "The form could not be read."})
			return
		}
		in := site.Inquiry{
			Name:        r.PostForm.Get("name"),
			Email:       r.PostForm.Get("email"),
			Phone:       r.PostForm.Get("phone"),
			ProjectType: r.PostForm.Get("projectType"),
			Message:     r.PostForm.Get("message"),
		}
		if err := in.Validate(); err != nil {
			render(w, r, http.StatusUnprocessableEntity, "home", homePage{
				Site:    content,
				Inquiry: in,
				Error:   inquiryProblem(err),
			})
			return
		}

		logInquiry(logger, r, in)
		render(w, r, http.StatusOK, "home", homePage{Site: content, Sent: true})
	}
}

// InquiryResponse acknowledges a contact form submission.
type InquiryResponse struct {
	Message string `json:"message"`
}

func handleAPIContact(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in site.Inquiry
		if err := readJSON(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := in.Validate(); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		logInquiry(logger, r, in)
		writeJSON(w, http.StatusAccepted, InquiryResponse{Message: "Thank you for reaching out. We'll be in touch within 48 hours."})
	}
}

func logInquiry(logger *slog.Logger, r *http.Request, in site.Inquiry) {
	logger.Info("contact inquiry received",
		"project_type", in.ProjectType,
		"has_phone", in.Phone != "",
		"request_id", middleware.GetReqID(r.Context()),
	)
}

func inquiryProblem(err error) string {
	if errors.Is(err, site.ErrInvalidEmail) {
		return "Please enter a valid email address."
	}
	return "Please fill in your name, email and message."
}
