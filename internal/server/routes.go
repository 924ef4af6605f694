package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/swaggest/swgui/v5emb"

	"github.com/livinggrainco/site/internal/handler/health"
)

func addRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	keeper := newSessionKeeper(deps)

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Living Grain Co. API", "/openapi.json", "/docs"))
	r.Mount("/healthz", health.NewHandler(logger, deps.Checks).Routes())

	// Marketing page.
	r.Get("/", handleHome(deps.Site))
	r.Post("/contact", handleContact(logger, deps.Site))

	// Commission form, one step per page load.
	r.Group(func(r chi.Router) {
		r.Use(keeper.middleware(logger))
		r.Get("/custom-request", handleWizardPage(deps.Site))
		r.Post("/custom-request", handleWizardPost(logger, keeper, deps.Site))
	})

	// JSON twin of the form.
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))

		r.Get("/flows", handleFlows())
		r.Post("/contact", handleAPIContact(logger))

		r.Route("/wizard", func(r chi.Router) {
			r.Use(keeper.middleware(logger))
			r.Get("/", handleAPIWizard())
			r.Delete("/", apiMutation(logger, keeper, restart))
			r.Post("/step", apiMutation(logger, keeper, submitStep))
			r.Post("/back", apiMutation(logger, keeper, goBack))
			r.Post("/new-commission", apiMutation(logger, keeper, newCommission))
			r.Post("/existing-order", apiMutation(logger, keeper, existingOrder))
			r.Post("/book", apiMutation(logger, keeper, book))
		})
	})

	if deps.AssetsDir != "" {
		if info, err := os.Stat(deps.AssetsDir); err == nil && info.IsDir() {
			logger.Info("serving static assets", "dir", deps.AssetsDir)
			r.Handle("/assets/*", handleAssets(deps.AssetsDir))
		}
	}
}
