package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/hr-directory/internal/auth"
	"github.com/frahmantamala/hr-directory/internal/company"
	"github.com/frahmantamala/hr-directory/internal/employee"
	"github.com/frahmantamala/hr-directory/internal/transport/middleware"
	"github.com/frahmantamala/hr-directory/internal/transport/swagger"
	"github.com/frahmantamala/hr-directory/internal/user"
)

// RegisterAllRoutes wires every endpoint onto the router. Role checks live on
// the routes; tenant checks live in the services behind them.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	companyHandler *company.Handler,
	employeeHandler *employee.Handler,
	userHandler *user.Handler,
	allowedOrigins string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI document and Swagger UI live outside the API prefix.
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", authHandler.Register)
			sr.Post("/login", authHandler.Login)

			sr.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)
				pr.Get("/me", authHandler.Me)
			})
		})

		// Public routes: company self-registration, and the employee card
		// behind NFC tags and QR codes.
		r.Post("/companies/public", companyHandler.RegisterPublic)
		r.Get("/employees/{id}", employeeHandler.GetPublic)

		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Route("/companies", func(cr chi.Router) {
				cr.Get("/", companyHandler.List)
				cr.Get("/{id}", companyHandler.Get)

				cr.Group(func(ar chi.Router) {
					ar.Use(authHandler.RequireRoles(auth.RoleSuperAdmin, auth.RoleCompanyAdmin))
					ar.Put("/{id}", companyHandler.Update)
				})

				cr.Group(func(sa chi.Router) {
					sa.Use(authHandler.RequireRoles(auth.RoleSuperAdmin))
					sa.Post("/", companyHandler.Create)
					sa.Delete("/{id}", companyHandler.Delete)
					sa.Patch("/{id}/status", companyHandler.ToggleStatus)
				})
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", employeeHandler.List)
				er.Get("/company/{companyId}", employeeHandler.ListByCompany)

				// Card owners may edit their own card, so update routes stay
				// open to every role; the service guards record ownership.
				er.Put("/{id}", employeeHandler.Update)
				er.Put("/{id}/background", employeeHandler.UpdateBackground)

				er.Group(func(ar chi.Router) {
					ar.Use(authHandler.RequireRoles(auth.RoleSuperAdmin, auth.RoleCompanyAdmin))
					ar.Post("/", employeeHandler.Create)
					ar.Delete("/{id}", employeeHandler.Delete)
				})
			})

			pr.Route("/users", func(ur chi.Router) {
				ur.Get("/{id}", userHandler.Get)
				ur.Put("/{id}", userHandler.Update)

				ur.Group(func(sa chi.Router) {
					sa.Use(authHandler.RequireRoles(auth.RoleSuperAdmin))
					sa.Get("/", userHandler.List)
				})
			})
		})
	})
}
