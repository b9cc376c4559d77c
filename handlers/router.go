package handlers

import (
	"net/http"

	"hrms/middleware"
	"hrms/storage"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every endpoint. Business routes live under /api behind the
// auth middleware; uploaded attachments are served to authenticated sessions
// only, attached assets publicly.
func NewRouter(store *storage.Storage, auth *middleware.Auth, uploadDir, assetsDir string) http.Handler {
	authHandler := NewAuthHandler(store, auth)
	candidateHandler := NewCandidateHandler(store, uploadDir)
	employeeHandler := NewEmployeeHandler(store)
	attendanceHandler := NewAttendanceHandler(store)
	leaveHandler := NewLeaveHandler(store, uploadDir)

	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	// Public routes
	router.Post("/api/register", authHandler.Register)
	router.Post("/api/login", authHandler.Login)
	router.Post("/api/logout", authHandler.Logout)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(auth.Require)

		r.Get("/api/user", authHandler.CurrentUser)

		r.Route("/api/candidates", func(r chi.Router) {
			r.Get("/", candidateHandler.List)
			r.Post("/", candidateHandler.Create)
			r.Get("/{id}", candidateHandler.Get)
			r.Put("/{id}", candidateHandler.Update)
			r.Delete("/{id}", candidateHandler.Delete)
			r.Post("/{id}/promote", candidateHandler.Promote)
		})

		r.Route("/api/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/{id}", employeeHandler.Get)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Delete)
			r.Get("/{id}/attendance", employeeHandler.Attendance)
			r.Get("/{id}/leaves", employeeHandler.Leaves)
		})

		r.Route("/api/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/", attendanceHandler.Create)
			r.Put("/{id}", attendanceHandler.Update)
		})

		r.Route("/api/leaves", func(r chi.Router) {
			r.Get("/", leaveHandler.List)
			r.Get("/approved", leaveHandler.Approved)
			r.Post("/", leaveHandler.Create)
			r.Put("/{id}", leaveHandler.Update)
			r.Delete("/{id}", leaveHandler.Delete)
		})

		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))
	})

	router.Handle("/attached_assets/*", http.StripPrefix("/attached_assets/", http.FileServer(http.Dir(assetsDir))))

	return router
}
