package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	scopeLogin  = "login"
	scopeForgot = "forgot"
	scopeResend = "resend"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.options.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader, "Retry-After"},
		MaxAge:         300,
	}))
	if h.options.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.options.RequestTimeout))
	}

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.ping)
		r.Get("/version/", h.getServerVersion)

		// routes without authorization
		r.Post("/signup", h.signup)
		r.With(h.limit(h.options.LoginLimiter, scopeLogin)).Post("/login", h.login)
		r.Post("/auth/external", h.externalLogin)
		r.Post("/auth/google", h.externalLogin)
		r.Get("/verify", h.verifyEmail)
		r.With(h.limit(h.options.ForgotLimiter, scopeResend)).Post("/verify/resend", h.resendVerification)
		r.Group(func(r chi.Router) {
			r.Use(h.limit(h.options.ForgotLimiter, scopeForgot))
			r.Post("/forgot", h.forgotPassword)
			r.Post("/users/forgot", h.forgotPassword)
		})
		r.Post("/reset", h.resetPassword)
		r.Post("/users/reset", h.resetPassword)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/users/me", h.me)
			r.Put("/users/update", h.updateProfile)
			r.Post("/users/avatar/upload-url", h.avatarUploadURL)
			r.Put("/users/avatar", h.setAvatar)
			r.Get("/users/{id}", h.getUser)

			r.Get("/classes", h.listClasses)
			r.Post("/classes", h.createClass)
			r.Post("/classes/join", h.joinClass)
			r.Post("/classes/accept", h.acceptInvite)
			r.Route("/classes/{id}", func(r chi.Router) {
				r.Get("/", h.getClass)
				r.Post("/invite", h.inviteToClass)

				r.Get("/announcements", h.listAnnouncements)
				r.Post("/announcements", h.createAnnouncement)
				r.Put("/announcements/{announcementID}", h.updateAnnouncement)
				r.Delete("/announcements/{announcementID}", h.deleteAnnouncement)
				r.Put("/announcements/{announcementID}/pin", h.pinAnnouncement)
				r.Get("/announcements/{announcementID}/comments", h.listComments)
				r.Post("/announcements/{announcementID}/comments", h.addComment)

				r.Get("/assignments", h.listAssignments)
				r.Post("/assignments", h.createAssignment)
				r.Get("/assignments/{assignmentID}", h.getAssignment)
				r.Put("/assignments/{assignmentID}", h.updateAssignment)
				r.Delete("/assignments/{assignmentID}", h.deleteAssignment)
				r.Get("/assignments/{assignmentID}/submission", h.getSubmission)
				r.Post("/assignments/{assignmentID}/submission/upload-url", h.submissionUploadURL)
				r.Post("/assignments/{assignmentID}/submit", h.submit)
				r.Put("/assignments/{assignmentID}/mark-done", h.markDone)
				r.Get("/assignments/{assignmentID}/submissions", h.listSubmissions)
				r.Put("/assignments/{assignmentID}/grades", h.grade)
			})
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
