package api

import (
	"github.com/awtad/website/internal/config"
	"github.com/awtad/website/internal/dal"
	"github.com/awtad/website/internal/db"
	"github.com/awtad/website/internal/email"
	"github.com/awtad/website/internal/repository/sqlite"
	"github.com/gorilla/mux"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, conn *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)
	r.Use(RequestCacheMiddleware)

	// Repository, read facade, notifier
	repo := sqlite.New(conn, logger)
	facade := dal.New(repo, logger)
	notifier := email.NewNotifier(cfg.Email.APIKey, cfg.Email.From, logger)
	limiter := NewIPLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, notifier, cfg.JWTSecret, cfg.TokenDuration)
	projectsHandler := NewProjectsHandler(facade, repo)
	careersHandler := NewCareersHandler(facade, repo)
	applicationsHandler := NewApplicationsHandler(repo, repo, notifier, cfg.Email.AdminTo)
	inquiriesHandler := NewInquiriesHandler(repo, notifier, cfg.Email.AdminTo)
	taxonomyHandler := NewTaxonomyHandler(facade, repo, repo)
	newsHandler := NewNewsHandler(facade, repo)
	statsHandler := NewStatsHandler(facade, repo, repo, repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")

	r.HandleFunc("/v1/projects", projectsHandler.ListProjects).Methods("GET")
	r.HandleFunc("/v1/projects/filters", projectsHandler.ProjectFilters).Methods("GET")
	r.HandleFunc("/v1/projects/featured", projectsHandler.FeaturedProjects).Methods("GET")
	r.HandleFunc("/v1/projects/{slug}", projectsHandler.GetProject).Methods("GET")

	r.HandleFunc("/v1/sectors", taxonomyHandler.ListSectors).Methods("GET")
	r.HandleFunc("/v1/sectors/{slug}", taxonomyHandler.GetSector).Methods("GET")
	r.HandleFunc("/v1/services", taxonomyHandler.ListServices).Methods("GET")
	r.HandleFunc("/v1/services/{slug}", taxonomyHandler.GetService).Methods("GET")

	r.HandleFunc("/v1/news", newsHandler.ListNews).Methods("GET")
	r.HandleFunc("/v1/news/{slug}", newsHandler.GetNews).Methods("GET")

	r.HandleFunc("/v1/careers", careersHandler.ListCareers).Methods("GET")
	r.HandleFunc("/v1/careers/urgent", careersHandler.UrgentCareers).Methods("GET")
	r.HandleFunc("/v1/careers/{code}", careersHandler.GetCareer).Methods("GET")

	r.HandleFunc("/v1/search", statsHandler.Search).Methods("GET")

	// Public submissions are rate limited per IP
	r.HandleFunc("/v1/applications", limiter.Limit(applicationsHandler.SubmitApplication)).Methods("POST")
	r.HandleFunc("/v1/inquiries", limiter.Limit(inquiriesHandler.SubmitInquiry)).Methods("POST")

	// Authenticated routes
	authV1 := r.PathPrefix("/v1/auth").Subrouter()
	authV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))
	authV1.HandleFunc("/change-password", authHandler.ChangePassword).Methods("POST")

	// Admin CRUD surface
	admin := r.PathPrefix("/v1/admin").Subrouter()
	admin.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	admin.HandleFunc("/projects", projectsHandler.AdminListProjects).Methods("GET")
	admin.HandleFunc("/projects", projectsHandler.CreateProject).Methods("POST")
	admin.HandleFunc("/projects/{id}", projectsHandler.UpdateProject).Methods("PUT")
	admin.HandleFunc("/projects", projectsHandler.DeleteProject).Methods("DELETE")

	admin.HandleFunc("/careers", careersHandler.AdminListCareers).Methods("GET")
	admin.HandleFunc("/careers", careersHandler.CreateCareer).Methods("POST")
	admin.HandleFunc("/careers/{id}", careersHandler.UpdateCareer).Methods("PUT")
	admin.HandleFunc("/careers", careersHandler.DeleteCareer).Methods("DELETE")

	admin.HandleFunc("/sectors", taxonomyHandler.CreateSector).Methods("POST")
	admin.HandleFunc("/sectors/{id}", taxonomyHandler.UpdateSector).Methods("PUT")
	admin.HandleFunc("/sectors", taxonomyHandler.DeleteSector).Methods("DELETE")

	admin.HandleFunc("/services", taxonomyHandler.CreateService).Methods("POST")
	admin.HandleFunc("/services/{id}", taxonomyHandler.UpdateService).Methods("PUT")
	admin.HandleFunc("/services", taxonomyHandler.DeleteService).Methods("DELETE")

	admin.HandleFunc("/news", newsHandler.AdminListNews).Methods("GET")
	admin.HandleFunc("/news", newsHandler.CreateNews).Methods("POST")
	admin.HandleFunc("/news/{id}", newsHandler.UpdateNews).Methods("PUT")
	admin.HandleFunc("/news", newsHandler.DeleteNews).Methods("DELETE")

	admin.HandleFunc("/applications", applicationsHandler.ListApplications).Methods("GET")
	admin.HandleFunc("/applications/{id}", applicationsHandler.GetApplication).Methods("GET")
	admin.HandleFunc("/applications/{id}/status", applicationsHandler.UpdateApplicationStatus).Methods("PUT")

	admin.HandleFunc("/inquiries", inquiriesHandler.ListInquiries).Methods("GET")
	admin.HandleFunc("/inquiries/{id}", inquiriesHandler.GetInquiry).Methods("GET")
	admin.HandleFunc("/inquiries/{id}", inquiriesHandler.UpdateInquiry).Methods("PUT")
	admin.HandleFunc("/inquiries", inquiriesHandler.DeleteInquiry).Methods("DELETE")

	admin.HandleFunc("/stats", statsHandler.AdminStats).Methods("GET")

	return r
}
