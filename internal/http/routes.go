package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"

	website "github.com/codemates/website"
	"github.com/codemates/website/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      AuthServiceInterface
	Inquiries *service.InquiryService
	Projects  *service.ProjectService
	Team      *service.TeamMemberService
	// CredentialStore is the connectivity probe behind the admin
	// test-connection endpoint. Optional.
	CredentialStore Pinger
	// Metrics wraps the whole mux when set (Prometheus HTTP instrumentation).
	Metrics func(http.Handler) http.Handler
	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
	Logger         *slog.Logger
}

// NewRouter creates and configures the HTTP router: public pages and APIs,
// the guarded admin area, and the admin data endpoints.
func NewRouter(services RouterServices) (http.Handler, error) {
	mux := http.NewServeMux()
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authHandlers := &AuthHandlers{Svc: services.Auth, Logger: logger}
	contactHandlers := &ContactHandlers{Svc: services.Inquiries, Logger: logger}
	inquiryHandlers := &InquiryHandlers{Svc: services.Inquiries}
	projectHandlers := &ProjectHandlers{Svc: services.Projects}
	teamHandlers := &TeamHandlers{Svc: services.Team}
	adminHandlers := &AdminHandlers{CredentialStore: services.CredentialStore}

	// Session endpoints.
	mux.HandleFunc("POST /api/auth/login", authHandlers.Login)
	mux.HandleFunc("GET /api/auth/check", authHandlers.Check)
	mux.HandleFunc("POST /api/auth/logout", authHandlers.Logout)

	// Public data endpoints.
	mux.HandleFunc("POST /api/contact", contactHandlers.Submit)
	mux.HandleFunc("GET /api/projects", projectHandlers.ListPublic)
	mux.HandleFunc("GET /api/team", teamHandlers.ListPublic)

	// Admin data endpoints, uniformly gated.
	registerAdminAPIRoutes(mux, adminAPIHandlers{
		Auth:      services.Auth,
		Inquiries: inquiryHandlers,
		Projects:  projectHandlers,
		Team:      teamHandlers,
		Admin:     adminHandlers,
	})

	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)
	if services.MetricsHandler != nil {
		mux.Handle("GET /metrics", services.MetricsHandler)
	}

	// Static assets from the embedded filesystem.
	staticFS, err := fs.Sub(website.StaticFS, "web")
	if err != nil {
		return nil, err
	}
	mux.Handle("GET /static/", http.FileServerFS(staticFS))

	// UI pages.
	templateFS, err := fs.Sub(website.TemplateFS, "web/templates")
	if err != nil {
		return nil, err
	}
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: templateFS, Logger: logger})
	if err != nil {
		return nil, err
	}
	ui := &UIHandlers{
		Renderer:   renderer,
		ProjectSvc: services.Projects,
		TeamSvc:    services.Team,
		Logger:     logger,
	}
	registerUIRoutes(mux, ui, services.Auth)

	handler := Chain(http.Handler(mux),
		Recover(logger),
		Logging(logger),
	)
	if services.Metrics != nil {
		handler = services.Metrics(handler)
	}
	return handler, nil
}

// adminAPIHandlers groups the handlers behind the admin API guard.
type adminAPIHandlers struct {
	Auth      AuthServiceInterface
	Inquiries *InquiryHandlers
	Projects  *ProjectHandlers
	Team      *TeamHandlers
	Admin     *AdminHandlers
}

func registerAdminAPIRoutes(mux *http.ServeMux, h adminAPIHandlers) {
	guard := RequireAdminAPI(h.Auth)
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, guard(fn))
	}

	handle("GET /api/admin/inquiries", h.Inquiries.List)
	handle("GET /api/admin/inquiries/{id}", h.Inquiries.Get)
	handle("PUT /api/admin/inquiries/{id}", h.Inquiries.UpdateStatus)
	handle("DELETE /api/admin/inquiries/{id}", h.Inquiries.Delete)

	handle("GET /api/admin/projects", h.Projects.List)
	handle("POST /api/admin/projects", h.Projects.Create)
	handle("GET /api/admin/projects/{id}", h.Projects.Get)
	handle("PUT /api/admin/projects/{id}", h.Projects.Update)
	handle("DELETE /api/admin/projects/{id}", h.Projects.Delete)

	handle("GET /api/admin/team", h.Team.List)
	handle("POST /api/admin/team", h.Team.Create)
	handle("GET /api/admin/team/{id}", h.Team.Get)
	handle("PUT /api/admin/team/{id}", h.Team.Update)
	handle("DELETE /api/admin/team/{id}", h.Team.Delete)

	handle("GET /api/admin/test-connection", h.Admin.TestConnection)
}

func registerUIRoutes(mux *http.ServeMux, ui *UIHandlers, auth AuthServiceInterface) {
	mux.HandleFunc("GET /", ui.Home)
	mux.HandleFunc("GET /services", ui.Services)
	mux.HandleFunc("GET /projects", ui.Projects)
	mux.HandleFunc("GET /blog", ui.Blog)
	mux.HandleFunc("GET /contact", ui.Contact)
	mux.HandleFunc("GET /about", ui.About)

	// The admin page tree sits behind the route guard. The login page is
	// registered inside the guard too: the guard forwards valid sessions to
	// the dashboard instead of re-rendering the form.
	guard := AdminGuard(auth)
	adminPage := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, guard(fn))
	}
	adminPage("GET /admin/login", ui.AdminLogin)
	adminPage("GET /admin", ui.AdminDashboard)
	adminPage("GET /admin/dashboard", ui.AdminDashboard)
	adminPage("GET /admin/inquiries", ui.AdminInquiries)
	adminPage("GET /admin/projects", ui.AdminProjects)
	adminPage("GET /admin/team", ui.AdminTeam)
}
