package httpx

import (
	"log/slog"
	"net/http"

	"github.com/codemates/website/internal/service"
)

// UIHandlers renders the public site and admin pages from embedded templates.
type UIHandlers struct {
	Renderer   *TemplateRenderer
	ProjectSvc *service.ProjectService
	TeamSvc    *service.TeamMemberService
	Logger     *slog.Logger
}

func (h *UIHandlers) render(w http.ResponseWriter, data PageData) {
	if err := h.Renderer.RenderPage(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Home handles GET /.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}
	h.render(w, PageData{Title: "CodeMates", Page: "page-home"})
}

// Services handles GET /services.
func (h *UIHandlers) Services(w http.ResponseWriter, _ *http.Request) {
	h.render(w, PageData{Title: "Services", Page: "page-services"})
}

// Projects handles GET /projects, listing the published portfolio.
func (h *UIHandlers) Projects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ProjectSvc.ListPublic(r.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.ErrorContext(r.Context(), "render projects failed", "error", err)
		}
		projects = nil
	}
	h.render(w, PageData{Title: "Projects", Page: "page-projects", Data: projects})
}

// Blog handles GET /blog.
func (h *UIHandlers) Blog(w http.ResponseWriter, _ *http.Request) {
	h.render(w, PageData{Title: "Blog", Page: "page-blog"})
}

// Contact handles GET /contact.
func (h *UIHandlers) Contact(w http.ResponseWriter, _ *http.Request) {
	h.render(w, PageData{Title: "Contact", Page: "page-contact"})
}

// About handles GET /about, listing the team.
func (h *UIHandlers) About(w http.ResponseWriter, r *http.Request) {
	members, err := h.TeamSvc.List(r.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.ErrorContext(r.Context(), "render about failed", "error", err)
		}
		members = nil
	}
	h.render(w, PageData{Title: "About", Page: "page-about", Data: members})
}

// AdminLogin handles GET /admin/login.
func (h *UIHandlers) AdminLogin(w http.ResponseWriter, _ *http.Request) {
	h.render(w, PageData{Title: "Admin Login", Page: "page-admin-login", IsAdmin: true})
}

// AdminDashboard handles GET /admin/dashboard.
func (h *UIHandlers) AdminDashboard(w http.ResponseWriter, _ *http.Request) {
	h.render(w, PageData{Title: "Dashboard", Page: "page-admin-dashboard", IsAdmin: true})
}

// AdminInquiries handles GET /admin/inquiries.
func (h *UIHandlers) AdminInquiries(w http.ResponseWriter, _ *http.Request) {
	h.render(w, PageData{Title: "Inquiries", Page: "page-admin-inquiries", IsAdmin: true})
}

// AdminProjects handles GET /admin/projects.
func (h *UIHandlers) AdminProjects(w http.ResponseWriter, _ *http.Request) {
	h.render(w, PageData{Title: "Manage Projects", Page: "page-admin-projects", IsAdmin: true})
}

// AdminTeam handles GET /admin/team.
func (h *UIHandlers) AdminTeam(w http.ResponseWriter, _ *http.Request) {
	h.render(w, PageData{Title: "Manage Team", Page: "page-admin-team", IsAdmin: true})
}

// NotFound renders the 404 page.
func (h *UIHandlers) NotFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	h.render(w, PageData{Title: "Not Found", Page: "page-notfound"})
}
