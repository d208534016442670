package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/curriculum-api/internal/handler"
	"github.com/noah-isme/curriculum-api/internal/middleware"
	"github.com/noah-isme/curriculum-api/internal/models"
	"github.com/noah-isme/curriculum-api/internal/service"
)

// Role sets referenced by the policy table. Writes are restricted to the
// department head; reads are open to both roles.
var (
	rolesWrite = []models.UserRole{models.RoleDepartmentHead}
	rolesRead  = []models.UserRole{models.RoleDepartmentHead, models.RoleLecturer}
)

// route binds one endpoint to its handler and allowed role set. A nil role
// set means the endpoint is public; an empty chain is never registered.
type route struct {
	method  string
	path    string
	handler gin.HandlerFunc
	roles   []models.UserRole
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	Curriculum *handler.CurriculumHandler
	CPL        *handler.CPLHandler
	Indicator  *handler.IndicatorHandler
	Course     *handler.CourseHandler
	User       *handler.UserHandler
	Cocktail   *handler.CocktailHandler
}

// Register mounts the full route table on the engine. Authorization is
// declared here, per route, and enforced by a single RBAC middleware.
func Register(r *gin.Engine, h Handlers, auth *service.AuthService) {
	routes := []route{
		// Authentication. Logout is deliberately outside the JWT chain: it
		// extracts the bearer token itself so that a revoked token still
		// reaches the service and yields 400 instead of the middleware's 401.
		{http.MethodPost, "/auth/login", h.Auth.Login, nil},
		{http.MethodGet, "/auth/me", h.Auth.Me, rolesRead},
		{http.MethodPost, "/auth/logout", h.Auth.Logout, nil},
		{http.MethodPost, "/auth/register", h.Auth.Register, rolesWrite},

		// Curriculum
		{http.MethodPost, "/kurikulum", h.Curriculum.Create, rolesWrite},
		{http.MethodGet, "/kurikulum", h.Curriculum.List, rolesRead},
		{http.MethodGet, "/kurikulum/:id_kurikulum", h.Curriculum.Get, rolesRead},
		{http.MethodPatch, "/kurikulum/:id_kurikulum", h.Curriculum.Update, rolesWrite},
		{http.MethodDelete, "/kurikulum/:id_kurikulum", h.Curriculum.Delete, rolesWrite},
		{http.MethodGet, "/kurikulum/:id_kurikulum/export", h.Curriculum.Export, rolesRead},

		// Learning outcomes
		{http.MethodPost, "/cpl/:id_kurikulum", h.CPL.Create, rolesWrite},
		{http.MethodGet, "/cpl/:id_kurikulum/:id_cpl", h.CPL.Get, rolesRead},
		{http.MethodPatch, "/cpl/:id_kurikulum/:id_cpl", h.CPL.Update, rolesWrite},
		{http.MethodDelete, "/cpl/:id_kurikulum/:id_cpl", h.CPL.Delete, rolesWrite},

		// Outcome indicators
		{http.MethodPost, "/indikator/:id_kurikulum/:id_cpl", h.Indicator.Create, rolesWrite},
		{http.MethodPatch, "/indikator/:id_kurikulum/:id_cpl/:id_indikator", h.Indicator.Update, rolesWrite},
		{http.MethodDelete, "/indikator/:id_kurikulum/:id_cpl/:id_indikator", h.Indicator.Delete, rolesWrite},

		// Courses
		{http.MethodPost, "/matkul", h.Course.Create, rolesWrite},
		{http.MethodGet, "/matkul", h.Course.List, rolesRead},
		{http.MethodGet, "/matkul/:id_matkul", h.Course.Get, rolesRead},
		{http.MethodPatch, "/matkul/:id_matkul", h.Course.Update, rolesWrite},
		{http.MethodDelete, "/matkul/:id_matkul", h.Course.Delete, rolesWrite},

		// Users
		{http.MethodGet, "/users", h.User.List, rolesWrite},
		{http.MethodGet, "/users/:user_id", h.User.Get, rolesWrite},
		{http.MethodPut, "/users/:user_id", h.User.Update, rolesWrite},
		{http.MethodDelete, "/users/:user_id", h.User.Delete, rolesWrite},

		// Cocktail catalogue pass-through
		{http.MethodGet, "/api/cocktails", h.Cocktail.Search, nil},
		{http.MethodGet, "/api/cocktails/by-letter/:letter", h.Cocktail.ByLetter, nil},
		{http.MethodGet, "/api/cocktails/:cocktail_id", h.Cocktail.Lookup, nil},
	}

	jwt := middleware.JWT(auth)
	for _, rt := range routes {
		if rt.roles == nil {
			r.Handle(rt.method, rt.path, rt.handler)
			continue
		}
		r.Handle(rt.method, rt.path, jwt, middleware.RequireRoles(rt.roles...), rt.handler)
	}
}
