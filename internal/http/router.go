package httpserver

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"company_crud/internal/audit"
	"company_crud/internal/hierarchy"
	"company_crud/internal/http/handlers"
)

func NewRouter(db *gorm.DB) *gin.Engine {
	svc := hierarchy.New(db)
	rec := audit.NewRecorder(db)

	r := gin.New()
	r.Use(requestID(), requestLogger(), gin.Recovery())

	r.GET("/healthz", handlers.Health(db))

	// Companies
	companies := r.Group("/companies")
	{
		companies.GET("", handlers.ListCompanies(svc.Companies))
		companies.POST("", handlers.CreateCompany(svc.Companies, rec))
		companies.GET("/:id", handlers.GetCompany(svc.Companies))
		companies.PUT("/:id", handlers.UpdateCompany(svc.Companies, rec))
		companies.DELETE("/:id", handlers.DeleteCompany(svc.Companies, rec))
		companies.GET("/:id/departments", handlers.ListDepartments(svc.Departments, "id"))
		companies.POST("/:id/departments", handlers.CreateDepartment(svc.Departments, rec, "id"))
	}

	// Departments
	departments := r.Group("/departments")
	{
		departments.GET("/company/:companyId", handlers.ListDepartments(svc.Departments, "companyId"))
		departments.POST("/company/:companyId", handlers.CreateDepartment(svc.Departments, rec, "companyId"))
		departments.GET("/:id", handlers.GetDepartment(svc.Departments))
		departments.PUT("/:id", handlers.UpdateDepartment(svc.Departments, rec))
		departments.DELETE("/:id", handlers.DeleteDepartment(svc.Departments, rec))
		departments.GET("/:id/teams", handlers.ListTeams(svc.Teams, "id"))
		departments.POST("/:id/teams", handlers.CreateTeam(svc.Teams, rec, "id"))
	}

	// Teams
	teams := r.Group("/teams")
	{
		teams.GET("/department/:departmentId", handlers.ListTeams(svc.Teams, "departmentId"))
		teams.POST("/department/:departmentId", handlers.CreateTeam(svc.Teams, rec, "departmentId"))
		teams.GET("/:id", handlers.GetTeam(svc.Teams))
		teams.PUT("/:id", handlers.UpdateTeam(svc.Teams, rec))
		teams.DELETE("/:id", handlers.DeleteTeam(svc.Teams, rec))
		teams.POST("/:id/projects", handlers.CreateProject(svc.Projects, rec, "id"))
	}

	// Projects
	projects := r.Group("/projects")
	{
		projects.POST("/team/:teamId", handlers.CreateProject(svc.Projects, rec, "teamId"))
		projects.GET("/:id", handlers.GetProject(svc.Projects))
		projects.PUT("/:id", handlers.UpdateProject(svc.Projects, rec))
		projects.DELETE("/:id", handlers.DeleteProject(svc.Projects, rec))
	}

	// Managers
	managers := r.Group("/managers")
	{
		managers.POST("", handlers.CreateManager(svc.Managers, rec))
		managers.GET("/:id", handlers.GetManager(svc.Managers))
		managers.PUT("/:id", handlers.UpdateManager(svc.Managers, rec))
		managers.DELETE("/:id", handlers.DeleteManager(svc.Managers, rec))
	}

	// Audit trail
	r.GET("/audit", handlers.ListAudit(rec))

	return r
}
