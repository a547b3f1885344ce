package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/univista/ums-api/internal/middleware"
	"github.com/univista/ums-api/internal/models"
	"github.com/univista/ums-api/internal/service"
	"github.com/univista/ums-api/pkg/response"
)

// Handlers bundles the route handlers and the services backing the shared
// middleware.
type Handlers struct {
	Auth                 *AuthHandler
	Users                *UserHandler
	AcademicSemesters    *AcademicSemesterHandler
	AcademicFaculties    *AcademicFacultyHandler
	AcademicDepartments  *AcademicDepartmentHandler
	ManagementDeparts    *ManagementDepartmentHandler
	Students             *StudentHandler
	Faculties            *FacultyHandler
	Admins               *AdminHandler
	AuthService          *service.AuthService
	Metrics              *service.MetricsService
}

// Register wires all API routes under the given prefix.
func (h *Handlers) Register(r *gin.Engine, prefix string) {
	r.NoRoute(response.NotFoundRoute)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(h.Metrics.Handler()))

	api := r.Group(prefix)

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh-token", h.Auth.RefreshToken)
		auth.POST("/change-password",
			middleware.JWT(h.AuthService),
			middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleFaculty, models.RoleStudent),
			h.Auth.ChangePassword)
	}

	authed := api.Group("")
	authed.Use(middleware.JWT(h.AuthService))

	adminOnly := middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin)
	anyRole := middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleFaculty, models.RoleStudent)
	staff := middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleFaculty)

	users := authed.Group("/users")
	{
		users.GET("", adminOnly, h.Users.List)
		users.GET("/:id", adminOnly, h.Users.Get)
		users.POST("/create-student", adminOnly, h.Users.CreateStudent)
		users.POST("/create-faculty", adminOnly, h.Users.CreateFaculty)
		users.POST("/create-admin", middleware.RequireRoles(models.RoleSuperAdmin), h.Users.CreateAdmin)
	}

	semesters := authed.Group("/academic-semesters")
	{
		semesters.GET("", anyRole, h.AcademicSemesters.List)
		semesters.GET("/:id", anyRole, h.AcademicSemesters.Get)
		semesters.POST("", adminOnly, h.AcademicSemesters.Create)
		semesters.PATCH("/:id", adminOnly, h.AcademicSemesters.Update)
		semesters.DELETE("/:id", adminOnly, h.AcademicSemesters.Delete)
	}

	academicFaculties := authed.Group("/academic-faculties")
	{
		academicFaculties.GET("", anyRole, h.AcademicFaculties.List)
		academicFaculties.GET("/:id", anyRole, h.AcademicFaculties.Get)
		academicFaculties.POST("", adminOnly, h.AcademicFaculties.Create)
		academicFaculties.PATCH("/:id", adminOnly, h.AcademicFaculties.Update)
		academicFaculties.DELETE("/:id", adminOnly, h.AcademicFaculties.Delete)
	}

	academicDepartments := authed.Group("/academic-departments")
	{
		academicDepartments.GET("", anyRole, h.AcademicDepartments.List)
		academicDepartments.GET("/:id", anyRole, h.AcademicDepartments.Get)
		academicDepartments.POST("", adminOnly, h.AcademicDepartments.Create)
		academicDepartments.PATCH("/:id", adminOnly, h.AcademicDepartments.Update)
		academicDepartments.DELETE("/:id", adminOnly, h.AcademicDepartments.Delete)
	}

	managementDepartments := authed.Group("/management-departments")
	{
		managementDepartments.GET("", adminOnly, h.ManagementDeparts.List)
		managementDepartments.GET("/:id", adminOnly, h.ManagementDeparts.Get)
		managementDepartments.POST("", adminOnly, h.ManagementDeparts.Create)
		managementDepartments.PATCH("/:id", adminOnly, h.ManagementDeparts.Update)
		managementDepartments.DELETE("/:id", adminOnly, h.ManagementDeparts.Delete)
	}

	students := authed.Group("/students")
	{
		students.GET("", staff, h.Students.List)
		students.GET("/export", adminOnly, h.Students.Export)
		students.GET("/:id", staff, h.Students.Get)
		students.PATCH("/:id", adminOnly, h.Students.Update)
		students.DELETE("/:id", adminOnly, h.Students.Delete)
	}

	faculties := authed.Group("/faculties")
	{
		faculties.GET("", adminOnly, h.Faculties.List)
		faculties.GET("/:id", adminOnly, h.Faculties.Get)
		faculties.PATCH("/:id", adminOnly, h.Faculties.Update)
		faculties.DELETE("/:id", adminOnly, h.Faculties.Delete)
	}

	admins := authed.Group("/admins")
	{
		admins.GET("", middleware.RequireRoles(models.RoleSuperAdmin), h.Admins.List)
		admins.GET("/:id", middleware.RequireRoles(models.RoleSuperAdmin), h.Admins.Get)
		admins.PATCH("/:id", middleware.RequireRoles(models.RoleSuperAdmin), h.Admins.Update)
		admins.DELETE("/:id", middleware.RequireRoles(models.RoleSuperAdmin), h.Admins.Delete)
	}
}
