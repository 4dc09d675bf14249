package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/selimd/admitflow/internal/app/controllers"
	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/middleware"
	"github.com/selimd/admitflow/internal/pkg/auth"
)

// Controllers bundles the HTTP controllers for route registration.
type Controllers struct {
	Auth       *controllers.AuthController
	Students   *controllers.StudentController
	Admissions *controllers.AdmissionController
	Documents  *controllers.DocumentController
	Loans      *controllers.LoanController
	Criteria   *controllers.CriteriaController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, jwtService *auth.JWTService) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", ctrl.Auth.Login)
	}

	// --- Public routes: reads and student-facing submissions ---
	students := v1.Group("/students")
	{
		students.POST("", ctrl.Students.Register)
		students.GET("", ctrl.Students.List)
		students.GET("/:id", ctrl.Students.GetByID)
		students.GET("/:id/communications", ctrl.Students.Communications)
	}

	admissions := v1.Group("/admissions")
	{
		admissions.POST("", ctrl.Admissions.Apply)
		admissions.GET("", ctrl.Admissions.List)
		admissions.GET("/capacity/:program", ctrl.Admissions.Capacity)
		admissions.GET("/:id", ctrl.Admissions.GetByID)
		admissions.GET("/:id/missing-documents", ctrl.Admissions.MissingDocuments)
	}

	documents := v1.Group("/documents")
	{
		documents.POST("", ctrl.Documents.Submit)
		documents.GET("", ctrl.Documents.List)
		documents.GET("/:id", ctrl.Documents.GetByID)
	}

	loans := v1.Group("/loans")
	{
		loans.POST("", ctrl.Loans.Apply)
		loans.GET("", ctrl.Loans.List)
		loans.GET("/:id", ctrl.Loans.GetByID)
	}

	criteria := v1.Group("/criteria")
	{
		criteria.GET("", ctrl.Criteria.List)
		criteria.GET("/program/:program", ctrl.Criteria.GetByProgram)
		criteria.GET("/:id", ctrl.Criteria.GetByID)
	}

	// --- Staff routes: mutations and pipeline operations ---
	staff := v1.Group("")
	staff.Use(middleware.AuthMiddleware(jwtService))

	staffStudents := staff.Group("/students")
	{
		staffStudents.PUT("/:id", ctrl.Students.Update)

		// Welcome messages come from counsellor staff; deletion is admin-only.
		studentsCounsellor := staffStudents.Group("")
		studentsCounsellor.Use(middleware.RequireRole(models.RoleCounsellor, models.RoleOfficer))
		{
			studentsCounsellor.POST("/:id/welcome", ctrl.Students.SendWelcome)
		}
		studentsAdmin := staffStudents.Group("")
		studentsAdmin.Use(middleware.RequireRole())
		{
			studentsAdmin.DELETE("/:id", ctrl.Students.Delete)
		}
	}

	staffAdmissions := staff.Group("/admissions")
	{
		staffAdmissions.PUT("/:id", ctrl.Admissions.Update)
		staffAdmissions.POST("/:id/withdraw", ctrl.Admissions.Withdraw)

		// Pipeline operations are reserved for admission officers.
		admissionsOfficer := staffAdmissions.Group("")
		admissionsOfficer.Use(middleware.RequireRole(models.RoleOfficer))
		{
			admissionsOfficer.POST("/:id/verify", ctrl.Admissions.StartVerification)
			admissionsOfficer.POST("/:id/verify-documents", ctrl.Admissions.VerifyDocuments)
			admissionsOfficer.POST("/:id/review", ctrl.Admissions.Review)
			admissionsOfficer.POST("/:id/decision", ctrl.Admissions.Decide)
			admissionsOfficer.POST("/:id/enroll", ctrl.Admissions.Enroll)
			admissionsOfficer.POST("/:id/shortlist", ctrl.Admissions.Shortlist)
			admissionsOfficer.POST("/shortlist/batch", ctrl.Admissions.BatchShortlist)
		}

		admissionsCounsellor := staffAdmissions.Group("")
		admissionsCounsellor.Use(middleware.RequireRole(models.RoleCounsellor, models.RoleOfficer))
		{
			admissionsCounsellor.POST("/:id/request-documents", ctrl.Admissions.RequestDocuments)
			admissionsCounsellor.POST("/:id/letter", ctrl.Admissions.SendLetter)
			admissionsCounsellor.POST("/:id/notify", ctrl.Admissions.NotifyStatus)
		}

		admissionsAdmin := staffAdmissions.Group("")
		admissionsAdmin.Use(middleware.RequireRole())
		{
			admissionsAdmin.DELETE("/:id", ctrl.Admissions.Delete)
		}
	}

	staffDocuments := staff.Group("/documents")
	{
		staffDocuments.DELETE("/:id", ctrl.Documents.Delete)

		documentsOfficer := staffDocuments.Group("")
		documentsOfficer.Use(middleware.RequireRole(models.RoleOfficer))
		{
			documentsOfficer.POST("/:id/verify", ctrl.Documents.Verify)
		}
	}

	staffLoans := staff.Group("/loans")
	{
		staffLoans.PUT("/:id", ctrl.Loans.Update)
		staffLoans.DELETE("/:id", ctrl.Loans.Delete)

		loansOfficer := staffLoans.Group("")
		loansOfficer.Use(middleware.RequireRole(models.RoleOfficer))
		{
			loansOfficer.POST("/:id/evaluate", ctrl.Loans.Evaluate)
		}
	}

	staffCriteria := staff.Group("/criteria")
	staffCriteria.Use(middleware.RequireRole())
	{
		staffCriteria.POST("", ctrl.Criteria.Create)
		staffCriteria.PUT("/:id", ctrl.Criteria.Update)
		staffCriteria.DELETE("/:id", ctrl.Criteria.Delete)
	}
}
