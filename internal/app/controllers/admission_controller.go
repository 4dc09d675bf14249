package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/app/services"
	"github.com/selimd/admitflow/internal/middleware"
	"github.com/selimd/admitflow/internal/pkg/helpers"
)

// AdmissionController handles admission application lifecycle endpoints
type AdmissionController struct {
	admissionService    *services.AdmissionService
	verificationService *services.VerificationService
	shortlistingService *services.ShortlistingService
}

// NewAdmissionController creates a new AdmissionController
func NewAdmissionController(
	admissionService *services.AdmissionService,
	verificationService *services.VerificationService,
	shortlistingService *services.ShortlistingService,
) *AdmissionController {
	return &AdmissionController{
		admissionService:    admissionService,
		verificationService: verificationService,
		shortlistingService: shortlistingService,
	}
}

// Apply creates a new admission application
// @Summary Create an admission application
// @Description Creates a new application for a student and program. One active application per student and program.
// @Tags admissions
// @Accept json
// @Produce json
// @Param request body dto.CreateAdmissionRequest true "Application details"
// @Success 201 {object} dto.APIResponse{data=models.Admission} "Application created"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Application already exists"
// @Router /admissions [post]
func (c *AdmissionController) Apply(ctx *gin.Context) {
	var req dto.CreateAdmissionRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	admission, err := c.admissionService.Apply(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(admission, "Application created"))
}

// GetByID retrieves an admission application
// @Summary Get application by ID
// @Tags admissions
// @Produce json
// @Param id path string true "Admission ID"
// @Success 200 {object} dto.APIResponse{data=models.Admission}
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /admissions/{id} [get]
func (c *AdmissionController) GetByID(ctx *gin.Context) {
	admission, err := c.admissionService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admission, ""))
}

// List retrieves applications with optional filters
// @Summary List applications
// @Tags admissions
// @Produce json
// @Param student_id query string false "Filter by student"
// @Param program query string false "Filter by program"
// @Param status query string false "Filter by status"
// @Param skip query int false "Items to skip"
// @Param limit query int false "Maximum items to return"
// @Success 200 {object} dto.APIResponse{data=[]models.Admission}
// @Router /admissions [get]
func (c *AdmissionController) List(ctx *gin.Context) {
	limit, offset := helpers.ParseListParams(ctx)

	filter := repositories.AdmissionFilter{
		StudentID: ctx.Query("student_id"),
		Program:   ctx.Query("program"),
		Status:    models.AdmissionStatus(ctx.Query("status")),
	}
	admissions, err := c.admissionService.List(ctx, filter, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admissions, ""))
}

// Update applies a partial update to an application
// @Summary Update an application
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission ID"
// @Param request body dto.UpdateAdmissionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Admission}
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid state"
// @Router /admissions/{id} [put]
func (c *AdmissionController) Update(ctx *gin.Context) {
	var req dto.UpdateAdmissionRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	admission, err := c.admissionService.Update(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admission, "Application updated"))
}

// Delete removes an application
// @Summary Delete an application
// @Tags admissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /admissions/{id} [delete]
func (c *AdmissionController) Delete(ctx *gin.Context) {
	if err := c.admissionService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Application deleted"}, ""))
}

// StartVerification moves an application into document verification
// @Summary Start document verification
// @Tags admissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission ID"
// @Success 200 {object} dto.APIResponse{data=models.Admission}
// @Failure 409 {object} dto.ErrorResponse "Invalid state"
// @Router /admissions/{id}/verify [post]
func (c *AdmissionController) StartVerification(ctx *gin.Context) {
	admission, err := c.admissionService.StartVerification(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admission, "Verification started"))
}

// VerifyDocuments verifies every submitted document of an application
// @Summary Verify all submitted documents
// @Description Runs document verification for every submitted document. One document's failure never aborts the rest.
// @Tags admissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission ID"
// @Success 200 {object} dto.APIResponse{data=[]services.VerificationItem}
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /admissions/{id}/verify-documents [post]
func (c *AdmissionController) VerifyDocuments(ctx *gin.Context) {
	items, err := c.verificationService.VerifyAll(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(items, "Documents verified"))
}

// MissingDocuments lists required document types not yet submitted
// @Summary List missing documents
// @Tags admissions
// @Produce json
// @Param id path string true "Admission ID"
// @Success 200 {object} dto.APIResponse{data=dto.MissingDocumentsResponse}
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /admissions/{id}/missing-documents [get]
func (c *AdmissionController) MissingDocuments(ctx *gin.Context) {
	resp, err := c.verificationService.MissingDocuments(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// Review records the admission officer's review
// @Summary Review an application
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission ID"
// @Param request body dto.ReviewRequest false "Review notes"
// @Success 200 {object} dto.APIResponse{data=models.Admission}
// @Failure 409 {object} dto.ErrorResponse "Invalid state"
// @Failure 502 {object} dto.ErrorResponse "Decision oracle unavailable"
// @Router /admissions/{id}/review [post]
func (c *AdmissionController) Review(ctx *gin.Context) {
	var req dto.ReviewRequest
	_ = ctx.ShouldBindJSON(&req)

	admission, err := c.admissionService.Review(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admission, "Application reviewed"))
}

// Decide makes the final admission decision
// @Summary Make the admission decision
// @Description Decides a shortlisted application. The resulting status is accepted or rejected.
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission ID"
// @Param request body dto.DecisionRequest false "Decision notes"
// @Success 200 {object} dto.APIResponse{data=models.Admission}
// @Failure 409 {object} dto.ErrorResponse "Invalid state"
// @Failure 502 {object} dto.ErrorResponse "Decision oracle unavailable"
// @Router /admissions/{id}/decision [post]
func (c *AdmissionController) Decide(ctx *gin.Context) {
	var req dto.DecisionRequest
	_ = ctx.ShouldBindJSON(&req)

	admission, err := c.admissionService.Decide(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admission, "Decision recorded"))
}

// Withdraw retires an application
// @Summary Withdraw an application
// @Tags admissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission ID"
// @Success 200 {object} dto.APIResponse{data=models.Admission}
// @Failure 409 {object} dto.ErrorResponse "Invalid state"
// @Router /admissions/{id}/withdraw [post]
func (c *AdmissionController) Withdraw(ctx *gin.Context) {
	admission, err := c.admissionService.Withdraw(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admission, "Application withdrawn"))
}

// Enroll finalizes an accepted application
// @Summary Enroll an accepted application
// @Tags admissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission ID"
// @Success 200 {object} dto.APIResponse{data=models.Admission}
// @Failure 409 {object} dto.ErrorResponse "Invalid state"
// @Router /admissions/{id}/enroll [post]
func (c *AdmissionController) Enroll(ctx *gin.Context) {
	admission, err := c.admissionService.Enroll(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admission, "Student enrolled"))
}

// Shortlist evaluates one application
// @Summary Evaluate an application for shortlisting
// @Description Scores a shortlisted application. Idempotent unless reevaluate is set.
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission ID"
// @Param request body dto.ShortlistRequest false "Evaluation options"
// @Success 200 {object} dto.APIResponse{data=models.Admission}
// @Failure 409 {object} dto.ErrorResponse "Invalid state"
// @Failure 502 {object} dto.ErrorResponse "Decision oracle unavailable"
// @Router /admissions/{id}/shortlist [post]
func (c *AdmissionController) Shortlist(ctx *gin.Context) {
	var req dto.ShortlistRequest
	_ = ctx.ShouldBindJSON(&req)

	admission, err := c.shortlistingService.Evaluate(ctx, ctx.Param("id"), req.Reevaluate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admission, "Application evaluated"))
}

// BatchShortlist evaluates every shortlisted application
// @Summary Batch shortlisting evaluation
// @Description Evaluates all shortlisted applications, optionally narrowed to one program. Per-item failures are reported in place.
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BatchShortlistRequest false "Sweep options"
// @Success 200 {object} dto.APIResponse{data=dto.BatchShortlistResponse}
// @Router /admissions/shortlist/batch [post]
func (c *AdmissionController) BatchShortlist(ctx *gin.Context) {
	var req dto.BatchShortlistRequest
	_ = ctx.ShouldBindJSON(&req)

	resp, err := c.shortlistingService.BatchEvaluate(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Batch evaluation finished"))
}

// Capacity reports a program's intake headroom
// @Summary Program capacity report
// @Tags admissions
// @Produce json
// @Param program path string true "Program name"
// @Success 200 {object} dto.APIResponse{data=dto.CapacityReport}
// @Router /admissions/capacity/{program} [get]
func (c *AdmissionController) Capacity(ctx *gin.Context) {
	report, err := c.shortlistingService.Capacity(ctx, ctx.Param("program"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report, ""))
}

// RequestDocuments asks the student to submit documents
// @Summary Request documents from the student
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission ID"
// @Param request body dto.RequestDocumentsRequest true "Document types to request"
// @Success 200 {object} dto.APIResponse{data=models.Communication}
// @Failure 409 {object} dto.ErrorResponse "Invalid state"
// @Failure 502 {object} dto.ErrorResponse "Decision oracle unavailable"
// @Router /admissions/{id}/request-documents [post]
func (c *AdmissionController) RequestDocuments(ctx *gin.Context) {
	var req dto.RequestDocumentsRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	comm, err := c.admissionService.RequestDocuments(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(comm, "Document request sent"))
}

// SendLetter sends the decision letter for an application
// @Summary Send decision letter
// @Description Sends the admission letter with fee slip for accepted applications, or the rejection letter for rejected ones.
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission ID"
// @Param request body dto.SendLetterRequest false "Sender"
// @Success 200 {object} dto.APIResponse{data=models.Communication}
// @Failure 409 {object} dto.ErrorResponse "Invalid state or letter already sent"
// @Failure 502 {object} dto.ErrorResponse "Decision oracle unavailable"
// @Router /admissions/{id}/letter [post]
func (c *AdmissionController) SendLetter(ctx *gin.Context) {
	var req dto.SendLetterRequest
	_ = ctx.ShouldBindJSON(&req)

	comm, err := c.admissionService.SendLetter(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(comm, "Letter sent"))
}

// NotifyStatus sends the student a status update
// @Summary Send status update
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admission ID"
// @Param request body dto.WelcomeRequest false "Sender"
// @Success 200 {object} dto.APIResponse{data=models.Communication}
// @Failure 502 {object} dto.ErrorResponse "Decision oracle unavailable"
// @Router /admissions/{id}/notify [post]
func (c *AdmissionController) NotifyStatus(ctx *gin.Context) {
	var req dto.WelcomeRequest
	_ = ctx.ShouldBindJSON(&req)

	comm, err := c.admissionService.NotifyStatus(ctx, ctx.Param("id"), req.SentBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(comm, "Status update sent"))
}
