package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/services"
	"github.com/selimd/admitflow/internal/middleware"
	"github.com/selimd/admitflow/internal/pkg/helpers"
)

// DocumentController handles document submission and verification endpoints
type DocumentController struct {
	documentService     *services.DocumentService
	verificationService *services.VerificationService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService *services.DocumentService, verificationService *services.VerificationService) *DocumentController {
	return &DocumentController{
		documentService:     documentService,
		verificationService: verificationService,
	}
}

// Submit records a document for an application
// @Summary Submit a document
// @Description Submits a document for an application. Accepts an optional multipart file upload; metadata fields arrive as form values.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param student_id formData string true "Student ID"
// @Param admission_id formData string true "Admission ID"
// @Param document_type formData string true "Document type"
// @Param content formData string false "Inline text content"
// @Param file formData file false "Document file"
// @Success 201 {object} dto.APIResponse{data=models.Document} "Document submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /documents [post]
func (c *DocumentController) Submit(ctx *gin.Context) {
	var req dto.CreateDocumentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid document data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	// Missing file is fine: inline submissions carry text content instead.
	fileHeader, _ := ctx.FormFile("file")

	document, err := c.documentService.Submit(ctx, &req, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(document, "Document submitted"))
}

// GetByID retrieves a document
// @Summary Get document by ID
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.APIResponse{data=models.Document}
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [get]
func (c *DocumentController) GetByID(ctx *gin.Context) {
	document, err := c.documentService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(document, ""))
}

// List retrieves documents with optional filters
// @Summary List documents
// @Tags documents
// @Produce json
// @Param student_id query string false "Filter by student"
// @Param admission_id query string false "Filter by application"
// @Param document_type query string false "Filter by document type"
// @Param skip query int false "Items to skip"
// @Param limit query int false "Maximum items to return"
// @Success 200 {object} dto.APIResponse{data=[]models.Document}
// @Router /documents [get]
func (c *DocumentController) List(ctx *gin.Context) {
	limit, offset := helpers.ParseListParams(ctx)

	documents, err := c.documentService.List(ctx,
		ctx.Query("student_id"),
		ctx.Query("admission_id"),
		models.DocumentType(ctx.Query("document_type")),
		limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(documents, ""))
}

// Delete removes a document
// @Summary Delete a document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [delete]
func (c *DocumentController) Delete(ctx *gin.Context) {
	if err := c.documentService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Document deleted"}, ""))
}

// Verify runs verification on a single document
// @Summary Verify a document
// @Description Verifies one document and merges the outcome onto the owning application. When every required document type is verified the application advances to shortlisted.
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Param request body dto.VerifyDocumentRequest false "Verification notes"
// @Success 200 {object} dto.APIResponse{data=models.Document}
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid state"
// @Failure 502 {object} dto.ErrorResponse "Decision oracle unavailable"
// @Router /documents/{id}/verify [post]
func (c *DocumentController) Verify(ctx *gin.Context) {
	var req dto.VerifyDocumentRequest
	_ = ctx.ShouldBindJSON(&req)

	document, err := c.verificationService.VerifyDocument(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(document, "Document verified"))
}
