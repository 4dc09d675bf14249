package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/selimd/admitflow/internal/app/models"
	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/repositories"
	"github.com/selimd/admitflow/internal/app/services"
	"github.com/selimd/admitflow/internal/middleware"
	"github.com/selimd/admitflow/internal/pkg/helpers"
)

// LoanController handles financial aid application endpoints
type LoanController struct {
	loanService *services.LoanService
}

// NewLoanController creates a new LoanController
func NewLoanController(loanService *services.LoanService) *LoanController {
	return &LoanController{loanService: loanService}
}

// Apply creates a new loan application
// @Summary Create a loan application
// @Tags loans
// @Accept json
// @Produce json
// @Param request body dto.CreateLoanRequest true "Loan application details"
// @Success 201 {object} dto.APIResponse{data=models.LoanApplication} "Loan application created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or application not found"
// @Router /loans [post]
func (c *LoanController) Apply(ctx *gin.Context) {
	var req dto.CreateLoanRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	loan, err := c.loanService.Apply(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(loan, "Loan application created"))
}

// GetByID retrieves a loan application
// @Summary Get loan by ID
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.APIResponse{data=models.LoanApplication}
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Router /loans/{id} [get]
func (c *LoanController) GetByID(ctx *gin.Context) {
	loan, err := c.loanService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(loan, ""))
}

// List retrieves loan applications with optional filters
// @Summary List loan applications
// @Tags loans
// @Produce json
// @Param student_id query string false "Filter by student"
// @Param admission_id query string false "Filter by application"
// @Param status query string false "Filter by status"
// @Param min_amount query number false "Minimum amount"
// @Param max_amount query number false "Maximum amount"
// @Param skip query int false "Items to skip"
// @Param limit query int false "Maximum items to return"
// @Success 200 {object} dto.APIResponse{data=[]models.LoanApplication}
// @Router /loans [get]
func (c *LoanController) List(ctx *gin.Context) {
	limit, offset := helpers.ParseListParams(ctx)

	filter := repositories.LoanFilter{
		StudentID:   ctx.Query("student_id"),
		AdmissionID: ctx.Query("admission_id"),
		Status:      models.LoanStatus(ctx.Query("status")),
	}
	if raw := ctx.Query("min_amount"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinAmount = &v
		}
	}
	if raw := ctx.Query("max_amount"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxAmount = &v
		}
	}

	loans, err := c.loanService.List(ctx, filter, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(loans, ""))
}

// Update applies a partial update to a loan application
// @Summary Update a loan application
// @Tags loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Param request body dto.UpdateLoanRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.LoanApplication}
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Router /loans/{id} [put]
func (c *LoanController) Update(ctx *gin.Context) {
	var req dto.UpdateLoanRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	loan, err := c.loanService.Update(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(loan, "Loan application updated"))
}

// Delete removes a loan application
// @Summary Delete a loan application
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Router /loans/{id} [delete]
func (c *LoanController) Delete(ctx *gin.Context) {
	if err := c.loanService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Loan application deleted"}, ""))
}

// Evaluate scores a loan application
// @Summary Evaluate loan eligibility
// @Description Scores the application deterministically and generates matching loan products.
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.APIResponse{data=dto.LoanEvaluationResponse}
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Router /loans/{id}/evaluate [post]
func (c *LoanController) Evaluate(ctx *gin.Context) {
	resp, err := c.loanService.Evaluate(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Loan evaluated"))
}
