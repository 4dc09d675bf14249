package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/services"
	"github.com/selimd/admitflow/internal/middleware"
	"github.com/selimd/admitflow/internal/pkg/helpers"
)

// CriteriaController handles eligibility criteria endpoints
type CriteriaController struct {
	criteriaService *services.CriteriaService
}

// NewCriteriaController creates a new CriteriaController
func NewCriteriaController(criteriaService *services.CriteriaService) *CriteriaController {
	return &CriteriaController{criteriaService: criteriaService}
}

// Create stores eligibility criteria for a program
// @Summary Create eligibility criteria
// @Tags criteria
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCriteriaRequest true "Criteria details"
// @Success 201 {object} dto.APIResponse{data=models.EligibilityCriteria} "Criteria created"
// @Failure 409 {object} dto.ErrorResponse "Criteria already exist for program"
// @Router /criteria [post]
func (c *CriteriaController) Create(ctx *gin.Context) {
	var req dto.CreateCriteriaRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	criteria, err := c.criteriaService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(criteria, "Criteria created"))
}

// GetByID retrieves a criteria record
// @Summary Get criteria by ID
// @Tags criteria
// @Produce json
// @Param id path string true "Criteria ID"
// @Success 200 {object} dto.APIResponse{data=models.EligibilityCriteria}
// @Failure 404 {object} dto.ErrorResponse "Criteria not found"
// @Router /criteria/{id} [get]
func (c *CriteriaController) GetByID(ctx *gin.Context) {
	criteria, err := c.criteriaService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(criteria, ""))
}

// GetByProgram retrieves the criteria for a program
// @Summary Get criteria by program
// @Tags criteria
// @Produce json
// @Param program path string true "Program name"
// @Success 200 {object} dto.APIResponse{data=models.EligibilityCriteria}
// @Failure 404 {object} dto.ErrorResponse "Criteria not found"
// @Router /criteria/program/{program} [get]
func (c *CriteriaController) GetByProgram(ctx *gin.Context) {
	criteria, err := c.criteriaService.GetByProgram(ctx, ctx.Param("program"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(criteria, ""))
}

// List retrieves all criteria records
// @Summary List eligibility criteria
// @Tags criteria
// @Produce json
// @Param skip query int false "Items to skip"
// @Param limit query int false "Maximum items to return"
// @Success 200 {object} dto.APIResponse{data=[]models.EligibilityCriteria}
// @Router /criteria [get]
func (c *CriteriaController) List(ctx *gin.Context) {
	limit, offset := helpers.ParseListParams(ctx)

	criteria, err := c.criteriaService.List(ctx, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(criteria, ""))
}

// Update applies a partial update to a criteria record
// @Summary Update eligibility criteria
// @Tags criteria
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Criteria ID"
// @Param request body dto.UpdateCriteriaRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.EligibilityCriteria}
// @Failure 404 {object} dto.ErrorResponse "Criteria not found"
// @Router /criteria/{id} [put]
func (c *CriteriaController) Update(ctx *gin.Context) {
	var req dto.UpdateCriteriaRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	criteria, err := c.criteriaService.Update(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(criteria, "Criteria updated"))
}

// Delete removes a criteria record
// @Summary Delete eligibility criteria
// @Tags criteria
// @Produce json
// @Security BearerAuth
// @Param id path string true "Criteria ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Criteria not found"
// @Router /criteria/{id} [delete]
func (c *CriteriaController) Delete(ctx *gin.Context) {
	if err := c.criteriaService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Criteria deleted"}, ""))
}
