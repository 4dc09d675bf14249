package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/selimd/admitflow/internal/app/models/dto"
	"github.com/selimd/admitflow/internal/app/services"
	"github.com/selimd/admitflow/internal/middleware"
	"github.com/selimd/admitflow/internal/pkg/helpers"
)

// StudentController handles student registration and profile endpoints
type StudentController struct {
	studentService *services.StudentService
	counsellor     *services.CounsellorService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, counsellor *services.CounsellorService) *StudentController {
	return &StudentController{
		studentService: studentService,
		counsellor:     counsellor,
	}
}

// Register creates a new student profile
// @Summary Register a student
// @Description Creates a new student profile
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /students [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student, err := c.studentService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student, "Student registered"))
}

// GetByID retrieves a student profile
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	student, err := c.studentService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, ""))
}

// List retrieves students with optional filters
// @Summary List students
// @Tags students
// @Produce json
// @Param email query string false "Filter by email"
// @Param min_gpa query number false "Minimum GPA"
// @Param max_gpa query number false "Maximum GPA"
// @Param skip query int false "Items to skip"
// @Param limit query int false "Maximum items to return"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	limit, offset := helpers.ParseListParams(ctx)

	var minGPA, maxGPA *float64
	if raw := ctx.Query("min_gpa"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			minGPA = &v
		}
	}
	if raw := ctx.Query("max_gpa"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			maxGPA = &v
		}
	}

	students, err := c.studentService.List(ctx, ctx.Query("email"), minGPA, maxGPA, limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students, ""))
}

// Update applies a partial profile update
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student, err := c.studentService.Update(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student updated"))
}

// Delete removes a student profile
// @Summary Delete a student
// @Description Removes a student profile. Blocked while admission applications reference the student.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student has admission applications"
// @Router /students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Student deleted"}, ""))
}

// SendWelcome sends a counsellor welcome message
// @Summary Send welcome message
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.WelcomeRequest false "Sender"
// @Success 200 {object} dto.APIResponse{data=models.Communication}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 502 {object} dto.ErrorResponse "Decision oracle unavailable"
// @Router /students/{id}/welcome [post]
func (c *StudentController) SendWelcome(ctx *gin.Context) {
	var req dto.WelcomeRequest
	_ = ctx.ShouldBindJSON(&req)

	comm, err := c.studentService.SendWelcome(ctx, ctx.Param("id"), req.SentBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(comm, "Welcome message sent"))
}

// Communications lists a student's communication history
// @Summary List student communications
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Param skip query int false "Items to skip"
// @Param limit query int false "Maximum items to return"
// @Success 200 {object} dto.APIResponse{data=[]models.Communication}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/communications [get]
func (c *StudentController) Communications(ctx *gin.Context) {
	limit, offset := helpers.ParseListParams(ctx)

	comms, err := c.counsellor.History(ctx, ctx.Param("id"), limit, offset)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(comms, ""))
}
