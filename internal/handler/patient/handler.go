package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carelog/clinic-api/internal/handler"
	"github.com/carelog/clinic-api/internal/model"
	"github.com/carelog/clinic-api/internal/service/patient"
	"github.com/carelog/clinic-api/pkg/apperror"
)

type Handler struct {
	svc patient.PatientService
}

func NewHandler(svc patient.PatientService) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the patient CRUD surface. The paths keep the
// form-style layout of the original UI.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.GET("", h.List)
		patients.GET("/add", h.AddForm)
		patients.POST("/add", h.Create)
		patients.GET("/:id/edit", h.EditForm)
		patients.POST("/:id/edit", h.Update)
		patients.POST("/:id/delete", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	patients, err := h.svc.ListPatients(c.Request.Context())
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"patients": patients,
	}))
}

// AddForm returns what a form renderer needs for a blank patient form.
func (h *Handler) AddForm(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"title":          "Add Patient",
		"gender_choices": model.GenderChoices,
	}))
}

func (h *Handler) Create(c *gin.Context) {
	var req model.PatientRequest
	if err := c.ShouldBind(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	created, err := h.svc.CreatePatient(c.Request.Context(), &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewFlashResponse("Patient added successfully!", created))
}

// EditForm returns the current record to prefill the edit form.
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetPatient(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"title":          "Edit Patient",
		"patient":        p,
		"gender_choices": model.GenderChoices,
	}))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.PatientRequest
	if err := c.ShouldBind(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	updated, err := h.svc.UpdatePatient(c.Request.Context(), id, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewFlashResponse("Patient updated successfully!", updated))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.DeletePatient(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewFlashResponse("Patient deleted successfully!", nil))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.WriteError(c, apperror.NotFound("patient", err))
		return uuid.Nil, false
	}
	return id, true
}
