package visit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carelog/clinic-api/internal/handler"
	"github.com/carelog/clinic-api/internal/model"
	"github.com/carelog/clinic-api/internal/service/visit"
	"github.com/carelog/clinic-api/pkg/apperror"
)

type Handler struct {
	svc visit.VisitService
}

func NewHandler(svc visit.VisitService) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the visit surface. Listing and adding hang off
// the owning patient; editing and deleting address the visit directly.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/patients/:id/visits", h.ListForPatient)
	r.GET("/patients/:id/visits/add", h.AddForm)
	r.POST("/patients/:id/visits/add", h.Create)

	visits := r.Group("/visits")
	{
		visits.GET("/:id/edit", h.EditForm)
		visits.POST("/:id/edit", h.Update)
		visits.POST("/:id/delete", h.Delete)
	}
}

func (h *Handler) ListForPatient(c *gin.Context) {
	patientID, ok := parseID(c, "patient")
	if !ok {
		return
	}

	patient, visits, err := h.svc.ListVisits(c.Request.Context(), patientID)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"patient": patient,
		"visits":  visits,
	}))
}

// AddForm confirms the owning patient exists and returns it for the
// form header.
func (h *Handler) AddForm(c *gin.Context) {
	patientID, ok := parseID(c, "patient")
	if !ok {
		return
	}

	patient, _, err := h.svc.ListVisits(c.Request.Context(), patientID)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"title":   "Add Visit",
		"patient": patient,
	}))
}

func (h *Handler) Create(c *gin.Context) {
	patientID, ok := parseID(c, "patient")
	if !ok {
		return
	}

	var req model.VisitRequest
	if err := c.ShouldBind(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	created, err := h.svc.CreateVisit(c.Request.Context(), patientID, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewFlashResponse("Visit added successfully!", created))
}

func (h *Handler) EditForm(c *gin.Context) {
	id, ok := parseID(c, "visit")
	if !ok {
		return
	}

	v, err := h.svc.GetVisit(c.Request.Context(), id)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"title": "Edit Visit",
		"visit": v,
	}))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c, "visit")
	if !ok {
		return
	}

	var req model.VisitRequest
	if err := c.ShouldBind(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	updated, err := h.svc.UpdateVisit(c.Request.Context(), id, &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewFlashResponse("Visit updated successfully!", updated))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c, "visit")
	if !ok {
		return
	}

	if err := h.svc.DeleteVisit(c.Request.Context(), id); err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewFlashResponse("Visit deleted successfully!", nil))
}

func parseID(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handler.WriteError(c, apperror.NotFound(resource, err))
		return uuid.Nil, false
	}
	return id, true
}
