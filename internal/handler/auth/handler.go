package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carelog/clinic-api/internal/handler"
	"github.com/carelog/clinic-api/internal/middleware"
	"github.com/carelog/clinic-api/internal/model"
	"github.com/carelog/clinic-api/internal/service/auth"
	"github.com/carelog/clinic-api/internal/service/patient"
	"github.com/carelog/clinic-api/pkg/apperror"
)

// CookieConfig controls the session cookie the handler issues.
type CookieConfig struct {
	Name   string
	MaxAge int
}

type Handler struct {
	svc        auth.AuthService
	patientSvc patient.PatientService
	cookie     CookieConfig
}

func NewHandler(svc auth.AuthService, patientSvc patient.PatientService, cookie CookieConfig) *Handler {
	return &Handler{
		svc:        svc,
		patientSvc: patientSvc,
		cookie:     cookie,
	}
}

// RegisterPublicRoutes mounts the routes reachable without a session.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.Register)
}

// RegisterProtectedRoutes mounts the routes behind the auth gate.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/logout", h.Logout)
	r.GET("/home", h.Home)
}

func (h *Handler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"fields": []string{"email", "password"},
	}))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	sessionID, user, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	h.setSessionCookie(c, sessionID)
	c.JSON(http.StatusOK, handler.NewFlashResponse("Logged in successfully!", gin.H{
		"email": user.Email,
	}))
}

func (h *Handler) RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"fields": []string{"email", "password"},
	}))
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		handler.BindError(c, err)
		return
	}

	user, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewFlashResponse("User registered successfully!", gin.H{
		"id":    user.ID,
		"email": user.Email,
	}))
}

// Logout ends the session. Safe to call with a stale cookie.
func (h *Handler) Logout(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionID)
	if err := h.svc.Logout(c.Request.Context(), sessionID); err != nil {
		handler.WriteError(c, err)
		return
	}

	h.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

// Home is the landing payload after login: who is signed in plus a
// count of the records they manage.
func (h *Handler) Home(c *gin.Context) {
	userID, ok := c.Get(middleware.ContextUserID)
	if !ok {
		handler.WriteError(c, apperror.Unauthenticated())
		return
	}

	user, err := h.svc.CurrentUser(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	count, err := h.patientSvc.CountPatients(c.Request.Context())
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"email":         user.Email,
		"patient_count": count,
	}))
}

func (h *Handler) setSessionCookie(c *gin.Context, sessionID string) {
	c.SetCookie(h.cookie.Name, sessionID, h.cookie.MaxAge, "/", "", false, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.cookie.Name, "", -1, "/", "", false, true)
}
