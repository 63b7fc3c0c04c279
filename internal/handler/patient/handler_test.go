package patient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelog/clinic-api/internal/model"
	"github.com/carelog/clinic-api/pkg/apperror"
)

type stubService struct {
	patients  []*model.Patient
	created   *model.PatientRequest
	createErr error
	getErr    error
	deleteErr error
}

func (s *stubService) ListPatients(context.Context) ([]*model.Patient, error) {
	return s.patients, nil
}

func (s *stubService) GetPatient(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &model.Patient{Base: model.Base{ID: id}, Name: "Jane Doe"}, nil
}

func (s *stubService) CreatePatient(_ context.Context, req *model.PatientRequest) (*model.Patient, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = req
	return &model.Patient{Base: model.Base{ID: uuid.New()}, Name: req.Name}, nil
}

func (s *stubService) UpdatePatient(_ context.Context, id uuid.UUID, req *model.PatientRequest) (*model.Patient, error) {
	return &model.Patient{Base: model.Base{ID: id}, Name: req.Name}, nil
}

func (s *stubService) DeletePatient(context.Context, uuid.UUID) error {
	return s.deleteErr
}

func (s *stubService) CountPatients(context.Context) (int, error) {
	return len(s.patients), nil
}

func newTestEngine(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group(""))
	return engine
}

func TestListPatients(t *testing.T) {
	engine := newTestEngine(&stubService{patients: []*model.Patient{
		{Base: model.Base{ID: uuid.New()}, Name: "Amy Brown"},
		{Base: model.Base{ID: uuid.New()}, Name: "Zoe Adams"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Amy Brown")
	assert.Contains(t, w.Body.String(), "Zoe Adams")
}

func TestAddFormListsGenderChoices(t *testing.T) {
	engine := newTestEngine(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/patients/add", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	for _, choice := range model.GenderChoices {
		assert.Contains(t, w.Body.String(), choice)
	}
}

func TestCreatePatient(t *testing.T) {
	svc := &stubService{}
	engine := newTestEngine(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/patients/add",
		strings.NewReader(`{"name":"Jane Doe","age":34,"gender":"Female"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Patient added successfully!")
	require.NotNil(t, svc.created)
	assert.Equal(t, "Jane Doe", svc.created.Name)
}

func TestCreatePatientValidationError(t *testing.T) {
	engine := newTestEngine(&stubService{
		createErr: apperror.Validation(apperror.FieldError{Field: "name", Message: "name is required"}),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/patients/add",
		strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"name"`)
}

func TestCreatePatientBindingRejectsBadGender(t *testing.T) {
	engine := newTestEngine(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/patients/add",
		strings.NewReader(`{"name":"Jane Doe","gender":"Robot"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditFormReturnsPatient(t *testing.T) {
	engine := newTestEngine(&stubService{})
	id := uuid.New()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/patients/"+id.String()+"/edit", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
}

func TestEditFormNotFound(t *testing.T) {
	engine := newTestEngine(&stubService{getErr: apperror.NotFound("patient", nil)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/patients/"+uuid.New().String()+"/edit", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePatientNotFound(t *testing.T) {
	engine := newTestEngine(&stubService{deleteErr: apperror.NotFound("patient", nil)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/patients/"+uuid.New().String()+"/delete", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePatientBadID(t *testing.T) {
	engine := newTestEngine(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/patients/not-a-uuid/delete", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
