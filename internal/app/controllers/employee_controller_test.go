package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acme/hr-directory/internal/app/models"
	"github.com/acme/hr-directory/internal/app/models/dto"
	"github.com/acme/hr-directory/internal/pkg/apperrors"
)

type stubEmployeeService struct {
	listFn   func(ctx context.Context) ([]models.Employee, error)
	createFn func(ctx context.Context, input dto.EmployeeRequest) (models.Employee, error)
	updateFn func(ctx context.Context, id int64, input dto.EmployeeRequest) (models.Employee, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s stubEmployeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	if s.listFn == nil {
		return []models.Employee{}, nil
	}
	return s.listFn(ctx)
}

func (s stubEmployeeService) CreateEmployee(ctx context.Context, input dto.EmployeeRequest) (models.Employee, error) {
	if s.createFn == nil {
		return models.Employee{}, nil
	}
	return s.createFn(ctx, input)
}

func (s stubEmployeeService) UpdateEmployee(ctx context.Context, id int64, input dto.EmployeeRequest) (models.Employee, error) {
	if s.updateFn == nil {
		return models.Employee{}, nil
	}
	return s.updateFn(ctx, id, input)
}

func (s stubEmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func newEmployeeRouter(svc stubEmployeeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := NewEmployeeController(svc)
	router.GET("/api/employees", controller.ListEmployees)
	router.POST("/api/employees", controller.CreateEmployee)
	router.PUT("/api/employees/:id", controller.UpdateEmployee)
	router.DELETE("/api/employees/:id", controller.DeleteEmployee)

	return router
}

func int64Ptr(v int64) *int64 { return &v }

func TestListEmployees(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	router := newEmployeeRouter(stubEmployeeService{
		listFn: func(ctx context.Context) ([]models.Employee, error) {
			return []models.Employee{
				{ID: 1, Name: "John Doe", DepartmentID: int64Ptr(1), CreatedAt: now, UpdatedAt: now},
				{ID: 2, Name: "Jane Smith", DepartmentID: int64Ptr(2), CreatedAt: now, UpdatedAt: now},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var payload []map[string]interface{}
	if err := json.NewDecoder(recorder.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}

	if len(payload) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(payload))
	}

	if payload[0]["name"] != "John Doe" {
		t.Fatalf("expected first employee John Doe, got %v", payload[0]["name"])
	}
}

func TestListEmployeesEmpty(t *testing.T) {
	router := newEmployeeRouter(stubEmployeeService{
		listFn: func(ctx context.Context) ([]models.Employee, error) {
			return []models.Employee{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	// The contract requires an empty JSON array, not null.
	if body := bytes.TrimSpace(recorder.Body.Bytes()); string(body) != "[]" {
		t.Fatalf("expected empty array body, got %s", body)
	}
}

func TestListEmployeesStoreFailure(t *testing.T) {
	router := newEmployeeRouter(stubEmployeeService{
		listFn: func(ctx context.Context) ([]models.Employee, error) {
			return nil, errors.New("connection refused")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, recorder.Code)
	}

	var payload map[string]string
	if err := json.NewDecoder(recorder.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}

	if payload["error"] == "" {
		t.Fatal("expected an error message in the payload")
	}

	if payload["error"] == "connection refused" {
		t.Fatal("diagnostic detail must not leak to the client")
	}
}

func TestCreateEmployee(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	router := newEmployeeRouter(stubEmployeeService{
		createFn: func(ctx context.Context, input dto.EmployeeRequest) (models.Employee, error) {
			if input.Name != "Dana" {
				t.Fatalf("unexpected employee name: %s", input.Name)
			}
			if input.DepartmentID == nil || *input.DepartmentID != 2 {
				t.Fatalf("unexpected department id: %v", input.DepartmentID)
			}
			return models.Employee{
				ID:           4,
				Name:         input.Name,
				DepartmentID: input.DepartmentID,
				CreatedAt:    now,
				UpdatedAt:    now,
			}, nil
		},
	})

	body := bytes.NewBufferString(`{"name":"Dana","department_id":2}`)
	req := httptest.NewRequest(http.MethodPost, "/api/employees", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, recorder.Code)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(recorder.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}

	if payload["id"] != float64(4) {
		t.Fatalf("expected generated id 4, got %v", payload["id"])
	}

	if payload["created_at"] != payload["updated_at"] {
		t.Fatalf("expected created_at == updated_at on creation, got %v / %v",
			payload["created_at"], payload["updated_at"])
	}
}

func TestCreateEmployeeMalformedBody(t *testing.T) {
	router := newEmployeeRouter(stubEmployeeService{
		createFn: func(ctx context.Context, input dto.EmployeeRequest) (models.Employee, error) {
			t.Fatal("service must not be reached on malformed input")
			return models.Employee{}, nil
		},
	})

	body := bytes.NewBufferString(`{"department_id":2}`)
	req := httptest.NewRequest(http.MethodPost, "/api/employees", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestCreateEmployeeForeignKeyViolation(t *testing.T) {
	router := newEmployeeRouter(stubEmployeeService{
		createFn: func(ctx context.Context, input dto.EmployeeRequest) (models.Employee, error) {
			return models.Employee{}, errors.New(`insert or update on table "employees" violates foreign key constraint`)
		},
	})

	body := bytes.NewBufferString(`{"name":"Dana","department_id":999}`)
	req := httptest.NewRequest(http.MethodPost, "/api/employees", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
}

func TestUpdateEmployee(t *testing.T) {
	created := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	updated := time.Now().UTC().Truncate(time.Second)
	router := newEmployeeRouter(stubEmployeeService{
		updateFn: func(ctx context.Context, id int64, input dto.EmployeeRequest) (models.Employee, error) {
			if id != 2 {
				t.Fatalf("unexpected employee id: %d", id)
			}
			return models.Employee{
				ID:           id,
				Name:         input.Name,
				DepartmentID: input.DepartmentID,
				CreatedAt:    created,
				UpdatedAt:    updated,
			}, nil
		},
	})

	body := bytes.NewBufferString(`{"name":"Jane Doe","department_id":3}`)
	req := httptest.NewRequest(http.MethodPut, "/api/employees/2", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(recorder.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}

	if payload["name"] != "Jane Doe" {
		t.Fatalf("expected updated name Jane Doe, got %v", payload["name"])
	}
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	router := newEmployeeRouter(stubEmployeeService{
		updateFn: func(ctx context.Context, id int64, input dto.EmployeeRequest) (models.Employee, error) {
			return models.Employee{}, apperrors.ErrEmployeeNotFound
		},
	})

	body := bytes.NewBufferString(`{"name":"Ghost","department_id":1}`)
	req := httptest.NewRequest(http.MethodPut, "/api/employees/9999", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, recorder.Code)
	}

	var payload map[string]string
	if err := json.NewDecoder(recorder.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}

	if payload["error"] != "Employee not found" {
		t.Fatalf("expected error message %q, got %q", "Employee not found", payload["error"])
	}
}

func TestUpdateEmployeeInvalidID(t *testing.T) {
	router := newEmployeeRouter(stubEmployeeService{})

	body := bytes.NewBufferString(`{"name":"Jane Doe","department_id":3}`)
	req := httptest.NewRequest(http.MethodPut, "/api/employees/abc", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestDeleteEmployee(t *testing.T) {
	var deletedID int64
	router := newEmployeeRouter(stubEmployeeService{
		deleteFn: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/employees/3", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, recorder.Code)
	}

	if recorder.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %s", recorder.Body.String())
	}

	if deletedID != 3 {
		t.Fatalf("expected delete of id 3, got %d", deletedID)
	}
}

func TestDeleteEmployeeMissingIDStillSucceeds(t *testing.T) {
	// The store reports an affected-row count of zero; the handler ignores it.
	router := newEmployeeRouter(stubEmployeeService{
		deleteFn: func(ctx context.Context, id int64) error {
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/employees/424242", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, recorder.Code)
	}
}
