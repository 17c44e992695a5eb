package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/acme/hr-directory/internal/app/models"
)

type stubDepartmentService struct {
	listFn func(ctx context.Context) ([]models.Department, error)
}

func (s stubDepartmentService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	if s.listFn == nil {
		return []models.Department{}, nil
	}
	return s.listFn(ctx)
}

func newDepartmentRouter(svc stubDepartmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := NewDepartmentController(svc)
	router.GET("/api/departments", controller.ListDepartments)

	return router
}

func TestListDepartments(t *testing.T) {
	router := newDepartmentRouter(stubDepartmentService{
		listFn: func(ctx context.Context) ([]models.Department, error) {
			return []models.Department{
				{ID: 1, Name: "HR"},
				{ID: 2, Name: "Engineering"},
				{ID: 3, Name: "Sales"},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/departments", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var payload []models.Department
	if err := json.NewDecoder(recorder.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}

	if len(payload) != 3 {
		t.Fatalf("expected 3 departments, got %d", len(payload))
	}

	if payload[1].Name != "Engineering" {
		t.Fatalf("expected second department Engineering, got %s", payload[1].Name)
	}
}

func TestListDepartmentsEmpty(t *testing.T) {
	router := newDepartmentRouter(stubDepartmentService{
		listFn: func(ctx context.Context) ([]models.Department, error) {
			return []models.Department{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/departments", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	if body := bytes.TrimSpace(recorder.Body.Bytes()); string(body) != "[]" {
		t.Fatalf("expected empty array body, got %s", body)
	}
}

func TestListDepartmentsStoreFailure(t *testing.T) {
	router := newDepartmentRouter(stubDepartmentService{
		listFn: func(ctx context.Context) ([]models.Department, error) {
			return nil, errors.New("relation does not exist")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/departments", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
}
