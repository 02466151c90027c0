package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"aerocode/internal/adapter/http/dto/response"
	"aerocode/internal/adapter/http/handlers/mocks"
	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAircraftHandler_CreateAircraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(nil)
		r.POST("/v1/aeronaves", h.CreateAircraft)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves", `{"codigo":"PR-1","modelo":"E195","tipo":"COMMERCIAL"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves", h.CreateAircraft)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves", h.CreateAircraft)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves", `{"modelo":"E195","tipo":"COMMERCIAL"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves", h.CreateAircraft)

		uc.EXPECT().RegisterAircraft(gomock.Any(), engineer, gomock.Any()).Return(entities.Aircraft{}, usecase.ErrPermissionDenied)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves", `{"codigo":"PR-1","modelo":"E195","tipo":"COMMERCIAL"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves", h.CreateAircraft)

		uc.EXPECT().RegisterAircraft(gomock.Any(), engineer, gomock.Any()).Return(entities.Aircraft{}, usecase.ErrDuplicateAircraft)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves", `{"codigo":"PR-1","modelo":"E195","tipo":"COMMERCIAL"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves", h.CreateAircraft)

		want := entities.Aircraft{Code: "PR-1", Model: "E195", Type: entities.AircraftTypeCommercial, Capacity: 120, RangeKm: 4000}
		uc.EXPECT().RegisterAircraft(gomock.Any(), engineer, want).Return(want, nil)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves", `{"codigo":"PR-1","modelo":"E195","tipo":"commercial","capacidade":120,"alcanceKm":4000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body response.AircraftResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if body.Codigo != "PR-1" || body.Tipo != "COMMERCIAL" {
			t.Fatalf("unexpected response: %+v", body)
		}
	})
}

func TestAircraftHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(&engineer)
		r.GET("/v1/aeronaves", h.ListAircraft)

		uc.EXPECT().ListAircraft(gomock.Any()).Return([]entities.Aircraft{{Code: "A"}, {Code: "B"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/aeronaves", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []response.AircraftResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
			t.Fatalf("expected 2 aircraft, got %s", w.Body.String())
		}
	})

	t.Run("get missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(&engineer)
		r.GET("/v1/aeronaves/:codigo", h.GetAircraft)

		uc.EXPECT().GetAircraft(gomock.Any(), "NOPE").Return(entities.Aircraft{}, usecase.ErrAircraftNotFound)

		w := doJSON(r, http.MethodGet, "/v1/aeronaves/NOPE", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(&engineer)
		r.GET("/v1/aeronaves", h.ListAircraft)

		uc.EXPECT().ListAircraft(gomock.Any()).Return(nil, errors.New("dynamo down"))

		w := doJSON(r, http.MethodGet, "/v1/aeronaves", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAircraftHandler_UpdateAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("update passes only provided fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(&engineer)
		r.PUT("/v1/aeronaves/:codigo", h.UpdateAircraft)

		uc.EXPECT().UpdateAircraft(gomock.Any(), engineer, "PR-1", gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Employee, _ string, changes usecase.AircraftChanges) (entities.Aircraft, error) {
				if changes.Capacity == nil || *changes.Capacity != 150 || changes.Model != nil {
					t.Fatalf("unexpected changes: %+v", changes)
				}
				return entities.Aircraft{Code: "PR-1", Capacity: 150}, nil
			})

		w := doJSON(r, http.MethodPut, "/v1/aeronaves/PR-1", `{"capacidade":150}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(&engineer)
		r.DELETE("/v1/aeronaves/:codigo", h.DeleteAircraft)

		uc.EXPECT().DeleteAircraft(gomock.Any(), engineer, "PR-1").Return(usecase.ErrPermissionDenied)

		w := doJSON(r, http.MethodDelete, "/v1/aeronaves/PR-1", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(&admin)
		r.DELETE("/v1/aeronaves/:codigo", h.DeleteAircraft)

		uc.EXPECT().DeleteAircraft(gomock.Any(), admin, "PR-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/aeronaves/PR-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAircraftHandler_GenerateReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("render failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves/:codigo/relatorio", h.GenerateReport)

		uc.EXPECT().GenerateReport(gomock.Any(), "PR-1").Return("", usecase.ErrRenderFailure)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves/PR-1/relatorio", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewAircraftHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves/:codigo/relatorio", h.GenerateReport)

		uc.EXPECT().GenerateReport(gomock.Any(), "PR-1").Return("relatorios/relatorio_PR-1_1.json", nil)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves/PR-1/relatorio", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.ReportResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Locator != "relatorios/relatorio_PR-1_1.json" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
