package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"aerocode/internal/adapter/http/dto/response"
	"aerocode/internal/adapter/http/handlers/mocks"
	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPartHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add reports list position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewPartHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves/:codigo/pecas", h.AddPart)

		created := entities.Part{ID: "p1", Name: "Asa", Type: entities.PartTypeImported, Supplier: "Boeing", Status: entities.PartStatusInProduction}
		uc.EXPECT().AddPart(gomock.Any(), engineer, "PR-1", entities.Part{Name: "Asa", Type: entities.PartTypeImported, Supplier: "Boeing"}).Return(created, nil)
		uc.EXPECT().ListParts(gomock.Any(), "PR-1").Return([]entities.Part{{ID: "p0"}, created}, nil)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves/PR-1/pecas", `{"nome":"Asa","tipo":"imported","fornecedor":"Boeing"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body response.PartResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Index != 1 || body.Status != "IN_PRODUCTION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewPartHandler(uc)

		r := newRouter(&engineer)
		r.GET("/v1/aeronaves/:codigo/pecas/:idx", h.GetPart)

		for _, idx := range []string{"abc", "-1"} {
			w := doJSON(r, http.MethodGet, "/v1/aeronaves/PR-1/pecas/"+idx, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 for %q, got %d", idx, w.Code)
			}
		}
	})

	t.Run("get out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewPartHandler(uc)

		r := newRouter(&engineer)
		r.GET("/v1/aeronaves/:codigo/pecas/:idx", h.GetPart)

		uc.EXPECT().GetPart(gomock.Any(), "PR-1", 5).Return(entities.Part{}, usecase.ErrPartNotFound)

		w := doJSON(r, http.MethodGet, "/v1/aeronaves/PR-1/pecas/5", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("status update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewPartHandler(uc)

		operator := entities.Employee{ID: "op", PermissionLevel: entities.PermissionOperator}
		r := newRouter(&operator)
		r.PUT("/v1/aeronaves/:codigo/pecas/:idx/status", h.UpdatePartStatus)

		uc.EXPECT().UpdatePartStatus(gomock.Any(), operator, "PR-1", 0, entities.PartStatusReady).
			Return(entities.Part{ID: "p0", Status: entities.PartStatusReady}, nil)

		w := doJSON(r, http.MethodPut, "/v1/aeronaves/PR-1/pecas/0/status", `{"status":"ready"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("status missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewPartHandler(uc)

		r := newRouter(&engineer)
		r.PUT("/v1/aeronaves/:codigo/pecas/:idx/status", h.UpdatePartStatus)

		w := doJSON(r, http.MethodPut, "/v1/aeronaves/PR-1/pecas/0/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewPartHandler(uc)

		r := newRouter(&engineer)
		r.PUT("/v1/aeronaves/:codigo/pecas/:idx", h.UpdatePart)
		r.DELETE("/v1/aeronaves/:codigo/pecas/:idx", h.DeletePart)

		uc.EXPECT().UpdatePart(gomock.Any(), engineer, "PR-1", 0, gomock.Any()).Return(entities.Part{ID: "p0", Name: "Leme"}, nil)
		uc.EXPECT().DeletePart(gomock.Any(), engineer, "PR-1", 0).Return(usecase.ErrPermissionDenied)

		if w := doJSON(r, http.MethodPut, "/v1/aeronaves/PR-1/pecas/0", `{"nome":"Leme"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodDelete, "/v1/aeronaves/PR-1/pecas/0", ""); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestStageHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewStageHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves/:codigo/etapas", h.AddStage)

		uc.EXPECT().AddStage(gomock.Any(), engineer, "PR-1", entities.Stage{Name: "Montagem", DeadlineDays: 10}).
			Return(entities.Stage{ID: "s0", Name: "Montagem", DeadlineDays: 10, Status: entities.StageStatusPending, EmployeeIDs: []string{}}, nil)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves/PR-1/etapas", `{"nome":"Montagem","prazoDias":10}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("advance blocked by previous stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewStageHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves/:codigo/etapas/:idx/avancar", h.AdvanceStage)

		uc.EXPECT().AdvanceStage(gomock.Any(), engineer, "PR-1", 1).Return(entities.Stage{}, usecase.ErrPreviousStageNotCompleted)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves/PR-1/etapas/1/avancar", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("complete blocked by failed tests", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewStageHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves/:codigo/etapas/:idx/concluir", h.CompleteStage)

		uc.EXPECT().CompleteStage(gomock.Any(), engineer, "PR-1", 2).Return(entities.Stage{}, usecase.ErrFailedTestsPending)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves/PR-1/etapas/2/concluir", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewStageHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves/:codigo/etapas/:idx/concluir", h.CompleteStage)

		uc.EXPECT().CompleteStage(gomock.Any(), engineer, "PR-1", 0).Return(entities.Stage{ID: "s0", Status: entities.StageStatusCompleted}, nil)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves/PR-1/etapas/0/concluir", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.StageResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Status != "COMPLETED" || body.Funcionarios == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("assign unknown employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewStageHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves/:codigo/etapas/:idx/funcionario", h.AssignEmployee)

		uc.EXPECT().AssignEmployeeToStage(gomock.Any(), engineer, "PR-1", 0, "ghost").Return(entities.Stage{}, usecase.ErrUserNotFound)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves/PR-1/etapas/0/funcionario", `{"funcionarioId":"ghost"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewStageHandler(uc)

		r := newRouter(&engineer)
		r.GET("/v1/aeronaves/:codigo/etapas", h.ListStages)

		uc.EXPECT().ListStages(gomock.Any(), "PR-1").Return([]entities.Stage{{ID: "s0"}, {ID: "s1", Order: 1}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/aeronaves/PR-1/etapas", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestTestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("register", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewTestHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves/:codigo/testes", h.RegisterTest)

		created := entities.Test{ID: "t0", Type: entities.TestTypeHydraulic, Result: entities.TestResultFailed}
		uc.EXPECT().RegisterTest(gomock.Any(), engineer, "PR-1", entities.Test{Type: entities.TestTypeHydraulic, Result: entities.TestResultFailed}).Return(created, nil)
		uc.EXPECT().ListTests(gomock.Any(), "PR-1").Return([]entities.Test{created}, nil)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves/PR-1/testes", `{"tipo":"hydraulic","resultado":"failed"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body response.TestResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Index != 0 || body.Resultado != "FAILED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid test type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewTestHandler(uc)

		r := newRouter(&engineer)
		r.POST("/v1/aeronaves/:codigo/testes", h.RegisterTest)

		uc.EXPECT().RegisterTest(gomock.Any(), engineer, "PR-1", gomock.Any()).Return(entities.Test{}, usecase.ErrInvalidTest)

		w := doJSON(r, http.MethodPost, "/v1/aeronaves/PR-1/testes", `{"tipo":"thermal","resultado":"passed"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get update delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewTestHandler(uc)

		r := newRouter(&engineer)
		r.GET("/v1/aeronaves/:codigo/testes/:idx", h.GetTest)
		r.PUT("/v1/aeronaves/:codigo/testes/:idx", h.UpdateTest)
		r.DELETE("/v1/aeronaves/:codigo/testes/:idx", h.DeleteTest)

		uc.EXPECT().GetTest(gomock.Any(), "PR-1", 3).Return(entities.Test{}, usecase.ErrTestNotFound)
		uc.EXPECT().UpdateTest(gomock.Any(), engineer, "PR-1", 0, gomock.Any()).Return(entities.Test{ID: "t0", Result: entities.TestResultPassed}, nil)
		uc.EXPECT().DeleteTest(gomock.Any(), engineer, "PR-1", 0).Return(nil)

		if w := doJSON(r, http.MethodGet, "/v1/aeronaves/PR-1/testes/3", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodPut, "/v1/aeronaves/PR-1/testes/0", `{"resultado":"passed"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodDelete, "/v1/aeronaves/PR-1/testes/0", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
