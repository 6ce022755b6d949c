package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/domain/repositories"
	"sales-crm.backend/internal/usecases"
)

func newPipelineRouter(t *testing.T, stageRepo *stageRepoStub, dealRepo *dealRepoStub, activityRepo *activityRepoStub) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pipelineUsecase := usecases.NewPipelineUsecase(stageRepo, dealRepo, activityRepo, nil)
	h := NewPipelineHandler(pipelineUsecase, stageRepo)

	r := gin.New()
	r.Use(withSession(9))
	r.GET("/pipeline", h.GetPipeline)
	r.GET("/pipeline/stages", h.ListStages)
	r.PATCH("/deals/:id/stage", h.MoveDealStage)
	return r
}

func TestPipelineHandler_GetPipeline_QueryValidation(t *testing.T) {
	r := newPipelineRouter(t, &stageRepoStub{}, &dealRepoStub{}, &activityRepoStub{})

	req := httptest.NewRequest(http.MethodGet, "/pipeline?userId=abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/pipeline?sortBy=bogus", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPipelineHandler_GetPipeline(t *testing.T) {
	stageRepo := &stageRepoStub{
		listFn: func(context.Context) ([]*entities.PipelineStage, error) {
			return []*entities.PipelineStage{
				{ID: 1, Name: "Lead", Order: 1, Kind: entities.StageKindOpen},
			}, nil
		},
	}
	dealRepo := &dealRepoStub{
		listByStageFn: func(_ context.Context, stageID uint, opts repositories.DealListOptions) ([]*entities.Deal, error) {
			require.EqualValues(t, 1, stageID)
			require.NotNil(t, opts.OwnerID)
			require.EqualValues(t, 4, *opts.OwnerID)
			require.Equal(t, entities.DealSortValueDesc, opts.SortBy)
			return []*entities.Deal{{ID: 7, Name: "Acme renewal", Value: 1200, StageID: 1}}, nil
		},
	}
	r := newPipelineRouter(t, stageRepo, dealRepo, &activityRepoStub{})

	req := httptest.NewRequest(http.MethodGet, "/pipeline?userId=4&sortBy=value-desc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "\"name\":\"Lead\"")
	require.Contains(t, w.Body.String(), "\"name\":\"Acme renewal\"")
}

func TestPipelineHandler_ListStages(t *testing.T) {
	stageRepo := &stageRepoStub{
		listFn: func(context.Context) ([]*entities.PipelineStage, error) {
			return []*entities.PipelineStage{
				{ID: 1, Name: "Lead", Order: 1},
				{ID: 5, Name: "Closed Won", Order: 5, Kind: entities.StageKindWon},
			}, nil
		},
	}
	r := newPipelineRouter(t, stageRepo, &dealRepoStub{}, &activityRepoStub{})

	req := httptest.NewRequest(http.MethodGet, "/pipeline/stages", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "\"name\":\"Closed Won\"")
}

func TestPipelineHandler_MoveDealStage(t *testing.T) {
	var logged *entities.Activity
	stageRepo := &stageRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*entities.PipelineStage, error) {
			if id == 5 {
				return &entities.PipelineStage{ID: 5, Name: "Closed Won", Kind: entities.StageKindWon}, nil
			}
			return nil, domainerrors.ErrNotFound
		},
	}
	dealRepo := &dealRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*entities.Deal, error) {
			return &entities.Deal{ID: id, Name: "Acme renewal", StageID: 5}, nil
		},
	}
	activityRepo := &activityRepoStub{
		createFn: func(_ context.Context, activity *entities.Activity) error {
			logged = activity
			return nil
		},
	}
	r := newPipelineRouter(t, stageRepo, dealRepo, activityRepo)

	req := httptest.NewRequest(http.MethodPatch, "/deals/42/stage", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPatch, "/deals/42/stage", strings.NewReader(`{"stageId":99}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "deal or stage not found")

	req = httptest.NewRequest(http.MethodPatch, "/deals/42/stage", strings.NewReader(`{"stageId":5}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, logged)
	require.Equal(t, entities.ActivityTypeUpdate, logged.Type)
	require.Equal(t, "Deal moved to Closed Won", logged.Title)
	require.EqualValues(t, 9, logged.UserID)
}
