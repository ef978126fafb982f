package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/config"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/delivery/http/controllers"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/delivery/http/middlewares"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/constvars"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/dto/requests"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/dto/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSchedulerUsecase struct {
	mock.Mock
}

func (m *MockSchedulerUsecase) AutoSchedule(ctx context.Context, request *requests.AutoSchedule) (*responses.AutoScheduleResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AutoScheduleResult), args.Error(1)
}

func newSchedulerTestRouter(mockUsecase *MockSchedulerUsecase) *chi.Mux {
	logger := zap.NewNop()

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: &config.InternalConfig{},
	}

	schedulerController := &controllers.SchedulerController{
		Log:              logger,
		SchedulerUsecase: mockUsecase,
	}

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	attachSchedulerRoutes(router, schedulerController)
	return router
}

func TestSchedulerRouter_AutoScheduleEndpoint(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		mockUsecase := new(MockSchedulerUsecase)
		mockUsecase.On("AutoSchedule", mock.Anything, mock.AnythingOfType("*requests.AutoSchedule")).
			Return(&responses.AutoScheduleResult{Ok: true, Message: "done"}, nil)

		router := newSchedulerTestRouter(mockUsecase)

		requestBody := requests.AutoSchedule{
			Activity:        "Nonton film",
			DurationMinutes: 60,
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/auto", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))

		var response responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("missing duration accepted, usecase applies the default", func(t *testing.T) {
		mockUsecase := new(MockSchedulerUsecase)
		mockUsecase.On("AutoSchedule", mock.Anything, mock.MatchedBy(func(r *requests.AutoSchedule) bool {
			return r.Activity == "Nonton film" && r.DurationMinutes == 0
		})).Return(&responses.AutoScheduleResult{Ok: true, Message: "done"}, nil)

		router := newSchedulerTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(requests.AutoSchedule{Activity: "Nonton film"})

		req := httptest.NewRequest("POST", "/auto", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("negative duration rejected", func(t *testing.T) {
		mockUsecase := new(MockSchedulerUsecase)
		router := newSchedulerTestRouter(mockUsecase)

		jsonBody, _ := json.Marshal(requests.AutoSchedule{Activity: "Nonton film", DurationMinutes: -30})

		req := httptest.NewRequest("POST", "/auto", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNotCalled(t, "AutoSchedule", mock.Anything, mock.Anything)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		mockUsecase := new(MockSchedulerUsecase)
		router := newSchedulerTestRouter(mockUsecase)

		req := httptest.NewRequest("POST", "/auto", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
