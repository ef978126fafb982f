package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/contracts"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/constvars"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/dto/requests"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/exceptions"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
}

var (
	scheduleControllerInstance *ScheduleController
	onceScheduleController     sync.Once
)

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase) *ScheduleController {
	onceScheduleController.Do(func() {
		instance := &ScheduleController{
			Log:             logger,
			ScheduleUsecase: scheduleUsecase,
		}
		scheduleControllerInstance = instance
	})
	return scheduleControllerInstance
}

func (ctrl *ScheduleController) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ScheduleController.CreateSchedule requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ScheduleController.CreateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateSchedule)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("ScheduleController.CreateSchedule error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ScheduleController.CreateSchedule validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	message, err := ctrl.ScheduleUsecase.CreateSchedule(ctx, request)
	if err != nil {
		ctrl.Log.Error("ScheduleController.CreateSchedule error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.CreateSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateScheduleSuccessMessage, message)
}

func (ctrl *ScheduleController) QuerySchedules(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ScheduleController.QuerySchedules requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ScheduleController.QuerySchedules called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.ScheduleQuery{
		Period: r.URL.Query().Get("period"),
		Date:   r.URL.Query().Get("date"),
	}
	if request.Period == "" {
		request.Period = "daily"
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ScheduleController.QuerySchedules validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.QuerySchedules(ctx, request)
	if err != nil {
		ctrl.Log.Error("ScheduleController.QuerySchedules error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScheduleController.QuerySchedules succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QueryScheduleSuccessMessage, response)
}
