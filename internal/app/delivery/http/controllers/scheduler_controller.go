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

type SchedulerController struct {
	Log              *zap.Logger
	SchedulerUsecase contracts.SchedulerUsecase
}

var (
	schedulerControllerInstance *SchedulerController
	onceSchedulerController     sync.Once
)

func NewSchedulerController(logger *zap.Logger, schedulerUsecase contracts.SchedulerUsecase) *SchedulerController {
	onceSchedulerController.Do(func() {
		instance := &SchedulerController{
			Log:              logger,
			SchedulerUsecase: schedulerUsecase,
		}
		schedulerControllerInstance = instance
	})
	return schedulerControllerInstance
}

func (ctrl *SchedulerController) AutoSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("SchedulerController.AutoSchedule requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("SchedulerController.AutoSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.AutoSchedule)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("SchedulerController.AutoSchedule error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("SchedulerController.AutoSchedule validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.SchedulerUsecase.AutoSchedule(ctx, request)
	if err != nil {
		ctrl.Log.Error("SchedulerController.AutoSchedule error from usecase",
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

	ctrl.Log.Info("SchedulerController.AutoSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, response.Ok),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AutoScheduleSuccessMessage, response)
}
