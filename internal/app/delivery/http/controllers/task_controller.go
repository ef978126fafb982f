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

type TaskController struct {
	Log         *zap.Logger
	TaskUsecase contracts.TaskUsecase
}

var (
	taskControllerInstance *TaskController
	onceTaskController     sync.Once
)

func NewTaskController(logger *zap.Logger, taskUsecase contracts.TaskUsecase) *TaskController {
	onceTaskController.Do(func() {
		instance := &TaskController{
			Log:         logger,
			TaskUsecase: taskUsecase,
		}
		taskControllerInstance = instance
	})
	return taskControllerInstance
}

func (ctrl *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("TaskController.CreateTask requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("TaskController.CreateTask called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateTask)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("TaskController.CreateTask error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("TaskController.CreateTask validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	message, err := ctrl.TaskUsecase.CreateTask(ctx, request)
	if err != nil {
		ctrl.Log.Error("TaskController.CreateTask error from usecase",
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

	ctrl.Log.Info("TaskController.CreateTask succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTaskSuccessMessage, message)
}
