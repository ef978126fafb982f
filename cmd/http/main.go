package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/config"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/delivery/http/controllers"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/delivery/http/middlewares"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/delivery/http/routers"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/drivers/database"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/drivers/logger"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/drivers/messaging"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/services/core/reminders"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/services/core/scheduler"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/services/core/schedules"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/services/core/tasks"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/services/shared/googlecalendar"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/services/shared/googletasks"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/services/shared/locker"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/services/shared/notificationqueue"
	sharedredis "github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/services/shared/redis"
	"github.com/sirupsen/logrus"
)

var bootLog *logrus.Logger

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	bootLog = logger.NewLogrusLogger(internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Printf("Error during resource shutdown: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// External collaborators
	calendarClient := googlecalendar.NewCalendarClient(bootstrap.InternalConfig)
	tasksClient := googletasks.NewTasksClient(bootstrap.InternalConfig)

	// Notification queue
	publisher, err := notificationqueue.NewPublisher(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		bootLog.Fatalf("Failed to initialize notification publisher: %v", err)
	}

	// Schedules
	scheduleMongoRepository := schedules.NewScheduleMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleMongoRepository, calendarClient, bootstrap.Logger)
	scheduleController := controllers.NewScheduleController(bootstrap.Logger, scheduleUsecase)

	// Tasks
	taskMongoRepository := tasks.NewTaskMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	taskUsecase := tasks.NewTaskUsecase(taskMongoRepository, tasksClient, calendarClient, bootstrap.Logger)
	taskController := controllers.NewTaskController(bootstrap.Logger, taskUsecase)

	// Scheduler
	sourceTimeout := time.Duration(bootstrap.InternalConfig.Scheduler.SourceTimeoutInSeconds) * time.Second
	collector := scheduler.NewCollector(calendarClient, scheduleMongoRepository, tasksClient, bootstrap.Logger, sourceTimeout)
	schedulerUsecase := scheduler.NewSchedulerUsecase(collector, scheduleMongoRepository, calendarClient, bootstrap.Logger, bootstrap.InternalConfig)
	schedulerController := controllers.NewSchedulerController(bootstrap.Logger, schedulerUsecase)

	// Reminder worker
	worker := reminders.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockService, scheduleMongoRepository, taskMongoRepository, publisher)
	worker.Start(context.Background())
	bootstrap.WorkerStop = worker.Stop

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		schedulerController,
		scheduleController,
		taskController,
	)
}
