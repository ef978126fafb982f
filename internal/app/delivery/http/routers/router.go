package routers

import (
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/config"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/delivery/http/controllers"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/delivery/http/middlewares"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	schedulerController *controllers.SchedulerController,
	scheduleController *controllers.ScheduleController,
	taskController *controllers.TaskController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/scheduler", func(r chi.Router) {
				attachSchedulerRoutes(r, schedulerController)
			})

			r.Route("/schedules", func(r chi.Router) {
				attachScheduleRoutes(r, scheduleController)
			})

			r.Route("/tasks", func(r chi.Router) {
				attachTaskRoutes(r, taskController)
			})
		})
	})
}
