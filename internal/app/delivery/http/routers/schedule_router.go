package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/delivery/http/controllers"
)

func attachScheduleRoutes(router chi.Router, scheduleController *controllers.ScheduleController) {
	router.Post("/", scheduleController.CreateSchedule)
	router.Get("/", scheduleController.QuerySchedules)
}
