package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/delivery/http/controllers"
)

func attachSchedulerRoutes(router chi.Router, schedulerController *controllers.SchedulerController) {
	router.Post("/auto", schedulerController.AutoSchedule)
}
