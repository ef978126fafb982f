package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/delivery/http/controllers"
)

func attachTaskRoutes(router chi.Router, taskController *controllers.TaskController) {
	router.Post("/", taskController.CreateTask)
}
