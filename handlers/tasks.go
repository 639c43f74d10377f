package handlers

import (
	"lifehub/app"

	"github.com/gofiber/fiber/v2"
)

func ListTasks(a *app.App) fiber.Handler {
	return listOwned(a.TaskService.List)
}

func GetTask(a *app.App) fiber.Handler {
	return getOwned(a.TaskService.Get)
}

func CreateTask(a *app.App) fiber.Handler {
	return createOwned(a, a.TaskService.Create)
}

func UpdateTask(a *app.App) fiber.Handler {
	return updateOwned(a, a.TaskService.Update)
}

func DeleteTask(a *app.App) fiber.Handler {
	return deleteOwned(a.TaskService.Delete)
}
