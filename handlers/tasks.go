package handlers

import (
	"github.com/biosecret/taskflow/dashboard"
	"github.com/biosecret/taskflow/models"
	"github.com/gofiber/fiber/v2"
)

// HandleListTasks godoc
// @Summary Visible tasks, counts and summary for the session user
// @Tags tasks
// @Produce json
// @Param filter query string false "all, completed or pending"
// @Param search query string false "case-insensitive text"
// @Success 200 {object} viewmodel.View
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/tasks [get]
func (h *Handler) HandleListTasks(c *fiber.Ctx) error {
	filter, err := models.ParseFilter(c.Query("filter"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	view, err := h.dash.View(filter, c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(200).JSON(view)
}

// HandleCreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param body body dashboard.TaskInput true "task"
// @Success 201 {object} models.Task
// @Failure 400 {object} map[string]string
// @Router /api/tasks [post]
func (h *Handler) HandleCreateTask(c *fiber.Ctx) error {
	var in dashboard.TaskInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	task, err := h.dash.AddTask(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(task)
}

// HandleGetOneTask godoc
// @Summary Get one task
// @Tags tasks
// @Produce json
// @Param id path string true "task id"
// @Success 200 {object} models.Task
// @Failure 404 {object} map[string]string
// @Router /api/tasks/{id} [get]
func (h *Handler) HandleGetOneTask(c *fiber.Ctx) error {
	task, err := h.dash.Task(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(200).JSON(task)
}

// HandleUpdateTask godoc
// @Summary Edit title, description, priority, due date and category
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "task id"
// @Param body body dashboard.TaskInput true "task"
// @Success 200 {object} models.Task
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/tasks/{id} [put]
func (h *Handler) HandleUpdateTask(c *fiber.Ctx) error {
	var in dashboard.TaskInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	task, err := h.dash.UpdateTask(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(200).JSON(task)
}

// HandleToggleTask godoc
// @Summary Flip a task between pending and completed
// @Tags tasks
// @Produce json
// @Param id path string true "task id"
// @Success 200 {object} models.Task
// @Failure 404 {object} map[string]string
// @Router /api/tasks/{id}/toggle [patch]
func (h *Handler) HandleToggleTask(c *fiber.Ctx) error {
	task, err := h.dash.ToggleComplete(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(200).JSON(task)
}

// HandleDeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "task id"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/tasks/{id} [delete]
func (h *Handler) HandleDeleteTask(c *fiber.Ctx) error {
	if err := h.dash.DeleteTask(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
