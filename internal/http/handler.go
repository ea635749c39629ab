package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	middleware "task-manager.com/task-manager/internal/http/middlewares"
	"task-manager.com/task-manager/internal/http/validators"
	"task-manager.com/task-manager/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.Create(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return httpError(err, "failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return httpError(err, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(apperrors.ErrTaskIDRequired.StatusCode, apperrors.ErrTaskIDRequired.Message)
	}

	task, err := h.taskService.Get(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return httpError(err, "failed to get task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(apperrors.ErrTaskIDRequired.StatusCode, apperrors.ErrTaskIDRequired.Message)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.taskService.Update(c.Request().Context(), middleware.UserID(c), id, req)
	if err != nil {
		return httpError(err, "failed to update task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(apperrors.ErrTaskIDRequired.StatusCode, apperrors.ErrTaskIDRequired.Message)
	}

	if err := h.taskService.Delete(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return httpError(err, "failed to delete task")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted"})
}

// httpError maps service errors onto HTTP responses. Infrastructure errors
// are collapsed to a generic 500 message so store details never leak out.
func httpError(err error, fallback string) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.StatusCode, appErr.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}
