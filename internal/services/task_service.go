package services

import (
	"context"
	"strings"
	"time"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
)

// TaskService implements the owner-scoped CRUD operations. Every call takes
// the authenticated user's id and never touches tasks outside that scope.
type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, userID string, req dto.CreateTaskRequest) (*model.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	priority := constants.PriorityMedium
	if req.Priority != "" {
		p := constants.TaskPriority(req.Priority)
		if !p.Valid() {
			return nil, apperrors.ErrInvalidPriority
		}
		priority = p
	}

	return s.repo.Create(ctx, userID, title, req.Description, priority, req.DueDate)
}

func (s *TaskService) List(ctx context.Context, userID string) ([]model.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*model.Task, error) {
	return s.repo.FindOwned(ctx, userID, taskID)
}

// Update applies only the fields present in the request. Id, owner and
// creation timestamp are not part of UpdateTaskRequest and can never change.
func (s *TaskService) Update(
	ctx context.Context,
	userID, taskID string,
	req dto.UpdateTaskRequest,
) (*model.Task, error) {
	fields := map[string]interface{}{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.ErrTitleRequired
		}
		fields["title"] = title
	}

	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if req.Priority != nil {
		p := constants.TaskPriority(*req.Priority)
		if !p.Valid() {
			return nil, apperrors.ErrInvalidPriority
		}
		fields["priority"] = p
	}

	if req.DueDate != nil {
		fields["due_date"] = req.DueDate
	}

	if req.Completed != nil {
		fields["completed"] = *req.Completed
	}

	if len(fields) > 0 {
		fields["updated_at"] = time.Now().UTC()
		if err := s.repo.UpdateOwned(ctx, userID, taskID, fields); err != nil {
			return nil, err
		}
	}

	return s.repo.FindOwned(ctx, userID, taskID)
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	return s.repo.DeleteOwned(ctx, userID, taskID)
}
