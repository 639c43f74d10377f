package services

import (
	"context"
	"lifehub/models"
)

// TaskService handles business logic for planner tasks
type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (ts *TaskService) List(ctx context.Context, userID int64) ([]models.Task, error) {
	return ts.repo.GetTasks(ctx, userID)
}

func (ts *TaskService) Get(ctx context.Context, userID, taskID int64) (*models.Task, error) {
	return fetch(ctx, ts.repo.GetTask, taskID, userID)
}

func (ts *TaskService) Create(ctx context.Context, userID int64, req models.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     utc(req.DueDate),
		Completed:   req.Completed,
		Category:    req.Category,
		Priority:    req.Priority,
	}
	if err := ts.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (ts *TaskService) Update(ctx context.Context, userID, taskID int64, req models.UpdateTaskRequest) (*models.Task, error) {
	task, err := fetch(ctx, ts.repo.GetTask, taskID, userID)
	if err != nil {
		return nil, err
	}

	set(&task.Title, req.Title)
	set(&task.Description, req.Description)
	set(&task.Completed, req.Completed)
	set(&task.Category, req.Category)
	set(&task.Priority, req.Priority)
	if req.DueDate != nil {
		task.DueDate = utc(req.DueDate)
	}

	if err := ts.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (ts *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	return remove(ctx, ts.repo.GetTask, ts.repo.DeleteTask, taskID, userID)
}
