package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TaskService validates task input and stamps times before handing work to
// the task repository. Every method is scoped to the calling user.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m, now: time.Now}
}

// Create stores a new, not completed task with text for userID.
func (s *TaskService) Create(ctx context.Context, userID, text string) (*models.Task, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", common.ErrValidation)
	}

	now := s.timestamp()
	task := &models.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Text:        text,
		CreatedDate: now,
		UpdatedDate: now,
	}

	if err := s.repomanager.Tasks(s.db).Create(ctx, task); err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return task, nil
}

// List returns all tasks of userID, oldest first.
func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	tasks, err := s.repomanager.Tasks(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}
	return tasks, nil
}

// Update replaces text, completed and isEditing of the user's task.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, upd models.TaskUpdate) (*models.Task, error) {
	if upd.Text == "" {
		return nil, fmt.Errorf("%w: text is required", common.ErrValidation)
	}
	if !validID(taskID) {
		return nil, common.ErrorNotFound
	}

	task, err := s.repomanager.Tasks(s.db).Update(ctx, userID, taskID, upd, s.timestamp())
	if err != nil {
		return nil, wrapTaskErr("error updating task", err)
	}
	return task, nil
}

// Delete removes the user's task.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if !validID(taskID) {
		return common.ErrorNotFound
	}

	if err := s.repomanager.Tasks(s.db).Delete(ctx, userID, taskID); err != nil {
		return wrapTaskErr("error deleting task", err)
	}
	return nil
}

func (s *TaskService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// validID accepts only the canonical 36-character UUID form ids are stored in.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

func wrapTaskErr(msg string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
