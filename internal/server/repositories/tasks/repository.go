package tasks

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/server/models"
)

// Repository stores tasks. Every read and write other than Create is scoped
// to the owning user: a task belonging to someone else is reported exactly
// like a task that does not exist.
type Repository interface {
	Create(ctx context.Context, task *models.Task) error
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)
	Update(ctx context.Context, userID, taskID string, upd models.TaskUpdate, now time.Time) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}
