// Package tasks persists per-user task lists.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/dbx"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
)

const taskColumns = `id, user_id, text, completed, is_editing, created_at, updated_at`

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, task *models.Task) error {
	query :=
		`INSERT INTO tasks (` + taskColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		task.ID, task.UserID, task.Text, task.Completed, task.IsEditing, task.CreatedDate, task.UpdatedDate)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// ListByUser returns the user's tasks oldest first. The slice is never nil.
func (r *SQLRepository) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	query :=
		`SELECT ` + taskColumns + ` FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update overwrites text, completed and isEditing of the user's task and
// returns the stored row. updated_at never moves backwards.
func (r *SQLRepository) Update(ctx context.Context, userID, taskID string, upd models.TaskUpdate, now time.Time) (*models.Task, error) {
	query :=
		`UPDATE tasks
		 SET text = $1, completed = $2, is_editing = $3,
		     updated_at = CASE WHEN updated_at > $4 THEN updated_at ELSE $4 END
		 WHERE id = $5 AND user_id = $6
		 RETURNING ` + taskColumns + `
		 `

	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(query),
		upd.Text, upd.Completed, upd.IsEditing, now, taskID, userID)

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *SQLRepository) Delete(ctx context.Context, userID, taskID string) error {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), taskID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*models.Task, error) {
	task := &models.Task{}
	var createdAt, updatedAt dbx.Time
	err := s.Scan(&task.ID, &task.UserID, &task.Text, &task.Completed, &task.IsEditing, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	task.CreatedDate = createdAt.Time
	task.UpdatedDate = updatedAt.Time
	return task, nil
}
