package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/dbx"
	"github.com/dmitrijs2005/gophtasks/internal/server/config"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/users"
	"github.com/dmitrijs2005/gophtasks/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

var errStorage = errors.New("disk on fire")

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:  "k",
		BcryptCost: bcrypt.MinCost,
	}
}

func newServices(t *testing.T) (*UserService, *TaskService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	m := repomanager.NewRepositoryManager(dbx.DialectSQLite)
	return NewUserService(db, m, testConfig()), NewTaskService(db, m)
}

// fakeManager vends failing repositories.
type fakeManager struct{}

func (fakeManager) Dialect() dbx.Dialect { return dbx.DialectSQLite }
func (fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (fakeManager) Users(dbx.DBTX) users.Repository { return failingUsers{} }
func (fakeManager) Tasks(dbx.DBTX) tasks.Repository { return failingTasks{} }

type failingUsers struct{}

func (failingUsers) Create(context.Context, *models.User) (*models.User, error) {
	return nil, errStorage
}
func (failingUsers) GetUserByLogin(context.Context, string) (*models.User, error) {
	return nil, errStorage
}

type failingTasks struct{}

func (failingTasks) Create(context.Context, *models.Task) error { return errStorage }
func (failingTasks) ListByUser(context.Context, string) ([]*models.Task, error) {
	return nil, errStorage
}
func (failingTasks) Update(context.Context, string, string, models.TaskUpdate, time.Time) (*models.Task, error) {
	return nil, errStorage
}
func (failingTasks) Delete(context.Context, string, string) error { return errStorage }
