package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/parkerross/totodo-api/internal/domain"
	"github.com/parkerross/totodo-api/internal/platform/logger"
	"github.com/parkerross/totodo-api/internal/redact"
	"github.com/parkerross/totodo-api/internal/store"
)

// tasksUUIDConstraint is the unique constraint backing the external uuid.
const tasksUUIDConstraint = "tasks_uuid_key"

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
func NewPostgresTaskStore(db store.DBTX, log *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create.
// Returns store.ErrTaskUUIDExists if the external uuid is already taken.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (id, uuid, task, description, status, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.UUID,
		task.Text,
		nullIfEmpty(task.Description),
		task.Status,
		task.CreatedAt,
		task.CompletedAt,
	)
	if err != nil {
		if IsUniqueViolation(err, tasksUUIDConstraint) {
			log.Debug("duplicate external uuid on task create",
				slog.String("task_uuid", task.UUID))
			return fmt.Errorf("%w: %v", store.ErrTaskUUIDExists, err)
		}
		log.Error("failed to create task",
			slog.String("error", redact.Error(err)),
			slog.String("task_uuid", task.UUID))
		return MapError(err)
	}

	log.Info("task created", slog.String("task_uuid", task.UUID))
	return nil
}

// List implements store.TaskStore.List. Rows come back in store-native order;
// no ORDER BY is applied.
func (s *PostgresTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, uuid, task, description, status, created_at, completed_at
		FROM tasks
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", redact.Error(err)))
			return nil, MapError(err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		log.Error("task row iteration failed", slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}

	return tasks, nil
}

// Update implements store.TaskStore.Update. The patch merges into the stored
// row: nil patch fields keep their current column values. The updated row is
// returned in full.
func (s *PostgresTaskStore) Update(
	ctx context.Context,
	externalUUID string,
	patch *domain.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET task         = COALESCE($2, task),
		    description  = COALESCE($3, description),
		    status       = COALESCE($4, status),
		    completed_at = COALESCE($5, completed_at)
		WHERE uuid = $1
		RETURNING id, uuid, task, description, status, created_at, completed_at
	`

	row := s.db.QueryRowContext(
		ctx,
		query,
		externalUUID,
		patch.Text,
		patch.Description,
		patch.Status,
		patch.CompletedAt,
	)

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for update", slog.String("task_uuid", externalUUID))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to update task",
			slog.String("error", redact.Error(err)),
			slog.String("task_uuid", externalUUID))
		return nil, MapError(err)
	}

	log.Info("task updated", slog.String("task_uuid", externalUUID))
	return task, nil
}

// Delete implements store.TaskStore.Delete, returning the removed record.
func (s *PostgresTaskStore) Delete(ctx context.Context, externalUUID string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE uuid = $1
		RETURNING id, uuid, task, description, status, created_at, completed_at
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, externalUUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for delete", slog.String("task_uuid", externalUUID))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to delete task",
			slog.String("error", redact.Error(err)),
			slog.String("task_uuid", externalUUID))
		return nil, MapError(err)
	}

	log.Info("task deleted", slog.String("task_uuid", externalUUID))
	return task, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row in the canonical column order.
func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var description sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(
		&task.ID,
		&task.UUID,
		&task.Text,
		&description,
		&task.Status,
		&task.CreatedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Description = description.String
	if completedAt.Valid {
		t := completedAt.Time
		task.CompletedAt = &t
	}

	return &task, nil
}

// nullIfEmpty converts an empty string to a SQL NULL.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
