package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dr-aiuta/rescuetimedashboard/pkg/entity"
)

type GoalsRepositoryI interface {
	// Creates new goal definition. Name, type, targets, category, target,
	// schedule, notifications and enabled are necessary; ID is assigned here
	Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error)
	// Searches goal with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Lists every stored goal definition
	GetAll(ctx context.Context) ([]*entity.Goal, error)
	// Lists goals with enabled = true, the evaluator's input set
	GetEnabled(ctx context.Context) ([]*entity.Goal, error)
	// Updates goal by ID (ID in goal is necessary)
	Update(ctx context.Context, goal *entity.Goal) error
	// Deletes goal with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Counts stored goals. Used to decide whether to seed samples
	Count(ctx context.Context) (int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
