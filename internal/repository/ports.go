package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	GetOneBy(ctx context.Context, filter map[string]any, entity any) error
	GetAllBy(ctx context.Context, filter map[string]any, order string, entities any) error
	UpdateWhere(ctx context.Context, entity any, filter map[string]any, updates map[string]any) (int64, error)
	AdvisoryLock(ctx context.Context, key int64) (func() error, error)
}
