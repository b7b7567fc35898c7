package domain

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// WithTransaction executa fn dentro de uma transação, com commit no
// sucesso e rollback em qualquer erro.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
