package handlers

import (
	"context"

	"inkletter/internal/application/newsletter/usecases"
)

// Executor interfaces decouple the handler from the concrete use case
// types so tests can substitute them.

type RegisterEmailExecutor interface {
	Execute(ctx context.Context, cmd usecases.RegisterEmailCommand) error
}

type ConfirmByCodeExecutor interface {
	Execute(ctx context.Context, cmd usecases.ConfirmByCodeCommand) error
}

type ConfirmByURLExecutor interface {
	Execute(ctx context.Context, cmd usecases.ConfirmByURLCommand) error
}

type ResendConfirmationExecutor interface {
	Execute(ctx context.Context, cmd usecases.ResendConfirmationCommand) error
}
