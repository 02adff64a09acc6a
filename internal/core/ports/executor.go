package ports

import "context"

// Executor runs external commands. It is the boundary behind which both the
// Maven resolver queries and the packaging goals execute.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Output runs argv in dir and returns its captured stdout. A non-zero
	// exit is an error carrying the exit code and a stderr excerpt.
	Output(ctx context.Context, dir string, argv []string) ([]byte, error)

	// Run runs argv in dir, streaming output through the logger.
	Run(ctx context.Context, dir string, argv []string) error
}
