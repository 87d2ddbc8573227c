package ports

import "context"

// PackageIndex finds the packages that provide an executable.
//
//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type PackageIndex interface {
	// Candidates returns the package identifiers providing bin/<command>, in index order.
	// It returns domain.ErrNoMatch when the index knows no such package.
	Candidates(ctx context.Context, command string) ([]string, error)
}
