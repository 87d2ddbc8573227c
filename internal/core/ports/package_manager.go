package ports

import (
	"context"

	"go.trai.ch/comma/internal/core/domain"
)

// PackageManager drives the external package manager.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Build materializes derivation and returns its build output directory.
	Build(ctx context.Context, src domain.PackageSource, derivation string) (storePath string, err error)

	// ShellArgv returns the argv that opens an ephemeral environment with the
	// derivations and runs command inside it.
	ShellArgv(src domain.PackageSource, derivations []string, command []string) []string

	// InstallArgv returns the argv that permanently installs the attribute name.
	InstallArgv(attrName string) []string
}
