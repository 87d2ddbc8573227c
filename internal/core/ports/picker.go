package ports

import "context"

// Picker lets the user choose one of several candidates.
//
//go:generate go run go.uber.org/mock/mockgen -source=picker.go -destination=mocks/mock_picker.go -package=mocks
type Picker interface {
	// Select runs program with candidates on its input and returns the chosen line.
	// ok is false when the user made no selection.
	Select(ctx context.Context, program string, candidates []string) (choice string, ok bool, err error)
}
