//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// goose is pinned through the tool directive in go.mod:
//   go tool goose -dir migrations postgres "$DATABASE_DSN" up
//
// Mocks are generated with github.com/matryer/moq, see the go:generate
// directives in internal/service/submission/service_test.go.
