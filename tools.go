//go:build tools

package tools

// Pins the CLI tools invoked via go:generate so their versions are tracked
// by go.mod.
import (
	_ "github.com/99designs/gqlgen"
	_ "github.com/99designs/gqlgen/graphql/introspection"
)
