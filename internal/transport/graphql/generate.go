// Package graphql provides the GraphQL transport layer for the Lawndon
// backend. It defines the schema, resolvers, and error handling for the
// lawn-care community platform. The executable schema is generated via
// gqlgen from the schema file.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
