// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package tools

type Mutation struct {
}

type Query struct {
}
