// Package product holds the catalog's product shapes, request parameter
// resolution and the pure formatting applied before anything is returned.
package product

import (
	"context"
	"errors"
)

var (
	ErrInvalidResponse = errors.New("Invalid API response")
	ErrInvalidID       = errors.New("Invalid product ID")
	ErrMissingQuery    = errors.New("Query parameter is missing")
	ErrInvalidLimit    = errors.New("Invalid limit parameter")
	ErrInvalidSkip     = errors.New("Invalid skip parameter")
)

type Query struct {
	Q     string
	Limit int
	Skip  int
}

// Repository is the read side of the upstream catalog.
// Implementations return the payload as decoded; shape checks belong to the caller.
type Repository interface {
	List(ctx context.Context, q Query) (*Page, error)
	GetByID(ctx context.Context, id string) (Raw, error)
	Search(ctx context.Context, q Query) (*Page, error)
}
