// Package templates stores authored room templates. Generated levels are never stored.
package templates

import (
	"context"

	"github.com/KirkDiggler/descent/internal/entities"
)

// Repository defines the interface for room template storage
type Repository interface {
	// List returns every stored template ordered by ID
	// Storage failures carry CodeInternal
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get retrieves one template
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the template does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put creates or replaces a template
	// Returns errors.InvalidArgument for templates that fail validation
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete removes a template
	// Returns errors.NotFound if the template does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Prune removes stored entries that no longer decode or validate
	Prune(ctx context.Context, input PruneInput) (*PruneOutput, error)
}

// ListInput defines the input for listing templates
type ListInput struct {
	// Type filters to a single room type when set
	Type entities.RoomType
}

// ListOutput defines the output for listing templates
type ListOutput struct {
	Templates []*entities.RoomTemplate
}

// GetInput defines the input for getting a template
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a template
type GetOutput struct {
	Template *entities.RoomTemplate
}

// PutInput defines the input for storing a template
type PutInput struct {
	Template *entities.RoomTemplate
}

// PutOutput defines the output for storing a template
type PutOutput struct {
	Template *entities.RoomTemplate
}

// DeleteInput defines the input for deleting a template
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a template
type DeleteOutput struct{}

// PruneInput defines the input for pruning corrupt templates
type PruneInput struct {
	// DryRun reports what would be removed without removing it
	DryRun bool
}

// PruneOutput defines the output for pruning corrupt templates
type PruneOutput struct {
	Checked int
	Removed []CorruptEntry
}

// CorruptEntry is a stored template that failed to decode or validate
type CorruptEntry struct {
	ID     string
	Reason string
}
