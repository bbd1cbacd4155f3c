// Package catalog holds the room templates a generator draws from and the rejection sampling
// used to pick one of a given type.
package catalog

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/errors"
	"github.com/KirkDiggler/descent/internal/pkg/rng"
	"github.com/KirkDiggler/descent/internal/repositories/templates"
)

// DefaultMaxTries bounds template rejection sampling
const DefaultMaxTries = 100

// Catalog is a read-only, ordered list of room templates
type Catalog struct {
	templates []*entities.RoomTemplate
}

// New validates templates and builds a catalog. Order is preserved; random selection draws
// catalog indices, so order matters for reproducible runs.
func New(list []*entities.RoomTemplate) (*Catalog, error) {
	for i, t := range list {
		if err := t.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid template at index %d", i)
		}
		if !t.WellFormedTerminal() {
			slog.Warn("Terminal template should expose exactly one door",
				"template_id", t.ID,
				"doors", t.Doors.String(),
			)
		}
	}

	return &Catalog{templates: append([]*entities.RoomTemplate(nil), list...)}, nil
}

// Load builds a catalog from the templates stored in repo
func Load(ctx context.Context, repo templates.Repository) (*Catalog, error) {
	out, err := repo.List(ctx, templates.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list room templates")
	}

	return New(out.Templates)
}

// Templates returns every template in catalog order
func (c *Catalog) Templates() []*entities.RoomTemplate {
	return c.templates
}

// Len returns the number of templates
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Has reports whether any template has the given type
func (c *Catalog) Has(roomType entities.RoomType) bool {
	for _, t := range c.templates {
		if t.Type == roomType {
			return true
		}
	}
	return false
}

// Random draws catalog indices until one holds a template of roomType, giving up after maxTries
// draws. ok is false when nothing matched in time; that is not an error.
func (c *Catalog) Random(roller dice.Roller, roomType entities.RoomType, maxTries int) (*entities.RoomTemplate, bool, error) {
	if len(c.templates) == 0 {
		return nil, false, nil
	}

	for try := 0; try < maxTries; try++ {
		idx, err := rng.Intn(roller, len(c.templates))
		if err != nil {
			return nil, false, errors.Wrapf(err, "failed to draw %s template", roomType)
		}

		if t := c.templates[idx]; t.Type == roomType {
			return t, true, nil
		}
	}

	return nil, false, nil
}
