package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
)

// ValidateRegistry checks that every registered puzzle is complete: both
// parts are present and the name matches the day.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string

	for _, name := range r.Names() {
		p := r.puzzles[name]

		if p.Day <= 0 {
			errs = append(errs, fmt.Sprintf("puzzle '%s': day must be positive, got %d", name, p.Day))
		} else if want := NameForDay(p.Day); want != name {
			errs = append(errs, fmt.Sprintf("puzzle '%s': registered for day %d, expected name '%s'", name, p.Day, want))
		}

		for part := 1; part <= 2; part++ {
			if p.Part(part) == nil {
				errs = append(errs, fmt.Sprintf("puzzle '%s': part %d has no solver", name, part))
			}
		}
	}

	if len(errs) > 0 {
		ctxlog.FromContext(ctx).Error("Registry validation failed.", "problems", len(errs))
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
