package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/inputs"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// validateSamples checks that every registered puzzle has an embedded sample
// for both parts, so runs without --input always have something to read.
// Missing expected answers only weaken --sample and are logged.
func validateSamples(ctx context.Context, reg *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	for _, name := range reg.Names() {
		for part := 1; part <= 2; part++ {
			if _, err := inputs.Sample(name, part); err != nil {
				errs = append(errs, err.Error())
			}
		}
		if _, ok := inputs.Expected(name); !ok {
			logger.Warn("Puzzle has no expected sample answers; --sample will not verify it.", "puzzle", name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("sample validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Embedded samples found for every puzzle.", "puzzles", reg.Len())
	return nil
}
