package app

import (
	"github.com/specialistvlad/puzzlegrid/internal/registry"
	"github.com/specialistvlad/puzzlegrid/modules/day01"
	"github.com/specialistvlad/puzzlegrid/modules/day02"
	"github.com/specialistvlad/puzzlegrid/modules/day03"
	"github.com/specialistvlad/puzzlegrid/modules/day04"
)

// coreModules is the definitive list of all puzzle modules that are compiled
// into the puzzlegrid binary.
var coreModules = []registry.Module{
	&day01.Module{},
	&day02.Module{},
	&day03.Module{},
	&day04.Module{},
}
