package grid

// AdjacentSpans returns the distinct indices of spans touching c through its
// eight neighbours, in the order they are first seen.
func (g *Grid) AdjacentSpans(c Cell) []int {
	var out []int
	seen := make(map[int]struct{}, 2)
	for n := range c.Neighbors() {
		idx, ok := g.spanAt[n]
		if !ok {
			continue
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	return out
}

// PartNumbers reports, for every span, whether at least one of its digit
// cells has a symbol among its neighbours.
func (g *Grid) PartNumbers() []bool {
	marked := make([]bool, len(g.spans))
	for i, span := range g.spans {
	cells:
		for _, c := range span.Cells() {
			for n := range c.Neighbors() {
				if g.IsSymbol(n) {
					marked[i] = true
					break cells
				}
			}
		}
	}
	return marked
}

// PartNumberSum sums the values of all spans adjacent to a symbol. A span
// touched by several symbols is counted once.
func (g *Grid) PartNumberSum() int {
	sum := 0
	for i, ok := range g.PartNumbers() {
		if ok {
			sum += g.spans[i].Value
		}
	}
	return sum
}

// GearRatio returns the product of the two spans adjacent to s. It reports
// false when s is not a '*' or does not touch exactly two spans.
func (g *Grid) GearRatio(s Symbol) (int, bool) {
	if !s.IsGear() {
		return 0, false
	}
	adj := g.AdjacentSpans(s.At)
	if len(adj) != 2 {
		return 0, false
	}
	return g.spans[adj[0]].Value * g.spans[adj[1]].Value, true
}

// GearRatioSum adds up the ratio of every gear.
func (g *Grid) GearRatioSum() int {
	sum := 0
	for _, s := range g.Gears() {
		if ratio, ok := g.GearRatio(s); ok {
			sum += ratio
		}
	}
	return sum
}
