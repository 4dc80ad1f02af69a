package sprite

// FloodMatch grows a region from seed by breadth-first search. From every
// frontier pixel, each unvisited in-bounds pixel within radius (a circular
// neighbourhood, so a radius above 1 bridges anti-aliased gaps) joins the
// region and the next frontier when its color matches, under eq, one of
// colors or the seed's own color. A nil eq means StraightEqual.
//
// An out-of-bounds seed yields an empty mask the size of the layer.
func (l *Layer) FloodMatch(seed Point, radius float64, colors []Color, eq ColorEqual) *PixelMask {
	w, h := l.Width(), l.Height()
	region := NewPixelMask(w, h)
	if !l.Contains(seed) {
		return region
	}
	if eq == nil {
		eq = StraightEqual
	}

	targets := make([]Color, 0, len(colors)+1)
	targets = append(targets, l.Pixel(seed.X, seed.Y))
	targets = append(targets, colors...)
	matches := func(c Color) bool {
		for _, t := range targets {
			if eq(c, t) {
				return true
			}
		}
		return false
	}

	visited := make([]bool, w*h)
	visited[seed.Y*w+seed.X] = true
	region.Set(seed.X, seed.Y, true)

	offsets := circleOffsets(radius)
	frontier := []Point{seed}
	found := 1
	for len(frontier) > 0 {
		var next []Point
		for _, p := range frontier {
			for _, o := range offsets {
				q := p.Add(o)
				if !l.Contains(q) || visited[q.Y*w+q.X] {
					continue
				}
				visited[q.Y*w+q.X] = true
				if matches(l.Pixel(q.X, q.Y)) {
					region.Set(q.X, q.Y, true)
					next = append(next, q)
					found++
				}
			}
		}
		frontier = next
	}

	Logger().Debug("flood match", "seed", seed, "radius", radius, "pixels", found)
	return region
}
