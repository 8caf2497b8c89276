package curves

// calculate recomputes the table of a Smooth curve from its control points.
func (c *Curve) calculate() {
	if !c.dirty {
		return
	}
	c.dirty = false
	if c.typ != Smooth {
		return
	}

	var pts []Point
	for _, p := range c.points {
		if p.Used() {
			pts = append(pts, p)
		}
	}
	if len(pts) == 0 {
		return
	}

	// Flat extensions beyond the outermost points.
	first, last := pts[0], pts[len(pts)-1]
	for i := 0; i < sampleIndex(first.X); i++ {
		c.samples[i] = first.Y
	}
	for i := sampleIndex(last.X); i < NumSamples; i++ {
		c.samples[i] = last.Y
	}

	for i := 0; i < len(pts)-1; i++ {
		p1 := pts[max(i-1, 0)]
		p2 := pts[i]
		p3 := pts[i+1]
		p4 := pts[min(i+2, len(pts)-1)]
		c.plot(p1, p2, p3, p4)
	}

	// Control points are hit exactly.
	for _, p := range pts {
		c.samples[sampleIndex(p.X)] = p.Y
	}
}

// plot fills the samples between p2 and p3 with a cubic Bézier segment.
// p1 and p4 are the neighbouring points; when a neighbour coincides with
// an end of the segment the tangent on that side is derived from the
// other one.
func (c *Curve) plot(p1, p2, p3, p4 Point) {
	x0, y0 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y

	dx := x3 - x0
	dy := y3 - y0
	if dx <= 0 {
		return
	}

	var y1, y2 float64
	switch {
	case p1 == p2 && p3 == p4:
		// Straight line.
		y1 = y0 + dy/3
		y2 = y0 + dy*2/3

	case p1 == p2:
		// Only the right neighbour is known.
		y2 = y3 - slope(p2, p4)*dx/3
		y1 = y0 + (y2-y0)/2

	case p3 == p4:
		// Only the left neighbour is known.
		y1 = y0 + slope(p1, p3)*dx/3
		y2 = y3 + (y1-y3)/2

	default:
		y1 = y0 + slope(p1, p3)*dx/3
		y2 = y3 - slope(p2, p4)*dx/3
	}

	steps := dx * (NumSamples - 1)
	start := sampleIndex(x0)
	for i := 0; float64(i) <= steps; i++ {
		t := float64(i) / steps
		mt := 1 - t
		y := y0*mt*mt*mt + 3*y1*mt*mt*t + 3*y2*mt*t*t + y3*t*t*t

		index := start + i
		if index < NumSamples {
			c.samples[index] = min(max(y, 0), 1)
		}
	}
}

// slope returns the gradient from a to b, or 0 for points stacked on the
// same x.
func slope(a, b Point) float64 {
	if b.X <= a.X {
		return 0
	}
	return (b.Y - a.Y) / (b.X - a.X)
}
