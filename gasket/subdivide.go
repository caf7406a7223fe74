package gasket

// Subdivide splits t into 4^depth leaf triangles and passes each leaf to
// emit. Leaves are emitted in the order of the recursive definition:
// (a,ab,ac), (ab,b,bc), (ab,ac,bc), (ac,bc,c) at every level.
//
// A negative depth is treated as 0.
func Subdivide(t Triangle, depth int, emit func(Triangle)) {
	if emit == nil {
		return
	}
	if depth < 0 {
		depth = 0
	}

	type frame struct {
		t     Triangle
		depth int
	}

	// Every split pops one frame and pushes four, so the stack never holds
	// more than 3*depth+1 frames.
	stack := make([]frame, 1, 3*depth+1)
	stack[0] = frame{t: t, depth: depth}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth == 0 {
			emit(f.t)
			continue
		}

		a, b, c := f.t.A, f.t.B, f.t.C
		ab := Midpoint(a, b)
		ac := Midpoint(a, c)
		bc := Midpoint(b, c)
		d := f.depth - 1

		// Reverse order so the first child is popped first.
		stack = append(stack,
			frame{t: Triangle{A: ac, B: bc, C: c}, depth: d},
			frame{t: Triangle{A: ab, B: ac, C: bc}, depth: d},
			frame{t: Triangle{A: ab, B: b, C: bc}, depth: d},
			frame{t: Triangle{A: a, B: ab, C: ac}, depth: d},
		)
	}
}

// Leaves collects the output of Subdivide into a slice.
func Leaves(t Triangle, depth int) []Triangle {
	out := make([]Triangle, 0, LeafCount(1, depth))
	Subdivide(t, depth, func(l Triangle) { out = append(out, l) })
	return out
}

// LeafCount returns bases * 4^depth.
func LeafCount(bases, depth int) int {
	if bases <= 0 {
		return 0
	}
	if depth < 0 {
		depth = 0
	}
	return bases << (2 * uint(depth))
}
