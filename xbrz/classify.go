package xbrz

// kernel4x4 is the neighborhood used to classify the corner shared by F, G,
// J and K:
//
//	-----------------
//	| A | B | C | D |
//	|---|---|---|---|
//	| E | F | G | H |  evaluate the four corners between F, G, J, K
//	|---|---|---|---|  input pixel is at position F
//	| I | J | K | L |
//	|---|---|---|---|
//	| M | N | O | P |
//	-----------------
type kernel4x4 struct {
	a, b, c, d uint32
	e, f, g, h uint32
	i, j, k, l uint32
	m, n, o, p uint32
}

// blendResult holds the corner blend strength of F, G, J and K at their
// shared corner.
type blendResult struct {
	f, g, j, k blendType
}

// classifyCorner decides which diagonal of the F/G/J/K cluster an edge runs
// along. The pair on the other diagonal is marked for blending. At most one
// pair is ever marked.
func classifyCorner(ker *kernel4x4, m colorMetric, dominantThreshold float64) blendResult {
	var res blendResult

	if (ker.f == ker.g && ker.j == ker.k) || (ker.f == ker.j && ker.g == ker.k) {
		return res
	}

	const weight = 4
	jg := m.dist(ker.i, ker.f) + m.dist(ker.f, ker.c) + m.dist(ker.n, ker.k) + m.dist(ker.k, ker.h) +
		weight*m.dist(ker.j, ker.g)
	fk := m.dist(ker.e, ker.j) + m.dist(ker.j, ker.o) + m.dist(ker.b, ker.g) + m.dist(ker.g, ker.l) +
		weight*m.dist(ker.f, ker.k)

	switch {
	case jg < fk:
		strength := blendNormal
		if dominantThreshold*jg < fk {
			strength = blendDominant
		}
		if ker.f != ker.g && ker.f != ker.j {
			res.f = strength
		}
		if ker.k != ker.j && ker.k != ker.g {
			res.k = strength
		}
	case fk < jg:
		strength := blendNormal
		if dominantThreshold*fk < jg {
			strength = blendDominant
		}
		if ker.j != ker.f && ker.j != ker.k {
			res.j = strength
		}
		if ker.g != ker.f && ker.g != ker.k {
			res.g = strength
		}
	}
	return res
}
