package xbrz

// kernel3x3 is the neighborhood of the current pixel, indexed by the labels
// ka..ki.
type kernel3x3 [9]uint32

// at returns label x of the kernel as seen after rotation r.
func (k *kernel3x3) at(r rotation, x int) uint32 {
	return k[kernelRotation[r][x]]
}

// scalePixel blends the bottom-right corner of the current pixel's output
// block, viewed through rotation r.
func (s *Scaler) scalePixel(r rotation, ker *kernel3x3, out *outputBlock, trgi int, info blendInfo) {
	blend := info.rotate(r)
	if blend.bottomR() == blendNone {
		return
	}

	b := ker.at(r, kb)
	c := ker.at(r, kc)
	d := ker.at(r, kd)
	e := ker.at(r, ke)
	f := ker.at(r, kf)
	g := ker.at(r, kg)
	h := ker.at(r, kh)
	i := ker.at(r, ki)

	m := s.metric
	doLineBlend := s.lineBlend(blend, c, e, f, g, h, i)

	// choose the most similar color
	px := h
	if m.dist(e, f) <= m.dist(e, h) {
		px = f
	}

	out.move(r, trgi)

	if !doLineBlend {
		out.apply(patternCorner, px)
		return
	}
	out.apply(s.linePattern(b, c, d, e, f, g, h), px)
}

// lineBlend decides between a full line blend and a corner-only blend.
func (s *Scaler) lineBlend(blend blendInfo, c, e, f, g, h, i uint32) bool {
	m := s.metric
	switch {
	case blend.bottomR() >= blendDominant:
		return true

	// No second blend from an adjacent rotation of this pixel. Handles
	// insular pixels and mario eyes while still double-blending 90° corners.
	case blend.topR() != blendNone && !m.eq(e, g):
		return false
	case blend.bottomL() != blendNone && !m.eq(e, c):
		return false

	// L-shapes get the corner only ("mario mushroom eyes").
	case m.eq(g, h) && m.eq(h, i) && m.eq(i, f) && m.eq(f, c) && !m.eq(e, i):
		return false
	}
	return true
}

// linePattern picks the line shape from the gradients across the corner.
// In a test sample 70% of max(fg, hc) / min(fg, hc) fell between 1.1 and
// 3.7 with a median of 1.9.
func (s *Scaler) linePattern(b, c, d, e, f, g, h uint32) patternKind {
	m := s.metric
	fg := m.dist(f, g)
	hc := m.dist(h, c)
	steep := s.cfg.SteepDirectionThreshold

	haveShallowLine := steep*fg <= hc && e != g && d != g
	haveSteepLine := steep*hc <= fg && e != c && b != c

	switch {
	case haveShallowLine && haveSteepLine:
		return patternLineSteepAndShallow
	case haveShallowLine:
		return patternLineShallow
	case haveSteepLine:
		return patternLineSteep
	}
	return patternLineDiagonal
}
