package main

// contourSegment is one isoline piece in grid-normalized [0,1]x[0,1]
// coordinates. Segments are produced fresh each extraction and never mutated.
type contourSegment struct {
	x1, y1, x2, y2 float32
}

type edgeID int

const (
	edgeTop edgeID = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// contourCases maps each 4-bit marching-squares case to the edges its
// segments cross, in pairs. Corner bits: top-left 8, top-right 4,
// bottom-right 2, bottom-left 1; a set bit means the corner is above the
// threshold. The two saddle cases (5 and 10) are nil here and resolved at
// runtime against the cell average.
var contourCases = [16][]edgeID{
	1:  {edgeLeft, edgeBottom},
	2:  {edgeBottom, edgeRight},
	3:  {edgeLeft, edgeRight},
	4:  {edgeTop, edgeRight},
	6:  {edgeTop, edgeBottom},
	7:  {edgeLeft, edgeTop},
	8:  {edgeLeft, edgeTop},
	9:  {edgeTop, edgeBottom},
	11: {edgeTop, edgeRight},
	12: {edgeLeft, edgeRight},
	13: {edgeBottom, edgeRight},
	14: {edgeLeft, edgeBottom},
}

// extractLineSegments runs marching squares over the grid at one threshold
// and returns the isoline segments. Edge crossings are linearly interpolated
// between the corner values; edges with equal corners are degenerate and
// skipped rather than dividing by zero.
func extractLineSegments(grid []float32, width, height int, threshold float32) []contourSegment {
	if width < 2 || height < 2 {
		return nil
	}
	segments := make([]contourSegment, 0, 64)
	for cy := 0; cy < height-1; cy++ {
		for cx := 0; cx < width-1; cx++ {
			tl := grid[cy*width+cx]
			tr := grid[cy*width+cx+1]
			bl := grid[(cy+1)*width+cx]
			br := grid[(cy+1)*width+cx+1]

			caseIdx := 0
			if tl > threshold {
				caseIdx |= 8
			}
			if tr > threshold {
				caseIdx |= 4
			}
			if br > threshold {
				caseIdx |= 2
			}
			if bl > threshold {
				caseIdx |= 1
			}
			if caseIdx == 0 || caseIdx == 15 {
				continue
			}

			edges := contourCases[caseIdx]
			if caseIdx == 5 || caseIdx == 10 {
				edges = resolveSaddle(caseIdx, (tl+tr+bl+br)/4 > threshold)
			}
			for i := 0; i+1 < len(edges); i += 2 {
				p1x, p1y, ok1 := edgePoint(edges[i], cx, cy, width, height, tl, tr, bl, br, threshold)
				p2x, p2y, ok2 := edgePoint(edges[i+1], cx, cy, width, height, tl, tr, bl, br, threshold)
				if !ok1 || !ok2 {
					continue
				}
				segments = append(segments, contourSegment{x1: p1x, y1: p1y, x2: p2x, y2: p2y})
			}
		}
	}
	return segments
}

// resolveSaddle disambiguates the two ambiguous diagonal cases by comparing
// the cell average to the threshold. Without a consistent rule here the
// contour shows a visible tear where adjacent cells disagree.
func resolveSaddle(caseIdx int, centerAbove bool) []edgeID {
	// Case 5: top-right and bottom-left above. Case 10: the other diagonal.
	if caseIdx == 5 {
		if centerAbove {
			return []edgeID{edgeTop, edgeLeft, edgeRight, edgeBottom}
		}
		return []edgeID{edgeTop, edgeRight, edgeLeft, edgeBottom}
	}
	if centerAbove {
		return []edgeID{edgeTop, edgeRight, edgeLeft, edgeBottom}
	}
	return []edgeID{edgeTop, edgeLeft, edgeRight, edgeBottom}
}

// edgePoint interpolates the threshold crossing along one cell edge and
// returns it in grid-normalized coordinates. ok is false for degenerate edges
// whose corner values are equal.
func edgePoint(e edgeID, cx, cy, width, height int, tl, tr, bl, br, threshold float32) (float32, float32, bool) {
	sx := float32(width - 1)
	sy := float32(height - 1)
	switch e {
	case edgeTop:
		t, ok := crossing(tl, tr, threshold)
		return (float32(cx) + t) / sx, float32(cy) / sy, ok
	case edgeRight:
		t, ok := crossing(tr, br, threshold)
		return float32(cx+1) / sx, (float32(cy) + t) / sy, ok
	case edgeBottom:
		t, ok := crossing(bl, br, threshold)
		return (float32(cx) + t) / sx, float32(cy+1) / sy, ok
	default:
		t, ok := crossing(tl, bl, threshold)
		return float32(cx) / sx, (float32(cy) + t) / sy, ok
	}
}

// crossing returns the interpolation parameter where the threshold crosses
// between two corner values.
func crossing(v0, v1, threshold float32) (float32, bool) {
	if v0 == v1 {
		return 0, false
	}
	t := (threshold - v0) / (v1 - v0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t, true
}

// boxBlur returns a copy of the grid smoothed by the given number of 3x3 mean
// filter passes. Border cells average only their in-bounds neighbors. Used
// before extraction so contours do not follow the raw cell resolution.
func boxBlur(grid []float32, width, height, passes int) []float32 {
	src := make([]float32, len(grid))
	copy(src, grid)
	if passes <= 0 {
		return src
	}
	dst := make([]float32, len(grid))
	for pass := 0; pass < passes; pass++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				var sum float32
				var count float32
				for dy := -1; dy <= 1; dy++ {
					yy := y + dy
					if yy < 0 || yy >= height {
						continue
					}
					for dx := -1; dx <= 1; dx++ {
						xx := x + dx
						if xx < 0 || xx >= width {
							continue
						}
						sum += src[yy*width+xx]
						count++
					}
				}
				dst[y*width+x] = sum / count
			}
		}
		src, dst = dst, src
	}
	return src
}
