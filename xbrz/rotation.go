package xbrz

// rotation is a clockwise quarter-turn count.
type rotation int

const (
	rot0 rotation = iota
	rot90
	rot180
	rot270

	numRotations = 4
)

const (
	minScale = 2
	maxScale = 5
)

// 3x3 kernel labels:
//
//	-------------
//	| A | B | C |
//	|---|---|---|
//	| D | E | F |  input pixel is at E
//	|---|---|---|
//	| G | H | I |
//	-------------
const (
	ka = iota
	kb
	kc
	kd
	ke
	kf
	kg
	kh
	ki
)

// deg90 maps each label of a kernel turned by 90 degrees to the label it
// reads in the unrotated kernel.
var deg90 = [9]int{
	kg, kd, ka,
	kh, ke, kb,
	ki, kf, kc,
}

// cellPos is a (row, column) position inside an N×N output block.
type cellPos struct {
	i, j int
}

var (
	// kernelRotation[r][x] is the unrotated label read at label x after r
	// quarter turns.
	kernelRotation [numRotations][9]int

	// blockRotation[n-minScale][r][i][j] is the unrotated output cell that
	// cell (i, j) refers to after r quarter turns in a block of size n.
	blockRotation [maxScale - minScale + 1][numRotations][maxScale][maxScale]cellPos
)

func init() {
	for x := range 9 {
		kernelRotation[rot0][x] = x
	}
	for r := rot90; r < numRotations; r++ {
		for x := range 9 {
			kernelRotation[r][x] = kernelRotation[r-1][deg90[x]]
		}
	}

	for n := minScale; n <= maxScale; n++ {
		for r := range rotation(numRotations) {
			for i := range n {
				for j := range n {
					blockRotation[n-minScale][r][i][j] = rotateCell(r, i, j, n)
				}
			}
		}
	}
}

// rotateCell returns the coordinates cell (i, j) had before being turned
// clockwise r times inside an n×n block.
func rotateCell(r rotation, i, j, n int) cellPos {
	if r == rot0 {
		return cellPos{i, j}
	}
	old := rotateCell(r-1, i, j, n)
	return cellPos{i: n - 1 - old.j, j: old.i}
}

// outputBlock addresses one N×N block of the destination buffer through a
// rotation, so blend patterns can be written for the 0° case only.
type outputBlock struct {
	dst    []uint32
	stride int
	n      int
	offset int
	rot    *[maxScale][maxScale]cellPos
}

func newOutputBlock(dst []uint32, stride, n int) outputBlock {
	return outputBlock{dst: dst, stride: stride, n: n}
}

// move points the block at the top-left destination index offset, viewed
// through rotation r.
func (o *outputBlock) move(r rotation, offset int) {
	o.rot = &blockRotation[o.n-minScale][r]
	o.offset = offset
}

// index returns the destination index of rotated cell (i, j).
func (o *outputBlock) index(i, j int) int {
	p := o.rot[i][j]
	return o.offset + p.j + p.i*o.stride
}
