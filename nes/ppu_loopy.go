package nes

// loopyReg is the PPU's internal 15-bit v/t scroll register, named after
// its NesDev-documented origin. Adapted from the teacher's PpuLoopyReg,
// whose getCoarseY/getNametable/getFineY were unimplemented stubs; this
// port fills in all four getters since renderLine depends on every field.
//
// Layout: yyy NN YYYYY XXXXX
//
//	yyy   - fine Y scroll
//	NN    - nametable select
//	YYYYY - coarse Y scroll
//	XXXXX - coarse X scroll
type loopyReg uint16

const (
	loopyCoarseX   loopyReg = 0x001F
	loopyCoarseY   loopyReg = 0x03E0
	loopyNametable loopyReg = 0x0C00
	loopyFineY     loopyReg = 0x7000
)

func (r loopyReg) value() uint16   { return uint16(r) }
func (r loopyReg) coarseX() byte   { return byte(r & loopyCoarseX) }
func (r loopyReg) coarseY() byte   { return byte((r & loopyCoarseY) >> 5) }
func (r loopyReg) nametable() byte { return byte((r & loopyNametable) >> 10) }
func (r loopyReg) fineY() byte     { return byte((r & loopyFineY) >> 12) }

func (r *loopyReg) setCoarseX(v byte) {
	*r = (*r &^ loopyCoarseX) | loopyReg(v)&loopyCoarseX
}

func (r *loopyReg) setCoarseY(v byte) {
	*r = (*r &^ loopyCoarseY) | (loopyReg(v)<<5)&loopyCoarseY
}

func (r *loopyReg) setNametable(v byte) {
	*r = (*r &^ loopyNametable) | (loopyReg(v)<<10)&loopyNametable
}

func (r *loopyReg) setFineY(v byte) {
	*r = (*r &^ loopyFineY) | (loopyReg(v)<<12)&loopyFineY
}

// incCoarseX advances coarse X by one tile, wrapping into the horizontally
// adjacent nametable (toggling nametable bit 0) at the 32-tile boundary.
func (r *loopyReg) incCoarseX() {
	if r.coarseX() == 31 {
		*r &^= loopyCoarseX
		*r ^= 0x0400 // toggle nametable bit 0
	} else {
		*r++
	}
}

// incFineY advances fine Y by one scanline, carrying into coarse Y with the
// documented 29-row wraparound (skipping the two attribute rows) and
// toggling nametable bit 1 at that boundary.
func (r *loopyReg) incFineY() {
	if r.fineY() < 7 {
		*r += 0x1000
		return
	}

	*r &^= loopyFineY

	y := r.coarseY()
	switch y {
	case 29:
		y = 0
		*r ^= 0x0800 // toggle nametable bit 1
	case 31:
		y = 0
	default:
		y++
	}
	r.setCoarseY(y)
}

// copyHorizontal copies t's coarse-X and nametable-bit-0 into v, performed
// at the start of every visible scanline when rendering.
func (r *loopyReg) copyHorizontal(t loopyReg) {
	*r = (*r &^ (loopyCoarseX | 0x0400)) | (t & (loopyCoarseX | 0x0400))
}

// copyVertical copies t's Y-related fields into v, performed once per
// pre-render scanline when rendering is enabled.
func (r *loopyReg) copyVertical(t loopyReg) {
	*r = (*r &^ (loopyCoarseY | loopyFineY | 0x0800)) | (t & (loopyCoarseY | loopyFineY | 0x0800))
}
