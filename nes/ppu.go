package nes

// ppuDoor is the callback surface the PPU uses to reach the Bus's PPU
// address space (CHR, VRAM, palette) and to raise NMI, without owning any
// of that memory itself.
type ppuDoor interface {
	readPpu(addr uint16) byte
	writePpu(addr uint16, value byte)
	triggerNmi()
}

const (
	screenW = 256
	screenH = 240
)

// ppu is the picture processing unit: register file, loopy scroll state,
// OAM, and the scanline-accurate renderer (ppu_render.go). Adapted from
// the teacher's Ppu, which held Cart directly and left every register a
// no-op stub; this port goes through door for all memory access (the Bus
// owns VRAM/palette) and implements the full loopy v/t/x/w dance.
type ppu struct {
	door ppuDoor

	ctrl   ppuCtrl
	mask   ppuMask
	status ppuStatus

	oamAddr byte
	oamMem  oam

	v, t loopyReg
	x    byte // fine X scroll, 3 bits
	w    bool // write toggle, shared by $2005/$2006

	readBuffer byte
	openBus    byte

	scanline int
	oddFrame bool
	warmup   int // set to 2 on reset, decremented once per pre-render line; nothing reads it, so rendering is not suppressed meanwhile

	screen [screenW * screenH]byte

	// Per-line scratch, rebuilt by renderLine each visible scanline. bgLine
	// holds 33 tiles' worth of raw pixels (8px each) so the final fine-X
	// shift never runs off the end; bit 0x80 of an entry marks a
	// transparent background pixel (sampling universal background).
	bgLine [33 * 8]byte
}

func newPpu(door ppuDoor) *ppu {
	return &ppu{door: door}
}

func (p *ppu) hardReset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.oamMem.clear()
	p.v, p.t, p.x, p.w = 0, 0, 0, false
	p.readBuffer, p.openBus = 0, 0
	p.scanline, p.oddFrame = 0, false
	p.warmup = 2
	for i := range p.screen {
		p.screen[i] = 0
	}
}

func (p *ppu) softReset() {
	p.ctrl, p.mask = 0, 0
	p.w = false
	p.readBuffer = 0
	p.warmup = 2
	for i := range p.screen {
		p.screen[i] = 0
	}
}

// cpuRead services a CPU read of $2000-$2007 (already mirrored by the Bus).
func (p *ppu) cpuRead(reg uint16) byte {
	var data byte

	switch reg {
	case 0x0002: // PPUSTATUS
		data = byte(p.status)&0xE0 | p.openBus&0x1F
		p.status.clear(statusVBlank)
		p.w = false
	case 0x0004: // OAMDATA
		data = p.oamMem.read(p.oamAddr)
	case 0x0007: // PPUDATA
		addr := p.v.value() & 0x3FFF
		if addr >= 0x3F00 {
			data = p.door.readPpu(addr)
			p.readBuffer = p.door.readPpu(addr - 0x1000)
		} else {
			data = p.readBuffer
			p.readBuffer = p.door.readPpu(addr)
		}
		p.v += loopyReg(p.ctrl.incStep())
	default:
		data = p.openBus
	}

	p.openBus = data
	return data
}

// cpuWrite services a CPU write of $2000-$2007.
func (p *ppu) cpuWrite(reg uint16, data byte) {
	p.openBus = data

	switch reg {
	case 0x0000: // PPUCTRL
		wasNmi := p.ctrl.nmiOnVBlank()
		p.ctrl = ppuCtrl(data)
		p.t.setNametable(p.ctrl.nametableBits())
		if p.ctrl.nmiOnVBlank() && !wasNmi && p.status.has(statusVBlank) {
			p.door.triggerNmi()
		}
	case 0x0001: // PPUMASK
		p.mask = ppuMask(data)
	case 0x0003: // OAMADDR
		p.oamAddr = data
	case 0x0004: // OAMDATA
		p.oamMem.write(p.oamAddr, data)
		p.oamAddr++
	case 0x0005: // PPUSCROLL
		if !p.w {
			p.x = data & 0x07
			p.t.setCoarseX(data >> 3)
		} else {
			p.t.setFineY(data & 0x07)
			p.t.setCoarseY(data >> 3)
		}
		p.w = !p.w
	case 0x0006: // PPUADDR
		if !p.w {
			p.t = (p.t &^ 0x7F00) | (loopyReg(data&0x3F) << 8)
		} else {
			p.t = (p.t &^ 0x00FF) | loopyReg(data)
			p.v = p.t
		}
		p.w = !p.w
	case 0x0007: // PPUDATA
		p.door.writePpu(p.v.value()&0x3FFF, data)
		p.v += loopyReg(p.ctrl.incStep())
	}
}

// oamDma loads 256 bytes copied from CPU space by a $4014 write.
func (p *ppu) oamDma(data []byte) { p.oamMem.dma(data) }

func (p *ppu) nmiEnabled() bool { return p.ctrl.nmiOnVBlank() }

func (p *ppu) renderingEnabled() bool { return p.mask.renderingEnabled() }
