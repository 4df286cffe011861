package nes

import "testing"

func TestPpuAddrWriteSetsV(t *testing.T) {
	n := newTestNes()
	n.ppu.cpuWrite(0x0006, 0x21) // high 6 bits
	n.ppu.cpuWrite(0x0006, 0x08) // low 8 bits

	if n.ppu.v.value() != 0x2108 {
		t.Errorf("v = %#x, want 0x2108", n.ppu.v.value())
	}
	if n.ppu.w {
		t.Error("w still set after second $2006 write")
	}
}

func TestPpuScrollTogglesW(t *testing.T) {
	n := newTestNes()
	if n.ppu.w {
		t.Fatal("w set before any writes")
	}
	n.ppu.cpuWrite(0x0005, 0x00)
	if !n.ppu.w {
		t.Error("w not set after first $2005 write")
	}
	n.ppu.cpuWrite(0x0005, 0x00)
	if n.ppu.w {
		t.Error("w not cleared after second $2005 write")
	}
}

func TestPpuStatusReadClearsW(t *testing.T) {
	n := newTestNes()
	n.ppu.cpuWrite(0x0005, 0x00) // sets w
	n.ppu.cpuRead(0x0002)        // PPUSTATUS read
	if n.ppu.w {
		t.Error("w not cleared by PPUSTATUS read")
	}
}

func TestPpuStatusReadClearsVblank(t *testing.T) {
	n := newTestNes()
	n.ppu.status.set(statusVBlank)
	v := n.ppu.cpuRead(0x0002)
	if v&0x80 == 0 {
		t.Error("PPUSTATUS read did not report vblank before clearing it")
	}
	if n.ppu.status.has(statusVBlank) {
		t.Error("vblank flag not cleared by PPUSTATUS read")
	}
}

func TestPpuOamDataAutoIncrementsAddr(t *testing.T) {
	n := newTestNes()
	n.ppu.cpuWrite(0x0003, 0x10) // OAMADDR
	n.ppu.cpuWrite(0x0004, 0xAB) // OAMDATA
	if n.ppu.oamAddr != 0x11 {
		t.Errorf("oamAddr = %#x, want 0x11", n.ppu.oamAddr)
	}
	if got := n.ppu.oamMem.read(0x10); got != 0xAB {
		t.Errorf("oam[0x10] = %#x, want 0xAB", got)
	}
}

func TestPpuOddFrameSkipsDot(t *testing.T) {
	n := newTestNes()
	n.ppu.mask = 0x18 // show bg + sprites
	n.ppu.scanline = 261
	n.ppu.oddFrame = true
	if !n.ppu.skipsDot() {
		t.Error("odd pre-render frame with rendering enabled should skip a dot")
	}
	n.ppu.oddFrame = false
	if n.ppu.skipsDot() {
		t.Error("even pre-render frame should not skip a dot")
	}
}

func TestPpuSpriteFlipByte(t *testing.T) {
	got := flipByte(0b10110000)
	want := byte(0b00001101)
	if got != want {
		t.Errorf("flipByte(0b10110000) = %08b, want %08b", got, want)
	}
}
