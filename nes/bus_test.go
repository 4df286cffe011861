package nes

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestBusWramMirroring(t *testing.T) {
	n := newTestNes()

	for _, addr := range []uint16{0x0000, 0x0001, 0x07FF} {
		n.write(addr, 0x42)
		for _, mirror := range []uint16{addr, addr + 0x0800, addr + 0x1000, addr + 0x1800} {
			if got := n.read(mirror); got != 0x42 {
				t.Errorf("read(%#04x) = %#x after write(%#04x, 0x42), want 0x42", mirror, got, addr)
			}
		}
	}
}

func TestBusPpuRegisterMirroring(t *testing.T) {
	n := newTestNes()
	n.write(0x2000, 0x80) // PPUCTRL via base register
	if n.ppu.ctrl != 0x80 {
		t.Fatalf("ppu.ctrl = %#x, want 0x80", n.ppu.ctrl)
	}
	// $2008, $2010, ... all mirror the same 8 registers.
	n.write(0x2008, 0x00)
	if n.ppu.ctrl != 0 {
		t.Errorf("write to $2008 did not reach PPUCTRL: ppu.ctrl = %#x", n.ppu.ctrl)
	}
}

func TestBusControllerStrobeSequence(t *testing.T) {
	n := newTestNes()
	n.SetInput(0, 0x81) // bit0 (A) and bit7 (Right) set

	n.write(0x4016, 1)
	n.write(0x4016, 0)

	want := []byte{1, 0, 0, 0, 0, 0, 0, 1}
	for i, w := range want {
		got := n.read(0x4016) & 0x01
		if got != w {
			t.Errorf("read %d: got %d, want %d", i, got, w)
		}
	}
	// Ninth read returns 1 forever until re-strobed.
	if got := n.read(0x4016) & 0x01; got != 1 {
		t.Errorf("9th read = %d, want 1", got)
	}
}

func TestBusPaletteMirror(t *testing.T) {
	n := newTestNes()
	n.writePpu(0x3F10, 0x30)
	if got := n.readPpu(0x3F00); got != 0x30 {
		t.Errorf("readPpu(0x3F00) = %#x after writePpu(0x3F10, 0x30), want 0x30", got)
	}
	for _, addr := range []uint16{0x3F04, 0x3F08, 0x3F0C} {
		if got := n.readPpu(addr); got != 0x30 {
			t.Errorf("readPpu(%#04x) = %#x, want 0x30 (shared universal background)", addr, got)
		}
	}
}

func TestBusVramHorizontalMirror(t *testing.T) {
	n := newTestNes()
	n.cart.mirror = MirrorHorizontal
	n.writePpu(0x2000, 0x11) // nametable 0
	if got := n.readPpu(0x2400); got != 0x11 {
		t.Errorf("horizontal mirror: readPpu(0x2400) = %#x, want 0x11", got)
	}
	n.writePpu(0x2800, 0x22) // nametable 2
	if got := n.readPpu(0x2C00); got != 0x22 {
		t.Errorf("horizontal mirror: readPpu(0x2C00) = %#x, want 0x22", got)
	}
}

func TestBusVramVerticalMirror(t *testing.T) {
	n := newTestNes()
	n.cart.mirror = MirrorVertical
	n.writePpu(0x2000, 0x11) // nametable 0
	if got := n.readPpu(0x2800); got != 0x11 {
		t.Errorf("vertical mirror: readPpu(0x2800) = %#x, want 0x11", got)
	}
	n.writePpu(0x2400, 0x22) // nametable 1
	if got := n.readPpu(0x2C00); got != 0x22 {
		t.Errorf("vertical mirror: readPpu(0x2C00) = %#x, want 0x22", got)
	}
}

func TestBusVblankNmiOnCtrlWrite(t *testing.T) {
	n := newTestNes()
	n.ppu.status.set(statusVBlank)
	n.cpu.nmiPending = false

	n.write(0x2000, 0x80) // enable NMI while VBL already set

	if !n.cpu.nmiPending {
		t.Errorf("writing PPUCTRL with NMI enable while vblank set did not trigger NMI (status=%s)", spew.Sdump(n.ppu.status))
	}
}
