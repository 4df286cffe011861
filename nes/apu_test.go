package nes

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestApuLengthTableWriteLoadsLength(t *testing.T) {
	n := newTestNes()
	n.apu.writeStatus(0x01) // enable SQ1
	// length index 0 -> lengthTable[0]
	n.apu.writeReg(0x4003, 0x00)
	if n.apu.sq1.length != lengthTable[0] {
		t.Errorf("sq1.length = %d, want %d", n.apu.sq1.length, lengthTable[0])
	}
}

func TestApuStatusReflectsLengthCounters(t *testing.T) {
	n := newTestNes()
	n.apu.writeStatus(0x0F) // enable all 4 pulse/tri/noise channels
	n.apu.writeReg(0x4003, 0x00)
	n.apu.writeReg(0x400B, 0x00)
	n.apu.writeReg(0x400F, 0x00)

	status := n.apu.readStatus()
	if status&0x01 == 0 {
		t.Error("SQ1 length bit not set in $4015 read")
	}
}

func TestApuDisablingChannelZeroesLength(t *testing.T) {
	n := newTestNes()
	n.apu.writeStatus(0x01)
	n.apu.writeReg(0x4003, 0x00)
	if n.apu.sq1.length == 0 {
		t.Fatal("setup failed: length is already zero")
	}
	n.apu.writeStatus(0x00)
	if n.apu.sq1.length != 0 {
		t.Errorf("sq1.length = %d after disabling channel, want 0", n.apu.sq1.length)
	}
}

func Test5StepModeNeverRaisesFrameIrq(t *testing.T) {
	n := newTestNes()
	n.apu.writeFrameCounter(0x80) // 5-step mode, IRQ not inhibited

	for i := 0; i < 4; i++ {
		n.apu.tick(40000) // several sequencer periods' worth of CPU cycles
		if n.apu.frameIrqFlag {
			t.Fatalf("frame IRQ raised in 5-step mode: %s", spew.Sdump(n.apu))
		}
	}
}

func TestNoiseLfsrNeverZero(t *testing.T) {
	n := newTestNes()
	n.apu.noi.lfsr = 1
	for i := 0; i < 100000; i++ {
		n.apu.noi.shiftLfsr()
		if n.apu.noi.lfsr == 0 {
			t.Fatalf("LFSR reached zero after %d shifts", i)
		}
	}
}

func TestSquareSweepOnesComplementDiffers(t *testing.T) {
	setup := func(onesComplement bool) *square {
		return &square{
			sweepOnesComplement: onesComplement,
			timerReg:            0x100,
			sweepEnabled:        true,
			sweepNegate:         true,
			sweepShift:          1,
			sweepDividerReg:     0,
		}
	}

	sq1 := setup(true)
	sq1.clockSweep()
	sq2 := setup(false)
	sq2.clockSweep()

	if sq1.timerReg == sq2.timerReg {
		t.Errorf("SQ1 (one's complement) and SQ2 (two's complement) sweeps produced the same target %#x, want SQ1 one lower", sq1.timerReg)
	}
	if sq1.timerReg != sq2.timerReg-1 {
		t.Errorf("SQ1 target = %#x, want exactly one less than SQ2 target %#x", sq1.timerReg, sq2.timerReg)
	}
}

func TestDmcIrqEnableTransitionRules(t *testing.T) {
	n := newTestNes()

	// Latch an IRQ, then clear the enable bit: IRQ must clear too.
	n.apu.dmc.irqEnable = true
	n.apu.dmc.irqFlag = true
	n.apu.dmc.writeReg(0, 0x00, n.apu.cycle, n)
	if n.apu.dmc.irqFlag {
		t.Error("clearing DMC IRQ-enable did not clear latched IRQ")
	}

	// Re-enabling while already latched must re-assert immediately.
	n.apu.dmc.irqFlag = true
	n.apu.dmc.irqEnable = false
	n.apu.dmc.writeReg(0, 0x80, n.apu.cycle, n)
	if !n.apu.dmc.irqFlag {
		t.Error("re-enabling DMC IRQ while latched should keep it asserted")
	}
}
