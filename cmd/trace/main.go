// Command trace runs the NES core headlessly and prints one disassembled
// line per CPU instruction via the BeforeExec hook, for diffing against
// nestest.log-style golden traces. Grounded on the debug-panel string
// builders n-ulricksen-nes's original nes/bus.go built for its pixelgl
// debug overlay (getDisassemblyLines, getCpuDebugString) and on
// nes/cpuDisassembler.go; this tool has no windowing dependency since it
// only needs the hook and a plain io.Writer.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/taotao54321/junknes/nes"
)

func main() {
	var (
		romPath string
		frames  int
	)
	flag.StringVar(&romPath, "rom", "", "path to a raw 32 KiB PRG + 8 KiB CHR image (no iNES header)")
	flag.IntVar(&frames, "frames", 1, "number of EmulateFrame calls to trace")
	flag.Parse()

	if romPath == "" {
		log.Fatal("usage: trace -rom path/to/image.bin [-frames N]")
	}

	data, err := ioutil.ReadFile(romPath)
	if err != nil {
		log.Fatalf("reading %s: %v", romPath, err)
	}
	if len(data) != 32*1024+8*1024 {
		log.Fatalf("%s: expected a raw 32 KiB PRG + 8 KiB CHR image (%d bytes), got %d", romPath, 32*1024+8*1024, len(data))
	}
	prg := data[:32*1024]
	chr := data[32*1024:]

	emu := nes.New(prg, chr, nes.MirrorHorizontal)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	emu.BeforeExec(func(st nes.CpuState, opcode byte, arg uint16) {
		fmt.Fprintln(out, nes.Disassemble(st, opcode, arg))
	})

	for i := 0; i < frames; i++ {
		emu.EmulateFrame()
	}
}
