package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io/ioutil"

	"github.com/taotao54321/junknes/nes"
)

// inesHeader mirrors the 16-byte iNES file header. Adapted from the
// teacher's CartridgeHeader; kept as a plain struct decoded with
// encoding/binary the same way, since this port still only ever sees
// Mapper 0 images.
type inesHeader struct {
	Magic        [4]byte
	PrgRomChunks byte
	ChrRomChunks byte
	Flags6       byte
	Flags7       byte
	PrgRamSize   byte
	Flags9       byte
	Flags10      byte
	Unused       [5]byte
}

const prgChunkSize = 16 * 1024
const chrChunkSize = 8 * 1024

// loadCartridge reads an iNES ROM file and constructs a core Nes instance.
// iNES parsing lives here rather than in the nes package per SPEC_FULL.md's
// scope boundary: the core takes already-validated PRG/CHR slices.
func loadCartridge(path string) (*nes.Nes, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}
	if len(data) < 16 {
		return nil, fmt.Errorf("rom %s: file too short for an iNES header", path)
	}

	var header inesHeader
	if err := binary.Read(bytes.NewReader(data[:16]), binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}
	if string(header.Magic[:3]) != "NES" || header.Magic[3] != 0x1A {
		return nil, fmt.Errorf("rom %s: bad iNES magic %q", path, header.Magic)
	}
	if header.PrgRomChunks != 1 && header.PrgRomChunks != 2 {
		return nil, fmt.Errorf("rom %s: unsupported PRG bank count %d (only 1 or 2 supported)", path, header.PrgRomChunks)
	}
	if header.ChrRomChunks > 1 {
		return nil, fmt.Errorf("rom %s: unsupported CHR bank count %d (only 0 or 1 supported)", path, header.ChrRomChunks)
	}

	mapperLo := header.Flags6 >> 4
	mapperHi := header.Flags7 >> 4
	mapperID := (mapperHi << 4) | mapperLo
	if mapperID != 0 {
		return nil, fmt.Errorf("rom %s: mapper %d not supported, only mapper 0", path, mapperID)
	}

	if header.Flags6&(1<<1) != 0 {
		return nil, fmt.Errorf("rom %s: battery-backed SRAM not supported", path)
	}
	if header.Flags6&(1<<2) != 0 {
		return nil, fmt.Errorf("rom %s: trainer not supported", path)
	}
	if header.Flags6&(1<<3) != 0 {
		return nil, fmt.Errorf("rom %s: four-screen mirroring not supported", path)
	}

	offset := 16

	prgLen := int(header.PrgRomChunks) * prgChunkSize
	if offset+prgLen > len(data) {
		return nil, fmt.Errorf("rom %s: truncated PRG data", path)
	}
	prg := data[offset : offset+prgLen]
	offset += prgLen

	chr := make([]byte, chrChunkSize)
	if header.ChrRomChunks == 1 {
		if offset+chrChunkSize > len(data) {
			return nil, fmt.Errorf("rom %s: truncated CHR data", path)
		}
		copy(chr, data[offset:offset+chrChunkSize])
	}
	// ChrRomChunks == 0: CHR-RAM, left zeroed.

	mirror := nes.MirrorHorizontal
	if header.Flags6&0x01 != 0 {
		mirror = nes.MirrorVertical
	}

	return nes.New(prg, chr, mirror), nil
}
