// Command view runs the NES core in a faiface/pixel window, translating
// the core's palette-index frame buffer into an RGBA image every frame.
// Adapted from n-ulricksen-nes's main.go + nes/display.go, generalized to
// the new Nes API: windowing, key-to-button mapping, and iNES loading all
// live here rather than inside the nes package, per SPEC_FULL.md's
// core/presentation scope boundary.
package main

import (
	"flag"
	"image"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/taotao54321/junknes/nes"
)

const (
	screenW = 256
	screenH = 240
	scale   = 3
)

var romPath string

func main() {
	flag.StringVar(&romPath, "rom", "", "path to an iNES ROM file")
	flag.Parse()
	if romPath == "" {
		log.Fatal("usage: view -rom path/to/game.nes")
	}

	emu, err := loadCartridge(romPath)
	if err != nil {
		log.Fatalf("loading %s: %v", romPath, err)
	}

	pixelgl.Run(func() { run(emu) })
}

func run(emu *nes.Nes) {
	cfg := pixelgl.WindowConfig{
		Title:  "NES Emulator",
		Bounds: pixel.R(0, 0, screenW*scale, screenH*scale),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		log.Fatal("unable to create window: ", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, screenW, screenH))
	matrix := pixel.IM.
		Moved(pixel.PictureDataFromImage(img).Bounds().Center()).
		Scaled(pixel.PictureDataFromImage(img).Bounds().Center(), scale)

	for !win.Closed() {
		readInput(win, emu)
		emu.EmulateFrame()
		drawFrame(img, emu.Screen())

		win.Clear(colornames.Black)
		pic := pixel.PictureDataFromImage(img)
		pixel.NewSprite(pic, pic.Bounds()).Draw(win, matrix)
		win.Update()
	}
}

// drawFrame converts the core's 256x240 palette-index buffer into img,
// flipping vertically since image.RGBA's origin is top-left while the
// core's screen buffer is stored top-to-bottom in the same order pixel
// expects flipped for pixel.Sprite's bottom-left-origin convention.
func drawFrame(img *image.RGBA, screen []byte) {
	for y := 0; y < screenH; y++ {
		for x := 0; x < screenW; x++ {
			idx := screen[y*screenW+x] & 0x3F
			img.SetRGBA(x, screenH-1-y, nesPalette[idx])
		}
	}
}

// readInput maps keyboard state onto controller 1's 8-bit button field
// (bit0..7 = A, B, Select, Start, Up, Down, Left, Right), the same J/K/
// WASD binding n-ulricksen-nes/nes/controller.go used before key polling
// moved out of the core package.
func readInput(win *pixelgl.Window, emu *nes.Nes) {
	var buttons byte
	if win.Pressed(pixelgl.KeyJ) {
		buttons |= 0x01
	}
	if win.Pressed(pixelgl.KeyK) {
		buttons |= 0x02
	}
	if win.Pressed(pixelgl.KeyRightShift) {
		buttons |= 0x04
	}
	if win.Pressed(pixelgl.KeyEnter) {
		buttons |= 0x08
	}
	if win.Pressed(pixelgl.KeyW) {
		buttons |= 0x10
	}
	if win.Pressed(pixelgl.KeyS) {
		buttons |= 0x20
	}
	if win.Pressed(pixelgl.KeyA) {
		buttons |= 0x40
	}
	if win.Pressed(pixelgl.KeyD) {
		buttons |= 0x80
	}
	emu.SetInput(0, buttons)
}
