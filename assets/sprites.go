package assets

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteName identifies one of the built-in pixel sprites.
type SpriteName string

const (
	SpritePackage    SpriteName = "package"
	SpriteLuigiIdle  SpriteName = "luigi_idle"
	SpriteLuigiBrace SpriteName = "luigi_brace"
	SpriteMarioIdle  SpriteName = "mario_idle"
	SpriteMarioBrace SpriteName = "mario_brace"
	SpriteBoss       SpriteName = "boss"
	SpriteMissIcon   SpriteName = "miss_icon"
	SpriteTruck      SpriteName = "truck"
)

// SpriteLoader renders the game's pixel art at runtime so the repo carries
// no binary assets. Each sprite is drawn from a character grid once and
// cached.
type SpriteLoader struct {
	cache map[SpriteName]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		cache: make(map[SpriteName]*ebiten.Image),
	}
}

func (l *SpriteLoader) MustLoadSprite(name SpriteName) *ebiten.Image {
	if img, ok := l.cache[name]; ok {
		return img
	}

	var img *ebiten.Image
	if def, ok := spriteDefs[name]; ok {
		img = renderGrid(def.grid, def.palette)
	} else if name == SpriteTruck {
		img = buildTruck()
	} else {
		panic(fmt.Sprintf("Sprite %s not found", name))
	}

	l.cache[name] = img
	return img
}

var spriteLoader = NewSpriteLoader()

// GetSprite returns a cached sprite image, building it on first use.
func GetSprite(name SpriteName) *ebiten.Image {
	return spriteLoader.MustLoadSprite(name)
}

// renderGrid rasterizes a character grid through its palette. Characters
// missing from the palette stay transparent.
func renderGrid(grid []string, palette map[byte]color.RGBA) *ebiten.Image {
	h := len(grid)
	w := len(grid[0])
	buf := make([]byte, 4*w*h)
	for y, row := range grid {
		for x := 0; x < len(row) && x < w; x++ {
			c, ok := palette[row[x]]
			if !ok {
				continue
			}
			i := 4 * (y*w + x)
			buf[i] = c.R
			buf[i+1] = c.G
			buf[i+2] = c.B
			buf[i+3] = c.A
		}
	}
	img := ebiten.NewImage(w, h)
	img.WritePixels(buf)
	return img
}

type spriteDef struct {
	grid    []string
	palette map[byte]color.RGBA
}

var (
	skin     = color.RGBA{R: 252, G: 216, B: 168, A: 255}
	dark     = color.RGBA{R: 24, G: 20, B: 16, A: 255}
	mustache = color.RGBA{R: 96, G: 56, B: 8, A: 255}
	overalls = color.RGBA{R: 40, G: 64, B: 152, A: 255}
	boots    = color.RGBA{R: 88, G: 56, B: 24, A: 255}
)

// lifterPalette parameterizes the shared lifter grid by cap and shirt color.
func lifterPalette(cap color.RGBA) map[byte]color.RGBA {
	return map[byte]color.RGBA{
		'c': cap,
		'f': skin,
		'd': dark,
		'm': mustache,
		'v': overalls,
		'b': boots,
	}
}

// Base pose faces right, toward the incoming packages. The right-side
// character is drawn flipped.
var lifterIdleGrid = []string{
	"...cccccc...",
	"..cccccccc..",
	"...ffffff...",
	"...fdffdf...",
	"...mmmmmm...",
	"...cccccc...",
	"..fcvvvvcf..",
	"..f.vvvv.f..",
	"....vvvv....",
	"....vvvv....",
	"....vvvv....",
	"....v..v....",
	"....v..v....",
	"....v..v....",
	"...bb..bb...",
	"...bb..bb...",
}

var lifterBraceGrid = []string{
	"...cccccc...",
	"..cccccccc..",
	"...ffffff...",
	"...fdffdf...",
	"...mmmmmm...",
	"...cccccc...",
	"..cvvvvcff..",
	"....vvvvcff.",
	"....vvvv....",
	"....vvvv....",
	"....vvvv....",
	"....v..v....",
	"...v....v...",
	"...v....v...",
	"..bb....bb..",
	"..bb....bb..",
}

var packageGrid = []string{
	".oooooo.",
	"obbssbbo",
	"obbssbbo",
	"osssssso",
	"obbssbbo",
	"obbssbbo",
	"osssssso",
	".oooooo.",
}

var bossGrid = []string{
	"....cccccccc....",
	"...cccccccccc...",
	"...ffffffffff...",
	"...fddffffddf...",
	"...ffffffffff...",
	"...fmmmmmmmmf...",
	"...ffmmmmmmff...",
	"....ffffffff....",
	"...ssssssssss...",
	"..ssssssssssss..",
	"..ssssssssssss..",
	"..sffssssssffs..",
	"..ssssssssssss..",
	"..ssssssssssss..",
	"..ssssssssssss..",
	"..ssssssssssss..",
	"..ssssssssssss..",
	"..ssssssssssss..",
	"..ssssssssssss..",
	"..ssssssssssss..",
	"..ssssssssssss..",
	"..ssssssssssss..",
	"..ssssssssssss..",
	"..ssssssssssss..",
}

var missIconGrid = []string{
	".cccccc.",
	"ffffffff",
	"fddffddf",
	"ffffffff",
	"fmmmmmmf",
	"ffffffff",
	".ffffff.",
	"........",
}

var spriteDefs = map[SpriteName]spriteDef{
	SpritePackage: {
		grid: packageGrid,
		palette: map[byte]color.RGBA{
			'o': {R: 92, G: 58, B: 24, A: 255},
			'b': {R: 168, G: 108, B: 48, A: 255},
			's': {R: 224, G: 184, B: 120, A: 255},
		},
	},
	SpriteLuigiIdle: {
		grid:    lifterIdleGrid,
		palette: lifterPalette(color.RGBA{R: 0, G: 168, B: 68, A: 255}),
	},
	SpriteLuigiBrace: {
		grid:    lifterBraceGrid,
		palette: lifterPalette(color.RGBA{R: 0, G: 168, B: 68, A: 255}),
	},
	SpriteMarioIdle: {
		grid:    lifterIdleGrid,
		palette: lifterPalette(color.RGBA{R: 216, G: 40, B: 0, A: 255}),
	},
	SpriteMarioBrace: {
		grid:    lifterBraceGrid,
		palette: lifterPalette(color.RGBA{R: 216, G: 40, B: 0, A: 255}),
	},
	SpriteBoss: {
		grid: bossGrid,
		palette: map[byte]color.RGBA{
			'c': {R: 36, G: 52, B: 96, A: 255},
			'f': skin,
			'd': dark,
			'm': mustache,
			's': {R: 148, G: 96, B: 40, A: 255},
		},
	},
	SpriteMissIcon: {
		grid: missIconGrid,
		palette: map[byte]color.RGBA{
			'c': {R: 36, G: 52, B: 96, A: 255},
			'f': skin,
			'd': dark,
			'm': mustache,
		},
	},
}

// buildTruck assembles the delivery truck from flat rectangles; a grid at
// 48x24 would be unreadable. The cab faces left, the drive direction.
func buildTruck() *ebiten.Image {
	const w, h = 48, 24
	buf := make([]byte, 4*w*h)

	cab := color.RGBA{R: 232, G: 176, B: 24, A: 255}
	bed := color.RGBA{R: 180, G: 186, B: 178, A: 255}
	slat := color.RGBA{R: 140, G: 146, B: 138, A: 255}
	glass := color.RGBA{R: 150, G: 200, B: 240, A: 255}
	frame := color.RGBA{R: 40, G: 40, B: 40, A: 255}
	hub := color.RGBA{R: 130, G: 130, B: 130, A: 255}

	fillRect(buf, w, 16, 2, 32, 14, bed)
	for x := 20; x < 48; x += 6 {
		fillRect(buf, w, x, 3, 1, 12, slat)
	}
	fillRect(buf, w, 0, 6, 16, 10, cab)
	fillRect(buf, w, 2, 8, 5, 5, glass)
	fillRect(buf, w, 0, 16, 48, 3, frame)
	fillRect(buf, w, 4, 17, 8, 7, frame)
	fillRect(buf, w, 7, 19, 2, 2, hub)
	fillRect(buf, w, 34, 17, 8, 7, frame)
	fillRect(buf, w, 37, 19, 2, 2, hub)

	img := ebiten.NewImage(w, h)
	img.WritePixels(buf)
	return img
}

func fillRect(buf []byte, stride, x, y, rw, rh int, c color.RGBA) {
	for dy := 0; dy < rh; dy++ {
		for dx := 0; dx < rw; dx++ {
			i := 4 * ((y+dy)*stride + x + dx)
			buf[i] = c.R
			buf[i+1] = c.G
			buf[i+2] = c.B
			buf[i+3] = c.A
		}
	}
}
