package imagegen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/jalrakshak/jalrakshak/internal/risk"
)

// CardWidth and CardHeight are the standard Open Graph image dimensions.
const (
	CardWidth  = 1200
	CardHeight = 630
)

var (
	fontTitle font.Face
	fontBody  font.Face
	fontSmall font.Face
	fontOnce  sync.Once
	fontErr   error

	// Faces cache glyphs and are not safe for concurrent use.
	drawMu sync.Mutex
)

var faces = []struct {
	dst  *font.Face
	data []byte
	size float64
}{
	{&fontTitle, gobold.TTF, 120},
	{&fontBody, goregular.TTF, 40},
	{&fontSmall, goregular.TTF, 28},
}

func loadFonts() {
	fontOnce.Do(func() {
		for _, fo := range faces {
			f, err := opentype.Parse(fo.data)
			if err != nil {
				fontErr = fmt.Errorf("parse font: %w", err)
				return
			}
			face, err := opentype.NewFace(f, &opentype.FaceOptions{
				Size:    fo.size,
				DPI:     72,
				Hinting: font.HintingFull,
			})
			if err != nil {
				fontErr = fmt.Errorf("create face: %w", err)
				return
			}
			*fo.dst = face
		}
	})
}

// CardData is what a share card shows.
type CardData struct {
	Level      risk.Level
	Confidence int
	Location   string // e.g. "Dhubri, Assam"
	Rainfall   string
	RiverLevel string
}

// levelColor is the base background colour per risk level.
func levelColor(l risk.Level) color.RGBA {
	switch l {
	case risk.LevelCritical:
		return color.RGBA{185, 28, 28, 255}
	case risk.LevelHigh:
		return color.RGBA{194, 65, 12, 255}
	case risk.LevelMedium:
		return color.RGBA{180, 120, 9, 255}
	default:
		return color.RGBA{4, 120, 87, 255}
	}
}

// GenerateCard renders a PNG share card for a report.
func GenerateCard(data CardData) ([]byte, error) {
	loadFonts()
	if fontErr != nil {
		return nil, fmt.Errorf("load fonts: %w", fontErr)
	}

	img := image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))
	drawBackground(img, levelColor(data.Level))

	drawMu.Lock()
	drawTextOverlay(img, data)
	drawMu.Unlock()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode card: %w", err)
	}
	return buf.Bytes(), nil
}

// drawBackground fills a vertical gradient from base to a darker shade.
func drawBackground(img *image.RGBA, base color.RGBA) {
	for y := 0; y < CardHeight; y++ {
		progress := float64(y) / float64(CardHeight)
		shade := 1 - progress*0.55
		c := color.RGBA{
			R: uint8(float64(base.R) * shade),
			G: uint8(float64(base.G) * shade),
			B: uint8(float64(base.B) * shade),
			A: 255,
		}
		for x := 0; x < CardWidth; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawTextOverlay(img *image.RGBA, data CardData) {
	white := color.RGBA{255, 255, 255, 255}
	lightGray := color.RGBA{230, 230, 230, 255}

	drawText(img, "JALRAKSHAK FLOOD RISK", 60, 80, lightGray, fontSmall)
	drawText(img, strings.ToUpper(string(data.Level)), 60, 230, white, fontTitle)

	if data.Location != "" {
		drawText(img, data.Location, 60, 310, white, fontBody)
	}
	drawText(img, fmt.Sprintf("Confidence %d%%", data.Confidence), 60, 380, lightGray, fontBody)

	if data.Rainfall != "" {
		drawText(img, "Rainfall: "+data.Rainfall, 60, 460, lightGray, fontSmall)
	}
	if data.RiverLevel != "" {
		drawText(img, "River: "+data.RiverLevel, 60, 505, lightGray, fontSmall)
	}

	drawText(img, "Simulated demo data. Not an official warning.", 60, CardHeight-40, lightGray, fontSmall)
}

// drawText draws text at the given position using the specified font face.
func drawText(img *image.RGBA, text string, x, y int, col color.Color, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
