package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/swatch/internal/colour"
)

const (
	sheetGap       = 16
	sheetHeader    = 64
	sheetFooter    = 90 - sheetHeader
	sheetLabelArea = 40
)

var (
	sheetBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	sheetInk        = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	sheetMuted      = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	sheetRule       = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
)

// SheetOptions controls the layout of a PNG palette sheet.
type SheetOptions struct {
	Title        string
	Subtitle     string
	SwatchWidth  int
	SwatchHeight int
	Padding      int
	Columns      int
}

// DefaultSheetOptions returns the standard sheet layout.
func DefaultSheetOptions() SheetOptions {
	return SheetOptions{
		Title:        DefaultPaletteName,
		SwatchWidth:  180,
		SwatchHeight: 160,
		Padding:      40,
		Columns:      6,
	}
}

// Validate checks the layout dimensions.
func (o SheetOptions) Validate() error {
	if o.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", o.Columns)
	}
	if o.SwatchWidth < 1 || o.SwatchHeight <= sheetLabelArea {
		return fmt.Errorf("swatch must be at least 1x%d, got %dx%d", sheetLabelArea+1, o.SwatchWidth, o.SwatchHeight)
	}
	if o.Padding < 0 {
		return fmt.Errorf("padding cannot be negative, got %d", o.Padding)
	}
	return nil
}

// SheetSize returns the pixel dimensions of a sheet holding n swatches.
func (o SheetOptions) SheetSize(n int) (width, height int) {
	rows := (n + o.Columns - 1) / o.Columns
	width = o.Padding*2 + o.Columns*o.SwatchWidth + (o.Columns-1)*sheetGap
	height = o.Padding*2 + sheetHeader + rows*o.SwatchHeight + (rows-1)*sheetGap + sheetFooter
	return width, height
}

// SwatchOrigin returns the top-left corner of the i-th swatch block.
func (o SheetOptions) SwatchOrigin(i int) image.Point {
	col, row := i%o.Columns, i/o.Columns
	return image.Point{
		X: o.Padding + col*(o.SwatchWidth+sheetGap),
		Y: o.Padding + sheetHeader + row*(o.SwatchHeight+sheetGap),
	}
}

// RenderSheet draws the palette as a grid of labelled swatches on white.
func RenderSheet(palette *colour.Palette, opts SheetOptions) (*image.RGBA, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if palette.Len() == 0 {
		return nil, errors.New("cannot render an empty palette")
	}
	if opts.Subtitle == "" {
		opts.Subtitle = fmt.Sprintf("%d colours", palette.Len())
	}

	width, height := opts.SheetSize(palette.Len())
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	drawText(img, opts.Title, opts.Padding, opts.Padding+8, sheetInk)
	drawText(img, opts.Subtitle, opts.Padding, opts.Padding+36, sheetMuted)

	for i, s := range palette.All() {
		pt := opts.SwatchOrigin(i)
		block := image.Rect(pt.X, pt.Y, pt.X+opts.SwatchWidth, pt.Y+opts.SwatchHeight-sheetLabelArea)
		fill := color.RGBA{R: s.R, G: s.G, B: s.B, A: 0xff}
		draw.Draw(img, block, image.NewUniform(fill), image.Point{}, draw.Src)

		rule := image.Rect(pt.X, block.Max.Y, pt.X+opts.SwatchWidth, block.Max.Y+1)
		draw.Draw(img, rule, image.NewUniform(sheetRule), image.Point{}, draw.Src)

		label := Hex(s.RGB)
		if s.Locked {
			label += " locked"
		}
		drawText(img, label, pt.X+12, pt.Y+opts.SwatchHeight-16, sheetInk)
	}

	return img, nil
}

// WritePNG renders the palette sheet and encodes it as PNG.
func WritePNG(w io.Writer, palette *colour.Palette, opts SheetOptions) error {
	img, err := RenderSheet(palette, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode palette sheet: %w", err)
	}
	return nil
}

// drawText writes text with its baseline at (x, y).
func drawText(dst draw.Image, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
