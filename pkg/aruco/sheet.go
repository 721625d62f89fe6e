package aruco

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/poqudrof/arucogen/pkg/errors"
)

// SheetOptions controls how markers are arranged on a printable page.
type SheetOptions struct {
	Columns int // tiles per row (default 4)
	Margin  int // pixels around the page and between tiles (default 20)
}

// defaults for ComposeSheet.
const (
	defaultSheetColumns = 4
	defaultSheetMargin  = 20
)

// ComposeSheet lays the marker tiles out on a white page, left to right,
// top to bottom. All tiles must share the same square size.
func ComposeSheet(tiles []image.Image, opts SheetOptions) (image.Image, error) {
	if len(tiles) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "sheet needs at least one tile")
	}

	cols := opts.Columns
	if cols <= 0 {
		cols = defaultSheetColumns
	}
	if cols > len(tiles) {
		cols = len(tiles)
	}
	margin := opts.Margin
	if margin < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "margin must be non-negative, got %d", margin)
	}
	if opts.Margin == 0 {
		margin = defaultSheetMargin
	}

	side := tiles[0].Bounds().Dx()
	for i, t := range tiles {
		b := t.Bounds()
		if b.Dx() != side || b.Dy() != side {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"tile %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), side, side)
		}
	}

	rows := (len(tiles) + cols - 1) / cols
	width := cols*side + (cols+1)*margin
	height := rows*side + (rows+1)*margin

	page := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(page, page.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	for i, t := range tiles {
		col := i % cols
		row := i / cols
		x := margin + col*(side+margin)
		y := margin + row*(side+margin)
		xdraw.Copy(page, image.Pt(x, y), t, t.Bounds(), xdraw.Src, nil)
	}

	return page, nil
}
