package aruco

import (
	"image"
	"path/filepath"

	"github.com/poqudrof/arucogen/pkg/errors"
)

// DefaultOutputDir is where marker files land when no directory is given.
const DefaultOutputDir = "images"

// Renderer produces the raster image for a single marker. Implementations
// own the dictionary contents and error-correction coding; see
// OpenCVRenderer for the production implementation.
type Renderer interface {
	RenderMarker(d Dictionary, id, sidePixels, borderBits int) (image.Image, error)
}

// Generator validates marker requests, renders them through a Renderer, and
// persists the results as PNG files under a fixed output directory.
type Generator struct {
	renderer Renderer
	outDir   string
}

// NewGenerator creates a Generator writing into outDir.
// An empty outDir falls back to DefaultOutputDir.
func NewGenerator(r Renderer, outDir string) (*Generator, error) {
	if outDir == "" {
		outDir = DefaultOutputDir
	}
	if err := errors.ValidateOutputDir(outDir); err != nil {
		return nil, err
	}
	return &Generator{renderer: r, outDir: outDir}, nil
}

// OutputDir returns the directory the generator writes into.
func (g *Generator) OutputDir() string {
	return g.outDir
}

// OutputPath returns the path a request would be written to,
// e.g. "images/DICT_6X6_100_id5.png".
func (g *Generator) OutputPath(req Request) string {
	return filepath.Join(g.outDir, req.Filename())
}

// Generate validates req, renders the marker, and writes it as a PNG.
// It returns the written path. On any validation failure no file is
// produced.
func (g *Generator) Generate(req Request) (string, error) {
	d, err := req.Resolve()
	if err != nil {
		return "", err
	}

	img, err := g.renderer.RenderMarker(d, req.ID, req.SidePixels, req.border())
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRender, err,
			"render %s id %d", d.Name, req.ID)
	}

	path := g.OutputPath(req)
	if err := WriteImage(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateSheet renders the markers for ids at the given size and composes
// them into a single printable page written to filename under the output
// directory. It returns the written path.
func (g *Generator) GenerateSheet(dictionary string, ids []int, sidePixels, borderBits int, opts SheetOptions, filename string) (string, error) {
	if len(ids) == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "sheet needs at least one marker id")
	}

	tiles := make([]image.Image, 0, len(ids))
	for _, id := range ids {
		req := Request{Dictionary: dictionary, ID: id, SidePixels: sidePixels, BorderBits: borderBits}
		d, err := req.Resolve()
		if err != nil {
			return "", err
		}
		tile, err := g.renderer.RenderMarker(d, id, sidePixels, req.border())
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeRender, err,
				"render %s id %d", dictionary, id)
		}
		tiles = append(tiles, tile)
	}

	page, err := ComposeSheet(tiles, opts)
	if err != nil {
		return "", err
	}

	if filename == "" {
		filename = dictionary + "_sheet.png"
	}
	path := filepath.Join(g.outDir, filename)
	if err := WriteImage(path, page); err != nil {
		return "", err
	}
	return path, nil
}
