package aruco

import (
	"fmt"

	"github.com/poqudrof/arucogen/pkg/errors"
)

// DefaultBorderBits is the marker border width in modules used when a
// request does not specify one. Matches OpenCV's default.
const DefaultBorderBits = 1

// Request describes a single marker to generate.
type Request struct {
	Dictionary string // dictionary name, e.g. "DICT_6X6_100"
	ID         int    // marker identifier within the dictionary
	SidePixels int    // output image side length in pixels
	BorderBits int    // border width in modules (0 means DefaultBorderBits)
}

// Resolve validates the request and returns the resolved dictionary.
//
// The checks happen before the external rendering call: OpenCV aborts the
// process on an out-of-range id rather than returning an error, so the
// bounds are enforced here where they can be reported.
func (r Request) Resolve() (Dictionary, error) {
	d, err := LookupDictionary(r.Dictionary)
	if err != nil {
		return Dictionary{}, err
	}

	if r.ID < 0 || r.ID >= d.Capacity {
		return Dictionary{}, errors.New(errors.ErrCodeInvalidMarkerID,
			"marker id %d out of range for %s (valid ids: 0..%d)", r.ID, d.Name, d.Capacity-1)
	}

	border := r.BorderBits
	if border == 0 {
		border = DefaultBorderBits
	}
	if border < 0 {
		return Dictionary{}, errors.New(errors.ErrCodeInvalidSize,
			"border width must be positive, got %d", border)
	}

	if min := d.MinSidePixels(border); r.SidePixels < min {
		return Dictionary{}, errors.New(errors.ErrCodeInvalidSize,
			"size %d too small for %s with border %d (minimum %d pixels)",
			r.SidePixels, d.Name, border, min)
	}

	return d, nil
}

// border returns the effective border width for the request.
func (r Request) border() int {
	if r.BorderBits == 0 {
		return DefaultBorderBits
	}
	return r.BorderBits
}

// Filename returns the output file name for the request,
// e.g. "DICT_6X6_100_id5.png".
func (r Request) Filename() string {
	return fmt.Sprintf("%s_id%d.png", r.Dictionary, r.ID)
}
