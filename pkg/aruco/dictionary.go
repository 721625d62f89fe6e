// Package aruco generates ArUco fiducial marker images from OpenCV's
// predefined dictionaries.
//
// The package owns dictionary name resolution, request validation, output
// naming, and PNG persistence. The marker bitmaps themselves (dictionary
// contents and error-correction coding) come from OpenCV through the
// Renderer and Detector interfaces; see opencv.go for the gocv-backed
// implementations.
package aruco

import (
	"sort"
	"strings"

	"gocv.io/x/gocv"

	"github.com/poqudrof/arucogen/pkg/errors"
)

// Dictionary describes one predefined ArUco dictionary.
type Dictionary struct {
	Name     string                   // canonical name, e.g. "DICT_6X6_100"
	Code     gocv.ArucoDictionaryCode // OpenCV predefined-dictionary identifier
	GridBits int                      // marker grid side length, excluding the border
	Capacity int                      // number of markers in the dictionary
}

// MinSidePixels returns the smallest usable marker image side for this
// dictionary: one pixel per module, including the border on both sides.
func (d Dictionary) MinSidePixels(borderBits int) int {
	return d.GridBits + 2*borderBits
}

// dictionaries is the fixed set of supported predefined dictionaries,
// mirroring OpenCV's DICT_* constants at the standard capacity tiers.
var dictionaries = map[string]Dictionary{
	"DICT_4X4_50":         {Name: "DICT_4X4_50", Code: gocv.ArucoDict4x4_50, GridBits: 4, Capacity: 50},
	"DICT_4X4_100":        {Name: "DICT_4X4_100", Code: gocv.ArucoDict4x4_100, GridBits: 4, Capacity: 100},
	"DICT_4X4_250":        {Name: "DICT_4X4_250", Code: gocv.ArucoDict4x4_250, GridBits: 4, Capacity: 250},
	"DICT_4X4_1000":       {Name: "DICT_4X4_1000", Code: gocv.ArucoDict4x4_1000, GridBits: 4, Capacity: 1000},
	"DICT_5X5_50":         {Name: "DICT_5X5_50", Code: gocv.ArucoDict5x5_50, GridBits: 5, Capacity: 50},
	"DICT_5X5_100":        {Name: "DICT_5X5_100", Code: gocv.ArucoDict5x5_100, GridBits: 5, Capacity: 100},
	"DICT_5X5_250":        {Name: "DICT_5X5_250", Code: gocv.ArucoDict5x5_250, GridBits: 5, Capacity: 250},
	"DICT_5X5_1000":       {Name: "DICT_5X5_1000", Code: gocv.ArucoDict5x5_1000, GridBits: 5, Capacity: 1000},
	"DICT_6X6_50":         {Name: "DICT_6X6_50", Code: gocv.ArucoDict6x6_50, GridBits: 6, Capacity: 50},
	"DICT_6X6_100":        {Name: "DICT_6X6_100", Code: gocv.ArucoDict6x6_100, GridBits: 6, Capacity: 100},
	"DICT_6X6_250":        {Name: "DICT_6X6_250", Code: gocv.ArucoDict6x6_250, GridBits: 6, Capacity: 250},
	"DICT_6X6_1000":       {Name: "DICT_6X6_1000", Code: gocv.ArucoDict6x6_1000, GridBits: 6, Capacity: 1000},
	"DICT_7X7_50":         {Name: "DICT_7X7_50", Code: gocv.ArucoDict7x7_50, GridBits: 7, Capacity: 50},
	"DICT_7X7_100":        {Name: "DICT_7X7_100", Code: gocv.ArucoDict7x7_100, GridBits: 7, Capacity: 100},
	"DICT_7X7_250":        {Name: "DICT_7X7_250", Code: gocv.ArucoDict7x7_250, GridBits: 7, Capacity: 250},
	"DICT_7X7_1000":       {Name: "DICT_7X7_1000", Code: gocv.ArucoDict7x7_1000, GridBits: 7, Capacity: 1000},
	"DICT_ARUCO_ORIGINAL": {Name: "DICT_ARUCO_ORIGINAL", Code: gocv.ArucoDictArucoOriginal, GridBits: 5, Capacity: 1024},
}

// LookupDictionary resolves a dictionary name to its definition.
// The lookup is case-exact; an unknown name returns an INVALID_DICTIONARY
// error listing close matches when any exist.
func LookupDictionary(name string) (Dictionary, error) {
	if err := errors.ValidateDictionaryName(name); err != nil {
		return Dictionary{}, err
	}

	d, ok := dictionaries[name]
	if !ok {
		if s := closeMatches(name); len(s) > 0 {
			return Dictionary{}, errors.New(errors.ErrCodeInvalidDictionary,
				"unsupported dictionary %q (did you mean %s?)", name, strings.Join(s, ", "))
		}
		return Dictionary{}, errors.New(errors.ErrCodeInvalidDictionary,
			"unsupported dictionary %q (run 'arucogen dicts' for the supported set)", name)
	}
	return d, nil
}

// DictionaryNames returns the supported dictionary names in sorted order.
func DictionaryNames() []string {
	names := make([]string, 0, len(dictionaries))
	for name := range dictionaries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dictionaries returns the supported dictionaries sorted by name.
func Dictionaries() []Dictionary {
	out := make([]Dictionary, 0, len(dictionaries))
	for _, name := range DictionaryNames() {
		out = append(out, dictionaries[name])
	}
	return out
}

// closeMatches returns supported names sharing the grid prefix of an unknown
// name, e.g. "DICT_6X6_99" suggests the DICT_6X6_* tiers.
func closeMatches(name string) []string {
	parts := strings.SplitN(name, "_", 3)
	if len(parts) < 2 {
		return nil
	}
	prefix := parts[0] + "_" + parts[1] + "_"

	var matches []string
	for _, candidate := range DictionaryNames() {
		if strings.HasPrefix(candidate, prefix) {
			matches = append(matches, candidate)
		}
	}
	return matches
}
