package aruco

import (
	"testing"

	"github.com/poqudrof/arucogen/pkg/errors"
)

func TestRequestResolve(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		wantCode errors.Code // empty means success
	}{
		{"valid", Request{Dictionary: "DICT_6X6_100", ID: 5, SidePixels: 200}, ""},
		{"valid at capacity edge", Request{Dictionary: "DICT_4X4_50", ID: 49, SidePixels: 100}, ""},
		{"valid original", Request{Dictionary: "DICT_ARUCO_ORIGINAL", ID: 1023, SidePixels: 64}, ""},
		{"valid minimal size", Request{Dictionary: "DICT_6X6_100", ID: 0, SidePixels: 8}, ""},
		{"valid wide border", Request{Dictionary: "DICT_6X6_100", ID: 0, SidePixels: 10, BorderBits: 2}, ""},
		{"unknown dictionary", Request{Dictionary: "DICT_9X9_1", ID: 0, SidePixels: 100}, errors.ErrCodeInvalidDictionary},
		{"id at capacity", Request{Dictionary: "DICT_4X4_50", ID: 50, SidePixels: 100}, errors.ErrCodeInvalidMarkerID},
		{"negative id", Request{Dictionary: "DICT_6X6_100", ID: -1, SidePixels: 100}, errors.ErrCodeInvalidMarkerID},
		{"size below grid", Request{Dictionary: "DICT_6X6_100", ID: 0, SidePixels: 7}, errors.ErrCodeInvalidSize},
		{"size below grid with border", Request{Dictionary: "DICT_6X6_100", ID: 0, SidePixels: 9, BorderBits: 2}, errors.ErrCodeInvalidSize},
		{"negative border", Request{Dictionary: "DICT_6X6_100", ID: 0, SidePixels: 100, BorderBits: -1}, errors.ErrCodeInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.req.Resolve()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Resolve() = %v, want nil", err)
				}
				if d.Name != tt.req.Dictionary {
					t.Errorf("resolved %q, want %q", d.Name, tt.req.Dictionary)
				}
				return
			}
			if err == nil {
				t.Fatal("Resolve() = nil, want error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestRequestFilename(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"basic", Request{Dictionary: "DICT_6X6_100", ID: 5}, "DICT_6X6_100_id5.png"},
		{"zero id", Request{Dictionary: "DICT_4X4_50", ID: 0}, "DICT_4X4_50_id0.png"},
		{"original", Request{Dictionary: "DICT_ARUCO_ORIGINAL", ID: 1023}, "DICT_ARUCO_ORIGINAL_id1023.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Filename(); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}
