package debayer

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// Shared raw inputs, fixed pseudo-random bytes so the expected outputs
// below stay stable.
var (
	raw4 = []byte{
		229, 67, 95, 146,
		232, 51, 229, 241,
		169, 161, 15, 52,
		45, 175, 98, 197,
	}
	raw3 = []byte{
		229, 67, 95,
		146, 232, 51,
		229, 241, 169,
	}
	raw8 = []byte{
		229, 67, 95, 146, 232, 51, 229, 241,
		169, 161, 15, 52, 45, 175, 98, 197,
		127, 183, 253, 97, 199, 239, 54, 166,
		32, 68, 98, 3, 97, 222, 87, 123,
		153, 126, 47, 211, 171, 203, 27, 185,
		105, 210, 165, 200, 141, 135, 202, 5,
		122, 187, 177, 122, 220, 112, 62, 18,
		25, 80, 132, 169, 104, 233, 75, 117,
	}
)

func runGolden(t *testing.T, src []byte, w, h int, alg Algorithm, want []byte) {
	t.Helper()
	buf := make([]byte, 3*w*h)
	dst, err := NewRaster(w, h, RasterDepth8, buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := Demosaic(src, Depth8, RGGB, alg, dst); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, want) {
		t.Errorf("output mismatch\n got %v\nwant %v", buf, want)
	}
}

func TestNoneGolden(t *testing.T) {
	runGolden(t, raw4, 4, 4, None, []byte{
		229, 0, 0, 0, 67, 0, 95, 0, 0, 0, 146, 0,
		0, 232, 0, 0, 0, 51, 0, 229, 0, 0, 0, 241,
		169, 0, 0, 0, 161, 0, 15, 0, 0, 0, 52, 0,
		0, 45, 0, 0, 0, 175, 0, 98, 0, 0, 0, 197,
	})
}

func TestNearestNeighbourGolden(t *testing.T) {
	t.Run("even", func(t *testing.T) {
		runGolden(t, raw4, 4, 4, NearestNeighbour, []byte{
			229, 232, 51, 229, 67, 51, 95, 229, 241, 95, 146, 241,
			229, 232, 51, 229, 67, 51, 95, 229, 241, 95, 146, 241,
			169, 45, 175, 169, 161, 175, 15, 98, 197, 15, 52, 197,
			169, 45, 175, 169, 161, 175, 15, 98, 197, 15, 52, 197,
		})
	})
	t.Run("odd", func(t *testing.T) {
		runGolden(t, raw3, 3, 3, NearestNeighbour, []byte{
			229, 146, 232, 229, 67, 232, 95, 51, 232,
			229, 146, 232, 229, 67, 232, 95, 51, 232,
			229, 146, 232, 229, 241, 232, 169, 51, 232,
		})
	})
}

func TestLinearGolden(t *testing.T) {
	t.Run("even", func(t *testing.T) {
		runGolden(t, raw4, 4, 4, Linear, []byte{
			229, 189, 144, 162, 67, 59, 95, 134, 126, 120, 146, 193,
			199, 232, 141, 127, 172, 51, 55, 229, 146, 77, 167, 241,
			169, 151, 125, 92, 161, 113, 15, 135, 166, 33, 52, 219,
			107, 45, 110, 81, 119, 175, 56, 98, 186, 90, 136, 197,
		})
	})
	t.Run("odd", func(t *testing.T) {
		runGolden(t, raw3, 3, 3, Linear, []byte{
			229, 167, 168, 162, 67, 149, 95, 77, 111,
			229, 146, 189, 180, 126, 232, 132, 51, 141,
			229, 211, 212, 199, 241, 236, 169, 157, 173,
		})
	})
}

func TestLinearGoldenGRBG(t *testing.T) {
	buf := make([]byte, 3*4*4)
	dst, err := NewRaster(4, 4, RasterDepth8, buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := Demosaic(raw4, Depth8, GRBG, Linear, dst); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		148, 229, 230, 67, 110, 196, 106, 95, 162, 146, 157, 177,
		156, 170, 232, 114, 51, 230, 106, 100, 229, 99, 241, 235,
		165, 169, 138, 161, 102, 151, 106, 15, 163, 52, 126, 191,
		137, 108, 45, 168, 175, 71, 146, 121, 98, 124, 197, 147,
	}
	if !bytes.Equal(buf, want) {
		t.Errorf("output mismatch\n got %v\nwant %v", buf, want)
	}
}

func TestCubicGolden(t *testing.T) {
	runGolden(t, raw8, 8, 8, Cubic, []byte{
		229, 182, 164, 153, 67, 119, 95, 62, 104, 155, 146, 102, 232, 118, 97, 238, 51, 110, 229, 148, 167, 234, 241, 223,
		176, 169, 171, 179, 101, 161, 186, 15, 98, 207, 60, 52, 217, 45, 105, 178, 93, 175, 143, 98, 193, 168, 176, 197,
		127, 132, 108, 193, 183, 111, 253, 95, 48, 242, 97, 9, 199, 122, 107, 116, 239, 211, 54, 149, 200, 100, 166, 164,
		135, 32, 54, 141, 103, 68, 151, 98, 24, 176, 121, 3, 179, 97, 114, 95, 159, 222, 27, 87, 186, 94, 133, 123,
		153, 97, 105, 92, 126, 141, 47, 157, 120, 111, 211, 100, 171, 168, 142, 96, 203, 175, 27, 184, 118, 97, 185, 52,
		145, 105, 158, 117, 154, 210, 101, 165, 215, 158, 167, 200, 201, 141, 175, 124, 179, 135, 42, 202, 65, 59, 99, 5,
		122, 111, 109, 146, 187, 153, 177, 159, 181, 211, 122, 196, 220, 104, 198, 146, 112, 178, 62, 91, 114, 30, 18, 53,
		71, 25, 46, 116, 105, 80, 162, 132, 123, 175, 128, 169, 165, 104, 213, 118, 135, 233, 70, 75, 179, 57, 74, 117,
	})
}

// A bright field with a dark cross drives the negative kernel lobes past
// the value range in both directions; results must clamp, not wrap.
func TestCubicSaturation(t *testing.T) {
	src := []byte{
		255, 255, 255, 255, 255, 255, 255,
		255, 255, 255, 255, 255, 255, 255,
		255, 255, 255, 0, 255, 255, 255,
		255, 255, 0, 0, 0, 255, 255,
		255, 255, 255, 0, 255, 255, 255,
		255, 255, 255, 255, 255, 255, 255,
		255, 255, 255, 255, 255, 255, 255,
	}
	runGolden(t, src, 7, 7, Cubic, []byte{
		255, 255, 254, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 254,
		255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 191, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
		255, 255, 255, 255, 255, 255, 255, 111, 174, 255, 0, 111, 255, 111, 174, 255, 255, 255, 255, 255, 255,
		255, 255, 255, 255, 191, 255, 255, 0, 111, 255, 0, 0, 255, 0, 111, 255, 191, 255, 255, 255, 255,
		255, 255, 255, 255, 255, 255, 255, 111, 174, 255, 0, 111, 255, 111, 174, 255, 255, 255, 255, 255, 255,
		255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 191, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
		255, 255, 254, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 254,
	})
}

// 16-bit pipeline: the 4x4 input scaled by 257, fed in both byte orders,
// must land big-endian in the raster.
func TestLinearGolden16(t *testing.T) {
	want16 := []uint16{
		58853, 48637, 37200, 41634, 17219, 15163, 24415, 34502, 32446, 30968, 37522, 49729,
		51143, 59624, 36365, 32639, 44268, 13107, 14135, 58853, 37522, 19789, 42919, 61937,
		43433, 38999, 32317, 23644, 41377, 29041, 3855, 34695, 42662, 8609, 13364, 56283,
		27499, 11565, 28270, 21009, 30775, 44975, 14520, 25186, 47802, 23258, 34952, 50629,
	}
	want := make([]byte, 2*len(want16))
	for i, v := range want16 {
		binary.BigEndian.PutUint16(want[2*i:], v)
	}

	for _, tc := range []struct {
		name  string
		depth RawDepth
		order binary.ByteOrder
	}{
		{"little-endian source", Depth16LE, binary.LittleEndian},
		{"big-endian source", Depth16BE, binary.BigEndian},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := make([]byte, 2*len(raw4))
			for i, v := range raw4 {
				tc.order.PutUint16(src[2*i:], uint16(v)*257)
			}
			buf := make([]byte, 6*4*4)
			dst, err := NewRaster(4, 4, RasterDepth16, buf)
			if err != nil {
				t.Fatal(err)
			}
			if err := Demosaic(src, tc.depth, RGGB, Linear, dst); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf, want) {
				t.Errorf("output mismatch\n got %v\nwant %v", buf, want)
			}
		})
	}
}
