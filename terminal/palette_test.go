package terminal

import "testing"

func TestRGBTo256KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		color    RGB
		expected uint8
	}{
		{"Pure black", RGB{0, 0, 0}, 16},
		{"Pure white", RGB{255, 255, 255}, 231},
		{"Pure red", RGB{255, 0, 0}, 196},             // cube 5,0,0
		{"Pure green", RGB{0, 255, 0}, 46},            // cube 0,5,0
		{"Pure blue", RGB{0, 0, 255}, 21},             // cube 0,0,5
		{"Mid gray", RGB{128, 128, 128}, 244},         // grayscale ramp, level 128
		{"Bright near gray", RGB{200, 205, 198}, 251}, // ramp level 198; channel sum exceeds uint8
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.color); got != tt.expected {
				t.Errorf("RGBTo256(%v) = %d, want %d", tt.color, got, tt.expected)
			}
		})
	}
}

func TestRGBTo256GrayscalePrefersRamp(t *testing.T) {
	// Near-gray values should land on the grayscale ramp, not the cube
	for _, v := range []uint8{40, 90, 150, 200} {
		idx := RGBTo256(RGB{v, v, v})
		if idx < grayscaleStart && idx != 16 && idx != 231 {
			t.Errorf("RGBTo256(gray %d) = %d, expected grayscale ramp index", v, idx)
		}
	}
}

func TestRGBTo16KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		color    RGB
		expected uint8
	}{
		{"Black", RGB{0, 0, 0}, 0},
		{"Bright red", RGB{255, 0, 0}, 9},
		{"Bright green", RGB{0, 255, 0}, 10},
		{"Bright white", RGB{255, 255, 255}, 15},
		{"Dark red", RGB{205, 0, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo16(tt.color); got != tt.expected {
				t.Errorf("RGBTo16(%v) = %d, want %d", tt.color, got, tt.expected)
			}
		})
	}
}

func TestRGBTo16Range(t *testing.T) {
	// Every input must land inside the 16-color palette
	samples := []RGB{
		{13, 200, 77}, {250, 250, 5}, {1, 1, 1}, {127, 0, 255}, {80, 80, 80},
	}
	for _, c := range samples {
		if idx := RGBTo16(c); idx > 15 {
			t.Errorf("RGBTo16(%v) = %d, out of range", c, idx)
		}
	}
}
