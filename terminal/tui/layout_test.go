package tui

import "testing"

func TestCenterStart(t *testing.T) {
	tests := []struct {
		name      string
		parentDim int
		dim       int
		expected  int
	}{
		{"Standard viewport width", 80, 54, 13},
		{"Standard viewport height", 24, 8, 8},
		{"Exact fit", 54, 54, 0},
		{"Parent smaller", 40, 54, 0},
		{"Parent much smaller", 6, 8, 0},
		{"Odd leftover floors", 11, 4, 3},
		{"Zero parent", 0, 10, 0},
		{"Zero dim", 10, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenterStart(tt.parentDim, tt.dim); got != tt.expected {
				t.Errorf("CenterStart(%d, %d) = %d, want %d", tt.parentDim, tt.dim, got, tt.expected)
			}
		})
	}
}

func TestCenterStartProperties(t *testing.T) {
	// For all parentDim, dim >= 0: result is 0 when parentDim <= dim,
	// (parentDim-dim)/2 otherwise, and always <= parentDim
	for p := 0; p <= 100; p++ {
		for d := 0; d <= 100; d += 3 {
			got := CenterStart(p, d)
			if p <= d && got != 0 {
				t.Fatalf("CenterStart(%d, %d) = %d, want 0", p, d, got)
			}
			if p > d && got != (p-d)/2 {
				t.Fatalf("CenterStart(%d, %d) = %d, want %d", p, d, got, (p-d)/2)
			}
			if got > p {
				t.Fatalf("CenterStart(%d, %d) = %d, exceeds parent", p, d, got)
			}
		}
	}
}

func TestCenterPlacement(t *testing.T) {
	// Scenario: 80x24 viewport, 54x8 dialog -> origin (13, 8)
	root := newTestRegion(80, 24)
	dialog := Center(root, 54, 8)
	if dialog.X != 13 || dialog.Y != 8 {
		t.Errorf("Expected dialog origin (13,8), got (%d,%d)", dialog.X, dialog.Y)
	}
	if dialog.W != 54 || dialog.H != 8 {
		t.Errorf("Expected dialog size 54x8, got %dx%d", dialog.W, dialog.H)
	}
}

func TestCenterUndersizedViewport(t *testing.T) {
	// Scenario: 40x6 viewport, smaller than the dialog in both axes ->
	// dialog anchors at (0,0) and clips, no failure
	root := newTestRegion(40, 6)
	dialog := Center(root, 54, 8)
	if dialog.X != 0 || dialog.Y != 0 {
		t.Errorf("Expected clipped dialog origin (0,0), got (%d,%d)", dialog.X, dialog.Y)
	}
	if dialog.W != 40 || dialog.H != 6 {
		t.Errorf("Expected clipped dialog size 40x6, got %dx%d", dialog.W, dialog.H)
	}
}
