package textbox

import (
	"math"
	"testing"
)

func TestRectFromXYWH(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		wantOK     bool
	}{
		{"normal", 1, 2, 3, 4, true},
		{"zero extent", 5, 5, 0, 0, true},
		{"negative origin", -10, -10, 5, 5, true},
		{"negative width", 0, 0, -1, 5, false},
		{"negative height", 0, 0, 5, -1, false},
		{"NaN x", math.NaN(), 0, 1, 1, false},
		{"infinite width", 0, 0, math.Inf(1), 1, false},
		{"overflowing edge", math.MaxFloat64, 0, math.MaxFloat64, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := RectFromXYWH(tt.x, tt.y, tt.w, tt.h)
			if ok != tt.wantOK {
				t.Errorf("RectFromXYWH(%v, %v, %v, %v) ok = %v, want %v", tt.x, tt.y, tt.w, tt.h, ok, tt.wantOK)
			}
			if ok && (r.X != tt.x || r.Width != tt.w) {
				t.Errorf("RectFromXYWH() = %+v", r)
			}
		})
	}
}

func TestRectInsetOutset(t *testing.T) {
	r := mustRect(0, 0, 100, 50)

	in, ok := r.Inset(10, 5)
	if !ok || in != mustRect(10, 5, 80, 40) {
		t.Errorf("Inset(10, 5) = %+v, %v", in, ok)
	}
	out, ok := in.Outset(10, 5)
	if !ok || out != r {
		t.Errorf("Outset(10, 5) = %+v, %v; want %+v", out, ok, r)
	}
	if _, ok := r.Inset(60, 0); ok {
		t.Error("Inset past the center should fail")
	}
	if e, ok := r.Inset(50, 25); !ok || e.Width != 0 || e.Height != 0 {
		t.Errorf("Inset to an empty rect = %+v, %v; want empty and ok", e, ok)
	}
	if _, ok := r.Outset(math.NaN(), 0); ok {
		t.Error("Outset by NaN should fail")
	}
	if r.Right() != 100 || r.Bottom() != 50 {
		t.Errorf("Right/Bottom = %v/%v", r.Right(), r.Bottom())
	}
}
