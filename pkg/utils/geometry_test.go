package utils

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Rect
		b    Rect
		want bool
	}{
		{
			name: "明显相交",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 5, Y: 5, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "完全分离",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 100, Y: 100, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "一个矩形包含另一个",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 40, Y: 40, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "矩形与自身相交",
			a:    Rect{X: 3, Y: 4, Width: 10, Height: 10},
			b:    Rect{X: 3, Y: 4, Width: 10, Height: 10},
			want: true,
		},
		{
			name: "右边缘刚好接触不算相交",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 10, Y: 0, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "下边缘刚好接触不算相交",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 0, Y: 10, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "角刚好接触不算相交",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 10, Y: 10, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "零宽度矩形在另一矩形内部也不相交",
			a:    Rect{X: 5, Y: 5, Width: 0, Height: 10},
			b:    Rect{X: 0, Y: 0, Width: 20, Height: 20},
			want: false,
		},
		{
			name: "零高度矩形不相交",
			a:    Rect{X: 0, Y: 5, Width: 10, Height: 0},
			b:    Rect{X: 0, Y: 0, Width: 20, Height: 20},
			want: false,
		},
		{
			name: "两个零面积矩形不相交",
			a:    Rect{X: 5, Y: 5, Width: 0, Height: 0},
			b:    Rect{X: 5, Y: 5, Width: 0, Height: 0},
			want: false,
		},
		{
			name: "负尺寸矩形不相交",
			a:    Rect{X: 0, Y: 0, Width: -10, Height: 10},
			b:    Rect{X: 0, Y: 0, Width: 20, Height: 20},
			want: false,
		},
		{
			name: "水平重叠但垂直分离",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 5, Y: 50, Width: 10, Height: 10},
			want: false,
		},
		{
			name: "亚像素级重叠算相交",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 9.9, Y: 9.9, Width: 10, Height: 10},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	pairs := []struct {
		a, b Rect
	}{
		{Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}},
		{Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}},
		{Rect{0, 0, 10, 10}, Rect{100, 100, 5, 5}},
		{Rect{5, 5, 0, 10}, Rect{0, 0, 20, 20}},
	}

	for _, p := range pairs {
		if Overlaps(p.a, p.b) != Overlaps(p.b, p.a) {
			t.Errorf("Overlaps should be symmetric for %+v and %+v", p.a, p.b)
		}
	}
}

func TestPointInRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"矩形中心", 60, 45, true},
		{"左上角边界", 10, 20, true},
		{"右下角边界", 110, 70, true},
		{"左侧外部", 9.9, 45, false},
		{"下方外部", 60, 70.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRect(tt.px, tt.py, r); got != tt.want {
				t.Errorf("PointInRect(%v, %v, %+v) = %v, want %v", tt.px, tt.py, r, got, tt.want)
			}
		})
	}
}
