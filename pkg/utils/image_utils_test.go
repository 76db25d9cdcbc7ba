package utils

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestScaleImageToWidth(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		maxWidth   int
		wantW      int
		wantH      int
	}{
		{"超宽图片等比缩小", 200, 100, 80, 80, 40},
		{"宽度刚好等于上限不缩放", 80, 60, 80, 80, 60},
		{"小于上限不缩放", 32, 32, 80, 32, 32},
		{"非整除比例向下取整", 100, 75, 64, 64, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := ebiten.NewImage(tt.srcW, tt.srcH)
			got := ScaleImageToWidth(src, tt.maxWidth)
			if got == nil {
				t.Fatal("ScaleImageToWidth returned nil")
			}
			bounds := got.Bounds()
			if bounds.Dx() != tt.wantW || bounds.Dy() != tt.wantH {
				t.Errorf("scaled size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestScaleImageToWidthNilSource(t *testing.T) {
	if got := ScaleImageToWidth(nil, 80); got != nil {
		t.Error("nil source should return nil")
	}
}

func TestScaleImageToWidthReturnsSameImageWhenSmall(t *testing.T) {
	src := ebiten.NewImage(40, 40)
	if got := ScaleImageToWidth(src, 80); got != src {
		t.Error("images within the limit should be returned unchanged")
	}
}

func TestNewPlaceholderImage(t *testing.T) {
	img := NewPlaceholderImage(64, 32, color.RGBA{R: 255, A: 255})
	bounds := img.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 32 {
		t.Errorf("placeholder size = %dx%d, want 64x32", bounds.Dx(), bounds.Dy())
	}
}

func TestNewPlaceholderImageClampsToMinimumSize(t *testing.T) {
	// 零或负尺寸收敛为 1x1,避免 ebiten.NewImage panic
	img := NewPlaceholderImage(0, -5, color.RGBA{A: 255})
	bounds := img.Bounds()
	if bounds.Dx() != 1 || bounds.Dy() != 1 {
		t.Errorf("clamped size = %dx%d, want 1x1", bounds.Dx(), bounds.Dy())
	}
}
