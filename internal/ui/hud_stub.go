//go:build !ebiten

package ui

import "lifecanvas/internal/metrics"

// Button is a clickable control in the HUD panel.
type Button struct {
	Key     string
	Label   func() string
	OnClick func()
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int, []Button, func() metrics.Snapshot) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
