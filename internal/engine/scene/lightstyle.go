package scene

import "fmt"

// LightStyle is the current intensity of one light-style slot.
type LightStyle struct {
	White float32
}

// AddLightStyle sets the intensity of a style slot. An out of range style
// index is a programming error and panics.
func (f *Frame) AddLightStyle(style int, value float32) {
	if style < 0 || style >= MaxLightStyles {
		panic(fmt.Sprintf("scene: light style %d out of range [0, %d)", style, MaxLightStyles))
	}
	f.lightStyles[style].White = value
}

// LightStyles returns the full light-style table.
func (f *Frame) LightStyles() []LightStyle {
	return f.lightStyles[:]
}
