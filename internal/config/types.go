package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Hand is the view weapon handedness.
type Hand int

const (
	HandRight Hand = iota
	HandLeft
	HandCenter
)

var handNames = [...]string{"right", "left", "center"}

func (h Hand) String() string {
	if h < 0 || int(h) >= len(handNames) {
		return "right"
	}
	return handNames[h]
}

// ParseHand accepts "right", "left", "center" or the numeric forms 0, 1, 2.
func ParseHand(s string) (Hand, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range handNames {
		if s == name || s == strconv.Itoa(i) {
			return Hand(i), nil
		}
	}
	return HandRight, fmt.Errorf("invalid hand %q", s)
}

// UnmarshalYAML decodes a hand from a name or number.
func (h *Hand) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseHand(node.Value)
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// MarshalYAML encodes the hand by name.
func (h Hand) MarshalYAML() (interface{}, error) {
	return h.String(), nil
}

// Offset is a lateral, vertical, forward offset triple.
type Offset [3]float32

// ParseOffset parses three whitespace separated numbers, e.g. "10 -10 32".
// Missing trailing components are zero.
func ParseOffset(s string) (Offset, error) {
	var o Offset
	fields := strings.Fields(s)
	if len(fields) > 3 {
		return o, fmt.Errorf("offset %q: expected at most 3 components", s)
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return o, fmt.Errorf("offset %q: %w", s, err)
		}
		o[i] = float32(v)
	}
	return o, nil
}

func (o Offset) String() string {
	return fmt.Sprintf("%g %g %g", o[0], o[1], o[2])
}

// UnmarshalYAML accepts either "x y z" or a three element sequence.
func (o *Offset) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var vals []float32
		if err := node.Decode(&vals); err != nil {
			return err
		}
		if len(vals) > 3 {
			return fmt.Errorf("offset: expected at most 3 components, got %d", len(vals))
		}
		*o = Offset{}
		copy(o[:], vals)
		return nil
	}

	v, err := ParseOffset(node.Value)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// MarshalYAML encodes the offset as "x y z".
func (o Offset) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// SetOffset parses and stores the flashlight offset.
func (c *FlashlightConfig) SetOffset(s string) error {
	o, err := ParseOffset(s)
	if err != nil {
		return err
	}
	c.Offset = o
	return nil
}

// SetHand parses and stores the weapon handedness.
func (c *ViewConfig) SetHand(s string) error {
	h, err := ParseHand(s)
	if err != nil {
		return err
	}
	c.Hand = h
	return nil
}
