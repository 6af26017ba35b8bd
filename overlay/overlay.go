// Package overlay provides per-node visual attribute arrays: either an
// RGBA color or a single scalar per node, indexed by node ID minus one.
package overlay

import "fmt"

// Kind discriminates the two overlay flavors.
type Kind uint8

const (
	// KindRGB marks overlays that carry a color per node.
	KindRGB Kind = iota
	// KindValue marks overlays that carry a scalar per node, to be
	// mapped to a color later, e.g. through a perceptual scheme.
	KindValue
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindRGB:
		return "RGB"
	case KindValue:
		return "Value"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// RGBA is a four-channel float color with components in [0, 1].
type RGBA struct {
	R float32
	G float32
	B float32
	A float32
}

// Data is a per-node overlay: exactly one of the two arrays is
// populated, matching Kind. The array length equals the graph's node
// count.
type Data struct {
	kind Kind
	rgb  []RGBA
	val  []float32
}

// NewRGB creates an RGB overlay for n nodes, initialized to opaque
// black.
func NewRGB(n int) *Data {
	rgb := make([]RGBA, n)
	for i := range rgb {
		rgb[i].A = 1
	}
	return &Data{kind: KindRGB, rgb: rgb}
}

// NewValue creates a scalar overlay for n nodes.
func NewValue(n int) *Data {
	return &Data{kind: KindValue, val: make([]float32, n)}
}

// FromRGB wraps an existing color array.
func FromRGB(rgb []RGBA) *Data {
	return &Data{kind: KindRGB, rgb: rgb}
}

// FromValues wraps an existing scalar array.
func FromValues(val []float32) *Data {
	return &Data{kind: KindValue, val: val}
}

// Kind returns the overlay flavor.
func (d *Data) Kind() Kind { return d.kind }

// Len returns the number of nodes covered.
func (d *Data) Len() int {
	if d.kind == KindRGB {
		return len(d.rgb)
	}
	return len(d.val)
}

// RGB returns the color array, or nil for a value overlay.
func (d *Data) RGB() []RGBA { return d.rgb }

// Values returns the scalar array, or nil for an RGB overlay.
func (d *Data) Values() []float32 { return d.val }

// SetRGB assigns the color of one node by ID ordinal (id-1).
func (d *Data) SetRGB(ix int, c RGBA) { d.rgb[ix] = c }

// SetValue assigns the scalar of one node by ID ordinal (id-1).
func (d *Data) SetValue(ix int, v float32) { d.val[ix] = v }

// HashNodeColor maps a 64-bit hash to an RGB triple, spreading the
// hash bits over the three channels and normalizing by the largest.
func HashNodeColor(hash uint64) (r, g, b float32) {
	ru := uint16((hash >> 32) & 0xFFFFFFFF)
	gu := uint16((hash >> 16) & 0xFFFFFFFF)
	bu := uint16(hash & 0xFFFFFFFF)

	maxC := ru
	if gu > maxC {
		maxC = gu
	}
	if bu > maxC {
		maxC = bu
	}
	if maxC == 0 {
		return 0, 0, 0
	}
	m := float32(maxC)
	return float32(ru) / m, float32(gu) / m, float32(bu) / m
}
