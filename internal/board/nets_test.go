package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetterNetName(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"net-001", "GND", "GND"},
		{"B13.1", "net-042", "B13.1"},
		{"VCC", "B13.1", "VCC"},
		{"GND", "GND#2", "GND"},
		{"net-001", "net-002", "net-001"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BetterNetName(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
		assert.Equal(t, tt.want, BetterNetName(tt.b, tt.a), "%s vs %s reversed", tt.b, tt.a)
	}
}

func TestNetRegistry(t *testing.T) {
	r := NewNetRegistry()

	gnd := r.Code("GND")
	vcc := r.Code("VCC")
	assert.NotEqual(t, gnd, vcc)
	assert.NotZero(t, gnd, "code 0 is reserved for the unconnected net")
	assert.Equal(t, gnd, r.Code("GND"))
	assert.Equal(t, "GND", r.Name(gnd))

	auto := r.Code("net-007")
	r.Rename(auto, "CLK")
	assert.Equal(t, "CLK", r.Name(auto))
	assert.Equal(t, auto, r.Code("CLK"))

	// Renaming to a worse name keeps the better one.
	r.Rename(auto, "net-008")
	assert.Equal(t, "CLK", r.Name(auto))
}

func TestStackup(t *testing.T) {
	s := FourLayer()

	assert.Equal(t, 3, s.BCu())
	assert.Equal(t, "F.Cu", s.LayerName(FCu))
	assert.Equal(t, "B.Cu", s.LayerName(3))
	assert.Equal(t, "In1.Cu", s.LayerName(1))

	all := s.AllLayers()
	assert.Equal(t, 0, all.Start)
	assert.Equal(t, 3, all.End)
}
