package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDotMapMark(t *testing.T) {
	d := newDotMap(2, 1)
	d.mark(0, 0)
	d.mark(1, 3)
	d.mark(2, 1)
	d.mark(-1, 0)
	d.mark(4, 0)
	d.mark(0, 4)
	require.Equal(t, string([]rune{0x2800 + 0x81, 0x2800 + 0x02}), d.String())
}

func TestDotMapFrame(t *testing.T) {
	d := newDotMap(1, 1)
	d.frame(1, 3, 0, 0)
	// every dot of a single 2x4 cell sits on the outline
	require.Equal(t, "⣿", d.String())

	d = newDotMap(3, 2)
	d.frame(0, 0, 5, 7)
	require.Equal(t, "⡏⠉⢹\n⣇⣀⣸", d.String())
}

func TestDotMapBlank(t *testing.T) {
	require.Equal(t, "  \n  ", newDotMap(2, 2).String())
}
