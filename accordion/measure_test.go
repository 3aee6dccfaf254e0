package accordion

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestContentWidth_SubtractsCardFrame(t *testing.T) {
	t.Parallel()

	// Default chrome: one border column and one padding column per side.
	c := textCard("c1", "First", 1)
	if got := contentWidth(c, 40); got != 36 {
		t.Fatalf("contentWidth(40) = %d, want 36", got)
	}

	slim := NewCard("c2", NewHeader(LevelPlain, NewToggle("t")), nil,
		WithBorder(lipgloss.Border{}))
	if got := contentWidth(slim, 40); got != 38 {
		t.Fatalf("borderless contentWidth(40) = %d, want 38", got)
	}
}

func TestMeasureHeight_EmptyContentMeasuresZero(t *testing.T) {
	t.Parallel()

	c := NewCard("c1", NewHeader(LevelPlain, NewToggle("t")), nil)
	if got := measureHeight(c, 36); got != 0 {
		t.Fatalf("empty card measured %d rows, want 0", got)
	}
}

func TestMeasureHeight_StacksBlocks(t *testing.T) {
	t.Parallel()

	c := NewCard("c1", NewHeader(LevelPlain, NewToggle("t")), []Block{
		TextBlock("one"),
		TextBlock("two"),
		TextBlock("three"),
	})
	if got := measureHeight(c, 36); got != 3 {
		t.Fatalf("three one-row blocks measured %d rows, want 3", got)
	}
}

func TestMeasureHeight_TracksWrapWidth(t *testing.T) {
	t.Parallel()

	c := NewCard("c1", NewHeader(LevelPlain, NewToggle("t")), []Block{
		TextBlock("alpha beta gamma delta"),
	})
	wide := measureHeight(c, 30)
	narrow := measureHeight(c, 6)
	if wide != 1 {
		t.Fatalf("wide measure = %d rows, want 1", wide)
	}
	if narrow <= wide {
		t.Fatalf("narrow measure = %d rows, want more than %d", narrow, wide)
	}
}
