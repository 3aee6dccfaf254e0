package accordion

import "github.com/charmbracelet/lipgloss"

// Block is one fragment of card or header content. Blocks render at a
// target width so that measurement and display go through the same path;
// a width of zero or less means natural width.
type Block struct {
	render func(width int) string
}

// TextBlock returns a block that wraps plain text to the render width.
func TextBlock(text string) Block {
	return Block{render: func(width int) string {
		if width <= 0 {
			return text
		}
		return lipgloss.NewStyle().Width(width).Render(text)
	}}
}

// StyledBlock returns a block that renders text through style at the render
// width.
func StyledBlock(style lipgloss.Style, text string) Block {
	return Block{render: func(width int) string {
		if width <= 0 {
			return style.Render(text)
		}
		return style.Width(width).Render(text)
	}}
}

// CustomBlock wraps an arbitrary width-aware renderer. This is how hosts
// embed live widgets, charts for instance, inside a card body.
func CustomBlock(render func(width int) string) Block {
	return Block{render: render}
}

// Render draws the block at the given width. The zero Block renders empty.
func (b Block) Render(width int) string {
	if b.render == nil {
		return ""
	}
	return b.render(width)
}

// HeaderLevel selects the heading treatment of a card header.
type HeaderLevel int

const (
	// LevelPlain renders the header as an unstyled row.
	LevelPlain HeaderLevel = iota
	LevelH1
	LevelH2
	LevelH3
	LevelH4
	LevelH5
	LevelH6
)

// Toggle is the clickable element inside a header. It carries a label and
// an optional style override; behavior lives in the accordion, not here.
type Toggle struct {
	label  string
	style  lipgloss.Style
	styled bool
}

// NewToggle returns a toggle with the given label.
func NewToggle(label string) Toggle {
	return Toggle{label: label}
}

// Styled returns a copy of the toggle rendered through style instead of the
// level's default.
func (t Toggle) Styled(style lipgloss.Style) Toggle {
	t.style = style
	t.styled = true
	return t
}

// Header wraps exactly one toggle plus optional blocks rendered before and
// after it on the header row.
type Header struct {
	level  HeaderLevel
	toggle Toggle
	before []Block
	after  []Block
}

// NewHeader returns a header at the given level wrapping toggle.
func NewHeader(level HeaderLevel, toggle Toggle) Header {
	return Header{level: level, toggle: toggle}
}

// PrependBlock adds a block before the toggle, after any blocks already
// placed there. Insertion order is preserved on both sides of the toggle.
func (h Header) PrependBlock(b Block) Header {
	// Full slice expressions keep forked builders from sharing backing
	// arrays.
	h.before = append(h.before[:len(h.before):len(h.before)], b)
	return h
}

// AppendBlock adds a block after the toggle, after any blocks already
// appended.
func (h Header) AppendBlock(b Block) Header {
	h.after = append(h.after[:len(h.after):len(h.after)], b)
	return h
}

type cardChrome struct {
	border    lipgloss.Border
	accent    lipgloss.TerminalColor
	hasBorder bool
	hasAccent bool
}

// CardOption adjusts a card's chrome. Options are a thin pass-through to
// the frame styling; they carry no behavior.
type CardOption func(*cardChrome)

// WithBorder overrides the border drawn around the card.
func WithBorder(b lipgloss.Border) CardOption {
	return func(c *cardChrome) {
		c.border = b
		c.hasBorder = true
	}
}

// WithAccent overrides the border and heading color of the card.
func WithAccent(color lipgloss.TerminalColor) CardOption {
	return func(c *cardChrome) {
		c.accent = color
		c.hasAccent = true
	}
}

// Card describes one collapsible panel: identity, header, content blocks,
// and chrome. Cards are immutable values describing what to render;
// animation state lives in State under the card's identity.
type Card struct {
	id     string
	header Header
	blocks []Block
	chrome cardChrome
}

// NewCard builds a card. The identity must be non-empty and unique within
// one accordion config; interactions on cards violating that fail to
// decode.
func NewCard(id string, header Header, blocks []Block, opts ...CardOption) Card {
	c := Card{id: id, header: header, blocks: blocks}
	for _, opt := range opts {
		opt(&c.chrome)
	}
	return c
}

// ID returns the card's identity.
func (c Card) ID() string {
	return c.id
}
