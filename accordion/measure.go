package accordion

import "github.com/charmbracelet/lipgloss"

// contentWidth returns the width available to a card's content inside its
// frame, given the accordion's total width.
func contentWidth(c Card, total int) int {
	return total - frameFor(c, false).GetHorizontalFrameSize()
}

// renderBlocks stacks blocks vertically at the given width.
func renderBlocks(blocks []Block, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, b.Render(width))
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// measureHeight returns the natural height, in rows, of the card's content
// at the given content width. Display renders through the same path, so
// the measured value and the drawn value agree. A card with no content
// measures zero.
func measureHeight(c Card, width int) int {
	content := renderBlocks(c.blocks, width)
	if content == "" {
		return 0
	}
	return lipgloss.Height(content)
}
