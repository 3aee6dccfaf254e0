package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/concertina/accordion"
)

// deckFile is the YAML document describing the cards to show.
type deckFile struct {
	Title string     `yaml:"title"`
	Cards []deckCard `yaml:"cards"`
}

type deckCard struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Level  int    `yaml:"level"`
	Badge  string `yaml:"badge"`
	Accent string `yaml:"accent"`
	Body   string `yaml:"body"`
}

// buildDeck assembles the cards to show: the configured deck file, or the
// built-in one, plus the live throughput card fed by the sample stream.
func buildDeck(cfg cliConfig) (string, []accordion.Card, *metricsFeed, error) {
	feed := newMetricsFeed(feedWindow)
	if cfg.DeckPath == "" {
		return "Concertina", builtinDeck(feed), feed, nil
	}
	title, cards, err := loadDeck(cfg.DeckPath)
	if err != nil {
		return "", nil, nil, err
	}
	return title, append(cards, metricsCard(feed)), feed, nil
}

func loadDeck(path string) (string, []accordion.Card, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading deck: %w", err)
	}

	var doc deckFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", nil, fmt.Errorf("parsing deck %s: %w", path, err)
	}
	if len(doc.Cards) == 0 {
		return "", nil, fmt.Errorf("deck %s has no cards", path)
	}

	cards := make([]accordion.Card, 0, len(doc.Cards))
	seen := make(map[string]bool, len(doc.Cards))
	for i, dc := range doc.Cards {
		if dc.ID == "" {
			return "", nil, fmt.Errorf("deck %s: card %d has no id", path, i)
		}
		if seen[dc.ID] {
			return "", nil, fmt.Errorf("deck %s: duplicate card id %q", path, dc.ID)
		}
		seen[dc.ID] = true
		cards = append(cards, dc.card())
	}

	title := doc.Title
	if title == "" {
		title = "Concertina"
	}
	return title, cards, nil
}

func (dc deckCard) card() accordion.Card {
	title := dc.Title
	if title == "" {
		title = dc.ID
	}

	header := accordion.NewHeader(dc.headerLevel(), accordion.NewToggle(title))
	if dc.Badge != "" {
		header = header.AppendBlock(accordion.StyledBlock(badgeStyle, dc.Badge))
	}

	var blocks []accordion.Block
	if dc.Body != "" {
		blocks = append(blocks, accordion.TextBlock(strings.TrimRight(dc.Body, "\n")))
	}

	var opts []accordion.CardOption
	if dc.Accent != "" {
		opts = append(opts, accordion.WithAccent(lipgloss.Color(dc.Accent)))
	}
	return accordion.NewCard(dc.ID, header, blocks, opts...)
}

func (dc deckCard) headerLevel() accordion.HeaderLevel {
	if dc.Level < 1 || dc.Level > 6 {
		return accordion.LevelH2
	}
	return accordion.HeaderLevel(dc.Level)
}

func metricsCard(feed *metricsFeed) accordion.Card {
	header := accordion.NewHeader(accordion.LevelH2, accordion.NewToggle("Live throughput")).
		AppendBlock(accordion.StyledBlock(badgeStyle, "live"))
	return accordion.NewCard("metrics", header, []accordion.Block{
		accordion.CustomBlock(feed.chart),
	}, accordion.WithAccent(lipgloss.Color("78")))
}

func builtinDeck(feed *metricsFeed) []accordion.Card {
	about := accordion.NewCard("about",
		accordion.NewHeader(accordion.LevelH2, accordion.NewToggle("About")),
		[]accordion.Block{accordion.TextBlock(
			"Concertina renders stacked collapsible cards for terminal dashboards. " +
				"Each card opens and closes with an eased height transition, measured " +
				"against its content at the current terminal width. Click a card " +
				"title or use the keyboard to try it.",
		)},
	)

	controls := accordion.NewCard("controls",
		accordion.NewHeader(accordion.LevelH2, accordion.NewToggle("Controls")).
			AppendBlock(accordion.StyledBlock(badgeStyle, "keyboard & mouse")),
		[]accordion.Block{accordion.TextBlock(strings.Join([]string{
			"tab / shift+tab  move focus between cards",
			"enter / space    toggle the focused card",
			"1-9              toggle a card by position",
			"a                switch animation on or off",
			"?                expand this help",
			"q                quit",
		}, "\n"))},
	)

	return []accordion.Card{metricsCard(feed), about, controls}
}
