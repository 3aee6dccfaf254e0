package accordion

import (
	"errors"
	"strconv"
	"testing"
)

func textCard(id, title string, lines int) Card {
	blocks := make([]Block, 0, lines)
	for i := 0; i < lines; i++ {
		blocks = append(blocks, TextBlock("row "+strconv.Itoa(i)))
	}
	return NewCard(id, NewHeader(LevelH3, NewToggle(title)), blocks)
}

func TestToggle_MeasuresAndAdvancesInOneStep(t *testing.T) {
	t.Parallel()

	acc := New()
	defer acc.Close()

	cfg := Config{
		ToMsg:         liftState,
		WithAnimation: true,
		Cards:         []Card{textCard("c1", "First", 3)},
		Width:         40,
	}

	cmd, err := acc.Toggle(InitialState(), cfg, "c1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	state := stateOf(t, cmd)

	cs := state.GetOrInit("c1")
	if cs.Visibility != StartDown {
		t.Fatalf("visibility = %v, want %v", cs.Visibility, StartDown)
	}
	if !cs.Measured || cs.Height != 3 {
		t.Fatalf("measurement = %+v, want height 3 measured", cs)
	}
}

func TestToggle_InstantModeSkipsTransientPhases(t *testing.T) {
	t.Parallel()

	acc := New()
	defer acc.Close()

	cfg := Config{
		ToMsg: liftState,
		Cards: []Card{textCard("c2", "Second", 2)},
		Width: 40,
	}

	cmd, err := acc.Toggle(InitialState(), cfg, "c2")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	state := stateOf(t, cmd)

	if cs := state.GetOrInit("c2"); cs.Visibility != Shown || cs.Height != 2 {
		t.Fatalf("card = %+v, want Shown height 2", cs)
	}
	if sub := Subscriptions(state, liftState); sub != nil {
		t.Fatal("instant toggle armed a frame")
	}
}

func TestToggle_DecodeFailuresLeaveStateAlone(t *testing.T) {
	t.Parallel()

	acc := New()
	defer acc.Close()

	okCard := textCard("ok", "Fine", 1)

	cases := []struct {
		name string
		cfg  Config
		id   string
		want error
	}{
		{
			name: "unknown card",
			cfg:  Config{ToMsg: liftState, Cards: []Card{okCard}, Width: 40},
			id:   "ghost",
			want: ErrUnknownCard,
		},
		{
			name: "empty identity",
			cfg:  Config{ToMsg: liftState, Cards: []Card{okCard}, Width: 40},
			id:   "",
			want: ErrNoIdentity,
		},
		{
			name: "duplicate identity",
			cfg:  Config{ToMsg: liftState, Cards: []Card{okCard, textCard("ok", "Twin", 1)}, Width: 40},
			id:   "ok",
			want: ErrDuplicateIdentity,
		},
		{
			name: "no content width",
			cfg:  Config{ToMsg: liftState, Cards: []Card{okCard}, Width: 3},
			id:   "ok",
			want: ErrNoWidth,
		},
	}

	for _, tc := range cases {
		cmd, err := acc.Toggle(InitialState(), tc.cfg, tc.id)
		if cmd != nil {
			t.Fatalf("%s: got a command despite the decode failure", tc.name)
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestDecodeToggle_MeasuresAtConfiguredWidth(t *testing.T) {
	t.Parallel()

	card := NewCard("prose", NewHeader(LevelPlain, NewToggle("Prose")), []Block{
		TextBlock("the quick brown fox jumps over the lazy dog and keeps on running"),
	})

	wide, err := decodeToggle(Config{Cards: []Card{card}, Width: 80}, "prose")
	if err != nil {
		t.Fatalf("wide decode: %v", err)
	}
	narrow, err := decodeToggle(Config{Cards: []Card{card}, Width: 16}, "prose")
	if err != nil {
		t.Fatalf("narrow decode: %v", err)
	}

	if wide.Height < 1 {
		t.Fatalf("wide height = %d, want at least 1", wide.Height)
	}
	if narrow.Height <= wide.Height {
		t.Fatalf("narrow height = %d, wide height = %d; wrapping should add rows", narrow.Height, wide.Height)
	}
}

func TestToggle_ReusesPipelineWhileAnimating(t *testing.T) {
	t.Parallel()

	acc := New()
	defer acc.Close()

	cfg := Config{
		ToMsg:         liftState,
		WithAnimation: true,
		Cards:         []Card{textCard("c1", "First", 4)},
		Width:         40,
	}

	state := InitialState().Update("c1", setCard(AnimatingDown, 4))

	cmd, err := acc.Toggle(state, cfg, "c1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	next := stateOf(t, cmd)

	// A click mid-animation lands on the open resting phase directly.
	if cs := next.GetOrInit("c1"); cs.Visibility != Shown || cs.Height != 4 {
		t.Fatalf("card = %+v, want Shown height 4", cs)
	}
}
