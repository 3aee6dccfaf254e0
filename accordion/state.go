package accordion

import (
	"encoding/json"
	"fmt"
)

// CardState is the stored animation state of one card identity.
type CardState struct {
	Visibility Visibility
	// Height is the card's content height in terminal rows, captured the
	// last time its toggle was activated. Meaningful only when Measured
	// is true; a card is unmeasured until its first toggle.
	Height   int
	Measured bool
}

// State maps card identities to their animation state. It is opaque: hosts
// create one with InitialState, keep it in their own model, and change it
// only through the operations on this type. Entries appear lazily the first
// time an identity is toggled and are never removed.
//
// The zero value behaves as an empty State.
type State struct {
	cards map[string]CardState
}

// InitialState returns an empty State in which every card is hidden and
// unmeasured.
func InitialState() State {
	return State{}
}

// GetOrInit returns the entry for id, or the hidden unmeasured default when
// the identity has never been toggled. It does not create the entry.
func (s State) GetOrInit(id string) CardState {
	if cs, ok := s.cards[id]; ok {
		return cs
	}
	return CardState{Visibility: Hidden}
}

// Update returns a new State with id's entry replaced by fn applied to the
// current entry (or to the default for a never-seen identity). All other
// entries carry over unchanged and s itself is not modified.
func (s State) Update(id string, fn func(CardState) CardState) State {
	next := make(map[string]CardState, len(s.cards)+1)
	for k, v := range s.cards {
		next[k] = v
	}
	next[id] = fn(s.GetOrInit(id))
	return State{cards: next}
}

type cardStateJSON struct {
	Visibility string `json:"visibility"`
	Height     *int   `json:"height,omitempty"`
}

// MarshalJSON encodes the store as a map from identity to visibility plus,
// for measured cards, height in rows.
func (s State) MarshalJSON() ([]byte, error) {
	out := make(map[string]cardStateJSON, len(s.cards))
	for id, cs := range s.cards {
		entry := cardStateJSON{Visibility: cs.Visibility.String()}
		if cs.Measured {
			h := cs.Height
			entry.Height = &h
		}
		out[id] = entry
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the map shape produced by MarshalJSON.
func (s *State) UnmarshalJSON(data []byte) error {
	var raw map[string]cardStateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("accordion: decode state: %w", err)
	}
	cards := make(map[string]CardState, len(raw))
	for id, entry := range raw {
		vis, err := parseVisibility(entry.Visibility)
		if err != nil {
			return fmt.Errorf("accordion: decode state: card %q: %w", id, err)
		}
		cs := CardState{Visibility: vis}
		if entry.Height != nil {
			cs.Height = *entry.Height
			cs.Measured = true
		}
		cards[id] = cs
	}
	*s = State{cards: cards}
	return nil
}
