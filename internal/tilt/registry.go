package tilt

import (
	"stardrag/internal/interaction"
)

// Registry holds the tilt targets supplied by the caller.
type Registry struct {
	state *interaction.State
	req   Requester
	cards []*Card
}

// NewRegistry builds a card for each target.
func NewRegistry(state *interaction.State, req Requester, targets ...Target) *Registry {
	r := &Registry{state: state, req: req}
	for _, t := range targets {
		r.Add(t)
	}
	return r
}

// Add registers another target. Nil targets are skipped.
func (r *Registry) Add(target Target) *Card {
	if target == nil {
		return nil
	}
	card := NewCard(target, r.state, r.req)
	r.cards = append(r.cards, card)
	return card
}

// Cards returns the registered cards in registration order.
func (r *Registry) Cards() []*Card {
	return r.cards
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	return len(r.cards)
}
