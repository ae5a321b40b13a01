package battle

import (
	"fmt"

	"github.com/automoto/deckrun/shared/rules"
)

// Store sells buffs and healing for mana.
type Store struct {
	session Session
	items   []rules.StoreItem
}

func NewStore(s Session, items []rules.StoreItem) *Store {
	return &Store{session: s, items: items}
}

func (s *Store) Items() []rules.StoreItem { return s.items }

func (s *Store) Enter() { s.session.ChangeGameState(rules.InStore) }
func (s *Store) Leave() { s.session.ChangeGameState(rules.InMap) }

// CanBuy reports whether item i exists and is affordable.
func (s *Store) CanBuy(i int) bool {
	return i >= 0 && i < len(s.items) && s.items[i].Cost <= s.session.PlayerMana()
}

// Buy pays for item i and applies it.
func (s *Store) Buy(i int) error {
	if s.session.GameState() != rules.InStore {
		return ErrNotInStore
	}
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("buy item %d: %w", i+1, ErrInvalidItem)
	}
	item := s.items[i]
	if item.Cost > s.session.PlayerMana() {
		return fmt.Errorf("buy %s (cost %v): %w", item.Name, item.Cost, ErrNotEnoughMana)
	}

	s.session.ConsumeMana(item.Cost)
	switch item.Kind {
	case rules.ItemDoubleDamage:
		s.session.SetDoubleDamageNextAttack(true)
	case rules.ItemHeal:
		s.session.Heal(item.Amount)
	}
	return nil
}
