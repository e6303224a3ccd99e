package game

import "sync"

// Resources represents an amount of each resource kind.
type Resources struct {
	Gold    int `json:"gold"`
	Wood    int `json:"wood"`
	Ore     int `json:"ore"`
	Mercury int `json:"mercury"`
	Sulfur  int `json:"sulfur"`
	Crystal int `json:"crystal"`
	Gems    int `json:"gems"`
}

// CanAfford reports whether r covers the given cost in every kind.
func (r Resources) CanAfford(cost Resources) bool {
	return r.Gold >= cost.Gold &&
		r.Wood >= cost.Wood &&
		r.Ore >= cost.Ore &&
		r.Mercury >= cost.Mercury &&
		r.Sulfur >= cost.Sulfur &&
		r.Crystal >= cost.Crystal &&
		r.Gems >= cost.Gems
}

// Add returns the component-wise sum of r and other.
func (r Resources) Add(other Resources) Resources {
	return Resources{
		Gold:    r.Gold + other.Gold,
		Wood:    r.Wood + other.Wood,
		Ore:     r.Ore + other.Ore,
		Mercury: r.Mercury + other.Mercury,
		Sulfur:  r.Sulfur + other.Sulfur,
		Crystal: r.Crystal + other.Crystal,
		Gems:    r.Gems + other.Gems,
	}
}

// Ledger tracks the player's current stockpiles and outstanding reservations.
// It implements the Economy collaborator used by the visit rules.
type Ledger struct {
	actual   Resources
	reserved map[string]Resources
	lock     sync.Mutex
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{
		reserved: make(map[string]Resources),
	}
}

// Update replaces the current stockpile amounts.
func (l *Ledger) Update(actual Resources) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.actual = actual
}

// ResourceAmount returns the current stockpiles.
func (l *Ledger) ResourceAmount() Resources {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.actual
}

// CanAfford reports whether current stockpiles cover the given cost.
func (l *Ledger) CanAfford(cost Resources) bool {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.actual.CanAfford(cost)
}

// Reserve earmarks resources for a named purpose. Reservations are
// informational; they do not reduce the visible stockpile.
func (l *Ledger) Reserve(source string, cost Resources) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.reserved[source] = cost
}

// CancelReserve removes a reservation.
func (l *Ledger) CancelReserve(source string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	delete(l.reserved, source)
}

// Reserved returns the total amount currently reserved across all purposes.
func (l *Ledger) Reserved() Resources {
	l.lock.Lock()
	defer l.lock.Unlock()
	var total Resources
	for _, cost := range l.reserved {
		total = total.Add(cost)
	}
	return total
}
