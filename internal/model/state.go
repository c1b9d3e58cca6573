package model

const (
	// StartingCash is every learner's opening cash balance.
	StartingCash = 10000.0
	// MovesPerPeriod is the number of actions a learner may take before the
	// period rolls over.
	MovesPerPeriod = 5
)

// BusinessState is one learner's current simulation snapshot. Quantities
// and balances never render negative to the learner: entries whose balance
// reaches zero are pruned rather than kept at zero.
type BusinessState struct {
	Period        int                `json:"period"`
	MovesLeft     int                `json:"moves_left"`
	Cash          float64            `json:"cash"`
	Inventory     map[string]int     `json:"inventory"`      // item key -> units on hand
	FinishedGoods int                `json:"finished_goods"` // units of finished product
	Equipment     map[string]bool    `json:"equipment"`      // item key -> owned
	Payables      map[string]float64 `json:"payables"`       // vendor -> amount owed
	Receivables   map[string]float64 `json:"receivables"`    // customer -> amount due
	Date          SimDate            `json:"date"`

	// Version is the storage compare-and-swap token. Zero means the state
	// has never been persisted.
	Version int64 `json:"-"`
}

// NewBusinessState returns the documented initial state: starting cash, a
// fresh period with full moves, empty holdings, and the fixed start date.
func NewBusinessState() *BusinessState {
	return &BusinessState{
		Period:      1,
		MovesLeft:   MovesPerPeriod,
		Cash:        StartingCash,
		Inventory:   make(map[string]int),
		Equipment:   make(map[string]bool),
		Payables:    make(map[string]float64),
		Receivables: make(map[string]float64),
		Date:        SimStart,
	}
}

// OwnsEquipment reports whether the learner owns the given equipment item.
func (s *BusinessState) OwnsEquipment(itemKey string) bool {
	return s.Equipment[itemKey]
}

// PrunePayable removes a vendor whose balance has dropped to zero or below.
func (s *BusinessState) PrunePayable(vendor string) {
	if s.Payables[vendor] <= 0 {
		delete(s.Payables, vendor)
	}
}

// PruneReceivable removes a customer whose balance has dropped to zero or
// below.
func (s *BusinessState) PruneReceivable(customer string) {
	if s.Receivables[customer] <= 0 {
		delete(s.Receivables, customer)
	}
}

// Clone returns a deep copy. Simulation operations mutate a clone and
// persist it, so a failed compare-and-swap never leaves a half-applied
// state visible.
func (s *BusinessState) Clone() *BusinessState {
	c := *s
	c.Inventory = make(map[string]int, len(s.Inventory))
	for k, v := range s.Inventory {
		c.Inventory[k] = v
	}
	c.Equipment = make(map[string]bool, len(s.Equipment))
	for k, v := range s.Equipment {
		c.Equipment[k] = v
	}
	c.Payables = make(map[string]float64, len(s.Payables))
	for k, v := range s.Payables {
		c.Payables[k] = v
	}
	c.Receivables = make(map[string]float64, len(s.Receivables))
	for k, v := range s.Receivables {
		c.Receivables[k] = v
	}
	return &c
}
