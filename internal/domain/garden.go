package domain

import "time"

// Plant is a purchasable catalog entry
type Plant struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Price    int    `json:"price" yaml:"price"`
	Image    string `json:"image,omitempty" yaml:"image"`
	GrowTime int    `json:"grow_time" yaml:"grow_time"`
	Reward   int    `json:"reward" yaml:"reward"`
	Exp      int    `json:"exp" yaml:"exp"`
}

// Bed is a single growing slot. The server owns every field except Progress,
// which the growth clock derives from StartTime and GrowTime.
type Bed struct {
	ID        int        `json:"id"`
	Plant     *Plant     `json:"plant"`
	Progress  float64    `json:"progress"`
	Locked    bool       `json:"is_locked"`
	StartTime *time.Time `json:"start_time"`
	GrowTime  int        `json:"grow_time"`
}

// IsPlanted returns true if the bed holds a plant
func (b Bed) IsPlanted() bool {
	return !b.Locked && b.Plant != nil
}

// IsEmpty returns true for an unlocked bed with nothing planted
func (b Bed) IsEmpty() bool {
	return !b.Locked && b.Plant == nil
}

// IsReady returns true when the planted bed can be harvested
func (b Bed) IsReady() bool {
	return b.IsPlanted() && b.Progress >= MaxProgress
}

// Clone returns a deep copy of the bed
func (b Bed) Clone() Bed {
	out := b
	if b.Plant != nil {
		p := *b.Plant
		out.Plant = &p
	}
	if b.StartTime != nil {
		t := *b.StartTime
		out.StartTime = &t
	}
	return out
}

// Normalize enforces the bed invariants on a payload received from the server:
// locked beds hold nothing and empty beds carry no timing.
func (b Bed) Normalize() Bed {
	out := b.Clone()
	if out.Locked {
		out.Plant = nil
	}
	if out.Plant == nil {
		out.StartTime = nil
		out.GrowTime = 0
		out.Progress = 0
	}
	if out.Progress < 0 {
		out.Progress = 0
	}
	if out.Progress > MaxProgress {
		out.Progress = MaxProgress
	}
	return out
}

// InventoryItem is a purchased but unplanted plant.
// InstanceID disambiguates units of the same catalog entry.
type InventoryItem struct {
	InstanceID string `json:"instance_id"`
	Plant      Plant  `json:"plant"`
}

// Economy holds the player's counters
type Economy struct {
	Coins          int `json:"coins"`
	Level          int `json:"level"`
	Experience     int `json:"experience"`
	ExpToNextLevel int `json:"exp_to_next_level"`
}

// Player is the identity record produced by the login collaborator
type Player struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Level          int    `json:"level"`
	Coins          int    `json:"coins"`
	Experience     int    `json:"experience"`
	ExpToNextLevel int    `json:"exp_to_next_level"`
}

// Economy returns the player's counters as an Economy value
func (p Player) Economy() Economy {
	return Economy{
		Coins:          p.Coins,
		Level:          p.Level,
		Experience:     p.Experience,
		ExpToNextLevel: p.ExpToNextLevel,
	}
}
