package domain

// ActionType names one of the four authoritative actions
type ActionType string

const (
	ActionBuyPlant  ActionType = "buy_plant"
	ActionPlantSeed ActionType = "plant_seed"
	ActionHarvest   ActionType = "harvest"
	ActionUnlockBed ActionType = "unlock_bed"
)

// AllActionTypes lists every action the dispatcher accepts
var AllActionTypes = []ActionType{
	ActionBuyPlant,
	ActionPlantSeed,
	ActionHarvest,
	ActionUnlockBed,
}

// Valid returns true for a known action type
func (a ActionType) Valid() bool {
	for _, t := range AllActionTypes {
		if t == a {
			return true
		}
	}
	return false
}

// ActionRequest is the body of POST /api/game/action
type ActionRequest struct {
	UserID     string     `json:"user_id" validate:"required"`
	ActionType ActionType `json:"action_type" validate:"required,oneof=buy_plant plant_seed harvest unlock_bed"`
	PlantID    *int       `json:"plantId,omitempty" validate:"omitempty,gt=0"`
	BedID      *int       `json:"bedId,omitempty" validate:"omitempty,gt=0"`
	Price      *int       `json:"price,omitempty" validate:"omitempty,gte=0"`
	Cost       *int       `json:"cost,omitempty" validate:"omitempty,gte=0"`
	GrowTime   *int       `json:"growTime,omitempty" validate:"omitempty,gt=0"`
}

// NewBuyPlantRequest builds a buy_plant{plantId, price} request
func NewBuyPlantRequest(userID string, plantID, price int) ActionRequest {
	return ActionRequest{
		UserID:     userID,
		ActionType: ActionBuyPlant,
		PlantID:    &plantID,
		Price:      &price,
	}
}

// NewPlantSeedRequest builds a plant_seed{bedId, plantId, growTime} request
func NewPlantSeedRequest(userID string, bedID, plantID, growTime int) ActionRequest {
	return ActionRequest{
		UserID:     userID,
		ActionType: ActionPlantSeed,
		BedID:      &bedID,
		PlantID:    &plantID,
		GrowTime:   &growTime,
	}
}

// NewHarvestRequest builds a harvest{bedId} request
func NewHarvestRequest(userID string, bedID int) ActionRequest {
	return ActionRequest{
		UserID:     userID,
		ActionType: ActionHarvest,
		BedID:      &bedID,
	}
}

// NewUnlockBedRequest builds an unlock_bed{bedId, cost} request
func NewUnlockBedRequest(userID string, bedID, cost int) ActionRequest {
	return ActionRequest{
		UserID:     userID,
		ActionType: ActionUnlockBed,
		BedID:      &bedID,
		Cost:       &cost,
	}
}

// ActionResponse is the authority's reply to an action.
// Optional fields are pointers so that absence is distinguishable from zero.
type ActionResponse struct {
	Success          bool   `json:"success"`
	AnimationType    string `json:"animation_type,omitempty"`
	Message          string `json:"message,omitempty"`
	NewLevel         *int   `json:"new_level,omitempty"`
	Reward           *int   `json:"reward,omitempty"`
	CoinsSpent       *int   `json:"coinsSpent,omitempty"`
	CurrentExp       *int   `json:"current_exp,omitempty"`
	ExpToNextLevel   *int   `json:"exp_to_next_level,omitempty"`
	ExperienceGained *int   `json:"experience_gained,omitempty"`
	Plant            *Plant `json:"plant,omitempty"`
	Bed              *Bed   `json:"bed,omitempty"`
	Detail           string `json:"detail,omitempty"`
}

// GardenResponse is the body of GET /api/user/{id}/garden
type GardenResponse struct {
	Beds []Bed `json:"beds"`
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
