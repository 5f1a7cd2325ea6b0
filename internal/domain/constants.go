package domain

import "time"

// Game constants shared with the authority service
const (
	// UnlockCost is the coin price of unlocking a locked bed
	UnlockCost = 200

	// DefaultPlotCount is the number of beds a fresh garden starts with
	DefaultPlotCount = 6

	// MaxProgress is the completion percentage of a fully grown plant
	MaxProgress = 100.0
)

// Session timing
const (
	// GrowthTickInterval is the cadence of the growth clock
	GrowthTickInterval = 1 * time.Second

	// NotificationWindow is how long a notification stays live after being posted
	NotificationWindow = 3 * time.Second
)

// User-facing messages produced by local pre-validation
const (
	MsgInvalidPlant       = "Invalid plant selected"
	MsgNotEnoughCoins     = "Not enough coins!"
	MsgSelectPlantFirst   = "Please select a plant from inventory first!"
	MsgUnlockCostFormat   = "You need %d coins to unlock this bed!"
	MsgBedNotFound        = "Garden bed not found"
	MsgBedLocked          = "Garden bed is locked"
	MsgBedAlreadyUnlocked = "Garden bed is already unlocked"
	MsgBedOccupied        = "Garden bed is already occupied"
	MsgNothingToHarvest   = "Nothing to harvest"
	MsgNotReady           = "Plant is not ready for harvest"
	MsgActionFailed       = "Action failed"
)
