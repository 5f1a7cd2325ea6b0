package client

import "time"

// Authority endpoints
const (
	PathPlayerFormat    = "/api/user/%s"
	PathInventoryFormat = "/api/user/%s/inventory"
	PathGardenFormat    = "/api/user/%s/garden"
	PathPlants          = "/api/plants"
	PathGameAction      = "/api/game/action"
)

// Endpoint labels for metrics and logs
const (
	EndpointPlayer    = "player"
	EndpointInventory = "inventory"
	EndpointGarden    = "garden"
	EndpointPlants    = "plants"
	EndpointAction    = "action"
)

// Retry defaults for idempotent reads
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
	maxJitter         = 100 * time.Millisecond
)

// HeaderAPIKey carries the optional shared secret
const HeaderAPIKey = "X-API-Key"

// DefaultRejectionDetail is used when the authority refuses without a detail
const DefaultRejectionDetail = "Action failed"

// Log messages
const (
	LogMsgRetryingRequest   = "Retrying authority request"
	LogMsgRequestFailed     = "Authority request failed"
	LogMsgServerErrorRetry  = "Authority server error, will retry"
	LogMsgActionSent        = "Sending game action"
	LogMsgActionRejected    = "Game action rejected"
	LogMsgResponseInvalid   = "Authority response failed schema validation"
	LogMsgActionCompleted   = "Game action completed"
	LogMsgRequestValidation = "Game action request failed validation"
)
