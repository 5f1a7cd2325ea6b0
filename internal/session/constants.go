package session

// Log messages
const (
	LogMsgSessionLoaded       = "Session loaded from authority"
	LogMsgSessionLoadFailed   = "Session load failed"
	LogMsgSessionClosed       = "Session closed"
	LogMsgActionRefused       = "Action refused, another action is in flight"
	LogMsgActionInvalid       = "Action failed local validation"
	LogMsgActionDispatched    = "Action dispatched"
	LogMsgActionConfirmed     = "Action confirmed"
	LogMsgActionFailed        = "Action failed"
	LogMsgResponseDiscarded   = "Discarding response for a session that is no longer active"
	LogMsgMissingBedPayload   = "Confirmed response carries no bed payload; applying locally"
	LogMsgMissingPlantPayload = "Confirmed buy carries no plant payload; using catalog entry"
	LogMsgPublishFailed       = "Failed to publish session event"
	LogMsgBedReady            = "Bed ready for harvest"
)
