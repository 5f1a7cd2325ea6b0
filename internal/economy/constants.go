package economy

// Log messages
const (
	LogMsgAmbiguousDelta = "Response carries both reward and coinsSpent; applying reward"
	LogMsgCoinsClamped   = "Debit would drive coins negative; clamping to zero"
	LogMsgEconomyMerged  = "Economy merged"
)
