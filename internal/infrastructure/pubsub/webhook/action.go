package webhookpubsub

// webhook action types
const (
	MarketLaunched WebhookAction = iota
	TradeSettled
	AllActions
)

var (
	actionToString = map[WebhookAction]string{
		MarketLaunched: "launch",
		TradeSettled:   "trade",
		AllActions:     "*",
	}
	stringToAction = map[string]WebhookAction{
		"launch": MarketLaunched,
		"trade":  TradeSettled,
		"*":      AllActions,
	}
)

type WebhookAction int

func WebhookActionFromString(actionStr string) (WebhookAction, bool) {
	action, ok := stringToAction[actionStr]
	return action, ok
}

func (wa WebhookAction) String() string {
	actionStr, ok := actionToString[wa]
	if !ok {
		actionStr = "UNKNOWN"
	}
	return actionStr
}

func (wa WebhookAction) Code() int {
	return int(wa)
}

func (wa WebhookAction) Label() string {
	return wa.String()
}
