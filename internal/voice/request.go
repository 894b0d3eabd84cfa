// Package voice adapts voice-assistant intents to ranked headline queries and
// renders the results as spoken text plus a display card.
package voice

import "newpunch-journalist/internal/model"

// Request types sent by the voice platform.
const (
	LaunchRequest       = "LaunchRequest"
	IntentRequest       = "IntentRequest"
	SessionEndedRequest = "SessionEndedRequest"
)

// Intent names the adapter understands.
const (
	IntentGetSensationalist = "GetSensationalistHeadlines"
	IntentGetPolidicks      = "GetPolidicksHeadlines"
	IntentHelp              = "AMAZON.HelpIntent"
	IntentStop              = "AMAZON.StopIntent"
	IntentCancel            = "AMAZON.CancelIntent"
)

// CountSlot is the slot carrying the requested number of headlines.
const CountSlot = "count"

// Request is the platform request envelope reduced to what the adapter reads.
type Request struct {
	Type   string            `json:"type"`
	Intent string            `json:"intent,omitempty"`
	Slots  map[string]string `json:"slots,omitempty"`
}

// Card is the short display card shown next to the spoken answer.
type Card struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Response is what the platform speaks and displays.
type Response struct {
	Speech           string `json:"speech"`
	Reprompt         string `json:"reprompt,omitempty"`
	Card             *Card  `json:"card,omitempty"`
	ShouldEndSession bool   `json:"shouldEndSession"`
}

// IntentKind is the tagged variant a request is dispatched on.
type IntentKind int

const (
	KindUnknown IntentKind = iota
	KindSensationalist
	KindPolidicks
	KindHelp
	KindStop
)

func (k IntentKind) String() string {
	switch k {
	case KindSensationalist:
		return "sensationalist"
	case KindPolidicks:
		return "polidicks"
	case KindHelp:
		return "help"
	case KindStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Classify maps a request to its intent kind. A launch request asks for
// sensationalist headlines.
func Classify(req Request) IntentKind {
	switch req.Type {
	case LaunchRequest:
		return KindSensationalist
	case IntentRequest:
		switch req.Intent {
		case IntentGetSensationalist:
			return KindSensationalist
		case IntentGetPolidicks:
			return KindPolidicks
		case IntentHelp:
			return KindHelp
		case IntentStop, IntentCancel:
			return KindStop
		}
	}
	return KindUnknown
}

// category returns the headline category a kind queries.
func (k IntentKind) category() model.Category {
	if k == KindPolidicks {
		return model.Polidicks
	}
	return model.Sensationalist
}
