package voice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"newpunch-journalist/internal/model"
)

const (
	HelpMessage  = "You can ask me for the top three, five, or ten headlines from Sensationalist Headlines or Polidicks on the Facepunch Forums."
	HelpReprompt = "Which would you like to hear?"
	StopMessage  = "Goodbye!"
	ErrorMessage = "Sorry, an error occurred."
)

// ErrUnhandled is returned for requests no handler accepts.
var ErrUnhandled = errors.New("voice: no handler for request")

type handlerFunc func(ctx context.Context, req Request) (Response, error)

// queryPayload mirrors headlines.Query on the wire.
type queryPayload struct {
	Type    string `json:"type"`
	Count   int    `json:"count"`
	SortKey string `json:"sortKey"`
}

// Adapter dispatches voice requests by intent kind.
type Adapter struct {
	invoker  Invoker
	handlers map[IntentKind]handlerFunc
}

func NewAdapter(invoker Invoker) *Adapter {
	a := &Adapter{invoker: invoker}
	a.handlers = map[IntentKind]handlerFunc{
		KindSensationalist: a.handleHeadlines(KindSensationalist),
		KindPolidicks:      a.handleHeadlines(KindPolidicks),
		KindHelp:           handleHelp,
		KindStop:           handleStop,
	}
	return a
}

// Handle answers a request. Failures are logged and answered with the
// apology message; they never propagate to the platform.
func (a *Adapter) Handle(ctx context.Context, req Request) Response {
	kind := Classify(req)
	h, ok := a.handlers[kind]
	var (
		resp Response
		err  error
	)
	if ok {
		resp, err = h(ctx, req)
	} else {
		err = fmt.Errorf("%w: type=%q intent=%q", ErrUnhandled, req.Type, req.Intent)
	}
	if err != nil {
		slog.Error("voice: error handled", "kind", kind, "error", err.Error(), "stack", string(debug.Stack()))
		return Response{Speech: ErrorMessage, Reprompt: ErrorMessage}
	}
	return resp
}

func (a *Adapter) handleHeadlines(kind IntentKind) handlerFunc {
	return func(ctx context.Context, req Request) (Response, error) {
		cat := kind.category()
		count := ClampCount(req.Slots[CountSlot])
		headlines, err := a.headlines(ctx, cat, count, model.SortByLastPostTime)
		if err != nil {
			return Response{}, err
		}
		resp, err := renderHeadlines(cat, headlines)
		if err != nil {
			return Response{}, err
		}
		slog.Info("voice: generated response", "kind", kind, "headlines", len(headlines))
		return resp, nil
	}
}

// headlines invokes the query service. A response that cannot be parsed
// counts as no results.
func (a *Adapter) headlines(ctx context.Context, cat model.Category, count int, key model.SortKey) ([]string, error) {
	payload, err := json.Marshal(queryPayload{Type: string(cat), Count: count, SortKey: string(key)})
	if err != nil {
		return nil, err
	}
	slog.Info("voice: sending query", "payload", string(payload))
	out, err := a.invoker.Invoke(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("voice: invoke query: %w", err)
	}
	var threads []model.ThreadRecord
	if err := json.Unmarshal(out, &threads); err != nil {
		slog.Error("voice: discarding query response", "error", &ParsePayloadError{Payload: out, Err: err})
		return nil, nil
	}
	headlines := make([]string, 0, len(threads))
	for _, t := range threads {
		headlines = append(headlines, t.Headline)
	}
	return headlines, nil
}

func handleHelp(context.Context, Request) (Response, error) {
	return Response{Speech: HelpMessage, Reprompt: HelpReprompt}, nil
}

func handleStop(context.Context, Request) (Response, error) {
	return Response{Speech: StopMessage, ShouldEndSession: true}, nil
}
