package voice

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"

	"newpunch-journalist/internal/model"
)

// Headline counts the adapter will request.
const (
	DefaultHeadlineCount = 3
	MaxHeadlineCount     = 10
)

// ClampCount quantizes a spoken count slot to 3, 5 or 10. A missing or
// non-numeric slot counts as 3.
func ClampCount(slot string) int {
	c, err := strconv.Atoi(strings.TrimSpace(slot))
	if err != nil {
		return DefaultHeadlineCount
	}
	switch {
	case c < DefaultHeadlineCount:
		return DefaultHeadlineCount
	case c == 4:
		return 5
	case c > 5:
		return MaxHeadlineCount
	default:
		return c
	}
}

var ordinals = [MaxHeadlineCount]string{
	"First", "Second", "Third", "Fourth", "Fifth",
	"Sixth", "Seventh", "Eighth", "Ninth", "Tenth",
}

type label struct {
	Spoken string
	Card   string
}

var labels = map[model.Category]label{
	model.Sensationalist: {Spoken: "sensationalist", Card: "Sensationalist Headlines"},
	model.Polidicks:      {Spoken: "political", Card: "Polidicks Headlines"},
}

type speechItem struct {
	Number   int
	Ordinal  string
	Headline string
}

type speechData struct {
	Label string
	Items []speechItem
}

var (
	speechTpl = template.Must(template.New("speech").Parse(
		`Here are the latest {{len .Items}} {{.Label}} headlines from Facepunch.` +
			`{{range .Items}} {{.Ordinal}} headline: {{.Headline}}.{{end}}`))
	cardTpl = template.Must(template.New("card").Parse(
		"{{range .Items}}{{.Number}}. {{.Headline}}\n{{end}}"))
)

// renderHeadlines builds the spoken text and card for a result list. Only
// the first ten headlines have ordinals and are rendered.
func renderHeadlines(cat model.Category, headlines []string) (Response, error) {
	if len(headlines) > MaxHeadlineCount {
		headlines = headlines[:MaxHeadlineCount]
	}
	l := labels[cat]
	data := speechData{Label: l.Spoken, Items: make([]speechItem, 0, len(headlines))}
	for i, h := range headlines {
		data.Items = append(data.Items, speechItem{Number: i + 1, Ordinal: ordinals[i], Headline: h})
	}
	var speech, card bytes.Buffer
	if err := speechTpl.Execute(&speech, data); err != nil {
		return Response{}, err
	}
	if err := cardTpl.Execute(&card, data); err != nil {
		return Response{}, err
	}
	return Response{
		Speech: speech.String(),
		Card:   &Card{Title: l.Card, Content: card.String()},
	}, nil
}
