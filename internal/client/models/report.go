package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnrecognizedPayload is returned when a payload carries no sentiment scores.
var ErrUnrecognizedPayload = errors.New("unrecognized sentiment payload")

// SentimentReport holds the three class scores, each in [0, 1].
type SentimentReport struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// Dominant returns the label with the highest score.
func (r SentimentReport) Dominant() string {
	switch {
	case r.Positive >= r.Neutral && r.Positive >= r.Negative:
		return "positive"
	case r.Negative >= r.Neutral:
		return "negative"
	default:
		return "neutral"
	}
}

// Analysis is one successful classification as kept in the history.
type Analysis struct {
	ID        uuid.UUID
	Text      string
	Payload   RawPayload
	Report    *SentimentReport
	CreatedAt time.Time
}

// NewAnalysis stamps a fresh analysis; the report is filled in when the
// payload can be parsed.
func NewAnalysis(text string, payload RawPayload) Analysis {
	a := Analysis{
		ID:        uuid.New(),
		Text:      text,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	if r, err := ParseSentimentReport(payload); err == nil {
		a.Report = &r
	}
	return a
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ParseSentimentReport reads label/score pairs from a classifier payload.
// Both the nested form [[{...}]] and the flat form [{...}] are accepted.
// Labels are either named (positive, neutral, negative) or indexed
// (LABEL_0 negative, LABEL_1 neutral, LABEL_2 positive).
func ParseSentimentReport(payload []byte) (SentimentReport, error) {
	var report SentimentReport

	var nested [][]labelScore
	var scores []labelScore
	if err := json.Unmarshal(payload, &nested); err == nil && len(nested) > 0 {
		scores = nested[0]
	} else if err := json.Unmarshal(payload, &scores); err != nil {
		return report, fmt.Errorf("%w: %v", ErrUnrecognizedPayload, err)
	}

	matched := 0
	for _, s := range scores {
		switch strings.ToLower(s.Label) {
		case "positive", "label_2":
			report.Positive = s.Score
		case "neutral", "label_1":
			report.Neutral = s.Score
		case "negative", "label_0":
			report.Negative = s.Score
		default:
			continue
		}
		matched++
	}
	if matched == 0 {
		return report, ErrUnrecognizedPayload
	}

	return report, nil
}
