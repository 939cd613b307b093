package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/incident-assist/backend/internal/model"
)

var (
	ErrEmptyQuestion = errors.New("empty user question")
	ErrNoIncidents   = errors.New("no incidents found")
)

const (
	defaultIncidentLimit = 5
	// Cap on how many rows a question can pull in one scan. The limit is
	// user-controlled text, so it gets a bound here.
	maxIncidentLimit = 100
)

var limitPattern = regexp.MustCompile(`(?i)last (\d+) incidents`)

type IncidentFetcher interface {
	RecentIncidents(ctx context.Context, limit int) ([]model.Incident, error)
}

type ModelInvoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

type AskService struct {
	store   IncidentFetcher
	bedrock ModelInvoker
}

func NewAskService(store IncidentFetcher, bedrock ModelInvoker) *AskService {
	return &AskService{store: store, bedrock: bedrock}
}

// Ask runs the full pipeline for one question: derive the record limit,
// fetch the incident window, build the prompt, invoke the model. The two
// external calls are strictly sequential.
func (s *AskService) Ask(ctx context.Context, userQuestion string) (string, error) {
	userQuestion = strings.TrimSpace(userQuestion)
	if userQuestion == "" {
		return "", ErrEmptyQuestion
	}

	limit := ExtractIncidentLimit(userQuestion)

	incidents, err := s.store.RecentIncidents(ctx, limit)
	if err != nil {
		return "", err
	}
	if len(incidents) == 0 {
		return "", ErrNoIncidents
	}

	block, err := FormatIncidents(incidents)
	if err != nil {
		return "", err
	}

	answer, err := s.bedrock.Invoke(ctx, ComposePrompt(block, userQuestion))
	if err != nil {
		return "", err
	}
	return answer, nil
}

// ExtractIncidentLimit reads an explicit "last N incidents" phrase out of
// the question. First match wins; no phrase means the default window.
func ExtractIncidentLimit(userQuestion string) int {
	match := limitPattern.FindStringSubmatch(userQuestion)
	if match == nil {
		return defaultIncidentLimit
	}
	n, err := strconv.Atoi(match[1])
	if err != nil || n > maxIncidentLimit {
		return maxIncidentLimit
	}
	return n
}
