package service

import (
	"encoding/json"
	"fmt"

	"github.com/incident-assist/backend/internal/model"
)

const promptTemplate = `You are an AI assistant helping with incident management. Below are the most recent incidents:

%s

User Question: %s

Please provide a clear, professional response.`

// FormatIncidents renders the records as an indented JSON array with the
// eight labeled fields in fixed order. Pure function: identical input gives
// byte-identical output.
func FormatIncidents(incidents []model.Incident) (string, error) {
	formatted, err := json.MarshalIndent(incidents, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format incidents: %w", err)
	}
	return string(formatted), nil
}

// ComposePrompt merges the formatted incident block and the user question
// into the final prompt. Straight templating, no branching.
func ComposePrompt(incidentBlock, userQuestion string) string {
	return fmt.Sprintf(promptTemplate, incidentBlock, userQuestion)
}
