package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// SummaryService wraps the hosted model that writes the optional weekly
// summary paragraph. The engine only builds the prompt from its own
// aggregates; the text itself comes from the collaborator, and any failure
// here degrades to "no summary", never to a failed stats call.
type SummaryService struct {
	client *http.Client
	token  string
	model  string
}

func NewSummaryService() *SummaryService {
	return &SummaryService{
		client: &http.Client{Timeout: 15 * time.Second},
		token:  os.Getenv("HUGGINGFACE_TOKEN"),
		model:  "google/flan-t5-small",
	}
}

// WeeklySummary turns a week view into a short, encouraging recap.
func (s *SummaryService) WeeklySummary(view WeekView) (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}

	var sb bytes.Buffer
	sb.WriteString("This week's drink log (goal vs actual):\n")
	for _, d := range view.Days {
		if d.Count != nil {
			sb.WriteString(fmt.Sprintf("- %s: goal %d, drank %d\n", d.Weekday, d.Goal, *d.Count))
		} else {
			sb.WriteString(fmt.Sprintf("- %s: goal %d, not logged\n", d.Weekday, d.Goal))
		}
	}
	sb.WriteString(fmt.Sprintf("\nWeek totals: %d drinks against a target of %d across %d logged days.\n",
		view.TotalCount, view.TotalGoal, view.DaysLogged))
	sb.WriteString("Write two encouraging sentences summarising this week for someone cutting down on drinking. Plain text, no lists.")

	body := map[string]any{
		"inputs": sb.String(),
		"parameters": map[string]any{
			"max_new_tokens": 96,
			"temperature":    0.3,
		},
	}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequest(
		"POST",
		fmt.Sprintf("https://api-inference.huggingface.co/models/%s", s.model),
		bytes.NewReader(b),
	)
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-wait-for-model", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read hf response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var hfErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &hfErr) == nil && hfErr.Error != "" {
			return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var hfOut []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &hfOut); err != nil {
		return "", fmt.Errorf("decode hf response error: %v", err)
	}
	if len(hfOut) == 0 || strings.TrimSpace(hfOut[0].GeneratedText) == "" {
		return "", fmt.Errorf("empty summary from hf")
	}
	return strings.TrimSpace(hfOut[0].GeneratedText), nil
}
