package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type GeminiService struct {
	ApiKey string
}

func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{ApiKey: apiKey}
}

// Compose asks Gemini for a short title/description pair for a "miss you"
// push from sourceUsername to targetUsername.
func (g *GeminiService) Compose(ctx context.Context, sourceUsername, targetUsername string) (string, string, error) {
	// Use gemini-2.5-flash for fast, cheap generation
	url := "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent?key=" + g.ApiKey

	prompt := fmt.Sprintf(`Create a sweet, heartfelt message for a "Miss You" app.

Context: %s wants to send a message to %s

Please create:
1. A short, catchy title (max 30 characters)
2. A sweet, personal description (max 100 characters)

Make it feel personal, warm, and genuine. Avoid generic messages,
you can also use emojis but do not use too many.

Format your response as json, do not do markdown only return json object.
{
    "title": "[title here]",
    "description": "[description here]"
}`, sourceUsername, targetUsername)

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("Gemini API error: %s", string(respBody))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", "", err
	}

	text, ok := extractText(result)
	if !ok {
		return "", "", fmt.Errorf("no message returned")
	}

	return parseMessage(text)
}

// extractText pulls the first candidate's text out of a generateContent response
func extractText(result map[string]interface{}) (string, bool) {
	if c, ok := result["candidates"].([]interface{}); ok && len(c) > 0 {
		if cand, ok := c[0].(map[string]interface{}); ok {
			if content, ok := cand["content"].(map[string]interface{}); ok {
				if parts, ok := content["parts"].([]interface{}); ok && len(parts) > 0 {
					if part, ok := parts[0].(map[string]interface{}); ok {
						if text, ok := part["text"].(string); ok {
							return text, true
						}
					}
				}
			}
		}
	}
	return "", false
}

// parseMessage decodes the model's JSON answer, tolerating ```json fences
// that Gemini sometimes wraps around the object.
func parseMessage(text string) (string, string, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var message struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(cleaned), &message); err != nil {
		return "", "", fmt.Errorf("failed to parse generated message: %w", err)
	}
	if message.Title == "" || message.Description == "" {
		return "", "", fmt.Errorf("generated message is incomplete")
	}
	return message.Title, message.Description, nil
}
