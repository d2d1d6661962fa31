package inference

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoReply is returned when an upstream response contains none of the
// known reply fields.
var ErrNoReply = errors.New("no reply text in upstream response")

// ParseReply extracts the textual reply from an upstream response body.
// Different endpoints (and different upstream versions) name the field
// differently, so the lookup follows a fixed priority order:
//
//  1. choices[0].message.content (chat completions)
//  2. content
//  3. text
//  4. response
//
// A non-empty `error` field wins over all of them and is reported as an
// error. A body with none of the fields is ErrNoReply rather than being
// passed through as raw JSON.
func ParseReply(raw []byte) (string, error) {
	var envelope struct {
		Error   string `json:"error"`
		Choices []struct {
			Message Message `json:"message"`
		} `json:"choices"`
		Content  string `json:"content"`
		Text     string `json:"text"`
		Response string `json:"response"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("could not decode upstream response: %w", err)
	}

	if envelope.Error != "" {
		return "", fmt.Errorf("upstream reported error: %s", envelope.Error)
	}
	if len(envelope.Choices) > 0 && envelope.Choices[0].Message.Content != "" {
		return envelope.Choices[0].Message.Content, nil
	}
	if envelope.Content != "" {
		return envelope.Content, nil
	}
	if envelope.Text != "" {
		return envelope.Text, nil
	}
	if envelope.Response != "" {
		return envelope.Response, nil
	}
	return "", ErrNoReply
}
