package session

import (
	"strings"

	"pulse-ai/backend/internal/model"
)

// legacyMockReply is the placeholder assistant message written by builds that
// predate the API integration. Collections that still contain it are cleaned
// up on load.
// TODO: retire this migration once no stored collections from those builds
// remain in the wild.
const legacyMockReply = "This is a mock response. Connect your API endpoint to get real completions."

// loadMigrations run in order against the collection read from storage.
// They exist for one-time cleanups; new entries append to the list so older
// payloads pass through every step.
var loadMigrations = []func([]*model.ChatSession){
	dropLegacyMockReplies,
}

func applyLoadMigrations(sessions []*model.ChatSession) {
	for _, migrate := range loadMigrations {
		migrate(sessions)
	}
}

func dropLegacyMockReplies(sessions []*model.ChatSession) {
	for _, sess := range sessions {
		kept := sess.Messages[:0]
		for _, msg := range sess.Messages {
			if strings.Contains(msg.Content, legacyMockReply) {
				continue
			}
			kept = append(kept, msg)
		}
		sess.Messages = kept
	}
}
