package relay

import "strings"

// Subject hierarchy for relayed console events.
const (
	SubjectPrefix = "console"

	// Wildcard patterns for subscriptions.
	SubjectAllAgents       = "console.agent.>"
	SubjectAllIntegrations = "console.integration.>"
	SubjectAllServers      = "console.server.>"
	SubjectAll             = "console.>"
)

// Subject maps an event type like "agent.created" and its subject record
// to a NATS subject like "console.agent.support-triage.created". Subject
// tokens are slugged so record names can't inject wildcards.
func Subject(eventType, subject string) string {
	section, action, ok := strings.Cut(eventType, ".")
	if !ok {
		return SubjectPrefix + "." + slug(eventType)
	}
	if subject == "" {
		return SubjectPrefix + "." + section + "." + action
	}
	return SubjectPrefix + "." + section + "." + slug(subject) + "." + action
}

// slug lowercases and replaces NATS-significant characters.
func slug(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, s)
}
