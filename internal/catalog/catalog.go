// Package catalog holds the static registry of known integrations.
// Lookups are case-sensitive on the canonical display name; unknown
// names resolve to a generic fallback rather than an error.
package catalog

import "sort"

// Integration describes a third-party integration known to the console.
type Integration struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

// Registry is an immutable set of known integrations keyed by display name.
type Registry struct {
	byName map[string]Integration
}

// builtins are the integrations the console ships with.
var builtins = []Integration{
	{Name: "GitHub", Icon: "/icons/github.svg", Category: "development"},
	{Name: "GitLab", Icon: "/icons/gitlab.svg", Category: "development"},
	{Name: "Slack", Icon: "/icons/slack.svg", Category: "communication"},
	{Name: "Notion", Icon: "/icons/notion.svg", Category: "productivity"},
	{Name: "Jira", Icon: "/icons/jira.svg", Category: "productivity"},
	{Name: "Linear", Icon: "/icons/linear.svg", Category: "productivity"},
	{Name: "Google Drive", Icon: "/icons/google-drive.svg", Category: "storage"},
	{Name: "Salesforce", Icon: "/icons/salesforce.svg", Category: "crm"},
	{Name: "Stripe", Icon: "/icons/stripe.svg", Category: "billing"},
	{Name: "PostgreSQL", Icon: "/icons/postgresql.svg", Category: "database"},
	{Name: "Zendesk", Icon: "/icons/zendesk.svg", Category: "support"},
	{Name: "Datadog", Icon: "/icons/datadog.svg", Category: "observability"},
}

// NewRegistry returns a registry seeded with the built-in integrations.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Integration, len(builtins))}
	for _, i := range builtins {
		r.byName[i.Name] = i
	}
	return r
}

// Lookup returns the integration for the exact display name.
func (r *Registry) Lookup(name string) (Integration, bool) {
	i, ok := r.byName[name]
	return i, ok
}

// Resolve returns the integration for the name, or a generic fallback
// carrying the requested name and a default icon.
func (r *Registry) Resolve(name string) Integration {
	if i, ok := r.byName[name]; ok {
		return i
	}
	return Integration{Name: name, Icon: "/icons/integration.svg", Category: "other"}
}

// Names returns all known integration names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all known integrations sorted by name.
func (r *Registry) All() []Integration {
	all := make([]Integration, 0, len(r.byName))
	for _, name := range r.Names() {
		all = append(all, r.byName[name])
	}
	return all
}
