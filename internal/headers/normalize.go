package headers

import (
	"fmt"
	"strings"

	"webhook-verifier/internal/common/errors"
	"webhook-verifier/internal/providers"
)

// headerSet names the headers a provider's signature scheme reads
type headerSet struct {
	signature         string
	timestamp         string
	id                string
	timestampOptional bool
}

var directory = map[providers.Provider]headerSet{
	providers.Stripe:      {signature: "Stripe-Signature"},
	providers.GitHub:      {signature: "X-Hub-Signature-256"},
	providers.Shopify:     {signature: "X-Shopify-Hmac-SHA256"},
	providers.Slack:       {signature: "X-Slack-Signature", timestamp: "X-Slack-Request-Timestamp"},
	providers.Twilio:      {signature: "X-Twilio-Signature"},
	providers.Discord:     {signature: "X-Signature-Ed25519", timestamp: "X-Signature-Timestamp"},
	providers.Linear:      {signature: "Linear-Signature"},
	providers.Vercel:      {signature: "X-Vercel-Signature"},
	providers.Svix:        {signature: "Svix-Signature", timestamp: "Svix-Timestamp", id: "Svix-Id"},
	providers.Clerk:       {signature: "Svix-Signature", timestamp: "Svix-Timestamp", id: "Svix-Id"},
	providers.SendGrid:    {signature: "X-Twilio-Email-Event-Webhook-Signature", timestamp: "X-Twilio-Email-Event-Webhook-Timestamp", timestampOptional: true},
	providers.Paddle:      {signature: "Paddle-Signature"},
	providers.Intercom:    {signature: "X-Hub-Signature"},
	providers.Mailchimp:   {signature: "X-Mailchimp-Signature"},
	providers.GitLab:      {signature: "X-Gitlab-Token"},
	providers.Typeform:    {signature: "Typeform-Signature"},
	providers.Crystallize: {signature: "X-Crystallize-Signature"},
	providers.Zendesk:     {signature: "X-Zendesk-Webhook-Signature", timestamp: "X-Zendesk-Webhook-Signature-Timestamp"},
	providers.Square:      {signature: "X-Square-HmacSha256-Signature"},
	providers.HubSpot:     {signature: "X-HubSpot-Signature-v3", timestamp: "X-HubSpot-Request-Timestamp"},
	providers.Segment:     {signature: "X-Signature"},
}

// Normalize combines a provider's signature header(s) into the canonical
// token its verifier parses: the raw signature header, with ",t=<ts>" and
// ",id=<id>" appended for multi-header providers. Missing headers return
// an authentication error naming them; an unrecognized provider is a
// caller bug and returns a not-found error.
func Normalize(provider providers.Provider, m Map) (string, error) {
	set, known := directory[provider]
	if !known {
		return "", errors.NotFoundError("provider " + string(provider))
	}

	var missing []string

	signature := m.Get(set.signature)
	if signature == "" {
		missing = append(missing, set.signature)
	}

	var timestamp string
	if set.timestamp != "" {
		timestamp = m.Get(set.timestamp)
		if timestamp == "" && !set.timestampOptional {
			missing = append(missing, set.timestamp)
		}
	}

	var id string
	if set.id != "" {
		id = m.Get(set.id)
		if id == "" {
			missing = append(missing, set.id)
		}
	}

	if len(missing) > 0 {
		return "", errors.AuthError(fmt.Sprintf(
			"required signature header(s) missing for provider %s: %s",
			provider, strings.Join(missing, ", ")))
	}

	token := signature
	if timestamp != "" {
		token += ",t=" + timestamp
	}
	if id != "" {
		token += ",id=" + id
	}
	return token, nil
}

// Names returns the header names a provider's scheme reads, signature
// header first
func Names(provider providers.Provider) ([]string, error) {
	set, known := directory[provider]
	if !known {
		return nil, errors.NotFoundError("provider " + string(provider))
	}

	names := []string{set.signature}
	if set.timestamp != "" {
		names = append(names, set.timestamp)
	}
	if set.id != "" {
		names = append(names, set.id)
	}
	return names, nil
}

// Directory returns a read-only copy of the provider directory mapping
// logical fields to header names, for documentation and error messages
func Directory() map[providers.Provider]map[string]string {
	out := make(map[providers.Provider]map[string]string, len(directory))
	for provider, set := range directory {
		fields := map[string]string{"signature": set.signature}
		if set.timestamp != "" {
			fields["timestamp"] = set.timestamp
		}
		if set.id != "" {
			fields["id"] = set.id
		}
		out[provider] = fields
	}
	return out
}

// Detect returns the first provider whose required signature headers are
// all present. Providers with generic header names sort last in
// providers.All, so specific schemes win.
func Detect(m Map) (providers.Provider, bool) {
	for _, provider := range providers.All() {
		set := directory[provider]
		if m.Get(set.signature) == "" {
			continue
		}
		if set.timestamp != "" && !set.timestampOptional && m.Get(set.timestamp) == "" {
			continue
		}
		if set.id != "" && m.Get(set.id) == "" {
			continue
		}
		return provider, true
	}
	return "", false
}
