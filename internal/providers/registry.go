package providers

import (
	"sync"

	"webhook-verifier/internal/common/errors"
	"webhook-verifier/internal/crypto"
)

// Verifier checks a webhook signature for one provider. Implementations
// must treat every malformed or missing input as a failed verification,
// never as a panic or error.
type Verifier interface {
	Verify(payload []byte, signature, secret string, opts *Options) bool
}

// Registry maps provider names to their verifiers
type Registry struct {
	verifiers map[Provider]Verifier
	mu        sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		verifiers: make(map[Provider]Verifier),
	}
}

// Register adds or replaces the verifier for a provider
func (r *Registry) Register(provider Provider, verifier Verifier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.verifiers[provider] = verifier
}

// Get returns the verifier for a provider
func (r *Registry) Get(provider Provider) (Verifier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	verifier, exists := r.verifiers[provider]
	return verifier, exists
}

// IsRegistered reports whether a provider has a verifier
func (r *Registry) IsRegistered(provider Provider) bool {
	_, exists := r.Get(provider)
	return exists
}

// Verify dispatches to the provider's verifier. An unknown provider name
// is a caller bug and returns an error; every other failure returns
// (false, nil). The primary secret is tried first, then each entry of
// opts.AdditionalSecrets in order, succeeding on first match.
func (r *Registry) Verify(provider Provider, payload []byte, signature, secret string, opts *Options) (bool, error) {
	verifier, exists := r.Get(provider)
	if !exists {
		return false, errors.NotFoundError("provider " + string(provider))
	}

	if signature == "" || secret == "" {
		return false, nil
	}

	for _, candidate := range secretCandidates(secret, opts) {
		if verifier.Verify(payload, signature, candidate, opts) {
			return true, nil
		}
	}

	return false, nil
}

// DefaultRegistry holds the closed provider set
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()

	// HMAC-over-raw-payload family, distinguished only by algorithm,
	// encoding, and an optional stripped prefix
	r.Register(GitHub, bodyHMACVerifier{algorithm: crypto.SHA256, encoding: crypto.EncodingHex, prefix: "sha256="})
	r.Register(Shopify, bodyHMACVerifier{algorithm: crypto.SHA256, encoding: crypto.EncodingBase64})
	r.Register(Mailchimp, bodyHMACVerifier{algorithm: crypto.SHA256, encoding: crypto.EncodingBase64})
	r.Register(Typeform, bodyHMACVerifier{algorithm: crypto.SHA256, encoding: crypto.EncodingBase64, prefix: "sha256="})
	r.Register(Intercom, bodyHMACVerifier{algorithm: crypto.SHA1, encoding: crypto.EncodingHex, prefix: "sha1="})
	r.Register(Linear, bodyHMACVerifier{algorithm: crypto.SHA256, encoding: crypto.EncodingHex})
	r.Register(Vercel, bodyHMACVerifier{algorithm: crypto.SHA1, encoding: crypto.EncodingHex})
	r.Register(Segment, bodyHMACVerifier{algorithm: crypto.SHA1, encoding: crypto.EncodingHex})

	r.Register(Stripe, stripeVerifier{})
	r.Register(Slack, slackVerifier{})
	r.Register(Svix, svixVerifier{})
	r.Register(Clerk, clerkVerifier{})
	r.Register(Discord, discordVerifier{})
	r.Register(Twilio, twilioVerifier{})
	r.Register(SendGrid, sendgridVerifier{})
	r.Register(Paddle, paddleVerifier{})
	r.Register(GitLab, gitlabVerifier{})
	r.Register(Zendesk, zendeskVerifier{})
	r.Register(Square, squareVerifier{})
	r.Register(HubSpot, hubspotVerifier{})
	r.Register(Crystallize, crystallizeVerifier{})

	return r
}

// Verify dispatches through the default registry
func Verify(provider Provider, payload []byte, signature, secret string, opts *Options) (bool, error) {
	return DefaultRegistry.Verify(provider, payload, signature, secret, opts)
}
