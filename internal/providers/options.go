package providers

import (
	"net/http"

	"webhook-verifier/internal/crypto"
)

// Options carries the contextual inputs some signing schemes require.
// A nil *Options is valid and means all defaults.
type Options struct {
	// Tolerance is the replay window in seconds for timestamped schemes.
	// Zero means the 300 second default.
	Tolerance int64

	// URL is the full request URL, required by schemes that sign over it
	// (Twilio, Square, HubSpot, Crystallize)
	URL string

	// Method is the HTTP method for schemes that sign over it
	// (HubSpot, Crystallize). Empty means POST.
	Method string

	// AdditionalSecrets are alternate credentials tried in order after
	// the primary secret, for zero-downtime secret rotation
	AdditionalSecrets []string
}

func (o *Options) tolerance() int64 {
	if o == nil || o.Tolerance <= 0 {
		return crypto.DefaultToleranceSeconds
	}
	return o.Tolerance
}

func (o *Options) url() string {
	if o == nil {
		return ""
	}
	return o.URL
}

func (o *Options) method() string {
	if o == nil || o.Method == "" {
		return http.MethodPost
	}
	return o.Method
}

// secretCandidates returns the primary secret followed by any alternates,
// the trial order for rotation support
func secretCandidates(secret string, opts *Options) []string {
	if opts == nil || len(opts.AdditionalSecrets) == 0 {
		return []string{secret}
	}

	candidates := make([]string, 0, 1+len(opts.AdditionalSecrets))
	candidates = append(candidates, secret)
	for _, alternate := range opts.AdditionalSecrets {
		if alternate != "" {
			candidates = append(candidates, alternate)
		}
	}
	return candidates
}
