// Package providers implements per-provider webhook signature
// verification. Each supported provider reproduces that provider's exact
// signing convention: header token grammar, signed-message construction,
// hash or signature algorithm, and encoding. Verification is a pure
// function of the inputs; every attacker-controllable failure degrades to
// false and only an unknown provider name surfaces as an error.
package providers

// Provider is one of the fixed set of supported webhook providers
type Provider string

const (
	Stripe      Provider = "stripe"
	GitHub      Provider = "github"
	Shopify     Provider = "shopify"
	Slack       Provider = "slack"
	Twilio      Provider = "twilio"
	Discord     Provider = "discord"
	Linear      Provider = "linear"
	Vercel      Provider = "vercel"
	Svix        Provider = "svix"
	Clerk       Provider = "clerk"
	SendGrid    Provider = "sendgrid"
	Paddle      Provider = "paddle"
	Intercom    Provider = "intercom"
	Mailchimp   Provider = "mailchimp"
	GitLab      Provider = "gitlab"
	Typeform    Provider = "typeform"
	Crystallize Provider = "crystallize"
	Zendesk     Provider = "zendesk"
	Square      Provider = "square"
	HubSpot     Provider = "hubspot"
	Segment     Provider = "segment"
)

// All returns the supported providers in a stable order
func All() []Provider {
	return []Provider{
		Stripe, GitHub, Shopify, Slack, Twilio, Discord, Linear, Vercel,
		Svix, Clerk, SendGrid, Paddle, Intercom, Mailchimp, GitLab,
		Typeform, Crystallize, Zendesk, Square, HubSpot, Segment,
	}
}
