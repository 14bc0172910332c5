package providers

import "webhook-verifier/internal/crypto"

// gitlabVerifier reproduces GitLab's token scheme: no hashing at all, the
// header carries the shared secret verbatim and is compared against it in
// constant time. The payload plays no part.
type gitlabVerifier struct{}

func (gitlabVerifier) Verify(_ []byte, signature, secret string, _ *Options) bool {
	return crypto.ConstantTimeEqualsString(signature, secret)
}
