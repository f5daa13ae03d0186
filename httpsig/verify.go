package httpsig

import (
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/silverlode/mac-common/hmacsha256"
)

// ErrVerificationFailed is returned whenever a request cannot be proven
// authentic, whether its signature is missing, malformed, or simply wrong.
// The cases are deliberately not distinguished to callers.
var ErrVerificationFailed = errors.New("verification failed")

// Verifier checks that an inbound HTTP request was signed by a holder of the
// shared secret
type Verifier interface {
	Verify(req *http.Request, body []byte) error
}

// NewVerifier initializes a Verifier that checks request signatures against
// the given shared secret
func NewVerifier(secret string) Verifier {
	return &verifier{
		secret: []byte(secret),
	}
}

type verifier struct {
	secret []byte
}

func (v *verifier) Verify(req *http.Request, body []byte) error {
	requestId := req.Header.Get(HeaderRequestId)
	if requestId == "" {
		return ErrVerificationFailed
	}

	timestamp := req.Header.Get(HeaderRequestTimestamp)
	if timestamp == "" {
		return ErrVerificationFailed
	}

	signatureHeader := req.Header.Get(HeaderSignature)
	if !strings.HasPrefix(signatureHeader, SignaturePrefix) {
		return ErrVerificationFailed
	}
	provided, err := hex.DecodeString(strings.TrimPrefix(signatureHeader, SignaturePrefix))
	if err != nil {
		return ErrVerificationFailed
	}

	tag := computeTag(v.secret, requestId, timestamp, body)
	if !hmacsha256.Equal(provided, tag[:]) {
		return ErrVerificationFailed
	}
	return nil
}

var _ Verifier = (*verifier)(nil)
