package httpsig

import (
	"encoding/hex"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/silverlode/mac-common/hmacsha256"
)

// Signer stamps outbound HTTP requests with an HMAC-SHA256 signature that a
// Verifier holding the same secret can check
type Signer interface {
	Sign(req *http.Request, body []byte) *http.Request
}

// NewSigner initializes a Signer that authenticates requests under the given
// shared secret
func NewSigner(secret string) Signer {
	return &signer{
		secret: []byte(secret),
	}
}

type signer struct {
	secret []byte
}

func (s *signer) Sign(req *http.Request, body []byte) *http.Request {
	// Generate ID and timestamp headers if the caller hasn't already set
	// them; both values are covered by the signature
	requestId := req.Header.Get(HeaderRequestId)
	if requestId == "" {
		requestId = uuid.NewString()
		req.Header.Set(HeaderRequestId, requestId)
	}

	timestamp := req.Header.Get(HeaderRequestTimestamp)
	if timestamp == "" {
		timestamp = time.Now().Format(time.RFC3339)
		req.Header.Set(HeaderRequestTimestamp, timestamp)
	}

	tag := computeTag(s.secret, requestId, timestamp, body)
	req.Header.Set(HeaderSignature, SignaturePrefix+hex.EncodeToString(tag[:]))
	return req
}

// computeTag produces the HMAC-SHA256 tag over the exact byte sequence both
// sides agree on: request ID, then timestamp, then body
func computeTag(secret []byte, requestId, timestamp string, body []byte) [hmacsha256.Size]byte {
	message := make([]byte, 0, len(requestId)+len(timestamp)+len(body))
	message = append(message, requestId...)
	message = append(message, timestamp...)
	message = append(message, body...)
	return hmacsha256.Sum(secret, message)
}

var _ Signer = (*signer)(nil)
