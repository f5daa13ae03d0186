package httpsig

const (
	// HeaderRequestId is the name of the header that carries a unique ID
	// generated for a signed request
	HeaderRequestId = "x-hmac-request-id"

	// HeaderRequestTimestamp is the name of the header that carries an
	// RFC3339 timestamp indicating when the request was made
	HeaderRequestTimestamp = "x-hmac-request-timestamp"

	// HeaderSignature is the name of the header that carries the HMAC-SHA256
	// tag computed over the concatenation of the request ID, the timestamp
	// string, and the request payload body, formatted as "sha256=<hex>"
	HeaderSignature = "x-hmac-signature"
)

// SignaturePrefix identifies the algorithm in the signature header value
const SignaturePrefix = "sha256="
