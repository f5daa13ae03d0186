// Package httpsig implements HMAC-SHA256 signing and verification for HTTP
// requests exchanged between internal services that hold a shared secret.
// A client uses httpsig.Signer.Sign() to stamp a request with a unique ID,
// a timestamp, and a signature computed over all three of ID, timestamp, and
// payload body; the receiving service uses a Verifier configured with the
// same secret to prove that the request came from a holder of that secret,
// without the secret itself ever crossing the wire. The signature is the tag
// produced by this module's own hmacsha256 package.
package httpsig
