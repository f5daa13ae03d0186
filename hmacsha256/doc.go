// Package hmacsha256 implements the HMAC-SHA256 message authentication code
// from scratch, following the RFC 2104 / FIPS 198-1 construction: the secret
// key is normalized to the 64-byte SHA-256 block, two pads are derived from
// it by XOR-ing with fixed constants, and the tag is produced by an inner
// hash over (pad ‖ message) followed by an outer hash over (pad ‖ inner
// digest). Only SHA-256 itself is taken from the standard library; the
// construction lives here so that the other packages in this module (HTTP
// request signing, signed AMQP messaging, gRPC interceptors) share a single,
// well-tested MAC primitive.
//
// All functions are pure: no state is retained between calls, and concurrent
// use from multiple goroutines requires no synchronization.
package hmacsha256
