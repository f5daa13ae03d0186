package entry

import (
	"context"
	"encoding/hex"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/silverlode/mac-common/hmacsha256"
)

// MetadataSignatureKey is the metadata key under which a signed gRPC request
// carries its hex-encoded HMAC-SHA256 tag
const MetadataSignatureKey = "x-hmac-signature"

// GRPCSignRequest returns a copy of ctx with outgoing metadata carrying the
// HMAC-SHA256 tag for the given call, computed over the full method name
// followed by the encoded request message. Use it on the client side of a
// connection whose server was built with GRPCRequireSignature.
func GRPCSignRequest(ctx context.Context, secret []byte, fullMethod string, req proto.Message) (context.Context, error) {
	encoded, err := proto.Marshal(req)
	if err != nil {
		return ctx, err
	}
	tag := signGRPCPayload(secret, fullMethod, encoded)
	return metadata.AppendToOutgoingContext(ctx, MetadataSignatureKey, hex.EncodeToString(tag[:])), nil
}

// GRPCRequireSignature returns a unary server interceptor that rejects any
// request whose metadata does not carry a valid HMAC-SHA256 tag over the
// full method name and the encoded request message. Requests that fail
// verification are refused with codes.Unauthenticated before the handler is
// ever invoked.
//
// The tag is checked against proto.Marshal of the decoded request, not
// against the raw bytes that arrived on the wire, so clients must sign the
// proto.Marshal output of the message they send (as GRPCSignRequest does)
// rather than hand-encoded wire bytes.
func GRPCRequireSignature(secret []byte) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		values := metadata.ValueFromIncomingContext(ctx, MetadataSignatureKey)
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing request signature")
		}
		provided, err := hex.DecodeString(values[0])
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "malformed request signature")
		}

		message, ok := req.(proto.Message)
		if !ok {
			return nil, status.Error(codes.Internal, "request is not a proto message")
		}
		encoded, err := proto.Marshal(message)
		if err != nil {
			return nil, status.Error(codes.Internal, "failed to encode request for verification")
		}

		tag := signGRPCPayload(secret, info.FullMethod, encoded)
		if !hmacsha256.Equal(provided, tag[:]) {
			return nil, status.Error(codes.Unauthenticated, "invalid request signature")
		}
		return handler(ctx, req)
	}
}

// signGRPCPayload computes the tag both sides agree on: the full method name
// immediately followed by the encoded message bytes
func signGRPCPayload(secret []byte, fullMethod string, encoded []byte) [hmacsha256.Size]byte {
	payload := make([]byte, 0, len(fullMethod)+len(encoded))
	payload = append(payload, fullMethod...)
	payload = append(payload, encoded...)
	return hmacsha256.Sum(secret, payload)
}
