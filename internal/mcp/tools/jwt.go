package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formakit/formakit-mcp/pkg/jwtx"
)

// DecodeJWTInput is the input for formakit_decode_jwt.
type DecodeJWTInput struct {
	Token string `json:"token" jsonschema:"compact JWT (header.payload.signature)"`
}

// DecodeJWTOutput is the output for formakit_decode_jwt.
type DecodeJWTOutput struct {
	Header    map[string]any `json:"header,omitzero"`
	Claims    map[string]any `json:"claims,omitzero"`
	Signed    bool           `json:"signed"`
	ExpiresAt string         `json:"expires_at,omitempty"`
	IssuedAt  string         `json:"issued_at,omitempty"`
}

// ToolDecodeJWT decodes a JWT's header and claims. Signatures are never
// verified; this is an inspection tool.
func ToolDecodeJWT(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input DecodeJWTInput) (*sdkmcp.CallToolResult, DecodeJWTOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input DecodeJWTInput) (*sdkmcp.CallToolResult, DecodeJWTOutput, error) {
		tok, err := jwtx.Decode(input.Token)
		if err != nil {
			return nil, DecodeJWTOutput{}, ErrInvalidInput("invalid JWT: " + err.Error())
		}

		return nil, DecodeJWTOutput{
			Header:    tok.Header,
			Claims:    tok.Claims,
			Signed:    tok.Signed,
			ExpiresAt: tok.ExpiresAt,
			IssuedAt:  tok.IssuedAt,
		}, nil
	}
}
