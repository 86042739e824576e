package service

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// IdentifierCodec translates identifiers between their transport form and their stored form.
type IdentifierCodec interface {
	Encode(id string) string
	Decode(encoded string) (string, error)
}

// Base64URLCodec encodes identifiers with the URL-safe base64 alphabet. Decoding accepts
// unpadded input or input carrying exactly the padding its length calls for, and rejects
// line breaks and non-zero trailing bits.
type Base64URLCodec struct{}

// Encode returns the unpadded URL-safe base64 form of id.
func (Base64URLCodec) Encode(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

// Decode reverses Encode.
func (Base64URLCodec) Decode(encoded string) (string, error) {
	enc := base64.RawURLEncoding.Strict()
	if strings.Contains(encoded, "=") {
		enc = base64.URLEncoding.Strict()
	}
	decoded, err := enc.DecodeString(encoded)
	if err != nil || strings.ContainsAny(encoded, "\r\n") {
		return "", NewInvalidArgumentError("identifier is not valid base64url (value: %s)", encoded)
	}
	return string(decoded), nil
}

// PlainCodec passes identifiers through unchanged.
type PlainCodec struct{}

// Encode returns id unchanged.
func (PlainCodec) Encode(id string) string { return id }

// Decode returns encoded unchanged.
func (PlainCodec) Decode(encoded string) (string, error) { return encoded, nil }

const (
	// EncodingBase64URL selects Base64URLCodec
	EncodingBase64URL = "base64url"
	// EncodingPlain selects PlainCodec
	EncodingPlain = "plain"
)

// NewIdentifierCodec returns the codec registered under name. An empty name selects
// base64url.
func NewIdentifierCodec(name string) (IdentifierCodec, error) {
	switch name {
	case "", EncodingBase64URL:
		return Base64URLCodec{}, nil
	case EncodingPlain:
		return PlainCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown identifier encoding: %s", name)
	}
}
