// Package codec moves data trees in and out of wire bytes.
//
// The engines in the root package work on data trees: nil, string,
// float64, bool, []any and map[string]any. Decode produces exactly that
// from JSON, YAML or CBOR input, and Encode writes such a tree back out.
// Marshal and Unmarshal chain a codec with a Mapper so an annotated
// instance goes straight to bytes and back.
//
// CBOR output uses Core Deterministic Encoding, so equal trees always
// produce equal bytes.
package codec
