// Package xdr implements the XDR (External Data Representation) binary
// encoding defined by RFC 1014 and its successor RFC 4506.
//
// XDR is the standard serialization format used by Sun RPC protocols
// including NFS, NLM and NSM. This package provides the two halves of the
// codec:
//
//   - Packer: an append-only serializer that accumulates typed values into
//     a growing byte buffer.
//   - Unpacker: a cursor-based deserializer that reads typed values from an
//     immutable byte buffer, advancing a position as it goes.
//
// The codec has no notion of a message or record. Structure is imposed
// entirely by the sequence of Pack*/Unpack* calls, which must match between
// writer and reader. Composite helpers (PackArray, UnpackList, Marshal) take
// per-item callbacks or Encoder/Decoder implementations so that callers
// define their own message schemas.
//
// Key characteristics of XDR:
//   - Big-endian byte order for all multi-byte values
//   - 4-byte alignment for all data types
//   - Variable-length data is preceded by a 4-byte length
//   - Opaque data and strings are zero-padded to 4-byte boundaries
//
// Neither Packer nor Unpacker is safe for concurrent use. Each instance is
// meant to be driven by exactly one logical call sequence at a time (one
// message being built or consumed); instances are cheap to create and may be
// moved freely between goroutines.
//
// Reference: RFC 4506 - XDR: External Data Representation Standard
// https://tools.ietf.org/html/rfc4506
package xdr
