// Package protocol owns the headset bridge wire contract and parsing
// primitives.
//
// Ownership boundary:
// - frame splitting primitives (frame subpackage)
// - facet message types and classification
// - JSON payload decoding and decode failure reporting
package protocol
