// Package hosted downloads pre-built data snapshots from a public
// object-store bucket, so the default workflow needs no API key. The
// snapshots carry the same JSON payloads the live APIs return and flow
// through the same cache.
package hosted
