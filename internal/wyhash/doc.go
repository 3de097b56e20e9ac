// Package wyhash provides the 64-bit wyhash non-cryptographic hash used to
// hash Matchable values.
package wyhash
