// Package validate independently re-checks a decoded layout against the
// world it was solved over: overlap, out-of-bounds footprints, and
// terrain-support coverage after K-1 rounds of neighborhood diffusion.
// It shares no code with pkg/encoder by design, so a bug in one is
// unlikely to be masked by the same bug in the other.
package validate
