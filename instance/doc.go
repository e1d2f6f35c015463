// Package instance loads and saves a World as JSON: a "_version" tag
// plus a flat list of cube cells and optional colors. Plain
// encoding/json is used rather than a third-party codec — the pack's
// only marshaling library beyond the standard one, gopkg.in/yaml.v3, is
// pulled in solely as an indirect dependency of stretchr/testify's own
// test fixtures and is never imported directly by any non-test file in
// the pack, so there's no precedent here for reaching past the standard
// library for this concern.
package instance
