package domain

// RawDocument is the upstream metadata document for one work, as decoded
// from the registry response. Values keep their decoded JSON shapes
// (string, float64, bool, nil, []any, map[string]any) and are untrusted.
type RawDocument map[string]any
