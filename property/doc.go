// Package property extracts the fixed property taxonomy of a core.Graph into
// an ordered, freeze-once Record that serializes to one JSON object.
//
// Usage:
//
//	x, err := property.NewExtractor(g, rng)
//	if err != nil { ... }
//	if err := x.ExtractAll(); err != nil { ... }
//	rec := x.Record()
//	data, _ := json.Marshal(rec)
//
// Names are a closed enumeration (Name); shortest_path, maximum_flow and
// hamilton_path are reserved and never populated. Unbounded metrics are
// the string "inf".
package property
