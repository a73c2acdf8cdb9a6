// Package naming converts arbitrary mapping-file names into valid,
// collision-free Java identifiers and constant names.
//
// The pipeline has four independent pieces:
//
//   - Identifier: any string -> valid bare Java identifier
//   - ConstantName: member name -> UPPER_SNAKE_CASE constant base name
//   - ParamSuffix: method signature -> overload-disambiguating suffix
//   - Deduper: candidate names -> pairwise-distinct final names
//
// All four are deterministic: the same input sequence always produces the
// same output names, which keeps generated trees stable across runs.
package naming
