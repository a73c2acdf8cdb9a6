// Package gen turns a parsed mapping table into a generated Java source
// tree: one final class per mapped class, mirroring the sanitized original
// package hierarchy under a configured base package.
//
// Generation is a two-phase batch: Records sorts the table and assigns
// collision-free constant names, then Run renders each record through
// text/template and writes it below the output root. The output root is
// fully cleared first, so artifacts for renamed or removed mapping entries
// never linger. Two emission strategies are supported; the static-init
// strategy assigns constants inside a static block so the Java compiler
// cannot fold the values into call sites.
package gen
