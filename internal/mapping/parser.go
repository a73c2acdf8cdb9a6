package mapping

import (
	"bytes"
	"regexp"
	"strings"
)

const (
	// memberIndent is the exact indentation that marks a member line.
	memberIndent = "    "
	// arrow separates the named form from the obfuscated form.
	arrow = " -> "
)

var (
	// lineRangeRE matches the optional "12:34:" prefix some dialects put in
	// front of a method's return type.
	lineRangeRE = regexp.MustCompile(`^\d+:\d+:`)

	// methodNameRE captures the token immediately preceding the first "(".
	methodNameRE = regexp.MustCompile(`(\S+)\s*\(`)
)

// maxLineSize bounds a single mapping line; real-world files stay far below
// this, but generated signatures can get long.
const maxLineSize = 1 << 20

// Parse consumes mapping text and builds the class table. It never fails:
// malformed lines are dropped and counted in the returned Stats, so one bad
// record cannot abort generation of the remaining classes. That includes
// lines over maxLineSize, which are dropped individually while the lines
// after them keep parsing.
func Parse(data []byte) (Table, Stats) {
	table := make(Table)

	var (
		stats   Stats
		current *ClassMapping
	)

	for start := 0; start < len(data); {
		raw := data[start:]
		if nl := bytes.IndexByte(raw, '\n'); nl >= 0 {
			raw = raw[:nl]
			start += nl + 1
		} else {
			start = len(data)
		}

		if len(raw) > maxLineSize {
			stats.Dropped++

			continue
		}

		line := strings.TrimSuffix(string(raw), "\r")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasSuffix(trimmed, ":") {
			// A malformed header-shaped line is dropped without disturbing
			// the current class context.
			if cm := parseHeader(table, trimmed, &stats); cm != nil {
				current = cm
			}

			continue
		}

		if strings.HasPrefix(line, memberIndent) && strings.Contains(line, arrow) && current != nil {
			parseMember(current, trimmed, &stats)

			continue
		}

		stats.Dropped++
	}

	return table, stats
}

// parseHeader handles a "original -> obf:" class header line. A header for
// an already-seen class updates its obfuscated name and reopens it as the
// current class. Returns nil for header-shaped lines that do not split into
// exactly two parts.
func parseHeader(table Table, trimmed string, stats *Stats) *ClassMapping {
	parts := strings.Split(strings.TrimRight(trimmed, ":"), arrow)
	if len(parts) != 2 {
		stats.Dropped++

		return nil
	}

	cm, ok := table[parts[0]]
	if !ok {
		cm = &ClassMapping{OriginalName: parts[0]}
		table[parts[0]] = cm
		stats.Classes++
	}

	cm.ObfuscatedName = parts[1]

	return cm
}

// parseMember attaches one member line to the current class. The obfuscated
// name is whatever follows the last " -> " on the line; a "(" in the
// definition part makes it a method, anything else a field.
func parseMember(current *ClassMapping, trimmed string, stats *Stats) {
	idx := strings.LastIndex(trimmed, arrow)
	definition := strings.TrimSpace(trimmed[:idx])
	obfName := trimmed[idx+len(arrow):]

	if strings.Contains(definition, "(") {
		match := methodNameRE.FindStringSubmatch(definition)
		if match == nil {
			stats.Dropped++

			return
		}

		name := match[1]
		if dot := strings.LastIndex(name, "."); dot >= 0 {
			name = name[dot+1:]
		}

		current.Methods = append(current.Methods, MethodMapping{
			ObfuscatedName: obfName,
			NamedName:      name,
			Signature:      lineRangeRE.ReplaceAllString(definition, ""),
		})
		stats.Methods++

		return
	}

	fields := strings.Fields(definition)
	if len(fields) == 0 {
		stats.Dropped++

		return
	}

	current.Fields = append(current.Fields, FieldMapping{
		ObfuscatedName: obfName,
		NamedName:      fields[len(fields)-1],
	})
	stats.Fields++
}
