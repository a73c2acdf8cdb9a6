// Package mapping parses ProGuard/R8 obfuscation mapping files into an
// in-memory table of classes and their field/method members.
//
// The grammar is deliberately permissive: mapping dialects vary between
// obfuscator versions, so a line that fits no known production is dropped
// and counted rather than failing the run. The only hard failure is not
// being able to obtain the input at all.
//
// # Recognized productions
//
//	# comment, or a blank line                    -> ignored
//	original.Class -> obf:                        -> class header
//	    type fieldName -> obfName                 -> field member
//	    [12:34:]ret methodName(params) -> obfName -> method member
//
// Member lines must be indented with exactly four spaces and attach to the
// most recently seen class header; a member with no preceding header is
// dropped.
package mapping
