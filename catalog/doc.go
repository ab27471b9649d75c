// Package catalog holds the closed set of processors and robots, keyed
// by short device codes.
//
// Base processors are declared as literal instruction tables; the
// restricted members of each family are derived from the richest one
// with processor.Downgrade. The 8-bit family additionally shares a table
// of headings that groups its opcodes into documented sections.
package catalog
