// Package pattern holds the named regular-expression catalog used by the
// validator façade and the matcher that evaluates strings against it.
//
// A Catalog is an immutable table: every Definition is compiled once when the
// catalog is built, into a find program (the expression as written) and a
// full-match program (the expression wrapped in `^(?:...)$`). After
// construction nothing in a Catalog changes, so a single instance can be shared
// by any number of goroutines without locking.
//
// # Usage
//
//	m := pattern.NewMatcher(pattern.Default())
//	m.FullMatch("a@b.com", pattern.Email)   // true
//	m.Find("abc1", pattern.DigitPresent)    // true
//
// Custom catalogs are built from definitions:
//
//	c, err := pattern.NewCatalog(append(pattern.Definitions(),
//	    pattern.Definition{Name: "ticket", Expr: `^[A-Z]{3}-[0-9]+$`})...)
//
// # Anchoring
//
// Several built-in expressions are deliberately unanchored (MD5, Hexadecimal,
// IPAddress and the *Present probes). Evaluated with Find they accept any
// string that contains a matching run, for example a 40 character string that
// contains 32 hex characters passes the MD5 check.
package pattern
