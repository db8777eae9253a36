// Package lnk decodes Microsoft Windows Shell Link (.lnk) shortcut files
// into an in-memory, read-only representation suitable for forensic
// inspection, indexing, and reporting.
//
// # Quick Start
//
//	sf, err := lnk.OpenFile("shortcut.lnk", nil)
//	if err != nil {
//		var lerr *types.Error
//		if errors.As(err, &lerr) {
//			log.Fatalf("parse failed at %s: %v", lerr.Section, lerr)
//		}
//		log.Fatal(err)
//	}
//	defer sf.Close()
//
//	fmt.Println(sf.LocalPath().UTF8())
//	fmt.Println(sf.CreationTime())
//
// # Features
//
//   - Structural decode of the FileHeader, link-target identifier,
//     location information, the five data strings, and the tagged
//     data-block stream.
//   - Dual ANSI/UTF-16 string accessors with automatic preference for the
//     UTF-16 mirror when present.
//   - Typed accessors for every known data-block signature, with opaque
//     retention of anything unrecognized.
//   - Forensic warnings for recoverable decode failures, enumerable after
//     a successful parse.
//
// # Basic Usage
//
//	sf, err := lnk.OpenBytes(data, nil)
//	if err != nil { ... }
//	if sf.LinkRefersToFile() {
//		fmt.Println(sf.LocalPath().UTF8())
//	}
//	for _, w := range sf.Warnings() {
//		fmt.Println(w)
//	}
//
// # Error Handling
//
// Open returns a single *types.Error describing the first fatal problem.
// Accessors for absent optional fields never return an error: they report
// a zero size or an explicit "not present" bool.
package lnk
