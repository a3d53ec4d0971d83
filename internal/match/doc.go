// Package match provides the fixture data model: match records, the parsed
// dataset with its derived competition and round sets, and the deterministic
// team icon used when rendering cards.
//
// Records are built once at load time and never modified afterwards. Each
// record keeps the header it was parsed with, so the field set of a record is
// exactly the header's column names.
package match
