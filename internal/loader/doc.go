// Package loader retrieves a fixture resource and parses it into a
// match.Dataset.
//
// Sources are local paths or http(s) URLs. The comma-separated format is the
// primary one: the first line is the header and every following line is a row,
// split naively on commas (quoted fields are not supported). JSON arrays as
// written by the fixture generator, the first sheet of an .xlsx workbook and
// the first table of an HTML page are accepted as well.
//
// Every failure to retrieve or read the resource is reported as a *LoadError.
package loader
