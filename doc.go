// Package pricebook extracts price list rows from the compressed content
// streams of a PDF price book. It reads just enough of the container to
// find Flate encoded payloads, decodes the string literals their text
// showing operators carry, and recovers code/description/price rows from
// the resulting fragment sequence by position. It does not parse object or
// xref tables, handle encryption, or lay text out by glyph widths: the
// heuristic is tuned to one known price book layout and silently skips
// whatever it cannot classify.
package pricebook

// Extract runs the whole pipeline over raw document bytes with the default
// heuristic settings. The result keeps the order in which rows appear in
// the document and may be empty.
func Extract(buf []byte) []Row {
	asm, err := NewAssembler(DefaultSettings())
	if err != nil {
		return nil
	}
	return asm.Assemble(Fragments(buf))
}

// Fragments returns the ordered sequence of rendered text fragments found
// in the document, one per text showing operator, across every payload that
// inflates. Payloads holding images, fonts and other non Flate resources
// contribute nothing.
func Fragments(buf []byte) []string {
	var list []string
	for _, body := range Payloads(buf) {
		list = append(list, scanFragments(decodeStream(body))...)
	}
	return list
}

// Payloads returns the inflated body of every located payload that
// actually inflates, in container order.
func Payloads(buf []byte) [][]byte {
	var list [][]byte
	for _, body := range payloads(NewReader(buf)) {
		dec, err := inflate(body)
		if err != nil {
			continue
		}
		list = append(list, dec)
	}
	return list
}
