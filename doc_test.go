package pricebook

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBook assembles a loose imitation of the price book container: a few
// object shells around Flate payloads, plus one payload of raw image bytes
// that must not inflate.
func buildBook(t *testing.T, contents ...[]byte) []byte {
	t.Helper()
	var doc bytes.Buffer
	doc.WriteString("%PDF-1.4\n")
	for i, c := range contents {
		body := deflate(t, c)
		fmt.Fprintf(&doc, "%d 0 obj\n<< /Length %d /Filter /FlateDecode >>\nstream\n", i+1, len(body))
		doc.Write(body)
		doc.WriteString("\nendstream\nendobj\n")
	}
	doc.WriteString("90 0 obj\n<< /Subtype /Image >>\nstream\n")
	doc.Write([]byte{0xff, 0xd8, 0xff, 0xe0, 0x12, 0x34})
	doc.WriteString("\nendstream\nendobj\n%%EOF\n")
	return doc.Bytes()
}

func TestExtract(t *testing.T) {
	page1 := []byte(`BT
/F1 10 Tf
(ABCD1) Tj
(Minor repair) Tj
(150.00) Tj
(2 days) Tj
ET`)
	page2 := []byte(`BT
[(C)2(ACU00)-3(01)] TJ
(Replace filter unit) Tj
[(1,234.50)] TJ
(5 days) Tj
(ABCD1) Tj
(duplicate, dropped) Tj
(999.00) Tj
(1 day) Tj
ET`)

	rows := Extract(buildBook(t, page1, page2))
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Code: "ABCD1", Description: "Minor repair", Price: 150}, rows[0])
	assert.Equal(t, Row{Code: "CACU0001", Description: "Replace filter unit", Price: 1234.50}, rows[1])
}

func TestExtractNothing(t *testing.T) {
	assert.Empty(t, Extract([]byte("no payloads in here")))
	assert.Empty(t, Extract(nil))
}

func TestFragmentsOrderAcrossPayloads(t *testing.T) {
	one := []byte(`(a) Tj (b) Tj`)
	two := []byte(`[(c)] TJ`)
	frags := Fragments(buildBook(t, one, two))
	assert.Equal(t, []string{"a", "b", "c"}, frags)
}
