package reports

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	pageWidth  = 612.0
	pageHeight = 792.0
	margin     = 54.0

	truncationNotice = "Full details are available in the online report."
)

type font string

const (
	fontRegular font = "F1"
	fontBold    font = "F2"
)

// line is one pre-wrapped run of text on the page.
type line struct {
	font font
	size float64
	text string
	// gap is the extra space left above the line.
	gap float64
}

// page lays out lines top to bottom on a single Letter page.
type page struct {
	lines     []line
	truncated bool
}

func (p *page) add(f font, size float64, text string, gap float64) {
	for i, part := range wrap(text, size) {
		g := gap
		if i > 0 {
			g = 0
		}
		p.lines = append(p.lines, line{font: f, size: size, text: part, gap: g})
	}
}

// wrap splits text into chunks that fit the printable width. Helvetica averages about
// half an em per glyph, which is close enough for body text.
func wrap(text string, size float64) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return []string{""}
	}
	maxChars := int((pageWidth - 2*margin) / (size * 0.5))
	var out []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && utf8.RuneCountInString(cur.String())+1+utf8.RuneCountInString(word) > maxChars {
			out = append(out, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

// fit returns the lines that fit above the bottom margin. When some are dropped the
// last kept line becomes a notice pointing to the online report.
func (p *page) fit() []line {
	y := pageHeight - margin
	for i, l := range p.lines {
		y -= l.gap + l.size*1.3
		if y < margin {
			p.truncated = true
			kept := append([]line(nil), p.lines[:max(i-1, 0)]...)
			return append(kept, line{font: fontRegular, size: 9, text: truncationNotice})
		}
	}
	return p.lines
}

func (p *page) content() []byte {
	var buf bytes.Buffer
	y := pageHeight - margin
	for _, l := range p.fit() {
		y -= l.gap + l.size*1.3
		fmt.Fprintf(&buf, "BT /%s %s Tf %s %s Td (%s) Tj ET\n", l.font, num(l.size), num(margin), num(y), escape(l.text))
	}
	return buf.Bytes()
}

// document writes a one-page PDF 1.4 file with the two standard Helvetica faces.
func (p *page) document(title string) []byte {
	stream := p.content()
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %s %s] /Resources << /Font << /F1 5 0 R /F2 6 0 R >> >> /Contents 4 0 R >>", num(pageWidth), num(pageHeight)),
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Title (%s) /Producer (diagnostic-backend) >>", escape(title)),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R /Info %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, len(objects), xref)
	return buf.Bytes()
}

func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// winAnsi maps the non-Latin-1 runes WinAnsiEncoding places in 0x80-0x9F.
var winAnsi = map[rune]byte{
	'€': 0x80, '‚': 0x82, '„': 0x84, '…': 0x85, '•': 0x95,
	'‘': 0x91, '’': 0x92, '“': 0x93, '”': 0x94, '–': 0x96, '—': 0x97, '™': 0x99,
}

// escape converts text to a WinAnsi PDF literal string body.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		var c byte
		switch {
		case r == '\\' || r == '(' || r == ')':
			b.WriteByte('\\')
			b.WriteRune(r)
			continue
		case r == '\n' || r == '\r' || r == '\t':
			c = ' '
		case r >= 0x20 && r < 0x7f:
			c = byte(r)
		case r >= 0xa0 && r <= 0xff:
			c = byte(r)
		default:
			mapped, ok := winAnsi[r]
			if !ok {
				mapped = '?'
			}
			c = mapped
		}
		if c >= 0x80 {
			fmt.Fprintf(&b, "\\%03o", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
