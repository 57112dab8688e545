package export

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"foundercast/pkg/core/report"
)

// WritePDF renders the report bundle as an A4 PDF. The document is built as
// markdown first (fixed section order) and then laid out with the markdown
// renderer below, so the PDF and any future HTML/email render stay in sync.
func WritePDF(rep *report.Report, currency string, insights Insights) ([]byte, error) {
	markdown := BuildMarkdown(rep, currency, insights)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	source := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(source))

	layout := &pdfLayout{pdf: pdf, source: source}
	if err := ast.Walk(doc, layout.walk); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfLayout walks the markdown AST and drives fpdf. It handles the node kinds
// BuildMarkdown actually emits: headings, paragraphs, emphasis, lists, and
// pipe tables.
type pdfLayout struct {
	pdf    *fpdf.Fpdf
	source []byte
	bold   bool
	inList bool
}

func (l *pdfLayout) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading:
		l.heading(node, entering)
	case *ast.Paragraph:
		if !entering {
			l.pdf.Ln(6)
		}
	case *ast.Text:
		if entering {
			l.pdf.Write(5, string(node.Text(l.source)))
		}
	case *ast.Emphasis:
		l.bold = entering && node.Level == 2
		l.resetFont()
	case *ast.List:
		if entering {
			l.inList = true
		} else {
			l.inList = false
			l.pdf.Ln(4)
		}
	case *ast.ListItem:
		if entering {
			l.pdf.Ln(5)
			l.pdf.SetX(16)
			l.pdf.Write(5, "- ")
		}
	case *ast.ThematicBreak:
		if entering {
			l.pdf.Ln(3)
			l.pdf.Line(12, l.pdf.GetY(), 198, l.pdf.GetY())
			l.pdf.Ln(3)
		}
	case *extast.Table:
		if entering {
			l.table(node)
			return ast.WalkSkipChildren, nil
		}
	}
	return ast.WalkContinue, nil
}

func (l *pdfLayout) heading(n *ast.Heading, entering bool) {
	if entering {
		l.pdf.Ln(7)
		size := 11.0
		if n.Level == 1 {
			size = 16
		} else if n.Level == 2 {
			size = 13
		}
		l.pdf.SetFont("Arial", "B", size)
		return
	}
	l.pdf.Ln(7)
	l.resetFont()
}

func (l *pdfLayout) resetFont() {
	style := ""
	if l.bold {
		style = "B"
	}
	l.pdf.SetFont("Arial", style, 10)
}

// table renders a pipe table with equal column widths scaled to the page.
// Cell text is truncated to fit; the report's tables are numeric and short.
func (l *pdfLayout) table(n *extast.Table) {
	rows := tableRows(n, l.source)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return
	}

	l.pdf.Ln(2)
	colWidth := 186.0 / float64(len(rows[0]))
	rowHeight := 6.0

	for i, row := range rows {
		if i == 0 {
			l.pdf.SetFont("Arial", "B", 8.5)
			l.pdf.SetFillColor(232, 232, 232)
		} else {
			l.pdf.SetFont("Arial", "", 8.5)
			l.pdf.SetFillColor(255, 255, 255)
		}
		if l.pdf.GetY()+rowHeight > 285 {
			l.pdf.AddPage()
		}
		for _, cell := range row {
			cell = fitCell(l.pdf, cell, colWidth-3)
			l.pdf.CellFormat(colWidth, rowHeight, cell, "1", 0, "L", i == 0, 0, "")
		}
		l.pdf.Ln(rowHeight)
	}

	l.pdf.Ln(3)
	l.resetFont()
}

// fitCell drops trailing runes until the string fits the column width, so a
// multi-byte sequence is never split.
func fitCell(pdf *fpdf.Fpdf, s string, width float64) string {
	for pdf.GetStringWidth(s) > width && utf8.RuneCountInString(s) > 1 {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s
}

func tableRows(n *extast.Table, source []byte) [][]string {
	var rows [][]string
	appendRow := func(tr ast.Node) {
		var row []string
		for cell := tr.FirstChild(); cell != nil; cell = cell.NextSibling() {
			row = append(row, string(cell.Text(source)))
		}
		rows = append(rows, row)
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *extast.TableHeader:
			appendRow(c)
		case *extast.TableRow:
			appendRow(c)
		}
	}
	return rows
}
