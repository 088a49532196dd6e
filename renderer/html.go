// Package renderer turns formatted blocks and analysis reports into markup
// for the preview pane, the terminal and the quality indicator.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"peticiona-backend/models"
)

// DefaultFontStack is used for unknown font names
const DefaultFontStack = `"Times New Roman", Times, serif`

var fontStacks = map[string]string{
	"times":    DefaultFontStack,
	"arial":    `Arial, Helvetica, sans-serif`,
	"garamond": `Garamond, "EB Garamond", serif`,
	"georgia":  `Georgia, serif`,
	"calibri":  `Calibri, Carlito, sans-serif`,
	"courier":  `"Courier New", Courier, monospace`,
	"verdana":  `Verdana, Geneva, sans-serif`,
}

// FontStack maps a template font name to a CSS font-family stack
func FontStack(name string) string {
	if stack, ok := fontStacks[strings.ToLower(strings.TrimSpace(name))]; ok {
		return stack
	}
	return DefaultFontStack
}

// inlinePolicy keeps only the emphasis markup the formatter emits.
var inlinePolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "strong", "em")
	return p
}()

// RenderHTML renders blocks as an HTML fragment: one <div class="document">
// holding a <p> per block.
func RenderHTML(blocks []models.Block, settings models.StyleSettings) (string, error) {
	doc := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr: []html.Attribute{
			{Key: "class", Val: "document"},
			{Key: "style", Val: documentStyle(settings)},
		},
	}

	for i, block := range blocks {
		node, err := blockNode(block)
		if err != nil {
			return "", fmt.Errorf("failed to render block %d: %w", i, err)
		}
		doc.AppendChild(node)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.String(), nil
}

func blockNode(block models.Block) (*html.Node, error) {
	p := &html.Node{
		Type:     html.ElementNode,
		Data:     "p",
		DataAtom: atom.P,
		Attr: []html.Attribute{
			{Key: "class", Val: string(block.Role)},
			{Key: "style", Val: blockStyle(block.Style)},
		},
	}

	context := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
	children, err := html.ParseFragment(strings.NewReader(inlinePolicy.Sanitize(block.Text)), context)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		p.AppendChild(child)
	}
	return p, nil
}

type declarations []string

// add skips empty values and values that would end the declaration early.
func (d *declarations) add(property, value string) {
	if value == "" || !models.SafeCSSValue(value) {
		return
	}
	*d = append(*d, property+": "+value)
}

func (d declarations) String() string {
	return strings.Join(d, "; ")
}

func blockStyle(s models.StyleAttributes) string {
	var d declarations
	d.add("text-align", s.TextAlign)
	d.add("font-weight", s.FontWeight)
	d.add("margin", s.Margin)
	d.add("text-indent", s.TextIndent)
	d.add("margin-left", s.MarginLeft)
	if s.FontSize > 0 {
		d.add("font-size", formatFloat(s.FontSize)+"pt")
	}
	return d.String()
}

func documentStyle(s models.StyleSettings) string {
	var d declarations
	d.add("font-family", FontStack(s.DefaultFont))
	if s.FontSize > 0 {
		d.add("font-size", formatFloat(s.FontSize)+"pt")
	}
	if s.LineHeight > 0 {
		d.add("line-height", formatFloat(s.LineHeight))
	}
	d.add("padding", s.Margin)
	return d.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
