// Package htmltomarkdown renders article HTML as Markdown so that lists,
// headings and tables keep their structure in the extracted text.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/briefly"
)

// Ensure Converter implements briefly.Converter at compile time.
var _ briefly.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter. Images are dropped since the
// structuring model only sees text.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	conv.Register.TagType("img", converter.TagTypeRemove, converter.PriorityStandard)
	conv.Register.TagType("picture", converter.TagTypeRemove, converter.PriorityStandard)
	return &Converter{conv: conv}
}

// Convert transforms HTML into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", briefly.Errorf(briefly.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
