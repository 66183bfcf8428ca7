package catalog

import (
	"bytes"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var (
	mdOnce sync.Once
	mdInst goldmark.Markdown
)

func markdown() goldmark.Markdown {
	mdOnce.Do(func() {
		mdInst = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		)
	})
	return mdInst
}

// Markdown renders src to HTML. Raw HTML in src is not passed through, so
// the result is safe to embed in a page. On a conversion error the source is
// returned escaped.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown().Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
