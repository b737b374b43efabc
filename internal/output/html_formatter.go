package output

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter converts the markdown report into a standalone HTML page.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

var htmlMarkdown = goldmark.New(goldmark.WithExtensions(extension.Table))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	if report.Empty() {
		return nil, ErrEmptyReport
	}
	var body bytes.Buffer
	if err := htmlMarkdown.Convert([]byte(reportMarkdown(report)), &body); err != nil {
		return nil, fmt.Errorf("failed to convert report to html: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "<!DOCTYPE html>")
	fmt.Fprintln(&buf, `<html lang="pt-BR">`)
	fmt.Fprintln(&buf, "<head>")
	fmt.Fprintln(&buf, `<meta charset="utf-8">`)
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(report.Title))
	fmt.Fprintln(&buf, "<style>body{font-family:sans-serif;max-width:960px;margin:2rem auto}table{border-collapse:collapse}td,th{border:1px solid #ddd;padding:4px 8px}</style>")
	fmt.Fprintln(&buf, "</head>")
	fmt.Fprintln(&buf, "<body>")
	buf.Write(body.Bytes())
	fmt.Fprintln(&buf, "</body>")
	fmt.Fprintln(&buf, "</html>")
	return buf.Bytes(), nil
}
