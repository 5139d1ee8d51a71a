package export

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/lokeshsukhwal/Dasher/internal/report"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

const page = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2rem auto; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTML renders the Markdown form of res into a standalone page.
func HTML(res report.Result) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(res)), &body); err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return fmt.Sprintf(page, Title, body.String()), nil
}
