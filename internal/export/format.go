package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/lokeshsukhwal/Dasher/internal/report"
)

// Format selects an export renderer.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
)

// ParseFormat accepts md, markdown, html or pdf.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unknown export format %q (expected md, html or pdf)", s)
}

// DefaultPath is the file name used when no output path is given.
func (f Format) DefaultPath() string {
	return "hours-comparison." + string(f)
}

// Write renders res in format f to path.
func Write(res report.Result, f Format, path string) error {
	switch f {
	case FormatPDF:
		return PDF(res, path)
	case FormatHTML:
		out, err := HTML(res)
		if err != nil {
			return err
		}
		return writeFile(path, out)
	case FormatMarkdown:
		return writeFile(path, Markdown(res))
	}
	return fmt.Errorf("unknown export format %q", f)
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
