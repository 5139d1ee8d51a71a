package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lokeshsukhwal/Dasher/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() report.Result {
	return report.Build(`Monday: 9 AM - 5 PM
Tuesday: 9 AM - 5 PM
Saturday: 10 AM - 4 PM`, `Monday
(Labor Day)
Open 24 hours
Tuesday 10 AM - 5 PM
Saturday Closed`, report.DefaultOptions())
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleResult())

	assert.Contains(t, md, "# "+Title)
	assert.Contains(t, md, "| Day | Old | New | Status | Change |")
	assert.Contains(t, md, "| Monday | 9:00 AM - 5:00 PM | Open 24 Hours (Labor Day) | Extended | Full Day |")
	assert.Contains(t, md, "| Saturday | 10:00 AM - 4:00 PM | Closed | Closed Now | Status Change |")
	assert.Contains(t, md, "- **Update required**")
	assert.Contains(t, md, "### Extended Hours FULL Time")
}

func TestCellEscapesPipes(t *testing.T) {
	assert.Equal(t, `Closed (a \| b)`, cell("Closed", []string{"a | b"}))
}

func TestHTML(t *testing.T) {
	out, err := HTML(sampleResult())

	require.NoError(t, err)
	assert.Contains(t, out, "<title>"+Title+"</title>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>Monday</td>")
	assert.Contains(t, out, "<strong>Update required</strong>")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"md", FormatMarkdown, false},
		{"Markdown", FormatMarkdown, false},
		{"html", FormatHTML, false},
		{" PDF ", FormatPDF, false},
		{"docx", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "hours-comparison.pdf", FormatPDF.DefaultPath())
}

func TestWriteCreatesFiles(t *testing.T) {
	dir := t.TempDir()
	res := sampleResult()

	for _, f := range []Format{FormatMarkdown, FormatHTML, FormatPDF} {
		t.Run(string(f), func(t *testing.T) {
			path := filepath.Join(dir, f.DefaultPath())
			require.NoError(t, Write(res, f, path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.True(t, info.Size() > 0)
		})
	}
}

func TestPDFNoChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "same.pdf")
	res := report.Build("Monday: Closed", "Monday Closed", report.DefaultOptions())

	require.NoError(t, PDF(res, path))
	assert.FileExists(t, path)
}
