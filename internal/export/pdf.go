package export

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/lokeshsukhwal/Dasher/internal/compare"
	"github.com/lokeshsukhwal/Dasher/internal/report"
)

var (
	pdfHeaderColor  = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor   = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor    = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfReducedColor = props.Color{Red: 190, Green: 40, Blue: 40}
	pdfExtendColor  = props.Color{Red: 30, Green: 130, Blue: 60}
)

// PDF writes res as an A4 document to outputPath.
func PDF(res report.Result, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, Title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	s := res.Summary
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%d reduced, %d extended, %d unchanged", s.ReducedDays, s.ExtendedDays, s.NoChangeDays), props.Text{
			Size:  11,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: &pdfHeaderColor}
	m.AddRow(7,
		text.NewCol(2, "Day", header),
		text.NewCol(4, "Old", header),
		text.NewCol(4, "New", header),
		text.NewCol(2, "Status", header),
	)
	for _, r := range res.Results {
		status := props.Text{Size: 9}
		switch {
		case r.Class.IsReduction():
			status.Color = &pdfReducedColor
		case r.Class.IsExtension():
			status.Color = &pdfExtendColor
		}
		m.AddRow(6,
			text.NewCol(2, r.Day.String(), props.Text{Size: 9}),
			text.NewCol(4, r.OldHours, props.Text{Size: 9}),
			text.NewCol(4, r.NewHours, props.Text{Size: 9}),
			text.NewCol(2, statusLabel(r.Class), status),
		)
	}

	m.AddRow(4)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(12, "Remarks", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
	)
	for _, rm := range res.Remarks {
		m.AddRow(7,
			text.NewCol(12, rm.Title, props.Text{Style: fontstyle.Bold, Size: 10}),
		)
		for _, bodyLine := range strings.Split(rm.Body, "\n") {
			m.AddRow(6,
				text.NewCol(12, "  "+strings.TrimSpace(bodyLine), props.Text{
					Size:  9,
					Color: &pdfMutedColor,
				}),
			)
		}
		m.AddRow(3)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}

func statusLabel(c compare.Classification) string {
	if c == compare.NoChange {
		return "-"
	}
	return c.Status()
}
