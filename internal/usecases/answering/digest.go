package answering

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/melsayed/sales-analyst-api/internal/domain"
	"github.com/melsayed/sales-analyst-api/pkg/utils"
)

// digestRowLimit caps each section in the narration prompt. Sections keep
// their full rows in the answer; only the model sees the truncated view.
const digestRowLimit = 20

// renderDigest flattens an answer's datasets into the compact text block the
// analyst prompt receives. The focus note steers the narrative the same way
// the question steered the queries.
func renderDigest(answer *domain.Answer) string {
	var b strings.Builder

	if answer.Summary != "" {
		b.WriteString(answer.Summary)
		b.WriteString("\n")
	}

	switch answer.Focus {
	case domain.FocusGrowing:
		b.WriteString("The question targets growth. Explain what is driving it.\n")
	case domain.FocusDeclining:
		b.WriteString("The question targets decline. Explain what is causing it.\n")
	}

	for _, section := range answer.Sections {
		title := section.Caption
		if title == "" {
			title = section.Name
		}

		b.WriteString("\n")
		b.WriteString(title)
		b.WriteString(":\n")
		b.WriteString(strings.Join(section.Columns, " | "))
		b.WriteString("\n")

		limit := len(section.Rows)
		if limit > digestRowLimit {
			limit = digestRowLimit
		}

		for _, row := range section.Rows[:limit] {
			cells := make([]string, len(row))
			for i, value := range row {
				cells[i] = formatCell(value)
			}
			b.WriteString(strings.Join(cells, " | "))
			b.WriteString("\n")
		}

		if len(section.Rows) > limit {
			fmt.Fprintf(&b, "... and %d more rows\n", len(section.Rows)-limit)
		}
	}

	return strings.TrimSpace(b.String())
}

// formatCell renders one table cell for the prompt. Large amounts get
// thousands separators; small floats keep their precision so ratios and
// z-scores survive.
func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case string:
		return v
	case float64:
		if math.Abs(v) >= 1000 {
			return utils.FormatAmount(v)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return formatCell(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
