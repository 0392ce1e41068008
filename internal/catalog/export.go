package catalog

import (
	"fmt"
	"strings"

	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"
)

// ExportFilename is the download name offered for the pricing report.
const ExportFilename = "cedars_pricing_report.csv"

const csvHeader = "Service,Plan,Cost,Sell,Profit,Profit%"

// CSV serializes the full snapshot into the pricing report: one row per
// plan, service and plan names double-quoted, numeric columns unquoted,
// profit percent with a trailing % sign. Purely local — no store
// interaction.
func CSV(snapshot []domain.Service) string {
	var b strings.Builder
	b.WriteString(csvHeader + "\n")

	for _, svc := range snapshot {
		for _, p := range svc.Plans {
			fmt.Fprintf(&b, "\"%s\",\"%s\",%s,%s,%s,%s%%\n",
				svc.Name,
				p.Label,
				formatNumber(p.Cost()),
				formatNumber(p.Sell()),
				formatNumber(p.Profit()),
				percentText(p),
			)
		}
	}
	return b.String()
}
