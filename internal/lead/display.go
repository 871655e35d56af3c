package lead

import (
	"fmt"

	"github.com/fatih/color"
)

// DisplayResult prints a colored per-source summary of a finished scan.
func DisplayResult(res Result) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	fmt.Println("\n=== 🔎 Lead Search Results ===")
	for source, leads := range res.Data {
		bold.Printf("\n🌐 %s", source)
		fmt.Printf(" — %d lead(s)\n", len(leads))
		if len(leads) == 0 {
			yellow.Println("  No active same-SLD domains found")
			continue
		}
		for _, l := range leads {
			tier := yellow
			switch l.LeadType {
			case "High":
				tier = green
			case "Low":
				tier = red
			}
			fmt.Printf("  %s", l.Domain)
			tier.Printf(" [%s]", l.LeadType)
			fmt.Printf(" %s", l.Category)
			if l.CopyrightYear != "N/A" {
				fmt.Printf(" © %s", l.CopyrightYear)
			}
			fmt.Println()
		}
	}

	if len(res.Errors) > 0 {
		red.Println("\n❌ Failed domains:")
		for d, msg := range res.Errors {
			fmt.Printf("  %s: %s\n", d, msg)
		}
	}
}
