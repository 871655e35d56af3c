package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thisisdarkstar/lead-toolkit/internal/console"
	"github.com/thisisdarkstar/lead-toolkit/internal/domain"
	"github.com/thisisdarkstar/lead-toolkit/internal/extract"
	"github.com/thisisdarkstar/lead-toolkit/internal/lead"
	"github.com/thisisdarkstar/lead-toolkit/internal/report"
)

func main() {
	var singleDomain, listFile, outputFile string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "lead-finder [domain]",
		Short: "Domain Lead Finder",
		Long:  `Finds all active domains with the same second-level domain as the input, across a fixed set of alternate TLDs, using DuckDuckGo, Google and RapidDNS.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 && singleDomain == "" {
				singleDomain = args[0]
			}

			var domains []string
			if singleDomain != "" {
				domains = append(domains, singleDomain)
			}
			if listFile != "" {
				fromFile, err := extract.LoadDomainList(listFile)
				if err != nil {
					fmt.Printf("❌ Error reading domain list: %v\n", err)
					os.Exit(2)
				}
				domains = append(domains, fromFile...)
			}
			if len(domains) == 0 {
				domains = append(domains, domain.PromptForDomain())
			}

			log := console.New(verbose)
			finder := lead.NewFinder(log)
			res := finder.Find(context.Background(), domains)

			if outputFile != "" {
				if err := report.Write(outputFile, res); err != nil {
					log.Errorf("Failed to write output file: %v", err)
					os.Exit(4)
				}
				log.Donef("Results saved to %s", outputFile)
			} else {
				b, _ := json.MarshalIndent(res.Data, "", "  ")
				fmt.Println(string(b))
			}

			lead.DisplayResult(res)
		},
	}

	rootCmd.Flags().StringVarP(&singleDomain, "domain", "d", "", "Single domain input (e.g. apex.com)")
	rootCmd.Flags().StringVarP(&listFile, "list", "l", "", "File of domains, one per line")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (.json, .csv or .xlsx)")
	rootCmd.Flags().BoolVar(&verbose, "debug", false, "Enable verbose mode (show logs)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
