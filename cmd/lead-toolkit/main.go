package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/thisisdarkstar/lead-toolkit/internal/console"
	"github.com/thisisdarkstar/lead-toolkit/internal/dashboard"
	"github.com/thisisdarkstar/lead-toolkit/internal/extract"
	"github.com/thisisdarkstar/lead-toolkit/internal/lead"
	"github.com/thisisdarkstar/lead-toolkit/internal/report"
	"github.com/thisisdarkstar/lead-toolkit/internal/storage"
	"github.com/thisisdarkstar/lead-toolkit/internal/web"
	"github.com/thisisdarkstar/lead-toolkit/internal/web/handlers"
)

func main() {
	// Quietly absorb a .env so tokens stay out of shell history.
	_ = godotenv.Load()

	var webMode bool
	var port string
	var dataDir string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "lead-toolkit",
		Short: "Lead Generation Tool Kit",
		Long:  `Utilities for lead-generation workflows: extracting domains from CSV and HTML exports, pulling dashboard allocations, and finding active same-SLD domains.`,
		Run: func(cmd *cobra.Command, args []string) {
			if webMode {
				if err := startWebServer(port, dataDir, verbose); err != nil {
					fmt.Printf("❌ Error: %v\n", err)
					os.Exit(1)
				}
				return
			}
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "debug", false, "Enable verbose mode (show debug logs)")
	rootCmd.Flags().BoolVarP(&webMode, "web", "w", false, "Start in web mode")
	rootCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to run web server on")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "data", "Directory for web output files")

	rootCmd.AddCommand(
		newCSVCommand(),
		newDashboardCommand(),
		newFindCommand(&verbose),
		newHTMLCommand(),
		newInspectCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func startWebServer(port, dataDir string, verbose bool) error {
	log := console.New(verbose)

	data, err := storage.Open(dataDir)
	if err != nil {
		return err
	}

	finder := lead.NewFinder(log)
	srv := web.NewServer(handlers.New(finder, data, log))

	url := fmt.Sprintf("http://localhost:%s", port)
	fmt.Printf("Starting web server on %s\n", url)
	go func() {
		if err := browser.OpenURL(url); err != nil {
			log.Warnf("could not open browser: %v", err)
		}
	}()

	return srv.Start(":" + port)
}

func newCSVCommand() *cobra.Command {
	var inputFile, outputFile string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Extract unique domains from a CSV file",
		Long:  `Reads the "domain" column of a CSV file and writes the unique domains, sorted, one per line.`,
		Run: func(cmd *cobra.Command, args []string) {
			domains, err := extract.DomainsFromCSVFile(inputFile)
			if err != nil {
				fmt.Printf("❌ Error reading input file: %v\n", err)
				os.Exit(1)
			}
			if err := extract.SaveDomains(domains, outputFile); err != nil {
				fmt.Printf("❌ Error writing output file: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("%d domains written to %s!\n", len(domains), outputFile)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "Path to input CSV file")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "domains.txt", "Output text filename")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newDashboardCommand() *cobra.Command {
	var token, outputFile, rawFile string
	var size int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Pull domain allocations from the Namekart dashboard",
		Long:  `Fetches allocation data from the dashboard API, saves the raw JSON response, and writes the unique domain names to a text file. The token can also come from the NAMEKART_TOKEN environment variable.`,
		Run: func(cmd *cobra.Command, args []string) {
			if token == "" {
				token = os.Getenv("NAMEKART_TOKEN")
			}
			if token == "" {
				fmt.Println("❌ Error: bearer token required (use -t or set NAMEKART_TOKEN)")
				os.Exit(1)
			}

			client := dashboard.NewClient(token)
			resp, raw, err := client.FetchAllocations(context.Background(), size)
			if err != nil {
				fmt.Printf("❌ Error: %v\n", err)
				os.Exit(1)
			}

			if err := os.WriteFile(rawFile, raw, 0o644); err != nil {
				fmt.Printf("❌ Error saving %s: %v\n", rawFile, err)
				os.Exit(1)
			}
			fmt.Printf("Saved API response as %s.\n", rawFile)

			domains := dashboard.ExtractDomains(resp)
			if err := extract.SaveDomains(domains, outputFile); err != nil {
				fmt.Printf("❌ Error writing output file: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote %d domains to %s.\n", len(domains), outputFile)
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "", "Bearer API access token")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "domains.txt", "Output text filename")
	cmd.Flags().StringVar(&rawFile, "raw", "domains.json", "File for the raw API response")
	cmd.Flags().IntVar(&size, "size", 200, "Page size to request")
	return cmd
}

func newFindCommand(verbose *bool) *cobra.Command {
	var singleDomain, listFile, outputFile string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find active domains sharing an SLD",
		Long:  `Discovers all active domains with the same second-level domain as the input (e.g. apex.in, apex.world for apex.com) using DuckDuckGo, Google and RapidDNS, probes each for liveness, and enriches with category and copyright heuristics.`,
		Run: func(cmd *cobra.Command, args []string) {
			domains, err := gatherInputDomains(singleDomain, listFile)
			if err != nil {
				fmt.Printf("❌ Error: %v\n", err)
				os.Exit(1)
			}
			if len(domains) == 0 {
				cmd.Help()
				os.Exit(1)
			}

			log := console.New(*verbose)
			finder := lead.NewFinder(log)
			res := finder.Find(context.Background(), domains)

			if outputFile != "" {
				if err := report.Write(outputFile, res); err != nil {
					log.Errorf("Failed to write output file: %v", err)
					os.Exit(1)
				}
				log.Donef("Results saved to %s", outputFile)
				return
			}
			printResultJSON(res)
		},
	}

	cmd.Flags().StringVarP(&singleDomain, "domain", "d", "", "Single domain input (e.g. apex.com)")
	cmd.Flags().StringVarP(&listFile, "list", "l", "", "File of domains, one per line")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (.json, .csv or .xlsx)")
	return cmd
}

func newHTMLCommand() *cobra.Command {
	var inputFile, outputFile string

	cmd := &cobra.Command{
		Use:   "html",
		Short: "Extract domains from a dashboard HTML export",
		Run: func(cmd *cobra.Command, args []string) {
			domains, err := extract.DomainsFromHTMLFile(inputFile)
			if err != nil {
				fmt.Printf("❌ Error: %v\n", err)
				os.Exit(1)
			}
			if err := extract.SaveDomains(domains, outputFile); err != nil {
				fmt.Printf("❌ Error writing output file: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Extraction completed successfully.")
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input HTML file")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output TXT file")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}

func newInspectCommand() *cobra.Command {
	var inputFile, singleDomain, domainList, domainFile, key string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a lead results JSON file",
		Long:  `Prints colored details for selected domains from a results JSON file, optionally narrowed to a single key.`,
		Run: func(cmd *cobra.Command, args []string) {
			data, err := extract.LoadResults(inputFile)
			if err != nil {
				fmt.Printf("❌ Error loading JSON file: %v\n", err)
				os.Exit(1)
			}

			in := extract.NewInspector(os.Stdout)
			switch {
			case singleDomain != "":
				in.Domain(data, singleDomain, key)
			case domainList != "":
				var domains []string
				for _, d := range strings.Split(domainList, ",") {
					if d = strings.TrimSpace(d); d != "" {
						domains = append(domains, d)
					}
				}
				in.Domains(data, domains, key)
			case domainFile != "":
				domains, err := extract.LoadDomainList(domainFile)
				if err != nil {
					fmt.Printf("❌ Error reading domain list: %v\n", err)
					os.Exit(1)
				}
				in.Domains(data, domains, key)
			default:
				fmt.Println("❌ Specify a domain (-d), list (-l), or file (-f).")
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Path to input JSON file")
	cmd.Flags().StringVarP(&singleDomain, "domain", "d", "", "A single domain to extract")
	cmd.Flags().StringVarP(&domainList, "list", "l", "", "Comma-separated list of domains")
	cmd.Flags().StringVarP(&domainFile, "file", "f", "", "TXT file with one domain per line")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Key within domain entry to extract")
	cmd.MarkFlagRequired("input")
	return cmd
}

func gatherInputDomains(single, listFile string) ([]string, error) {
	var domains []string
	if single != "" {
		domains = append(domains, single)
	}
	if listFile != "" {
		fromFile, err := extract.LoadDomainList(listFile)
		if err != nil {
			return nil, fmt.Errorf("reading domain list: %w", err)
		}
		domains = append(domains, fromFile...)
	}
	return domains, nil
}

func printResultJSON(res lead.Result) {
	var payload interface{} = res.Data
	if len(res.Errors) > 0 {
		payload = res
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		fmt.Printf("❌ Error encoding results: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(b))
}
