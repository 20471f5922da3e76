package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/extract-text/internal/extract"
	"github.com/dtnitsch/extract-text/internal/history"
)

func main() {
	app := &cli.App{
		Name:  "extract-text",
		Usage: "extract clean text from HTML via a fallback chain of backends",
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Aliases:   []string{"x"},
				Usage:     "extract text from an HTML file, stdin, or URL",
				ArgsUsage: "[html_file]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "stdin",
						Usage: "read HTML from stdin",
					},
					&cli.StringFlag{
						Name:  "url",
						Usage: "fetch HTML from a URL",
					},
					&cli.StringFlag{
						Name:  "output",
						Value: "json",
						Usage: "output mode: json (chosen result), text (plain text), all (compare every backend)",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "structured output format: json or yaml",
					},
					&cli.BoolFlag{
						Name:  "archive",
						Usage: "record this run in the extraction archive",
					},
					&cli.IntFlag{
						Name:  "keywords",
						Usage: "report top N keywords of the extracted text",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: extract.ExtractAction,
			},
			{
				Name:  "history",
				Usage: "list recent archived extractions",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "max records to list",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "output format: json or yaml",
					},
				},
				Action: history.HistoryAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
