package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/extract-text/pkg/db"
)

// historyOutput is the structured payload for the history command.
type historyOutput struct {
	Extractions []db.ExtractionRecord `json:"extractions" yaml:"extractions"`
	MethodWins  map[string]int        `json:"method_wins,omitempty" yaml:"method_wins,omitempty"`
}

// HistoryAction lists recent archived extractions with per-method win counts.
func HistoryAction(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open extraction archive", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	records, err := database.ListExtractions(c.Int("limit"))
	if err != nil {
		logger.Error("failed to list extractions", "error", err)
		os.Exit(2)
	}
	if len(records) == 0 {
		fmt.Println("No archived extractions yet. Run: extract-text extract <file> --archive")
		return nil
	}

	wins, err := database.CountByMethod()
	if err != nil {
		logger.Error("failed to count method wins", "error", err)
		os.Exit(2)
	}

	output := historyOutput{Extractions: records, MethodWins: wins}

	var data []byte
	if strings.ToLower(c.String("format")) == "yaml" {
		data, err = yaml.Marshal(output)
	} else {
		data, err = json.MarshalIndent(output, "", "  ")
	}
	if err != nil {
		logger.Error("failed to marshal history", "error", err)
		os.Exit(2)
	}
	fmt.Println(string(data))

	return nil
}
