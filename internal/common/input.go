// Package common holds helpers shared by the CLI actions.
package common

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/dtnitsch/extract-text/pkg/fetcher"
)

// ReadInput resolves the HTML input from one of the supported origins:
// a file path argument, --stdin, or --url. It returns the HTML along with
// a source label used in logs and the archive.
func ReadInput(file string, useStdin bool, url string) (html string, source string, err error) {
	switch {
	case useStdin:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "stdin", nil

	case url != "":
		data, err := fetcher.NewFetcher().GetHTML(url)
		if err != nil {
			return "", "", err
		}
		return string(data), url, nil

	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), file, nil

	default:
		return "", "", fmt.Errorf("no input provided: pass an HTML file, --stdin, or --url")
	}
}

// ContentHash computes the SHA256 hash of content as a hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}
