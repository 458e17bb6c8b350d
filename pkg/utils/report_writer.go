/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer.go
Description: Utility for writing inference traces to a report directory.
Handles timestamped, system-specific file naming. Ensures directories exist
and writes indented JSON files for easy analysis.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kleascm/akaylee-fuzzy/pkg/fuzzy"
)

// WriteTraceReport writes a compute trace to the report directory with a
// timestamped, system-specific filename. Returns the path of the written file.
func WriteTraceReport(dir string, trace *fuzzy.Trace) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	// Generate filename: 2024-06-11_01-30-00_tipping_1a2b3c4d.json
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s_%s.json", timestamp, trace.System, shortID(trace.ID))
	filePath := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(trace, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal trace: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return filePath, nil
}

// shortID truncates a trace UUID for use in filenames
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
