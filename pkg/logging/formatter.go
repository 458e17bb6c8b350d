/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Custom log formatter for Akaylee Fuzzy. Provides beautiful, structured
logging output with colors, enhanced formatting, and compact rendering of inference
fields such as membership degrees and firing strengths.
*/

package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// CustomFormatter provides beautiful, structured logging output
type CustomFormatter struct {
	Timestamp bool
	Caller    bool
	Colors    bool
}

// Format formats a log entry with beautiful output
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var output strings.Builder

	// Add timestamp
	if f.Timestamp {
		timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
		if f.Colors {
			output.WriteString(fmt.Sprintf("\033[36m%s\033[0m ", timestamp)) // Cyan
		} else {
			output.WriteString(fmt.Sprintf("%s ", timestamp))
		}
	}

	// Add log level with color
	level := strings.ToUpper(entry.Level.String())
	if f.Colors {
		levelColor := f.getLevelColor(entry.Level)
		output.WriteString(fmt.Sprintf("\033[%dm%s\033[0m ", levelColor, level))
	} else {
		output.WriteString(fmt.Sprintf("%s ", level))
	}

	// Add caller information
	if f.Caller && entry.HasCaller() {
		caller := fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
		if f.Colors {
			output.WriteString(fmt.Sprintf("\033[33m[%s]\033[0m ", caller)) // Yellow
		} else {
			output.WriteString(fmt.Sprintf("[%s] ", caller))
		}
	}

	// Add message
	output.WriteString(entry.Message)

	// Add structured fields
	if len(entry.Data) > 0 {
		output.WriteString(" ")
		output.WriteString(f.formatFields(entry.Data))
	}

	output.WriteString("\n")
	return []byte(output.String()), nil
}

// getLevelColor returns the ANSI color code for a log level
func (f *CustomFormatter) getLevelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel:
		return 37 // White
	case logrus.InfoLevel:
		return 32 // Green
	case logrus.WarnLevel:
		return 33 // Yellow
	case logrus.ErrorLevel:
		return 31 // Red
	case logrus.FatalLevel:
		return 35 // Magenta
	case logrus.PanicLevel:
		return 35 // Magenta
	default:
		return 37 // White
	}
}

// formatFields formats structured fields in a readable, deterministic order
func (f *CustomFormatter) formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var parts []string
	for _, key := range keys {
		formattedValue := f.formatValue(fields[key])
		if f.Colors {
			parts = append(parts, fmt.Sprintf("\033[34m%s\033[0m=\033[32m%s\033[0m", key, formattedValue)) // Blue key, Green value
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", key, formattedValue))
		}
	}

	return strings.Join(parts, " ")
}

// formatValue formats a field value appropriately
func (f *CustomFormatter) formatValue(value interface{}) string {
	switch v := value.(type) {
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("15:04:05.000")
	case float64:
		// Degrees and firing strengths read better short.
		return fmt.Sprintf("%.4g", v)
	case map[string]float64:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, key := range keys {
			pairs = append(pairs, fmt.Sprintf("%s:%.4g", key, v[key]))
		}
		return "{" + strings.Join(pairs, " ") + "}"
	case string:
		if len(v) > 50 {
			return fmt.Sprintf("%s...", v[:50])
		}
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
