package middleware

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Input validation and sanitization utilities

// AllowedExtensions lists upload types the analyzer understands
var AllowedExtensions = map[string]bool{
	".txt":  true,
	".log":  true,
	".pcap": true,
}

// ValidateExtension checks the uploaded filename against the allowed list
func ValidateExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !AllowedExtensions[ext] {
		return fmt.Errorf("invalid file type: %s (allowed: txt, log, pcap)", ext)
	}
	return nil
}

// ValidateFileSize rejects empty or oversized uploads
func ValidateFileSize(size, max int64) error {
	if size <= 0 {
		return fmt.Errorf("file is empty")
	}
	if max > 0 && size > max {
		return fmt.Errorf("file too large: %d bytes (max %d)", size, max)
	}
	return nil
}

// SanitizeFilename strips path components and dangerous characters
func SanitizeFilename(filename string) string {
	// Drop any directory component the client sent
	name := filepath.Base(filename)

	// Remove null bytes and control characters
	var result strings.Builder
	for _, r := range name {
		if r >= 32 && r != '/' && r != '\\' {
			result.WriteRune(r)
		}
	}

	name = strings.TrimSpace(result.String())
	if name == "" || name == "." || name == ".." {
		return "upload"
	}
	return name
}

// ValidateLogID validates log ID format (UUID)
func ValidateLogID(id string) error {
	if id == "" {
		return fmt.Errorf("log ID cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid log ID format: %w", err)
	}
	return nil
}

// ValidateLimit clamps a list limit to a sane range
func ValidateLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// ValidateQuery checks a search query string
func ValidateQuery(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if len(query) > 256 {
		return fmt.Errorf("query too long (max 256 chars)")
	}
	return nil
}

// ValidateResolutionStatus checks operator follow-up states
func ValidateResolutionStatus(status string) error {
	pattern := `^(pending|in_progress|resolved)$`
	matched, _ := regexp.MatchString(pattern, status)
	if !matched {
		return fmt.Errorf("invalid status: %s (allowed: pending, in_progress, resolved)", status)
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
