package prompt

import (
	"fmt"
)

// maxPromptContent caps how much raw log content goes into the user
// message; the analyzer works on the head of the file.
const maxPromptContent = 2000

// GetSystemPrompt provides strict directions and schema for JSON output.
func GetSystemPrompt() string {
	return `You are an expert telecom log analyzer. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- Use lowercase level values: error, warning, info, success.
- events must be ordered by timestamp ascending; copy timestamps from the log lines verbatim.
- patterns reference events by zero-based index into the events array.
- Keep descriptions concise; put supporting log excerpts in details.

Schema (example with empty values):
{
  "events": [
    {
      "timestamp": "<string>",
      "description": "<string>",
      "level": "<error|warning|info|success>",
      "details": "<string>",
      "relatedEvents": [0]
    }
  ],
  "patterns": [
    {
      "description": "<string>",
      "eventIndices": [0],
      "significance": "<high|medium|low>"
    }
  ],
  "summary": "<string>"
}`
}

// GetUserPrompt builds the user message around truncated log content.
func GetUserPrompt(logContent string) string {
	if len(logContent) > maxPromptContent {
		logContent = logContent[:maxPromptContent] + "..."
	}
	return fmt.Sprintf("Analyze this telecom log file and identify any issues. Respond with the JSON per schema.\n\n%s", logContent)
}
