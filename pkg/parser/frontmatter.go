// Package parser extracts YAML frontmatter from prodkit command template
// files.
//
// Command templates are markdown files that open with a frontmatter block
// delimited by "---" lines. The block is located with an explicit
// line scanner and then parsed as YAML, so malformed markdown never panics
// and a missing block simply yields no frontmatter.
package parser

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/kiranshivaraju/prodkit/pkg/logger"
)

var frontmatterLog = logger.New("parser:frontmatter")

// Delimiter marks the start and end of a frontmatter block.
const Delimiter = "---"

// FrontmatterResult holds the parsed frontmatter and the remaining markdown.
type FrontmatterResult struct {
	Frontmatter map[string]any
	Markdown    string
}

// scanState tracks the position of the line scanner relative to the
// frontmatter block.
type scanState int

const (
	outsideBlock scanState = iota
	insideBlock
)

// splitFrontmatter walks the content line by line and returns the raw
// frontmatter block (without delimiters) and the markdown that follows it.
// Content without a delimiter, or with an unterminated block, yields an
// empty block and the full content as markdown.
func splitFrontmatter(content string) (block string, markdown string) {
	var blockLines, bodyLines []string
	state := outsideBlock
	closed := false

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch state {
		case outsideBlock:
			if !closed && strings.TrimSpace(line) == Delimiter && len(bodyLines) == 0 && len(blockLines) == 0 {
				state = insideBlock
				continue
			}
			bodyLines = append(bodyLines, line)
		case insideBlock:
			if strings.TrimSpace(line) == Delimiter {
				state = outsideBlock
				closed = true
				continue
			}
			blockLines = append(blockLines, line)
		}
	}

	if !closed {
		// Unterminated block: treat everything as markdown.
		return "", content
	}
	return strings.Join(blockLines, "\n"), strings.Join(bodyLines, "\n")
}

// ExtractFrontmatterFromContent parses the frontmatter block of a command
// template. A file without a block returns an empty map rather than an
// error; invalid YAML inside a block is an error.
func ExtractFrontmatterFromContent(content string) (*FrontmatterResult, error) {
	block, markdown := splitFrontmatter(content)
	result := &FrontmatterResult{
		Frontmatter: map[string]any{},
		Markdown:    markdown,
	}
	if strings.TrimSpace(block) == "" {
		frontmatterLog.Print("No frontmatter block found")
		return result, nil
	}

	if err := yaml.Unmarshal([]byte(block), &result.Frontmatter); err != nil {
		frontmatterLog.Printf("Failed to parse frontmatter: %v", err)
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	return result, nil
}

// ExtractDescription returns the description field of a template's
// frontmatter, or an empty string when the block or the field is absent or
// the block is malformed.
func ExtractDescription(content string) string {
	result, err := ExtractFrontmatterFromContent(content)
	if err != nil {
		return ""
	}
	if desc, ok := result.Frontmatter["description"].(string); ok {
		return strings.TrimSpace(desc)
	}
	return ""
}
