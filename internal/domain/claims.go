package domain

import (
	"regexp"
	"strings"
)

// techHeadingVocab lists the heading substrings that open a tech-stack
// section, matched case-insensitively.
var techHeadingVocab = []string{"tech stack", "built with", "technologies", "stack"}

var (
	headingRe     = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	listItemRe    = regexp.MustCompile(`^\s*[-*+]\s+(.*)$`)
	labeledItemRe = regexp.MustCompile(`^\*\*([^*]+)\*\*\s*:\s*(.+)$`)

	runCmdRe  = regexp.MustCompile(`\b(?:npm|yarn|pnpm)\s+run\s+([a-zA-Z][a-zA-Z0-9_:-]*)`)
	bareCmdRe = regexp.MustCompile(`\b(?:yarn|pnpm)\s+([a-zA-Z][a-zA-Z0-9_:-]*)`)
)

// nonScriptSubcommands are package-manager subcommands that the bare
// "yarn <name>" / "pnpm <name>" pattern must not mistake for scripts.
var nonScriptSubcommands = map[string]bool{
	"add": true, "remove": true, "install": true, "init": true,
	"run": true, "global": true, "config": true, "cache": true,
	"link": true, "unlink": true,
}

// ExtractClaims parses README text into its three claim categories. Each
// category is derived by an independent pass over the document; a README
// with none of the target sections yields empty lists, never an error.
func ExtractClaims(readme string) *ReadmeClaims {
	return &ReadmeClaims{
		TechStack: extractTechStack(readme),
		Structure: extractStructure(readme),
		Commands:  extractCommands(readme),
	}
}

// extractTechStack collects technology names from list items under any
// heading whose title contains a tech-stack vocabulary term. The section
// stays open through deeper subheadings and closes at the next heading of
// equal or shallower depth.
func extractTechStack(readme string) []string {
	var claims []string
	inSection := false
	sectionDepth := 0

	for _, line := range strings.Split(readme, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			depth := len(m[1])
			if inSection && depth <= sectionDepth {
				inSection = false
			}
			if !inSection && isTechHeading(m[2]) {
				inSection = true
				sectionDepth = depth
			}
			continue
		}

		if !inSection {
			continue
		}

		m := listItemRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		item := strings.TrimSpace(m[1])

		if lm := labeledItemRe.FindStringSubmatch(item); lm != nil {
			for _, v := range strings.Split(lm[2], ",") {
				if c := CleanTechClaim(v); c != "" {
					claims = append(claims, c)
				}
			}
			continue
		}

		if c := CleanTechClaim(item); c != "" {
			claims = append(claims, c)
		}
	}

	return dedupe(claims)
}

func isTechHeading(title string) bool {
	lower := strings.ToLower(title)
	for _, v := range techHeadingVocab {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}

// extractStructure scans fenced code blocks for directory trees and
// recovers directory paths from their indentation.
func extractStructure(readme string) []string {
	var claims []string
	var block []string
	inBlock := false

	for _, line := range strings.Split(readme, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inBlock {
				claims = append(claims, parseTreeBlock(block)...)
				block = nil
			}
			inBlock = !inBlock
			continue
		}
		if inBlock {
			block = append(block, line)
		}
	}

	return dedupe(claims)
}

// treeEntry is one ancestry frame during tree recovery: the indentation
// width a directory was seen at, and its name (with trailing slash).
type treeEntry struct {
	indent int
	name   string
}

var boxDrawingReplacer = strings.NewReplacer("├", " ", "└", " ", "│", " ", "─", " ")

// parseTreeBlock interprets a fenced code block as a directory tree.
// A block qualifies as a tree if any line contains a box-drawing connector
// or any cleaned line ends in "/"; otherwise every entry gathered from it
// is discarded. A shell transcript that prints a path ending in "/" will
// still be misread as a tree.
func parseTreeBlock(lines []string) []string {
	var claims []string
	var stack []treeEntry
	looksLikeTree := false

	for _, raw := range lines {
		if strings.ContainsAny(raw, "├└│") {
			looksLikeTree = true
		}

		line := boxDrawingReplacer.Replace(raw)
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}

		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))

		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}

		if !strings.HasSuffix(name, "/") {
			continue
		}
		looksLikeTree = true

		var path strings.Builder
		for _, e := range stack {
			path.WriteString(e.name)
		}
		path.WriteString(name)
		claims = append(claims, path.String())
		stack = append(stack, treeEntry{indent: indent, name: name})
	}

	if !looksLikeTree {
		return nil
	}
	return claims
}

// extractCommands pulls claimed script names from run-command mentions
// anywhere in the document, prose included. The explicit "run" form is
// collected first, then bare yarn/pnpm invocations filtered through the
// subcommand stoplist.
func extractCommands(readme string) []string {
	var cmds []string

	for _, m := range runCmdRe.FindAllStringSubmatch(readme, -1) {
		cmds = append(cmds, m[1])
	}
	for _, m := range bareCmdRe.FindAllStringSubmatch(readme, -1) {
		if !nonScriptSubcommands[m[1]] {
			cmds = append(cmds, m[1])
		}
	}

	return dedupe(cmds)
}
