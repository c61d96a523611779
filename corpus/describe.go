// SPDX-License-Identifier: MIT
// Package: lvlath-corpus/corpus
//
// describe.go: natural-language graph descriptions and prompt stitching.
//
// Styles:
//   - Adjacency:     node list, then one "(u, v)" line per edge.
//   - FullAdjacency: "Node u is connected to Node v with an edge;" per edge.
//   - Incident:      per vertex, its degree and its neighbors, read off the
//     rows of the incidence matrix.
//
// Vertices are listed in ascending order, edges and neighbors in emission order.

package corpus

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-corpus/core"
	"github.com/katalvlaran/lvlath-corpus/matrix"
)

// Placeholder is replaced by a graph description inside prompt templates.
const Placeholder = "<GDL>"

// Style selects a description format.
type Style string

// Supported styles.
const (
	StyleAdjacency     Style = "Adjacency"
	StyleFullAdjacency Style = "FullAdjacency"
	StyleIncident      Style = "Incident"
)

// Styles returns every style in canonical order.
func Styles() []Style {
	return []Style{StyleAdjacency, StyleFullAdjacency, StyleIncident}
}

// ParseStyle validates s.
func ParseStyle(s string) (Style, error) {
	for _, st := range Styles() {
		if string(st) == s {
			return st, nil
		}
	}

	return "", fmt.Errorf("ParseStyle(%q): %w", s, ErrUnknownStyle)
}

// Describe renders g in the given style.
func Describe(g *core.Graph, style Style) (string, error) {
	var sb strings.Builder
	switch style {
	case StyleAdjacency:
		sb.WriteString("\nIn the undirected graph, (i,j) means that node i and node j are connected with an undirected edge.\n")
		sb.WriteString("The graph has the following nodes: ")
		sb.WriteString(enumerate(g.Vertices(), ""))
		sb.WriteString("The edges in the graph are: \n")
		for _, e := range g.Edges() {
			fmt.Fprintf(&sb, "\t(%d, %d)\n", e.From, e.To)
		}
	case StyleFullAdjacency:
		sb.WriteString("\nThe graph has the following nodes: ")
		sb.WriteString(enumerate(g.Vertices(), "Node "))
		sb.WriteString("The edges in the graph are: \n")
		edges := g.Edges()
		for i, e := range edges {
			end := ";"
			if i == len(edges)-1 {
				end = "."
			}
			fmt.Fprintf(&sb, "\tNode %d is connected to Node %d with an edge%s\n", e.From, e.To, end)
		}
	case StyleIncident:
		sb.WriteString("\nThe graph has the following nodes: ")
		sb.WriteString(enumerate(g.Vertices(), "Node "))
		sb.WriteString("In this graph, \n")
		im, err := matrix.BuildIncidence(g)
		if err != nil {
			return "", fmt.Errorf("Describe(%q): %w", style, err)
		}
		for _, v := range g.Vertices() {
			nbrs := im.Opposites(v)
			switch len(nbrs) {
			case 0:
				fmt.Fprintf(&sb, "\tNode %d has 0 connections.\n", v)
			case 1:
				fmt.Fprintf(&sb, "\tNode %d has 1 connection: Node %d.\n", v, nbrs[0])
			default:
				fmt.Fprintf(&sb, "\tNode %d has %d connections: %s", v, len(nbrs), enumerate(nbrs, "Node "))
			}
		}
	default:
		return "", fmt.Errorf("Describe(%q): %w", style, ErrUnknownStyle)
	}

	return sb.String(), nil
}

// enumerate renders "a, b, and c.\n" with each id prefixed.
func enumerate(ids []int, prefix string) string {
	if len(ids) == 0 {
		return ".\n"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = prefix + strconv.Itoa(id)
	}
	if len(parts) == 1 {
		return parts[0] + ".\n"
	}
	head := strings.Join(parts[:len(parts)-1], ", ")

	return head + ", and " + parts[len(parts)-1] + ".\n"
}

// Prompt substitutes the description of g for every <GDL> in template.
func Prompt(template string, g *core.Graph, style Style) (string, error) {
	if !strings.Contains(template, Placeholder) {
		return "", ErrNoPlaceholder
	}
	desc, err := Describe(g, style)
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(template, Placeholder, desc), nil
}

// NormalizeTemplate rewrites a one-line prompt so the description sits on
// its own lines and the trailing clause becomes an instruction.
func NormalizeTemplate(line string) string {
	line = strings.ReplaceAll(line, " language "+Placeholder+". ", ".\n"+Placeholder+"\nInstruction: ")

	return strings.ReplaceAll(line, "graph description language", "graph description.\n")
}

// ReadTemplates loads every line of every regular file under dir (sorted by
// path) as one normalized prompt template. Blank lines are skipped.
func ReadTemplates(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("corpus: templates %s: %w", dir, err)
	}
	sort.Strings(files)

	var out []string
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("corpus: open %s: %w", path, err)
		}
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if line := sc.Text(); strings.TrimSpace(line) != "" {
				out = append(out, NormalizeTemplate(line))
			}
		}
		err = sc.Err()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("corpus: read %s: %w", path, err)
		}
	}

	return out, nil
}

// PromptFileName names the prompt for graph g, style s and template p.
func PromptFileName(g, s, p int) string {
	return fmt.Sprintf("g-%d-s-%d-p-%d.txt", g, s, p)
}
