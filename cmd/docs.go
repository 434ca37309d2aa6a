package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildDoc = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// docType codes whether the command is a grandchild, child, etc
type docType int

const (
	root docType = iota
	child
	childParent
	grandchild
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType     docType
	title       string
	navOrder    int
	parent      string
	grandParent string
}

// newDocsCmd is for writing Markdown documentation of every command.
func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "docs [dir]",
		Short:  "Write Markdown documentation for hsp-to-bed",
		Args:   cobra.MaximumNArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "docs"
			if len(args) > 0 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create docs dir: %w", err)
			}

			d := docs{root: cmd.Root()}
			return doc.GenMarkdownTreeCustom(d.root, dir, d.filePrepender, d.linkHandler)
		},
	}
}

// docs derives doc page front matter from the command tree.
type docs struct {
	root *cobra.Command
}

// meta finds the command a doc page is for. Page names are the
// command path joined with '_', eg "hsp-to-bed_completion_bash".
func (d docs) meta(base string) meta {
	c := d.root
	if parts := strings.Split(base, "_"); len(parts) > 1 {
		if found, _, err := d.root.Find(parts[1:]); err == nil {
			c = found
		}
	}

	m := meta{title: c.Name()}
	p := c.Parent()
	if p == nil {
		return m
	}

	m.parent = p.Name()
	for i, sibling := range availableCommands(p) {
		if sibling == c {
			m.navOrder = i
		}
	}

	switch {
	case p.HasParent():
		m.docType = grandchild
		m.grandParent = p.Parent().Name()
	case c.HasAvailableSubCommands():
		m.docType = childParent
	default:
		m.docType = child
	}
	return m
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func (d docs) filePrepender(filename string) string {
	name := filepath.Base(filename)
	m := d.meta(strings.TrimSuffix(name, path.Ext(name)))

	switch m.docType {
	case child:
		return fmt.Sprintf(childDoc, m.title, m.parent, m.navOrder)
	case childParent:
		return fmt.Sprintf(childParentDoc, m.title, m.parent, m.navOrder)
	case grandchild:
		return fmt.Sprintf(grandchildDoc, m.title, m.parent, m.grandParent, m.navOrder)
	}
	return fmt.Sprintf(rootDoc, m.title, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func (d docs) linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == d.root.Name() {
		return "/"
	}
	return base
}

// availableCommands are the sub-commands that get doc pages.
func availableCommands(c *cobra.Command) (cmds []*cobra.Command) {
	for _, sub := range c.Commands() {
		if sub.IsAvailableCommand() && !sub.IsAdditionalHelpTopicCommand() {
			cmds = append(cmds, sub)
		}
	}
	return
}
