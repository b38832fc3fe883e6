package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	satcmd "github.com/orien/satsetup/cmd"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const frontMatter = `---
title: %q
description: %q
generated: true
---

`

func main() {
	outputDir := filepath.Join("docs", "reference", "cli")

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		log.Fatal("create output directory", "dir", outputDir, "err", err)
	}

	if err := cleanMarkdown(outputDir); err != nil {
		log.Fatal("clean output directory", "dir", outputDir, "err", err)
	}

	root := satcmd.RootCommand()
	root.DisableAutoGenTag = true
	setDisableAutoGenTag(root)

	prepender := newFilePrepender(root)
	if err := doc.GenMarkdownTreeCustom(root, outputDir, prepender, linkHandler); err != nil {
		log.Fatal("generate markdown documentation", "err", err)
	}
	log.Info("Generated CLI reference", "dir", outputDir)
}

func cleanMarkdown(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".md") {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

func setDisableAutoGenTag(cmd *cobra.Command) {
	for _, child := range cmd.Commands() {
		child.DisableAutoGenTag = true
		setDisableAutoGenTag(child)
	}
}

// newFilePrepender returns a prepender writing front matter with each command's
// path as title and its short description. Files are named satsetup_<sub>.md.
func newFilePrepender(root *cobra.Command) func(string) string {
	shorts := make(map[string]string)
	var walk func(*cobra.Command)
	walk = func(c *cobra.Command) {
		shorts[c.CommandPath()] = c.Short
		for _, child := range c.Commands() {
			walk(child)
		}
	}
	walk(root)

	return func(filename string) string {
		base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		title := strings.ReplaceAll(base, "_", " ")
		return fmt.Sprintf(frontMatter, title, shorts[title])
	}
}

// linkHandler turns satsetup_install.md into the relative page link satsetup-install
func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.ReplaceAll(base, "_", "-")
	return strings.ToLower(base)
}
