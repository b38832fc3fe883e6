package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestFilePrepender_WritesFrontMatter(t *testing.T) {
	root := &cobra.Command{Use: "satsetup", Short: "root"}
	root.AddCommand(&cobra.Command{Use: "install", Short: "Collect credentials"})

	prepend := newFilePrepender(root)

	assert.Equal(t, "---\ntitle: \"satsetup install\"\ndescription: \"Collect credentials\"\ngenerated: true\n---\n\n",
		prepend("docs/reference/cli/satsetup_install.md"))
	assert.Contains(t, prepend("docs/reference/cli/satsetup.md"), `title: "satsetup"`)
}

func TestLinkHandler(t *testing.T) {
	assert.Equal(t, "satsetup-install", linkHandler("satsetup_install.md"))
	assert.Equal(t, "satsetup", linkHandler("satsetup.md"))
}
