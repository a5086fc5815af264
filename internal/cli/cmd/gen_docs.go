package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/spacesync/internal/infrastructure/config"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	configPageName = "spacesync-config"
)

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate command and config file documentation",
	Long: `Generate man pages or markdown for every command, plus a reference page
for config.toml (spacesync-config) listing each key with its type, default,
and allowed values.

By default, man pages are installed under ~/.local/share/man: commands in
man1 and the config reference in man5, so 'man spacesync' and
'man 5 spacesync-config' work. Run 'mandb' if they are not found.

Examples:
  spacesync gen-docs                       # Install man pages
  spacesync gen-docs --format markdown     # Markdown into ./docs
  spacesync gen-docs --output ./man        # Everything into one directory`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	outputDir, configDir := genDocsOutputDir, genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			manDir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
			configDir = filepath.Join(filepath.Dir(manDir), "man5")
		case "markdown":
			outputDir, configDir = "./docs", "./docs"
		}
	}

	switch genDocsFormat {
	case "man":
		if err := generateManPages(outputDir); err != nil {
			return err
		}
		return writeConfigPage(configDir, true)
	case "markdown":
		if err := generateMarkdown(outputDir); err != nil {
			return err
		}
		return writeConfigPage(configDir, false)
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}
}

func generateManPages(outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	rootCmd.DisableAutoGenTag = true

	if err := doc.GenManTree(rootCmd, manHeader("SPACESYNC", "1"), outputDir); err != nil {
		return fmt.Errorf("generate man pages: %w", err)
	}
	fmt.Printf("Installed command man pages to %s\n", outputDir)
	return nil
}

func generateMarkdown(outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	rootCmd.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
		return fmt.Errorf("generate markdown docs: %w", err)
	}
	fmt.Printf("Generated markdown docs in %s\n", outputDir)
	return nil
}

func manHeader(title, section string) *doc.GenManHeader {
	now := time.Now()
	return &doc.GenManHeader{
		Title:   title,
		Section: section,
		Source:  "spacesync " + buildInfo.Version,
		Manual:  "spacesync Manual",
		Date:    &now,
	}
}

// writeConfigPage renders the config reference as markdown, or as a section 5
// man page when asMan is set.
func writeConfigPage(dir string, asMan bool) error {
	entries, err := config.Reference()
	if err != nil {
		return fmt.Errorf("build config reference: %w", err)
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	name, data := configPageName+".md", configMarkdown(entries, asMan)
	if asMan {
		name, data = configPageName+".5", md2man.Render(data)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("write config reference: %w", err)
	}
	fmt.Printf("Wrote config reference to %s\n", path)
	return nil
}

func configMarkdown(entries []config.ReferenceEntry, titleBlock bool) []byte {
	var buf bytes.Buffer
	if titleBlock {
		h := manHeader(strings.ToUpper(configPageName), "5")
		fmt.Fprintf(&buf, "%% %q %q %q %q %q\n",
			h.Title, h.Section, h.Date.Format("Jan 2006"), h.Source, h.Manual)
		buf.WriteString("# NAME\n" + configPageName + " - spacesync configuration file\n\n")
	} else {
		buf.WriteString("# " + configPageName + "\n\n")
	}

	configPath, err := config.GetConfigFile()
	if err != nil {
		configPath = "$XDG_CONFIG_HOME/spacesync/config.toml"
	}
	fmt.Fprintf(&buf, "# DESCRIPTION\nspacesync reads **%s** at startup and reloads it on change. "+
		"Missing keys take the defaults below. Every key can also be set through the "+
		"environment as SPACESYNC_<SECTION>_<KEY>.\n\n", configPath)

	buf.WriteString("# KEYS\n")
	section := ""
	for _, e := range entries {
		if head, _, ok := strings.Cut(e.Key, "."); ok && head != section {
			section = head
			fmt.Fprintf(&buf, "\n## [%s]\n\n", section)
		}
		fmt.Fprintf(&buf, "**%s** (%s)", e.Key, e.Type)
		if e.Default != "" {
			fmt.Fprintf(&buf, " default `%s`", e.Default)
		}
		buf.WriteString("\n")
		if e.Constraint != "" {
			buf.WriteString(": " + e.Constraint + "\n")
		}
		if e.Description != "" {
			buf.WriteString(": " + e.Description + "\n")
		}
		buf.WriteString("\n")
	}

	buf.WriteString("# SEE ALSO\n**spacesync(1)**, **spacesync-config-schema(1)**\n")
	return buf.Bytes()
}
