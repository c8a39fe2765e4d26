package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kiranshivaraju/prodkit/pkg/assets"
	"github.com/kiranshivaraju/prodkit/pkg/logger"
	"github.com/kiranshivaraju/prodkit/pkg/parser"
)

var catalogLog = logger.New("project:catalog")

// CommandPattern matches prodkit command template files.
const CommandPattern = "prodkit.*.md"

// unreadableDescription substitutes for a template that exists but cannot
// be read.
const unreadableDescription = "No description available"

// CatalogEntry is one discoverable command, named as it is invoked inside
// the assistant ("/prodkit.prd") and described by its frontmatter.
type CatalogEntry struct {
	Name        string
	Description string
}

// ResolveCommandsFS locates the command templates: the provisioned project
// under dir first, then the payload embedded in the binary. The second
// return value names the source for user-facing output.
func ResolveCommandsFS(dir string) (fs.FS, string, error) {
	provisioned := filepath.Join(dir, ProdkitDir, CommandsDir)
	if dirExists(provisioned) {
		catalogLog.Printf("Using provisioned commands: %s", provisioned)
		return os.DirFS(provisioned), provisioned, nil
	}

	embedded, err := assets.Commands()
	if err != nil {
		return nil, "", fmt.Errorf("commands directory not found (looked in %s and the embedded payload): %w", provisioned, err)
	}
	catalogLog.Print("Falling back to embedded command templates")
	return embedded, "built-in templates", nil
}

// LoadCatalog scans a commands directory for template files and extracts
// each one's description. Files are ordered by name; a file that cannot be
// read gets a placeholder description instead of aborting the listing.
func LoadCatalog(fsys fs.FS) ([]CatalogEntry, error) {
	files, err := fs.Glob(fsys, CommandPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan commands directory: %w", err)
	}
	sort.Strings(files)

	entries := make([]CatalogEntry, 0, len(files))
	for _, file := range files {
		entry := CatalogEntry{Name: "/" + strings.TrimSuffix(file, ".md")}

		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			catalogLog.Printf("Failed to read %s: %v", file, err)
			entry.Description = unreadableDescription
		} else {
			entry.Description = parser.ExtractDescription(string(content))
		}
		entries = append(entries, entry)
	}

	catalogLog.Printf("Loaded %d catalog entries", len(entries))
	return entries, nil
}
