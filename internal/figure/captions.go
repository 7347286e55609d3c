package figure

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/energy-modelling-hub/water-value-database/internal/utils"
)

// Captions accumulates figure captions in generation order for the
// combined caption file that accompanies the figures.
type Captions struct {
	entries []captionEntry
}

type captionEntry struct {
	name string
	text string
}

// Add records the caption for a named figure.
func (c *Captions) Add(name, text string) {
	c.entries = append(c.entries, captionEntry{name: name, text: text})
}

// Len returns the number of recorded captions.
func (c *Captions) Len() int { return len(c.entries) }

// Write saves all captions to one text file under dir and returns its path.
func (c *Captions) Write(dir, fileName, title string, now time.Time) (string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ensure figures dir: %w", err)
	}
	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString("Generated: " + now.Format("2006-01-02 15:04:05") + "\n")
	b.WriteString(strings.Repeat("=", 72) + "\n\n")
	for _, e := range c.entries {
		b.WriteString("[" + e.name + "]\n")
		b.WriteString(e.text + "\n\n")
		b.WriteString(strings.Repeat("─", 72) + "\n\n")
	}
	path := filepath.Join(dir, fileName)
	if err := utils.SafeWriteFile(path, []byte(b.String())); err != nil {
		return "", err
	}
	return path, nil
}
