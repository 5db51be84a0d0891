package dot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/ontodot/pkg/config"
	"github.com/matzehuels/ontodot/pkg/errors"
	"github.com/matzehuels/ontodot/pkg/transform"
)

// GraphName is the identifier of every assembled digraph.
const GraphName = "ontodot_diagram"

type styleBlock struct {
	name  string
	shape string
	color string
	items []string
}

// Assemble renders res as a DOT document styled by cfg.
func Assemble(res *transform.Result, cfg config.Config) (string, error) {
	if res == nil {
		return "", errors.New(errors.ErrCodeInternal, "nil transformation result")
	}
	if err := res.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", GraphName)
	fmt.Fprintf(&b, "rankdir=%s;\n", cfg.RankDir)
	fmt.Fprintf(&b, "size=%s;\n", quote(cfg.ImageSize))

	for _, blk := range styleBlocks(res.Sets, cfg) {
		if len(blk.items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "node [shape=%s, color=%s]; ", blk.shape, quote(blk.color))
		for i, item := range blk.items {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(quote(item))
		}
		fmt.Fprintf(&b, "; /*%s style*/\n", blk.name)
	}

	for _, e := range res.Edges {
		fmt.Fprintf(&b, "\t%s -> %s [label=%s];\n", quote(e.Source), quote(e.Target), quote(e.Label))
	}

	b.WriteString("}\n")
	return b.String(), nil
}

func styleBlocks(s transform.Sets, cfg config.Config) []styleBlock {
	return []styleBlock{
		{"classes", cfg.ClassShape, cfg.ClassColor, s.Classes},
		{"individuals", cfg.IndividualShape, cfg.IndividualColor, s.Individuals},
		{"literals", cfg.LiteralShape, cfg.LiteralColor, s.Literals},
		{"object properties", cfg.ObjPropShape, cfg.ObjPropColor, s.ObjectProperties},
		{"data type properties", cfg.DtPropShape, cfg.DtPropColor, s.DatatypeProperties},
	}
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)

// quote returns s as a DOT double-quoted string.
func quote(s string) string {
	return `"` + escaper.Replace(s) + `"`
}

// WriteFile writes doc to path through a temporary file in the same
// directory, then renames it into place.
func WriteFile(path, doc string) error {
	return writeAtomic(path, []byte(doc))
}

func writeAtomic(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create temp file in %s", dir)
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
