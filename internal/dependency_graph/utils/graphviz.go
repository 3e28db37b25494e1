package utils

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

func WriteFile(path, data string) error {
	return os.WriteFile(path, []byte(data), 0644)
}

// DotTo renders a DOT file with the graphviz binary. Graphviz diagnostics are
// folded into the returned error.
func DotTo(ctx context.Context, pathDOT, outPath, format, dotBin string) error {
	if format == "" {
		format = "svg"
	}
	if dotBin == "" {
		dotBin = "dot"
	}

	if _, err := exec.LookPath(dotBin); err != nil {
		return fmt.Errorf("graphviz: dot binary not found (%q): %w", dotBin, err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, dotBin, "-T"+format, pathDOT, "-o", outPath)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("graphviz: %w: %s", err, msg)
		}
		return fmt.Errorf("graphviz: %w", err)
	}
	return nil
}
