package translit

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecEngine converts text by invoking an external transliteration command
// once per call. The command receives the source text on stdin and the
// scheme pair as arguments, and writes the converted text to stdout.
type ExecEngine struct {
	command      string
	targetScript string
}

// NewExecEngine builds an engine around the given converter binary.
// targetScript names the destination writing system passed to the command
// (for example "devanagari").
func NewExecEngine(command, targetScript string) (*ExecEngine, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, fmt.Errorf("translit: converter command not configured")
	}
	if strings.TrimSpace(targetScript) == "" {
		targetScript = "devanagari"
	}
	return &ExecEngine{command: command, targetScript: targetScript}, nil
}

// Convert runs the converter for one scheme.
func (e *ExecEngine) Convert(ctx context.Context, text string, scheme Scheme) (string, error) {
	cmd := exec.CommandContext(ctx, e.command, "--from", string(scheme), "--to", e.targetScript)
	cmd.Stdin = strings.NewReader(text)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run %s (%s): %w (stderr: %s)", e.command, scheme, err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimRight(stdout.String(), "\n"), nil
}
