// Package export flattens the account book into CSV files and hands them to
// a share action.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// previewLines is how many lines of the file a degraded share shows.
const previewLines = 5

// Source is the read side of the account book the pipeline exports from.
type Source interface {
	ExportData(ctx context.Context) ([]model.Account, []model.Transaction, error)
}

// Sharer hands an exported file to the platform share action.
type Sharer interface {
	Share(path string) error
}

// ExecSharer shares by running an external command with the file path as its
// argument (e.g. "xdg-open" or "open").
type ExecSharer struct {
	Command string
}

// Share runs the configured command.
func (s ExecSharer) Share(path string) error {
	cmd := exec.Command(s.Command, path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("share command %s: %s: %w", s.Command, out, err)
	}
	return nil
}

// Result is the outcome of one export. A failed export has Success false
// and an empty FilePath; errors never propagate past the pipeline. A
// successful export with a failed or missing share carries a Preview for
// manual retry.
type Result struct {
	FilePath string
	Shared   bool
	Preview  []string
	Err      error
	Success  bool
}

// Pipeline reads from the account book and writes share-ready CSV files.
type Pipeline struct {
	source Source
	sharer Sharer // nil = no share capability
	dir    string
	logger *zap.Logger
}

// New creates a Pipeline writing into dir.
func New(source Source, sharer Sharer, dir string, logger *zap.Logger) *Pipeline {
	return &Pipeline{source: source, sharer: sharer, dir: dir, logger: logger}
}

// Accounts exports one flattened row per active account.
func (p *Pipeline) Accounts(ctx context.Context) Result {
	accounts, _, err := p.source.ExportData(ctx)
	if err != nil {
		return p.fail("reading accounts for export", err)
	}

	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, FlattenAccount(a))
	}
	return p.write("accounts", AccountHeader, rows)
}

// Transactions exports one flattened row per transaction, including those
// owned by soft-deleted accounts.
func (p *Pipeline) Transactions(ctx context.Context) Result {
	_, transactions, err := p.source.ExportData(ctx)
	if err != nil {
		return p.fail("reading transactions for export", err)
	}

	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, FlattenTransaction(t))
	}
	return p.write("transactions", TransactionHeader, rows)
}

func (p *Pipeline) write(kind string, header []string, rows [][]string) Result {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(header); err != nil {
		return p.fail("writing header", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return p.fail("writing row", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return p.fail("flushing csv", err)
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return p.fail("creating export dir", err)
	}

	name := fmt.Sprintf("pocketbook-%s-%s-%s.csv",
		kind,
		time.Now().Format("20060102-150405"),
		strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	path := filepath.Join(p.dir, name)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return p.fail("writing export file", err)
	}
	p.logger.Info("exported", zap.String("kind", kind), zap.String("path", path), zap.Int("rows", len(rows)))

	// Share step: degraded share is still a successful export, the caller
	// gets a preview and can retry sharing by hand.
	if p.sharer == nil {
		return Result{FilePath: path, Success: true, Preview: preview(buf.String())}
	}
	if err := p.sharer.Share(path); err != nil {
		p.logger.Warn("share failed, falling back to preview", zap.Error(err))
		return Result{FilePath: path, Success: true, Preview: preview(buf.String()), Err: err}
	}
	return Result{FilePath: path, Success: true, Shared: true}
}

func (p *Pipeline) fail(msg string, err error) Result {
	wrapped := fmt.Errorf("%s: %w", msg, err)
	p.logger.Error("export failed", zap.Error(wrapped))
	return Result{Success: false, Err: wrapped}
}

func preview(content string) []string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) > previewLines {
		lines = lines[:previewLines]
	}
	return lines
}
