// Package statement turns bank statement CSV files into staged transactions.
package statement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/pocketbook-dev/pocketbook/internal/apperrors"
	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// Parser converts statement CSVs into ProcessedTransactions. Malformed rows
// are logged and skipped or defaulted, never fatal: the parser always
// returns whatever rows did parse.
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a Parser.
func NewParser(logger *zap.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse reads one statement from r. A missing or empty header yields no
// transactions; a CSV-level failure on the header wraps ErrParse.
func (p *Parser) Parse(r io.Reader) ([]model.ProcessedTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may be ragged; columns bind by header

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading statement header: %w: %w", apperrors.ErrParse, err)
	}
	bound := bindHeader(header)

	var txns []model.ProcessedTransaction
	for rowNum := 2; ; rowNum++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed row: log and keep going.
			p.logger.Warn("skipping malformed statement row",
				zap.Int("row", rowNum),
				zap.Error(err))
			continue
		}

		txn, warnings := mapRow(bound, row)
		for _, w := range warnings {
			p.logger.Warn("statement cell failed coercion, using default",
				zap.Int("row", rowNum),
				zap.String("column", w.column),
				zap.String("value", w.value))
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// ParseFile reads and parses one statement file. Failures to read the file
// wrap ErrStorage.
func (p *Parser) ParseFile(path string) ([]model.ProcessedTransaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement %s: %w: %w", path, apperrors.ErrStorage, err)
	}
	defer f.Close()

	txns, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing statement %s: %w", path, err)
	}
	return txns, nil
}

// ParseFiles parses each file sequentially and concatenates the results,
// preserving input file order and within-file row order.
func (p *Parser) ParseFiles(paths []string) ([]model.ProcessedTransaction, error) {
	var all []model.ProcessedTransaction
	for _, path := range paths {
		txns, err := p.ParseFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, txns...)
	}
	return all, nil
}
