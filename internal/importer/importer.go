package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nexusai-site/internal/domain"
	leadrepo "nexusai-site/internal/repository/lead"
)

type LeadWriter interface {
	Create(ctx context.Context, s domain.ContactSubmission) error
}

// Result summarises an import run.
type Result struct {
	Imported int
	Skipped  int
}

// CSVImporter reads contact form exports and stores them as lead submissions.
type CSVImporter struct {
	reader *csv.Reader
	leads  LeadWriter
	logger *zap.Logger
	now    func() time.Time
}

func NewCSVImporter(r io.Reader, leads LeadWriter, logger *zap.Logger) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVImporter{
		reader: csvr,
		leads:  leads,
		logger: logger.Named("importer"),
		now:    time.Now,
	}
}

type csvRow struct {
	ID         string
	Name       string
	Email      string
	Subject    string
	Message    string
	Phone      string
	Company    string
	Service    string
	ReceivedAt string
}

// Run parses CSV rows and stores one submission per row. Rows without name and
// email continue the previous row's message. Ids already stored are skipped.
func (i *CSVImporter) Run(ctx context.Context) (Result, error) {
	var res Result

	headers, err := i.reader.Read()
	if err != nil {
		return res, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, col := range []string{"name", "email", "subject", "message"} {
		if _, ok := index[col]; !ok {
			return res, fmt.Errorf("missing column %q", col)
		}
	}

	var current *csvRow
	flush := func() error {
		if current == nil {
			return nil
		}
		err := i.save(ctx, current)
		current = nil
		switch {
		case errors.Is(err, leadrepo.ErrAlreadyExists):
			res.Skipped++
			return nil
		case err != nil:
			return err
		}
		res.Imported++
		return nil
	}

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read row: %w", err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}

		if row.Name != "" || row.Email != "" {
			if err := flush(); err != nil {
				return res, err
			}
			current = row
			continue
		}

		// Continuation rows carry overflow message lines.
		if current != nil && row.Message != "" {
			current.Message += "\n" + row.Message
		}
	}

	if err := flush(); err != nil {
		return res, err
	}
	return res, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	if row.Name == "" || row.Email == "" || row.Subject == "" || row.Message == "" {
		return fmt.Errorf("invalid lead row (missing required fields) for %q", row.Email)
	}

	id := row.ID
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid id for %q: %s", row.Email, row.ID)
	}

	received := i.now().UTC()
	if row.ReceivedAt != "" {
		ts, err := time.Parse(time.RFC3339, row.ReceivedAt)
		if err != nil {
			return fmt.Errorf("invalid received_at for %q: %w", row.Email, err)
		}
		received = ts.UTC()
	}

	s := domain.ContactSubmission{
		ID:         id,
		Name:       row.Name,
		Email:      row.Email,
		Subject:    row.Subject,
		Message:    row.Message,
		Phone:      row.Phone,
		Company:    row.Company,
		Service:    row.Service,
		ReceivedAt: received,
	}
	if err := i.leads.Create(ctx, s); err != nil {
		if errors.Is(err, leadrepo.ErrAlreadyExists) {
			i.logger.Debug("skip existing lead", zap.String("id", id))
			return err
		}
		return fmt.Errorf("store lead %q: %w", row.Email, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	row := &csvRow{
		ID:         pick(record, index, "id"),
		Name:       pick(record, index, "name"),
		Email:      pick(record, index, "email"),
		Subject:    pick(record, index, "subject"),
		Message:    pick(record, index, "message"),
		Phone:      pick(record, index, "phone"),
		Company:    pick(record, index, "company"),
		Service:    pick(record, index, "service"),
		ReceivedAt: pick(record, index, "received_at"),
	}
	if row.Name == "" && row.Email == "" && row.Message == "" {
		return nil
	}
	return row
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
