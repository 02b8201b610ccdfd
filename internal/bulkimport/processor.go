package bulkimport

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	errs "github.com/ballotsync/ballotsync/internal/errors"
	models "github.com/ballotsync/ballotsync/internal/models"
)

// CandidateCreator is the slice of the reconciliation service the processor
// drives; every row goes through it so lock and eligibility invariants hold.
type CandidateCreator interface {
	AddCandidate(ctx context.Context, electionId string, fields *models.CandidateFields) (*models.Candidate, error)
}

const delimiter = ","

var recognizedFields = map[string]bool{
	"name":      true,
	"seat":      true,
	"party":     true,
	"position":  true,
	"bio":       true,
	"manifesto": true,
	"photourl":  true,
	"isactive":  true,
}

// BulkImportProcessor parses a delimited-text candidate batch and creates one
// candidate per data row. Rows are processed independently and strictly in
// input order; a failing row is captured with its reason and processing
// continues, so the caller can always recover partial success. The import
// never aborts on a row error.
type BulkImportProcessor struct {
	creator CandidateCreator
}

func NewBulkImportProcessor(creator CandidateCreator) *BulkImportProcessor {
	return &BulkImportProcessor{creator: creator}
}

// Import processes rawText: the first line is a header naming fields in any
// order among name, seat, party, position, bio, manifesto, photoUrl and
// isActive; each subsequent non-empty line is a row of comma separated values
// mapped to the header by position. No delimiter escaping is supported; a
// value containing the delimiter corrupts that row's parse and surfaces as a
// failed entry.
func (processor *BulkImportProcessor) Import(ctx context.Context, electionId string, rawText string) (*models.BulkImportResult, error) {
	lines := strings.Split(strings.ReplaceAll(rawText, "\r\n", "\n"), "\n")

	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, &errs.ValidationError{Field: "header", Reason: "is required"}
	}

	header, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	result := &models.BulkImportResult{}

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields, err := parseRow(header, line)
		if err != nil {
			result.Failed = append(result.Failed, models.FailedRow{InputRow: line, Reason: err.Error()})
			continue
		}

		candidate, err := processor.creator.AddCandidate(ctx, electionId, fields)
		if err != nil {
			result.Failed = append(result.Failed, models.FailedRow{InputRow: line, Reason: err.Error()})
			continue
		}

		result.Successful = append(result.Successful, candidate)
	}

	log.Printf("|Import| Election %s: %d rows imported, %d rows failed", electionId, len(result.Successful), len(result.Failed))
	return result, nil
}

func parseHeader(line string) ([]string, error) {
	columns := strings.Split(line, delimiter)

	header := make([]string, len(columns))
	for i, column := range columns {
		normalized := strings.ToLower(strings.TrimSpace(column))

		if !recognizedFields[normalized] {
			return nil, &errs.ValidationError{Field: "header", Reason: fmt.Sprintf("unrecognized field %q", strings.TrimSpace(column))}
		}

		header[i] = normalized
	}

	return header, nil
}

func parseRow(header []string, line string) (*models.CandidateFields, error) {
	values := strings.Split(line, delimiter)

	if len(values) != len(header) {
		return nil, fmt.Errorf("row has %d values, header has %d fields", len(values), len(header))
	}

	//fields absent from the header default to empty, isActive to true
	fields := &models.CandidateFields{IsActive: true}

	for i, column := range header {
		value := strings.TrimSpace(values[i])

		switch column {
		case "name":
			fields.Name = value
		case "seat":
			fields.Seat = value
		case "party":
			fields.Party = value
		case "position":
			fields.Position = value
		case "bio":
			fields.Bio = value
		case "manifesto":
			fields.Manifesto = value
		case "photourl":
			fields.PhotoUrl = value
		case "isactive":
			if value == "" {
				continue
			}
			isActive, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("isActive value %q is not a boolean", value)
			}
			fields.IsActive = isActive
		}
	}

	return fields, nil
}
