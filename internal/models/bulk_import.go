package models

// FailedRow records a single data row that could not be imported, together
// with the reason reported by the layer that rejected it.
type FailedRow struct {
	InputRow string
	Reason   string
}

// BulkImportResult is the partitioned outcome of one bulk import call. Both
// partitions preserve input order, and together they account for every data
// row: len(Successful) + len(Failed) equals the number of non-empty rows
// after the header.
type BulkImportResult struct {
	Successful []*Candidate
	Failed     []FailedRow
}

func (result *BulkImportResult) TotalRows() int {
	return len(result.Successful) + len(result.Failed)
}
