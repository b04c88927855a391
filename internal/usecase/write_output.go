package usecase

import (
	"github.com/aalvaropc/commonmeta/internal/domain"
	"github.com/aalvaropc/commonmeta/internal/ports"
	"github.com/aalvaropc/commonmeta/internal/usecase/serialize"
)

// WriteOutput renders records and hands them to a RecordWriter.
type WriteOutput struct {
	writer ports.RecordWriter
}

func NewWriteOutput(w ports.RecordWriter) *WriteOutput {
	return &WriteOutput{writer: w}
}

// Execute writes Render(recs, inputs) to path and returns the path written.
func (uc *WriteOutput) Execute(path string, recs []domain.Record, inputs int) (string, error) {
	return uc.writer.Write(path, Render(recs, inputs))
}

// Render prints the record of a single input as an object. Several inputs
// render as an array, even when only some of them resolved.
func Render(recs []domain.Record, inputs int) []byte {
	if inputs == 1 && len(recs) == 1 {
		return serialize.Serialize(recs[0])
	}
	return serialize.SerializeAll(recs)
}
