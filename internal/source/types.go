package source

import (
	"errors"

	"github.com/google/uuid"

	"matrixview/internal/matrix"
)

// ErrUnsupported indicates a file extension no loader handles.
var ErrUnsupported = errors.New("source: unsupported file type")

// Dataset is the raw row sequence of one load. Rows may be empty. Every load gets a fresh ID,
// so identities from different loads never compare equal.
type Dataset struct {
	Name    string
	ID      uuid.UUID
	Columns []string
	Rows    [][]matrix.Primitive
}

// RowID identifies one row of one load.
type RowID struct {
	Dataset uuid.UUID `json:"dataset"`
	Row     int       `json:"row"`
}

func newDataset(name string, columns []string, rows [][]matrix.Primitive) Dataset {
	return Dataset{Name: name, ID: uuid.New(), Columns: columns, Rows: rows}
}

// Identities returns the identity collaborator for this dataset.
func (d Dataset) Identities() matrix.IdentityFunc {
	id := d.ID
	return func(row int) matrix.Identity {
		return RowID{Dataset: id, Row: row}
	}
}
