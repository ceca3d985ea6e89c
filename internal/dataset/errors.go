package dataset

import "fmt"

// NotFoundError indicates the dataset file does not exist (or is not a regular file).
type NotFoundError struct{ Path string }

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dataset not found: %s", e.Path)
}

// InvalidFormatError indicates the file is not a CSV file.
type InvalidFormatError struct{ Path string }

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid dataset format (want .csv): %s", e.Path)
}

// EmptyDataError indicates the file parsed to zero data rows.
type EmptyDataError struct{ Path string }

func (e *EmptyDataError) Error() string {
	if e.Path == "" {
		return "dataset is empty"
	}
	return fmt.Sprintf("dataset is empty: %s", e.Path)
}

// IOFailureError indicates a generic read or parse failure.
type IOFailureError struct {
	Path string
	Err  error
}

func (e *IOFailureError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("read dataset %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("read dataset: %v", e.Err)
}

func (e *IOFailureError) Unwrap() error { return e.Err }

// SchemaError indicates a query-time problem with a required column.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("required column %q is missing", e.Column)
}

// EmptyDatasetError indicates a query ran against a dataset with no rows.
type EmptyDatasetError struct{ Op string }

func (e *EmptyDatasetError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: dataset has no rows", e.Op)
	}
	return "dataset has no rows"
}
