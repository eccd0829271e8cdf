package models

// The employee directory lives in an externally-owned database whose
// schema is not under our control. Only the id column is guaranteed;
// name, surname and email columns are resolved best-effort at runtime.

const (
	// PlaceholderEmployeeID is the sentinel id of the synthetic employee
	// record substituted when the external directory is unreachable or
	// empty. It is the one deliberate fabricated value in the pipeline
	// and is visibly distinguishable by this id.
	PlaceholderEmployeeID = "EMP01"

	// PlaceholderEmployeeName is the display name of the synthetic record.
	PlaceholderEmployeeName = "Temporary User"
)

// Employee is the best-effort view of an external directory row.
// Fields beyond ID are empty when the source schema lacks them.
type Employee struct {
	ID      string `json:"employee_id"`
	Name    string `json:"employee_name,omitempty"`
	Surname string `json:"employee_surname,omitempty"`
	Email   string `json:"employee_email,omitempty"`
}
