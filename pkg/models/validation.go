package models

// Severity of a validation finding. Display order is error, warning, info;
// the validator itself does not sort.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ValidationFinding is one advisory result from the label validator.
// Findings never block label generation; proceeding despite errors is the
// caller's decision. I18nKey is resolved by the consuming UI.
type ValidationFinding struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	I18nKey  string   `json:"i18n_key"`
}
