package domain

// FormMode is the layout of the trip event form.
type FormMode string

const (
	// FormModeNew is used when creating an event: controls are Save and Cancel.
	FormModeNew FormMode = "new"
	// FormModeEdit is used when modifying an event: controls are Save, Delete and Collapse.
	FormModeEdit FormMode = "edit"
)

// ModeFor is the only transition rule of the form: EDIT iff there is data being edited.
func ModeFor(data *TripEvent) FormMode {
	if data != nil {
		return FormModeEdit
	}
	return FormModeNew
}
