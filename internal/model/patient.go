package model

// Gender enumeration for patient records
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// GenderChoices lists the accepted gender values, in form order.
var GenderChoices = []string{GenderMale, GenderFemale, GenderOther}

// ValidGender reports whether g is an accepted gender value.
// The empty string is accepted because the field is optional.
func ValidGender(g string) bool {
	if g == "" {
		return true
	}
	for _, choice := range GenderChoices {
		if g == choice {
			return true
		}
	}
	return false
}

// Patient represents a clinic patient record. A patient owns zero or
// more visits; deleting a patient deletes its visits with it.
type Patient struct {
	Base
	Name    string  `json:"name" db:"name"`
	Age     *int    `json:"age" db:"age"`
	Gender  *string `json:"gender" db:"gender"`
	Phone   *string `json:"phone" db:"phone"`
	Address *string `json:"address" db:"address"`
}

// PatientRequest carries the form-bound patient fields. The same shape
// serves create and edit: edits replace every form-bound field.
type PatientRequest struct {
	Name    string  `json:"name" form:"name" binding:"required,max=255"`
	Age     *int    `json:"age" form:"age" binding:"omitempty,gte=0"`
	Gender  *string `json:"gender" form:"gender" binding:"omitempty,oneof=Male Female Other"`
	Phone   *string `json:"phone" form:"phone" binding:"omitempty,max=20"`
	Address *string `json:"address" form:"address"`
}
