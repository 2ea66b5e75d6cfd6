package user

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/cricket-tournament/internal/platform/validation"
)

var messages = map[string]string{
	"fullName":       "Full name must be at least 2 characters long",
	"whatsappNumber": "WhatsApp number must be a 10-digit number",
	"email":          "Please enter a valid email address",
	"state":          "State is required",
	"district":       "District is required",
	"pincode":        "Pincode must be a 6-digit number",
	"type":           "Player type must be Batsman, Bowler, or All Rounder",
	"batsmanHanded":  "Batsman handedness is required for Batsman and All Rounder",
	"bowlerHanded":   "Bowler handedness is required for Bowler and All Rounder",
	"bowlerType":     "Bowler type is required for Bowler and All Rounder",
	"status":         "Status must be Pending, Approved, or Rejected",
}

type registration struct {
	FullName       string `json:"fullName" validate:"min=2"`
	WhatsAppNumber string `json:"whatsappNumber" validate:"digits=10"`
	Email          string `json:"email" validate:"conventional_email"`
	State          string `json:"state" validate:"required"`
	District       string `json:"district" validate:"required"`
	Pincode        string `json:"pincode" validate:"digits=6"`
	Type           string `json:"type" validate:"oneof=Batsman Bowler 'All Rounder'"`
	BatsmanHanded  string `json:"batsmanHanded"`
	BowlerHanded   string `json:"bowlerHanded"`
	BowlerType     string `json:"bowlerType"`
	Status         string `json:"status" validate:"oneof=Pending Approved Rejected"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validation.New()
	v.RegisterStructValidation(capabilityRules, registration{})
	return v
}

// capabilityRules requires the handedness and style attributes the player type implies.
func capabilityRules(sl validator.StructLevel) {
	r := sl.Current().Interface().(registration)

	if CanBat(r.Type) && r.BatsmanHanded != BattingLeft && r.BatsmanHanded != BattingRight {
		sl.ReportError(r.BatsmanHanded, "batsmanHanded", "BatsmanHanded", "required_for_batting", "")
	}
	if !CanBowl(r.Type) {
		return
	}
	if r.BowlerHanded != BowlingLeft && r.BowlerHanded != BowlingRight {
		sl.ReportError(r.BowlerHanded, "bowlerHanded", "BowlerHanded", "required_for_bowling", "")
	}
	switch r.BowlerType {
	case BowlerPace, BowlerMedium, BowlerSpin:
	default:
		sl.ReportError(r.BowlerType, "bowlerType", "BowlerType", "required_for_bowling", "")
	}
}

// Validate checks every registration rule and returns validation.Errors listing all violations.
// The receiver is expected to be normalized.
func (u User) Validate() error {
	return validation.Check(validate, registration{
		FullName:       strings.TrimSpace(u.FullName),
		WhatsAppNumber: u.WhatsAppNumber,
		Email:          u.Email,
		State:          strings.TrimSpace(u.State),
		District:       strings.TrimSpace(u.District),
		Pincode:        u.Pincode,
		Type:           u.Type,
		BatsmanHanded:  u.BatsmanHanded,
		BowlerHanded:   u.BowlerHanded,
		BowlerType:     u.BowlerType,
		Status:         u.Status,
	}, messages).OrNil()
}
