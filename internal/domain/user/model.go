package user

import (
	"strings"
	"time"
)

const (
	TypeBatsman    = "Batsman"
	TypeBowler     = "Bowler"
	TypeAllRounder = "All Rounder"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

const (
	HandNA = "NA"

	BattingLeft  = "Left"
	BattingRight = "Right"

	BowlingLeft  = "Left Handed"
	BowlingRight = "Right Handed"

	BowlerPace   = "Pace/Fast"
	BowlerMedium = "Medium"
	BowlerSpin   = "Spin/Slow"
)

// User is one player registration.
type User struct {
	ID               string
	FullName         string
	Email            string
	WhatsAppNumber   string
	State            string
	District         string
	Pincode          string
	Type             string
	BatsmanHanded    string
	BowlerHanded     string
	BowlerType       string
	Status           string
	RejectionReason  string
	RegistrationDate time.Time
	ApprovedAt       *time.Time
	RejectedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Normalize trims input, folds accepted aliases into canonical values and
// clears the attributes the player type does not use.
func (u User) Normalize() User {
	u.FullName = strings.ToUpper(strings.TrimSpace(u.FullName))
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.WhatsAppNumber = strings.TrimSpace(u.WhatsAppNumber)
	u.State = strings.TrimSpace(u.State)
	u.District = strings.TrimSpace(u.District)
	u.Pincode = strings.TrimSpace(u.Pincode)
	u.Type = NormalizeType(u.Type)
	u.BatsmanHanded = NormalizeBattingHand(u.BatsmanHanded)
	u.BowlerHanded = NormalizeBowlingHand(u.BowlerHanded)
	u.BowlerType = NormalizeBowlerType(u.BowlerType)
	u.RejectionReason = strings.TrimSpace(u.RejectionReason)

	if u.Status == "" {
		u.Status = StatusPending
	} else {
		u.Status = NormalizeStatus(u.Status)
	}

	if IsValidType(u.Type) {
		if !CanBat(u.Type) {
			u.BatsmanHanded = HandNA
		}
		if !CanBowl(u.Type) {
			u.BowlerHanded = HandNA
			u.BowlerType = ""
		}
	}
	return u
}

// WithStatus moves the registration to status and stamps the matching decision time.
// Any status may follow any other.
func (u User) WithStatus(status, reason string, now time.Time) User {
	u.Status = status
	u.UpdatedAt = now
	switch status {
	case StatusApproved:
		approvedAt := now
		u.ApprovedAt = &approvedAt
		u.RejectedAt = nil
		u.RejectionReason = ""
	case StatusRejected:
		rejectedAt := now
		u.RejectedAt = &rejectedAt
		u.ApprovedAt = nil
		u.RejectionReason = strings.TrimSpace(reason)
	default:
		u.ApprovedAt = nil
		u.RejectedAt = nil
		u.RejectionReason = ""
	}
	return u
}

func NormalizeType(value string) string {
	switch key(value) {
	case "batsman", "batter":
		return TypeBatsman
	case "bowler":
		return TypeBowler
	case "all rounder", "all-rounder", "allrounder":
		return TypeAllRounder
	default:
		return strings.TrimSpace(value)
	}
}

func IsValidType(value string) bool {
	switch value {
	case TypeBatsman, TypeBowler, TypeAllRounder:
		return true
	default:
		return false
	}
}

func CanBat(playerType string) bool {
	return playerType == TypeBatsman || playerType == TypeAllRounder
}

func CanBowl(playerType string) bool {
	return playerType == TypeBowler || playerType == TypeAllRounder
}

// NormalizeStatus accepts the legacy Confirmed/Cancelled names and any casing.
func NormalizeStatus(value string) string {
	switch key(value) {
	case "pending":
		return StatusPending
	case "approved", "confirmed":
		return StatusApproved
	case "rejected", "cancelled", "canceled", "declined":
		return StatusRejected
	default:
		return strings.TrimSpace(value)
	}
}

func IsValidStatus(value string) bool {
	switch value {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func NormalizeBattingHand(value string) string {
	switch key(value) {
	case "left", "left handed", "left-handed":
		return BattingLeft
	case "right", "right handed", "right-handed":
		return BattingRight
	case "na", "n/a":
		return HandNA
	default:
		return strings.TrimSpace(value)
	}
}

func NormalizeBowlingHand(value string) string {
	switch key(value) {
	case "left handed", "left-handed", "left":
		return BowlingLeft
	case "right handed", "right-handed", "right":
		return BowlingRight
	case "na", "n/a":
		return HandNA
	default:
		return strings.TrimSpace(value)
	}
}

func NormalizeBowlerType(value string) string {
	switch key(value) {
	case "pace/fast", "pace", "fast":
		return BowlerPace
	case "medium":
		return BowlerMedium
	case "spin/slow", "spin", "slow":
		return BowlerSpin
	default:
		return strings.TrimSpace(value)
	}
}

func key(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
