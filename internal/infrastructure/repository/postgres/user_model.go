package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/cricket-tournament/internal/domain/user"
)

type userTableModel struct {
	ID               int64        `db:"id"`
	PublicID         string       `db:"public_id"`
	FullName         string       `db:"full_name"`
	Email            string       `db:"email"`
	WhatsAppNumber   string       `db:"whatsapp_number"`
	State            string       `db:"state"`
	District         string       `db:"district"`
	Pincode          string       `db:"pincode"`
	PlayerType       string       `db:"player_type"`
	BatsmanHanded    string       `db:"batsman_handed"`
	BowlerHanded     string       `db:"bowler_handed"`
	BowlerType       string       `db:"bowler_type"`
	Status           string       `db:"status"`
	RejectionReason  string       `db:"rejection_reason"`
	RegistrationDate time.Time    `db:"registration_date"`
	ApprovedAt       sql.NullTime `db:"approved_at"`
	RejectedAt       sql.NullTime `db:"rejected_at"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at"`
}

type userInsertModel struct {
	PublicID         string       `db:"public_id"`
	FullName         string       `db:"full_name"`
	Email            string       `db:"email"`
	WhatsAppNumber   string       `db:"whatsapp_number"`
	State            string       `db:"state"`
	District         string       `db:"district"`
	Pincode          string       `db:"pincode"`
	PlayerType       string       `db:"player_type"`
	BatsmanHanded    string       `db:"batsman_handed"`
	BowlerHanded     string       `db:"bowler_handed"`
	BowlerType       string       `db:"bowler_type"`
	Status           string       `db:"status"`
	RejectionReason  string       `db:"rejection_reason"`
	RegistrationDate time.Time    `db:"registration_date"`
	ApprovedAt       sql.NullTime `db:"approved_at"`
	RejectedAt       sql.NullTime `db:"rejected_at"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at"`
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:               row.PublicID,
		FullName:         row.FullName,
		Email:            row.Email,
		WhatsAppNumber:   row.WhatsAppNumber,
		State:            row.State,
		District:         row.District,
		Pincode:          row.Pincode,
		Type:             row.PlayerType,
		BatsmanHanded:    row.BatsmanHanded,
		BowlerHanded:     row.BowlerHanded,
		BowlerType:       row.BowlerType,
		Status:           row.Status,
		RejectionReason:  row.RejectionReason,
		RegistrationDate: row.RegistrationDate,
		ApprovedAt:       nullableTime(row.ApprovedAt),
		RejectedAt:       nullableTime(row.RejectedAt),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func userToInsertModel(item user.User) userInsertModel {
	return userInsertModel{
		PublicID:         item.ID,
		FullName:         item.FullName,
		Email:            item.Email,
		WhatsAppNumber:   item.WhatsAppNumber,
		State:            item.State,
		District:         item.District,
		Pincode:          item.Pincode,
		PlayerType:       item.Type,
		BatsmanHanded:    item.BatsmanHanded,
		BowlerHanded:     item.BowlerHanded,
		BowlerType:       item.BowlerType,
		Status:           item.Status,
		RejectionReason:  item.RejectionReason,
		RegistrationDate: item.RegistrationDate,
		ApprovedAt:       toNullTime(item.ApprovedAt),
		RejectedAt:       toNullTime(item.RejectedAt),
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}
