package domain

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Age       *int      `gorm:"type:smallint" json:"age,omitempty"`
	Gender    *string   `gorm:"type:varchar(32)" json:"gender,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// Profile returns the demographic attributes used for feature extraction.
func (p *Patient) Profile() UserProfile {
	return UserProfile{Age: p.Age, Gender: p.Gender}
}

// CreatePatientRequest is the request body for creating a patient
type CreatePatientRequest struct {
	Age    *int    `json:"age,omitempty" validate:"omitempty,min=0,max=130" example:"42"`
	Gender *string `json:"gender,omitempty" validate:"omitempty,max=32" example:"female"`
}

// PatientResponse is the response body for patient endpoints
type PatientResponse struct {
	ID        uuid.UUID `json:"id"`
	Age       *int      `json:"age,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Patient) ToResponse() PatientResponse {
	return PatientResponse{
		ID:        p.ID,
		Age:       p.Age,
		Gender:    p.Gender,
		CreatedAt: p.CreatedAt,
	}
}
