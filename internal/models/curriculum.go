package models

import "time"

// CurriculumStatus enumerates the lifecycle states of a curriculum.
type CurriculumStatus string

const (
	CurriculumActive   CurriculumStatus = "aktif"
	CurriculumInactive CurriculumStatus = "nonaktif"
)

// Valid reports whether the status is one of the two permitted values.
func (s CurriculumStatus) Valid() bool {
	return s == CurriculumActive || s == CurriculumInactive
}

// Curriculum is the root of the outcome hierarchy. The surrogate UUID is
// generated on create; the name is unique across all curricula.
type Curriculum struct {
	ID        string           `db:"id_kurikulum" json:"id_kurikulum"`
	Name      string           `db:"nama_kurikulum" json:"nama_kurikulum"`
	Revision  string           `db:"revisi" json:"revisi"`
	Status    CurriculumStatus `db:"status_kurikulum" json:"status_kurikulum"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt time.Time        `db:"updated_at" json:"updated_at"`
}

// CurriculumSummary is the parent block embedded in CPL detail responses.
type CurriculumSummary struct {
	ID       string `db:"id_kurikulum" json:"id_kurikulum"`
	Name     string `db:"nama_kurikulum" json:"nama_kurikulum"`
	Revision string `db:"revisi" json:"revisi"`
}

// CurriculumDetail is a curriculum with its outcome list.
type CurriculumDetail struct {
	Curriculum
	Outcomes []CPLSummary `json:"cpl"`
}
