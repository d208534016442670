package models

import "time"

// Course is a teachable unit identified by its course code.
type Course struct {
	Code      string    `db:"id_matkul" json:"id_matkul"`
	Name      string    `db:"mata_kuliah" json:"mata_kuliah"`
	Credits   int       `db:"sks" json:"sks"`
	Semester  int       `db:"semester" json:"semester"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CourseSummary is the course block embedded in CPL detail responses.
type CourseSummary struct {
	Code     string `db:"id_matkul" json:"id_matkul"`
	Name     string `db:"mata_kuliah" json:"mata_kuliah"`
	Credits  int    `db:"sks" json:"sks"`
	Semester int    `db:"semester" json:"semester"`
}

// CourseOutcome is the many-to-many bridge between a CPL and a course.
type CourseOutcome struct {
	CurriculumID string `db:"id_kurikulum" json:"id_kurikulum"`
	CPLCode      string `db:"id_cpl" json:"id_cpl"`
	CourseCode   string `db:"id_matkul" json:"id_matkul"`
}

// CourseCPL is a linked outcome with its indicators, used in course detail.
type CourseCPL struct {
	CurriculumID string             `json:"id_kurikulum"`
	Code         string             `json:"id_cpl"`
	Description  string             `json:"deskripsi"`
	Indicators   []IndicatorSummary `json:"indikator"`
}

// CourseCPLSummary is a linked outcome without indicators, used in lists.
type CourseCPLSummary struct {
	CurriculumID string `db:"id_kurikulum" json:"id_kurikulum"`
	Code         string `db:"id_cpl" json:"id_cpl"`
	Description  string `db:"deskripsi" json:"deskripsi"`
}

// CourseDetail is a course with its linked outcomes and their indicators.
type CourseDetail struct {
	Course   Course      `json:"mata_kuliah"`
	Outcomes []CourseCPL `json:"cpl"`
}

// CourseListItem is a course with its linked outcome summaries.
type CourseListItem struct {
	Course
	Outcomes []CourseCPLSummary `json:"cpl"`
}
