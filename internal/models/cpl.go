package models

// CPL is a learning outcome statement owned by a curriculum. Identity is
// the (curriculum, code) pair; the code follows the CPL-XX convention.
type CPL struct {
	CurriculumID string `db:"id_kurikulum" json:"id_kurikulum"`
	Code         string `db:"id_cpl" json:"id_cpl"`
	Description  string `db:"deskripsi" json:"deskripsi"`
}

// CPLSummary carries only the code and description.
type CPLSummary struct {
	Code        string `db:"id_cpl" json:"id_cpl"`
	Description string `db:"deskripsi" json:"deskripsi"`
}

// CPLDetail assembles a CPL with its parent, indicators and linked courses.
type CPLDetail struct {
	CPL        CPLSummary         `json:"cpl"`
	Curriculum *CurriculumSummary `json:"kurikulum"`
	Indicators []IndicatorSummary `json:"indikator"`
	Courses    []CourseSummary    `json:"mata_kuliah"`
}
