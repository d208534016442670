package models

// Indicator is a measurable sub-criterion of a CPL. The composite key is
// immutable; re-parenting replaces the row under the new key.
type Indicator struct {
	CurriculumID string `db:"id_kurikulum" json:"id_kurikulum"`
	CPLCode      string `db:"id_cpl" json:"id_cpl"`
	Code         string `db:"id_indikator" json:"id_indikator"`
	Description  string `db:"deskripsi" json:"deskripsi"`
}

// IndicatorSummary carries only the code and description.
type IndicatorSummary struct {
	Code        string `db:"id_indikator" json:"id_indikator"`
	Description string `db:"deskripsi" json:"deskripsi"`
}
