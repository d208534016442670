package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/curriculum-api/pkg/config"
	"github.com/noah-isme/curriculum-api/pkg/database"
)

type cplSeed struct {
	curriculum  int
	code        string
	description string
}

type indicatorSeed struct {
	cpl         int
	code        string
	description string
}

type courseSeed struct {
	code     string
	name     string
	credits  int
	semester int
}

type linkSeed struct {
	cpl    int
	course string
}

type userSeed struct {
	id       string
	name     string
	password string
	role     string
}

var curriculumSeeds = []struct {
	name     string
	revision string
	status   string
}{
	{"Kurikulum Teknik Informatika 2020", "Rev. 1", "aktif"},
	{"Kurikulum Sistem Informasi 2020", "Rev. 2", "aktif"},
	{"Kurikulum Teknik Informatika 2016", "Rev. 3", "nonaktif"},
}

var cplSeeds = []cplSeed{
	{0, "CPL-01", "Mampu menerapkan pemikiran logis, kritis, sistematis, dan inovatif dalam konteks pengembangan atau implementasi ilmu pengetahuan dan teknologi"},
	{0, "CPL-02", "Mampu menunjukkan kinerja mandiri, bermutu, dan terukur dalam pengembangan sistem informasi"},
	{0, "CPL-03", "Mampu mengkaji implikasi pengembangan atau implementasi ilmu pengetahuan teknologi informasi"},
	{1, "CPL-04", "Mampu mengambil keputusan secara tepat dalam konteks penyelesaian masalah di bidang teknologi informasi"},
	{1, "CPL-05", "Mampu memelihara dan mengembangkan jaringan kerja dengan pembimbing, kolega, sejawat"},
}

var indicatorSeeds = []indicatorSeed{
	{0, "IND-01-01", "Mampu mengidentifikasi masalah komputasi dengan pendekatan logis dan sistematis"},
	{0, "IND-01-02", "Mampu merancang solusi inovatif untuk permasalahan komputasi"},
	{0, "IND-01-03", "Mampu mengimplementasikan algoritma dengan efisien"},
	{1, "IND-02-01", "Mampu bekerja secara mandiri dalam pengembangan sistem"},
	{1, "IND-02-02", "Mampu menghasilkan dokumentasi teknis yang berkualitas"},
	{2, "IND-03-01", "Mampu menganalisis dampak teknologi terhadap masyarakat"},
	{3, "IND-04-01", "Mampu mengambil keputusan berdasarkan analisis data yang tepat"},
	{4, "IND-05-01", "Mampu berkomunikasi efektif dalam tim multidisiplin"},
}

var courseSeeds = []courseSeed{
	{"MK-001", "Algoritma dan Pemrograman", 3, 1},
	{"MK-002", "Struktur Data", 3, 2},
	{"MK-003", "Basis Data", 3, 3},
	{"MK-004", "Pemrograman Web", 3, 3},
	{"MK-005", "Sistem Operasi", 3, 4},
	{"MK-006", "Jaringan Komputer", 3, 4},
	{"MK-007", "Rekayasa Perangkat Lunak", 3, 5},
	{"MK-008", "Kecerdasan Buatan", 3, 6},
	{"MK-009", "Machine Learning", 3, 7},
	{"MK-010", "Keamanan Informasi", 3, 6},
}

var linkSeeds = []linkSeed{
	{0, "MK-001"}, {0, "MK-002"}, {0, "MK-008"},
	{1, "MK-007"}, {1, "MK-003"}, {1, "MK-004"},
	{2, "MK-008"}, {2, "MK-009"}, {2, "MK-010"},
	{3, "MK-003"}, {3, "MK-009"},
	{4, "MK-007"}, {4, "MK-006"},
}

var userSeeds = []userSeed{
	{"kadep01", "Kepala Departemen", "kadep12345", "kadep"},
	{"dosen01", "Dosen Pengampu", "dosen12345", "dosen"},
}

func main() {
	reset := flag.Bool("reset", false, "delete existing rows before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer db.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if *reset {
		if err := clear(ctx, db); err != nil {
			log.Fatalf("failed to clear data: %v", err)
		}
		log.Println("existing data cleared")
	}

	if err := seed(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("database seeding completed")
}

// clear removes rows child-first so the foreign keys never complain.
func clear(ctx context.Context, db *sqlx.DB) error {
	tables := []string{"cpl_matkul", "indikator_cpl", "mata_kuliah", "cpl", "kurikulum", "token_blacklist", "users"}
	for _, table := range tables {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

func seed(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	curriculumIDs := make([]string, len(curriculumSeeds))
	for i, k := range curriculumSeeds {
		curriculumIDs[i] = uuid.NewString()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO kurikulum (id_kurikulum, nama_kurikulum, revisi, status_kurikulum, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, NOW(), NOW())`,
			curriculumIDs[i], k.name, k.revision, k.status); err != nil {
			return err
		}
	}
	log.Printf("seeded %d kurikulum", len(curriculumSeeds))

	for _, c := range cplSeeds {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cpl (id_kurikulum, id_cpl, deskripsi) VALUES ($1, $2, $3)`,
			curriculumIDs[c.curriculum], c.code, c.description); err != nil {
			return err
		}
	}
	log.Printf("seeded %d cpl", len(cplSeeds))

	for _, ind := range indicatorSeeds {
		parent := cplSeeds[ind.cpl]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO indikator_cpl (id_kurikulum, id_cpl, id_indikator, deskripsi) VALUES ($1, $2, $3, $4)`,
			curriculumIDs[parent.curriculum], parent.code, ind.code, ind.description); err != nil {
			return err
		}
	}
	log.Printf("seeded %d indikator", len(indicatorSeeds))

	for _, m := range courseSeeds {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO mata_kuliah (id_matkul, mata_kuliah, sks, semester, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, NOW(), NOW())`,
			m.code, m.name, m.credits, m.semester); err != nil {
			return err
		}
	}
	log.Printf("seeded %d mata kuliah", len(courseSeeds))

	for _, l := range linkSeeds {
		parent := cplSeeds[l.cpl]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cpl_matkul (id_kurikulum, id_cpl, id_matkul) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			curriculumIDs[parent.curriculum], parent.code, l.course); err != nil {
			return err
		}
	}
	log.Printf("seeded %d cpl-matkul relations", len(linkSeeds))

	for _, u := range userSeeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (user_id, nama, password_hash, role, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, NOW(), NOW()) ON CONFLICT (user_id) DO NOTHING`,
			u.id, u.name, string(hash), u.role); err != nil {
			return err
		}
	}
	log.Printf("seeded %d users", len(userSeeds))

	return tx.Commit()
}
