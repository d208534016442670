package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/curriculum-api/internal/middleware"
	"github.com/noah-isme/curriculum-api/internal/models"
	"github.com/noah-isme/curriculum-api/internal/service"
)

type fakeCurriculumRepo struct {
	items map[string]*models.Curriculum
}

func newFakeCurriculumRepo() *fakeCurriculumRepo {
	return &fakeCurriculumRepo{items: map[string]*models.Curriculum{}}
}

func (r *fakeCurriculumRepo) List(_ context.Context) ([]models.Curriculum, error) {
	out := make([]models.Curriculum, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *fakeCurriculumRepo) FindByID(_ context.Context, id string) (*models.Curriculum, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *item
	return &clone, nil
}

func (r *fakeCurriculumRepo) ExistsByName(_ context.Context, name string, excludeID string) (bool, error) {
	for id, item := range r.items {
		if item.Name == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCurriculumRepo) Create(_ context.Context, item *models.Curriculum) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeCurriculumRepo) Update(_ context.Context, item *models.Curriculum) error {
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeCurriculumRepo) DeleteCascade(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCurriculumRepo) ListCPL(_ context.Context, _ string) ([]models.CPLSummary, error) {
	return nil, nil
}

// testAuth replaces the JWT middleware: the X-Test-Role header stands in for
// a validated bearer token.
func testAuth(c *gin.Context) {
	if role := c.GetHeader("X-Test-Role"); role != "" {
		c.Set(middleware.ContextUserKey, &models.User{ID: "tester", Role: models.UserRole(role)})
	}
	c.Next()
}

func newCurriculumTestRouter(t *testing.T) (*gin.Engine, *fakeCurriculumRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newFakeCurriculumRepo()
	h := NewCurriculumHandler(service.NewCurriculumService(repo, nil, nil), nil)

	r := gin.New()
	write := middleware.RequireRoles(models.RoleDepartmentHead)
	read := middleware.RequireRoles(models.RoleDepartmentHead, models.RoleLecturer)

	r.POST("/kurikulum", testAuth, write, h.Create)
	r.GET("/kurikulum", testAuth, read, h.List)
	r.GET("/kurikulum/:id_kurikulum", testAuth, read, h.Get)
	r.DELETE("/kurikulum/:id_kurikulum", testAuth, write, h.Delete)
	return r, repo
}

func postCurriculum(r *gin.Engine, role, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/kurikulum", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCurriculumCreateRoleMatrix(t *testing.T) {
	r, repo := newCurriculumTestRouter(t)
	body := `{"nama_kurikulum":"Kurikulum 2024","revisi":"Rev. 1","status_kurikulum":"aktif"}`

	w := postCurriculum(r, "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postCurriculum(r, "dosen", body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, repo.items, "forbidden request must not create anything")

	w = postCurriculum(r, "kadep", body)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.items, 1)
}

func TestCurriculumCreateValidationAndConflict(t *testing.T) {
	r, _ := newCurriculumTestRouter(t)

	w := postCurriculum(r, "kadep", `{"revisi":"Rev. 1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := `{"nama_kurikulum":"Kurikulum 2024","status_kurikulum":"aktif"}`
	w = postCurriculum(r, "kadep", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postCurriculum(r, "kadep", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}

func TestCurriculumGetAndDeleteFlow(t *testing.T) {
	r, repo := newCurriculumTestRouter(t)

	w := postCurriculum(r, "kadep", `{"nama_kurikulum":"Kurikulum 2024","status_kurikulum":"aktif"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Curriculum `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/kurikulum/"+created.Data.ID, nil)
	req.Header.Set("X-Test-Role", "dosen")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "lecturers can read")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/kurikulum/"+created.Data.ID, nil)
	req.Header.Set("X-Test-Role", "dosen")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "lecturers cannot delete")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/kurikulum/"+created.Data.ID, nil)
	req.Header.Set("X-Test-Role", "kadep")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, repo.items)
}
