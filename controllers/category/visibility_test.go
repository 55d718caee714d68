package categorycontroller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.CategorySetting{}, &models.Package{}, &models.PackageClass{}))
	return db
}

func TestComingSoonFallback(t *testing.T) {
	db := newTestDB(t)

	// No settings rows at all: the two launch slugs read coming-soon,
	// everything else reads live.
	flag, err := ResolveComingSoon(db, "seasonal")
	require.NoError(t, err)
	assert.True(t, flag)

	flag, err = ResolveComingSoon(db, "haihuwa")
	require.NoError(t, err)
	assert.True(t, flag)

	flag, err = ResolveComingSoon(db, "weddings")
	require.NoError(t, err)
	assert.False(t, flag)
}

func TestExplicitVisibilityRowWinsOverFallback(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.CategorySetting{Slug: "seasonal", ComingSoon: false}).Error)
	require.NoError(t, db.Create(&models.CategorySetting{Slug: "weddings", ComingSoon: true}).Error)

	flag, err := ResolveComingSoon(db, "seasonal")
	require.NoError(t, err)
	assert.False(t, flag, "explicit row must override the slug fallback")

	flag, err = ResolveComingSoon(db, "weddings")
	require.NoError(t, err)
	assert.True(t, flag)
}

func TestSetVisibilityUpserts(t *testing.T) {
	db := newTestDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/categories/:slug/visibility", SetVisibility(db))

	put := func(comingSoon bool) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]any{"coming_soon": comingSoon})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/categories/haihuwa/visibility", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, put(false).Code)
	flag, err := ResolveComingSoon(db, "haihuwa")
	require.NoError(t, err)
	assert.False(t, flag)

	// Second write updates the same row instead of erroring on the key.
	assert.Equal(t, http.StatusOK, put(true).Code)
	flag, err = ResolveComingSoon(db, "haihuwa")
	require.NoError(t, err)
	assert.True(t, flag)

	var count int64
	db.Model(&models.CategorySetting{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCategoryListAnnotatesVisibility(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Category{Name: "Seasonal Gifts", Slug: "seasonal"}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "Weddings", Slug: "weddings"}).Error)

	views, err := fetchAll(db)
	require.NoError(t, err)
	require.Len(t, views, 2)

	bySlug := map[string]bool{}
	for _, v := range views {
		bySlug[v.Slug] = v.ComingSoon
	}
	assert.True(t, bySlug["seasonal"])
	assert.False(t, bySlug["weddings"])
}
