package pkgControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
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
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Package{}, &models.PackageClass{}))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/packages", CreatePackage(db))
	r.PUT("/packages/:id", UpdatePackage(db))
	r.DELETE("/packages/:id", DeletePackage(db))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func seedPackage(t *testing.T, db *gorm.DB, classNames ...string) models.Package {
	t.Helper()
	category := models.Category{Name: "Hampers", Slug: "hampers"}
	require.NoError(t, db.Create(&category).Error)

	pkg := models.Package{
		CategoryID: category.ID,
		Name:       "Deluxe Hamper",
		HasClasses: len(classNames) > 0,
	}
	for i, name := range classNames {
		pkg.Classes = append(pkg.Classes, models.PackageClass{Name: name, Price: float64(100 * (i + 1)), SortOrder: i})
	}
	require.NoError(t, db.Create(&pkg).Error)
	return pkg
}

func TestUpdateReplacesClassListWithShorterOne(t *testing.T) {
	db := newTestDB(t)
	pkg := seedPackage(t, db, "Bronze", "Silver", "Gold")
	r := newRouter(db)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/packages/%d", pkg.ID), map[string]any{
		"classes": []map[string]any{
			{"name": "Premium", "price": 900},
			{"name": "Standard", "price": 400},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var classes []models.PackageClass
	require.NoError(t, db.Where("package_id = ?", pkg.ID).Order("sort_order ASC").Find(&classes).Error)

	// Final count and order exactly match the new list.
	require.Len(t, classes, 2)
	assert.Equal(t, "Premium", classes[0].Name)
	assert.Equal(t, 0, classes[0].SortOrder)
	assert.Equal(t, "Standard", classes[1].Name)
	assert.Equal(t, 1, classes[1].SortOrder)
}

func TestUpdateWithEmptyClassListDeletesAll(t *testing.T) {
	db := newTestDB(t)
	pkg := seedPackage(t, db, "Bronze", "Silver")
	r := newRouter(db)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/packages/%d", pkg.ID), map[string]any{
		"classes": []map[string]any{},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.PackageClass{}).Where("package_id = ?", pkg.ID).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateWithoutClassesLeavesThemUntouched(t *testing.T) {
	db := newTestDB(t)
	pkg := seedPackage(t, db, "Bronze", "Silver")
	r := newRouter(db)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/packages/%d", pkg.ID), map[string]any{
		"name":   "Renamed Hamper",
		"hidden": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Package
	require.NoError(t, db.Preload("Classes").First(&got, pkg.ID).Error)
	assert.Equal(t, "Renamed Hamper", got.Name)
	assert.True(t, got.Hidden)
	assert.Len(t, got.Classes, 2, "omitting classes must not clear them")
}

func TestCreateAssignsSortOrderFromArrayPosition(t *testing.T) {
	db := newTestDB(t)
	category := models.Category{Name: "Hampers", Slug: "hampers"}
	require.NoError(t, db.Create(&category).Error)
	r := newRouter(db)

	w := doJSON(t, r, http.MethodPost, "/packages", map[string]any{
		"category_id":    category.ID,
		"name":           "Birthday Box",
		"has_classes":    true,
		"starting_price": 150,
		"classes": []map[string]any{
			{"name": "Mini", "price": 150},
			{"name": "Midi", "price": 300},
			{"name": "Maxi", "price": 600},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var classes []models.PackageClass
	require.NoError(t, db.Order("sort_order ASC").Find(&classes).Error)
	require.Len(t, classes, 3)
	for i, name := range []string{"Mini", "Midi", "Maxi"} {
		assert.Equal(t, name, classes[i].Name)
		assert.Equal(t, i, classes[i].SortOrder)
	}
}

func TestDeletePackageRemovesClasses(t *testing.T) {
	db := newTestDB(t)
	pkg := seedPackage(t, db, "Bronze")
	r := newRouter(db)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/packages/%d", pkg.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.PackageClass{}).Count(&count)
	assert.Zero(t, count)
}

func TestFetchAllOrdersByCreationTime(t *testing.T) {
	db := newTestDB(t)
	category := models.Category{Name: "Hampers", Slug: "hampers"}
	require.NoError(t, db.Create(&category).Error)
	for _, name := range []string{"First", "Second", "Third"} {
		require.NoError(t, db.Create(&models.Package{CategoryID: category.ID, Name: name}).Error)
	}

	packages, err := fetchAll(db)
	require.NoError(t, err)
	require.Len(t, packages, 3)
	assert.Equal(t, "First", packages[0].Name)
	assert.Equal(t, "Third", packages[2].Name)
}
