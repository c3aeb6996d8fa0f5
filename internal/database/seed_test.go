package database

import (
	"fmt"
	"testing"
	"time"

	"wagenmarkt_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openSeedTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:seed_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return db
}

func TestSeedCatalogIdempotent(t *testing.T) {
	db := openSeedTestDB(t)

	require.NoError(t, SeedCatalog(db))

	var brandCount, modelCount int64
	require.NoError(t, db.Model(&models.Brand{}).Count(&brandCount).Error)
	require.NoError(t, db.Model(&models.CarModel{}).Count(&modelCount).Error)
	assert.Equal(t, int64(len(seedBrands)), brandCount)
	assert.Greater(t, modelCount, int64(0))

	// A second run must not duplicate any row.
	require.NoError(t, SeedCatalog(db))

	var brandCount2, modelCount2 int64
	require.NoError(t, db.Model(&models.Brand{}).Count(&brandCount2).Error)
	require.NoError(t, db.Model(&models.CarModel{}).Count(&modelCount2).Error)
	assert.Equal(t, brandCount, brandCount2)
	assert.Equal(t, modelCount, modelCount2)
}

func TestSeedCatalogModelsScoped(t *testing.T) {
	db := openSeedTestDB(t)
	require.NoError(t, SeedCatalog(db))

	var vw models.Brand
	require.NoError(t, db.Where("name = ?", "Volkswagen").First(&vw).Error)

	var vwModels []models.CarModel
	require.NoError(t, db.Where("brand_id = ?", vw.ID).Find(&vwModels).Error)
	assert.Len(t, vwModels, len(seedBrands["Volkswagen"]))
}
