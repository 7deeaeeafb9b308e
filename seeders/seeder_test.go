package seeders

import (
	"context"
	"path/filepath"
	"testing"

	"restaurant-api/models"
	"restaurant-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSeed_IsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	require.NoError(t, Seed(db, nil))
	require.NoError(t, Seed(db, nil))

	counts := map[string]int64{}
	for name, model := range map[string]interface{}{
		"packages": &models.MealPackage{},
		"items":    &models.MealItem{},
		"sizes":    &models.MealItemSize{},
		"addons":   &models.Addon{},
		"settings": &models.SystemSetting{},
	} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		counts[name] = n
	}
	assert.Equal(t, map[string]int64{"packages": 4, "items": 5, "sizes": 2, "addons": 3, "settings": 2}, counts)

	var links int64
	require.NoError(t, db.Table("rs_meal_item_addons").Count(&links).Error)
	assert.Equal(t, int64(4), links)

	snap, err := services.LoadFiscalSnapshot(context.Background(), services.NewSettingsFiscal(db), "W1")
	require.NoError(t, err)
	assert.Equal(t, "2026", snap.Period)
}
