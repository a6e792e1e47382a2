package db

import (
	"testing"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSeedTest(t *testing.T) {
	t.Helper()

	testDB, err := SetupTestDB()
	require.NoError(t, err)

	prev := DB
	DB = testDB
	t.Cleanup(func() {
		DB = prev
		CleanupTestDB(testDB)
	})
}

func TestSeedInitialData_BootstrapAdminCreatedOnce(t *testing.T) {
	setupSeedTest(t)

	require.NoError(t, seedInitialData())
	// 재기동 시나리오: 다시 실행해도 중복 생성이 없어야 한다
	require.NoError(t, seedInitialData())

	var admins []model.User
	require.NoError(t, DB.Where("email = ?", bootstrapAdminEmail).Find(&admins).Error)
	require.Len(t, admins, 1)

	admin := admins[0]
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.Equal(t, model.StatusActive, admin.Status)
	assert.NotEqual(t, defaultAdminPassword, admin.PasswordHash)
	assert.True(t, util.VerifyPassword(admin.PasswordHash, defaultAdminPassword))
}

func TestSeedInitialData_AdminPasswordFromEnv(t *testing.T) {
	setupSeedTest(t)
	t.Setenv(adminPasswordEnvVar, "chang3-me-now")

	require.NoError(t, seedInitialData())

	var admin model.User
	require.NoError(t, DB.Where("email = ?", bootstrapAdminEmail).First(&admin).Error)
	assert.True(t, util.VerifyPassword(admin.PasswordHash, "chang3-me-now"))
	assert.False(t, util.VerifyPassword(admin.PasswordHash, defaultAdminPassword))
}

func TestSeedInitialData_DefaultCategories(t *testing.T) {
	setupSeedTest(t)

	require.NoError(t, seedInitialData())
	require.NoError(t, seedInitialData())

	var categories []model.IngredientCategory
	require.NoError(t, DB.Order("sort_order ASC").Find(&categories).Error)
	require.Len(t, categories, 5)
	assert.Equal(t, "원두", categories[0].Name)
	assert.Equal(t, "포장재", categories[4].Name)
}
