package service

import (
	"testing"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/internal/app/repository"
	"github.com/cafe120/cafe120-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupConfigServiceTest(t *testing.T) (ConfigService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewConfigService(repository.NewConfigRepository(testDB)), testDB
}

func TestConfigService_SetAndGet(t *testing.T) {
	configService, _ := setupConfigServiceTest(t)

	require.NoError(t, configService.Set(model.ConfigKeyAIProvider, "openai"))
	assert.Equal(t, "openai", configService.Get(model.ConfigKeyAIProvider))

	value, ok := configService.Lookup(model.ConfigKeyAIProvider)
	assert.True(t, ok)
	assert.Equal(t, "openai", value)

	_, ok = configService.Lookup("없는 키")
	assert.False(t, ok)

	assert.ErrorIs(t, configService.Set("", "value"), ErrConfigKeyRequired)
}

func TestConfigService_SetOverwrites(t *testing.T) {
	configService, testDB := setupConfigServiceTest(t)

	require.NoError(t, configService.Set(model.ConfigKeyAIProvider, "google"))
	require.NoError(t, configService.Set(model.ConfigKeyAIProvider, "openai"))

	assert.Equal(t, "openai", configService.Get(model.ConfigKeyAIProvider))

	// upsert이므로 행은 하나만 남는다
	var count int64
	require.NoError(t, testDB.Model(&model.Config{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestConfigService_LoadsExistingRowsOnStartup(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	require.NoError(t, testDB.Create(&model.Config{
		Key: model.ConfigKeyGeminiAPIKey, Value: "seeded-key",
	}).Error)

	configService := NewConfigService(repository.NewConfigRepository(testDB))
	assert.Equal(t, "seeded-key", configService.Get(model.ConfigKeyGeminiAPIKey))
}

func TestConfigService_RefreshPicksUpExternalChange(t *testing.T) {
	configService, testDB := setupConfigServiceTest(t)

	require.NoError(t, configService.Set(model.ConfigKeyAIProvider, "google"))

	// 다른 인스턴스가 DB를 직접 바꾼 상황
	require.NoError(t, testDB.Model(&model.Config{}).
		Where("key = ?", model.ConfigKeyAIProvider).
		Update("value", "openai").Error)

	// 캐시는 아직 예전 값
	assert.Equal(t, "google", configService.Get(model.ConfigKeyAIProvider))

	require.NoError(t, configService.Refresh())
	assert.Equal(t, "openai", configService.Get(model.ConfigKeyAIProvider))
}

func TestConfigService_RefreshDropsDeletedKeys(t *testing.T) {
	configService, testDB := setupConfigServiceTest(t)

	require.NoError(t, configService.Set("temp_key", "value"))
	require.NoError(t, testDB.Where("key = ?", "temp_key").Delete(&model.Config{}).Error)

	require.NoError(t, configService.Refresh())
	_, ok := configService.Lookup("temp_key")
	assert.False(t, ok)
}

func TestConfigService_List(t *testing.T) {
	configService, _ := setupConfigServiceTest(t)

	require.NoError(t, configService.Set("b_key", "2"))
	require.NoError(t, configService.Set("a_key", "1"))

	configs, err := configService.List()
	require.NoError(t, err)
	require.Len(t, configs, 2)
	// 키 오름차순
	assert.Equal(t, "a_key", configs[0].Key)
	assert.Equal(t, "b_key", configs[1].Key)
}
