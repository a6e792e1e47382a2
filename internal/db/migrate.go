package db

import (
	"os"

	"github.com/cafe120/cafe120-backend/internal/app/model"
	"github.com/cafe120/cafe120-backend/pkg/logger"
	"github.com/cafe120/cafe120-backend/pkg/util"
)

// 부트스트랩 관리자 계정
// 최초 기동 시 일반 가입 경로와 동일하게 해시를 거쳐 생성되며, 코드 레벨 우회 로그인은 없다
const (
	bootstrapAdminEmail  = "admin@cafe120.com"
	bootstrapAdminName   = "총괄관리자"
	defaultAdminPassword = "admin123"
	adminPasswordEnvVar  = "ADMIN_INITIAL_PASSWORD"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Plan{},
		&model.Lead{},
		&model.Ingredient{},
		&model.IngredientCategory{},
		&model.Order{},
		&model.Store{},
		&model.Resource{},
		&model.Config{},
		&model.AIHistory{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedInitialData(); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds initial data to the database (optional)
func Seed() error {
	return seedInitialData()
}

func seedInitialData() error {
	logger.Info("Seeding initial data...")

	if err := seedBootstrapAdmin(); err != nil {
		logger.Error("Failed to seed bootstrap admin", err)
		return err
	}

	if err := seedIngredientCategories(); err != nil {
		logger.Error("Failed to seed ingredient categories", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

// seedBootstrapAdmin 최초 관리자 계정 생성
// 이미 존재하면 건너뛴다 (초기 관리자는 정확히 한 번만 만들어진다)
func seedBootstrapAdmin() error {
	var count int64
	if err := DB.Model(&model.User{}).Where("email = ?", bootstrapAdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Debug("Bootstrap admin already exists, skipping...", map[string]interface{}{
			"email": bootstrapAdminEmail,
		})
		return nil
	}

	password := os.Getenv(adminPasswordEnvVar)
	if password == "" {
		password = defaultAdminPassword
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:        bootstrapAdminEmail,
		PasswordHash: hash,
		Name:         bootstrapAdminName,
		Role:         model.RoleAdmin,
		Membership:   model.MembershipPlus,
		Status:       model.StatusActive,
	}
	if err := DB.Create(admin).Error; err != nil {
		return err
	}

	if password == defaultAdminPassword {
		logger.Warn("Bootstrap admin created with the default password, change it immediately", map[string]interface{}{
			"email": bootstrapAdminEmail,
			"hint":  adminPasswordEnvVar,
		})
	} else {
		logger.Info("Bootstrap admin created", map[string]interface{}{
			"email": bootstrapAdminEmail,
		})
	}
	return nil
}

// seedIngredientCategories 기본 식자재 카테고리 생성
func seedIngredientCategories() error {
	var count int64
	if err := DB.Model(&model.IngredientCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Debug("Ingredient categories already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	categories := []model.IngredientCategory{
		{Name: "원두", SortOrder: 1},
		{Name: "베이커리", SortOrder: 2},
		{Name: "유제품", SortOrder: 3},
		{Name: "시럽/소스", SortOrder: 4},
		{Name: "포장재", SortOrder: 5},
	}

	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			logger.Error("Failed to create ingredient category", err, map[string]interface{}{
				"category": category.Name,
			})
			return err
		}
	}

	logger.Info("Ingredient categories seeded successfully", map[string]interface{}{
		"count": len(categories),
	})
	return nil
}
