package main

import (
	"github.com/martshop-next/internal/config"
	"github.com/martshop-next/internal/logger"
	"github.com/martshop-next/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加演示商品
	products := []models.Product{
		{
			Title:       "无线蓝牙耳机",
			Description: "主动降噪，续航 30 小时",
			PriceCents:  19900,
			ImageURL:    "https://example.com/images/earbuds.jpg",
		},
		{
			Title:       "机械键盘",
			Description: "87 键热插拔，红轴",
			PriceCents:  34900,
			ImageURL:    "https://example.com/images/keyboard.jpg",
		},
		{
			Title:       "便携保温杯",
			Description: "500ml 不锈钢真空保温",
			PriceCents:  8900,
			ImageURL:    "https://example.com/images/bottle.jpg",
		},
	}

	for _, p := range products {
		var existing models.Product
		if err := models.DB.Where("title = ?", p.Title).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&p).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", p.Title, err)
			} else {
				stdLog.Printf("Created product: %s", p.Title)
			}
		} else {
			stdLog.Printf("Product already exists: %s", p.Title)
		}
	}

	stdLog.Printf("Seed finished")
}
