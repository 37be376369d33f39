// 手动导入推荐目录脚本
//
// 从 YAML 文件批量导入学习主题与资源目录，已存在的主题（按 code 匹配）
// 只追加资源，不覆盖已有字段。适合首次部署或大批量更新目录时使用。
//
// 用法: go run scripts/import_catalog.go catalog.yaml

package main

import (
	"log"
	"os"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/model"
	"portfolio_backend/pkg/database"
	"portfolio_backend/pkg/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type catalogFile struct {
	Topics []struct {
		Code          string   `yaml:"code"`
		Name          string   `yaml:"name"`
		Description   string   `yaml:"description"`
		Difficulty    string   `yaml:"difficulty"`
		Prerequisites []string `yaml:"prerequisites"`
		Resources     []struct {
			Style       string   `yaml:"style"`
			Title       string   `yaml:"title"`
			Type        string   `yaml:"type"`
			URL         string   `yaml:"url"`
			Duration    string   `yaml:"duration"`
			Difficulty  string   `yaml:"difficulty"`
			Tags        []string `yaml:"tags"`
			Rating      float64  `yaml:"rating"`
			Reviews     int      `yaml:"reviews"`
		} `yaml:"resources"`
	} `yaml:"topics"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("用法: go run scripts/import_catalog.go <catalog.yaml>")
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}
	cfg.ApplyDefaults()

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	catalogData, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("无法读取目录文件: %v", err)
	}

	var catalog catalogFile
	if err := yaml.Unmarshal(catalogData, &catalog); err != nil {
		log.Fatalf("解析目录文件失败: %v", err)
	}

	imported := 0
	for _, t := range catalog.Topics {
		difficulty, err := model.ParseDifficulty(t.Difficulty)
		if err != nil {
			log.Fatalf("主题 %s: %v", t.Code, err)
		}

		var topic model.Topic
		err = db.Where("code = ?", t.Code).First(&topic).Error
		if err == gorm.ErrRecordNotFound {
			topic = model.Topic{
				Code:          t.Code,
				Name:          t.Name,
				Description:   t.Description,
				Difficulty:    difficulty,
				Prerequisites: t.Prerequisites,
				Enabled:       true,
			}
			if err := db.Create(&topic).Error; err != nil {
				log.Fatalf("创建主题 %s 失败: %v", t.Code, err)
			}
		} else if err != nil {
			log.Fatalf("查询主题 %s 失败: %v", t.Code, err)
		}

		for _, r := range t.Resources {
			style, err := model.ParseLearningStyle(r.Style)
			if err != nil {
				log.Fatalf("主题 %s 资源 %q: %v", t.Code, r.Title, err)
			}
			resType, err := model.ParseResourceType(r.Type)
			if err != nil {
				log.Fatalf("主题 %s 资源 %q: %v", t.Code, r.Title, err)
			}
			resDifficulty, err := model.ParseDifficulty(r.Difficulty)
			if err != nil {
				log.Fatalf("主题 %s 资源 %q: %v", t.Code, r.Title, err)
			}

			// 同名资源跳过，重复执行脚本不会产生重复数据
			var count int64
			db.Model(&model.Resource{}).Where("topic_id = ? AND title = ?", topic.ID, r.Title).Count(&count)
			if count > 0 {
				continue
			}

			resource := model.Resource{
				TopicID:     topic.ID,
				Style:       style,
				Title:       r.Title,
				Type:        resType,
				URL:         r.URL,
				Duration:    r.Duration,
				Difficulty:  resDifficulty,
				Tags:        r.Tags,
				Rating:      r.Rating,
				ReviewCount: r.Reviews,
			}
			if err := db.Create(&resource).Error; err != nil {
				log.Fatalf("创建资源 %q 失败: %v", r.Title, err)
			}
			imported++
		}
	}

	log.Printf("导入完成，共写入 %d 条资源", imported)
}
