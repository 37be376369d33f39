package database

import (
	"fmt"
	"log"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbc := &cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbc.User,
		dbc.Password,
		dbc.Host,
		dbc.Port,
		dbc.DBName,
		dbc.Charset,
		dbc.ParseTime,
	)

	logMode := logger.Info
	if cfg.Server.Mode == "release" {
		logMode = logger.Warn
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式默认跳过迁移，用 -migrate 强制执行
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
		seedDefaults(db)
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Portfolio{},
		&model.LearningItem{},
		&model.MediaRef{},
		&model.Feedback{},
		&model.Skill{},
		&model.Milestone{},
		&model.StyleProfile{},
		&model.QuizQuestion{},
		&model.Topic{},
		&model.Resource{},
	)
}

// seedDefaults 题库和推荐目录为空时写入默认数据
func seedDefaults(db *gorm.DB) {
	var qCount int64
	db.Model(&model.QuizQuestion{}).Count(&qCount)
	if qCount == 0 {
		defaultQuestions := []model.QuizQuestion{
			{
				Text: "當學習新知識時，你更喜歡：", Sort: 1, Enabled: true,
				Options: []model.QuizOption{
					{Style: model.StyleVisual, Text: "觀看相關的圖片或影片"},
					{Style: model.StyleAuditory, Text: "聆聽講解或討論"},
					{Style: model.StyleKinesthetic, Text: "實際動手操作或體驗"},
				},
			},
			{
				Text: "在記憶資訊時，你通常會：", Sort: 2, Enabled: true,
				Options: []model.QuizOption{
					{Style: model.StyleVisual, Text: "將資訊視覺化或畫成圖表"},
					{Style: model.StyleAuditory, Text: "重複朗讀或錄音"},
					{Style: model.StyleKinesthetic, Text: "邊走動邊思考或做筆記"},
				},
			},
			{
				Text: "當遇到問題時，你傾向：", Sort: 3, Enabled: true,
				Options: []model.QuizOption{
					{Style: model.StyleVisual, Text: "畫圖或寫下來分析"},
					{Style: model.StyleAuditory, Text: "與他人討論解決方案"},
					{Style: model.StyleKinesthetic, Text: "直接嘗試不同方法"},
				},
			},
		}
		for i := range defaultQuestions {
			db.Create(&defaultQuestions[i])
		}
	}

	var tCount int64
	db.Model(&model.Topic{}).Count(&tCount)
	if tCount == 0 {
		topic := &model.Topic{
			Code:          "web-dev",
			Name:          "Web 開發",
			Description:   "學習前端和後端開發技術",
			Difficulty:    model.Beginner,
			Prerequisites: []string{"HTML基礎", "JavaScript基礎"},
			Enabled:       true,
		}
		if err := db.Create(topic).Error; err != nil {
			return
		}

		defaultResources := []model.Resource{
			{TopicID: topic.ID, Style: model.StyleVisual, Title: "Web開發視覺化教程", Type: model.ResVideo,
				URL: "https://example.com/web-dev-visual", Duration: "2小時", Difficulty: model.Beginner,
				Tags: []string{"HTML", "CSS", "JavaScript"}, Rating: 4.8, ReviewCount: 1200},
			{TopicID: topic.ID, Style: model.StyleVisual, Title: "互動式CSS學習平台", Type: model.ResCourse,
				URL: "https://example.com/interactive-css", Duration: "4週", Difficulty: model.Beginner,
				Tags: []string{"CSS", "動畫"}, Rating: 4.7, ReviewCount: 800},
			{TopicID: topic.ID, Style: model.StyleAuditory, Title: "Web開發播客系列", Type: model.ResCourse,
				URL: "https://example.com/web-dev-podcast", Duration: "10集", Difficulty: model.Beginner,
				Tags: []string{"概念講解", "經驗分享"}, Rating: 4.6, ReviewCount: 500},
			{TopicID: topic.ID, Style: model.StyleAuditory, Title: "線上講座：現代Web開發", Type: model.ResWorkshop,
				URL: "https://example.com/web-dev-workshop", Duration: "3小時", Difficulty: model.Intermediate,
				Tags: []string{"實時互動", "Q&A"}, Rating: 4.9, ReviewCount: 300},
			{TopicID: topic.ID, Style: model.StyleKinesthetic, Title: "實戰項目：個人網站開發", Type: model.ResProject,
				URL: "https://example.com/personal-website-project", Duration: "2週", Difficulty: model.Beginner,
				Tags: []string{"實戰", "項目開發"}, Rating: 4.8, ReviewCount: 600},
			{TopicID: topic.ID, Style: model.StyleKinesthetic, Title: "互動式編程練習", Type: model.ResCourse,
				URL: "https://example.com/coding-exercises", Duration: "自定進度", Difficulty: model.Beginner,
				Tags: []string{"練習", "即時反饋"}, Rating: 4.7, ReviewCount: 900},
		}
		for i := range defaultResources {
			db.Create(&defaultResources[i])
		}
	}
}
