package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/config"
	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/controllers/authentication"
	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/controllers/course"
	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/controllers/httpCors"
	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/models/courses"
	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/models/users"
	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/repository"
	"github.com/manikadiri/ONLINE-LEARNING-PLATFORM/router"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := config.OpenDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	err = db.AutoMigrate(
		&users.User{},
		&courses.Lesson{},
		&courses.Progress{},
	)
	if err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("get database handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	lessonRepo := repository.NewLessonRepo(db)
	if err := lessonRepo.SeedIfEmpty(); err != nil {
		log.Fatalf("seed lessons: %v", err)
	}

	userRepo := repository.NewUserRepo(db, cfg.Security.BcryptCost)
	progressRepo := repository.NewProgressRepo(db)

	sessions := authentication.NewSessionManager(cfg.Session.Secret, cfg.Session.Name, cfg.Session.MaxAge)
	authHandler := authentication.NewAuthHandler(userRepo, sessions)
	courseHandler := course.NewCourseHandler(lessonRepo, progressRepo, sessions)

	engine := router.Setup(router.Config{
		Mode:     cfg.Server.Mode,
		Sessions: sessions,
		Auth:     authHandler,
		Courses:  courseHandler,
	})

	handler := httpCors.CorsSettings().Handler(engine)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
