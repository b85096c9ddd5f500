// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"mannam/entities"
)

// Open opens the sqlite database and runs the automigrations. Unlike
// OpenSQLite it reports failures to the caller; the orchestrator uses it to
// grab a fresh connection when a terminal-state write fails mid-job.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&entities.PhotoCard{},
		&entities.Session{},
		&entities.HashtagContext{},
		&entities.Review{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

func OpenSQLite(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	return db
}
