package main

import (
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/vilasclinic/frontdesk/internal/config"
	dbpkg "github.com/vilasclinic/frontdesk/internal/db"
	"github.com/vilasclinic/frontdesk/internal/domain/queue"
	"github.com/vilasclinic/frontdesk/internal/models"
)

// Seeds demo doctors and a small walk-in queue for local development.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	gofakeit.Seed(time.Now().UnixNano())

	specializations := []string{
		"Dermatology",
		"Cardiology",
		"General Practice",
		"Orthopedics",
		"Pediatrics",
		"Neurology",
		"ENT",
	}

	for i := 0; i < 8; i++ {
		doc := models.Doctor{
			Name:           "Dr. " + gofakeit.Name(),
			Specialization: gofakeit.RandomString(specializations),
			Gender:         gofakeit.Gender(),
			Location:       gofakeit.City(),
			Timezone:       "UTC",
			WorkingHours:   weekdayHours(),
		}
		if err := db.Create(&doc).Error; err != nil {
			log.Fatalf("seed doctor: %v", err)
		}
	}

	for i := 0; i < 5; i++ {
		priority := queue.PriorityNormal
		if gofakeit.Bool() {
			priority = queue.PriorityHigh
		}
		entry := models.QueueEntry{
			PatientName: gofakeit.Name(),
			Priority:    priority,
			Status:      queue.StatusWaiting,
			ArrivalTime: time.Now().UTC().Add(-time.Duration(5-i) * time.Minute),
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Fatalf("seed queue entry: %v", err)
		}
	}

	var entries []models.QueueEntry
	if err := db.Find(&entries).Error; err != nil {
		log.Fatalf("load queue: %v", err)
	}
	for _, e := range queue.Reorder(entries) {
		if err := db.Model(&models.QueueEntry{}).
			Where("id = ?", e.ID).
			Update("queue_number", e.QueueNumber).Error; err != nil {
			log.Fatalf("renumber queue: %v", err)
		}
	}

	log.Println("seed complete")
}

// Monday to Friday, 09:00-17:00.
func weekdayHours() []models.WorkingHours {
	var rows []models.WorkingHours
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		active := wd != time.Sunday && wd != time.Saturday
		row := models.WorkingHours{
			Weekday: int(wd),
			Active:  active,
		}
		if active {
			row.StartTime = "09:00"
			row.EndTime = "17:00"
		}
		rows = append(rows, row)
	}
	return rows
}
