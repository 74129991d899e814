package seed

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pxtown_backend/internal/model"
)

// SeedAdmin creates the default admin account if none exists.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	db.Model(&model.Admin{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := model.Admin{
		Email:    email,
		Password: string(hashed),
		Name:     "관리자",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin account: %v", err)
		return
	}

	log.Println("Admin account seeded successfully!")
}

// SeedAgencyProfile makes sure the singleton agency profile row exists.
func SeedAgencyProfile(db *gorm.DB) {
	profile := model.AgencyProfile{
		AgencyName:     "평택타운 공인중개사사무소",
		AgentName:      "대표 공인중개사",
		RegistrationNo: "41220-0000-00000",
		Address:        "경기도 평택시",
		Phone:          "031-000-0000",
	}

	var count int64
	db.Model(&model.AgencyProfile{}).Count(&count)
	if count > 0 {
		return
	}

	if err := db.Create(&profile).Error; err != nil {
		log.Printf("Error seeding agency profile: %v", err)
	}
}

// SeedBlogPosts adds a welcome post on an empty blog so the public page
// is never blank on a fresh install.
func SeedBlogPosts(db *gorm.DB) {
	var count int64
	db.Model(&model.BlogPost{}).Count(&count)
	if count > 0 {
		return
	}

	post := model.BlogPost{
		Title:   "공장·창고·토지 매물 상담 안내",
		Content: "평택, 화성, 안성 일대의 공장, 창고, 토지 매물을 전문으로 중개합니다. 매물 목록에서 조건에 맞는 물건을 찾아보시고, 상담 신청을 남겨주시면 연락드리겠습니다.",
	}
	if err := db.Create(&post).Error; err != nil {
		log.Printf("Error seeding blog post: %v", err)
		return
	}

	log.Println("Blog posts seeded successfully!")
}
