// Command generate_demo creates a demo database with sample tenants,
// properties, buyers, and marketers.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/aqardash/aqardash/internal/auth"
	"github.com/aqardash/aqardash/internal/config"
	"github.com/aqardash/aqardash/internal/database"
	"github.com/aqardash/aqardash/internal/database/admins"
	"github.com/aqardash/aqardash/internal/database/buyers"
	"github.com/aqardash/aqardash/internal/database/links"
	"github.com/aqardash/aqardash/internal/database/marketers"
	"github.com/aqardash/aqardash/internal/database/properties"
	"github.com/aqardash/aqardash/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

const (
	propertiesPerAdmin = 12
	marketersPerAdmin  = 5
	buyersPerAdmin     = 8
)

var demoAdmins = []struct {
	Username string
	Password string
}{
	{"admin123", "admin12345"},
	{"manager", "manager123"},
	{"demouser", "demouser123"},
}

var regions = []string{"Riyadh", "Makkah", "Madinah", "Eastern Province", "Asir"}

var citiesByRegion = map[string][]string{
	"Riyadh":           {"Riyadh", "Al Kharj", "Al Majmaah", "Ad Dawadimi", "Az Zulfi"},
	"Makkah":           {"Makkah", "Jeddah", "Taif", "Rabigh"},
	"Madinah":          {"Madinah", "Yanbu", "Khaybar"},
	"Eastern Province": {"Dammam", "Khobar", "Qatif", "Jubail", "Al Ahsa"},
	"Asir":             {"Abha", "Khamis Mushait", "An Namas"},
}

var districts = []string{"Al Yarmuk", "Ar Rabwah", "Al Khalidiyah", "Al Malaz", "Ar Rawdah", "Al Aziziyah", "Ash Shawqiyah"}

var firstNames = []string{"Ahmed", "Mohammed", "Abdullah", "Abdulrahman", "Khalid", "Saud", "Nasser", "Ali", "Hassan", "Saad", "Noura", "Latifa", "Sarah", "Fatimah"}

var lastNames = []string{"Al Sudairi", "Al Ghamdi", "Al Harbi", "Al Shehri", "Al Qurashi", "Al Zahrani", "Al Otaibi", "Al Asiri", "Al Qahtani"}

var interests = []string{
	"split air conditioning",
	"fireplace",
	"swimming pool",
	"garden",
	"private parking",
	"security system",
	"fitted kitchen",
	"maid's room",
	"storage room",
}

var propertyTypes = []entities.PropertyType{
	entities.PropertyTypeCommercial,
	entities.PropertyTypeIndustrial,
	entities.PropertyTypeAgricultural,
	entities.PropertyTypeResidential,
}

var propertyScales = []entities.PropertyScale{
	entities.PropertyScaleVilla,
	entities.PropertyScaleBuilding,
	entities.PropertyScaleApartment,
	entities.PropertyScalePalace,
}

var categories = []entities.Category{
	entities.CategoryFamilies,
	entities.CategoryIndividuals,
}

var statuses = []entities.PropertyStatus{
	entities.PropertyStatusAvailable,
	entities.PropertyStatusReserved,
	entities.PropertyStatusSold,
}

var marketerTypes = []entities.MarketerType{
	entities.MarketerTypeBroker,
	entities.MarketerTypeSeller,
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	authService := auth.NewService(admins.NewRepository(db.DB), config.Auth{BcryptCost: 10})
	propertyRepo := properties.NewRepository(db.DB)
	buyerRepo := buyers.NewRepository(db.DB)
	marketerRepo := marketers.NewRepository(db.DB)
	linkRepo := links.NewRepository(db.DB)

	for _, account := range demoAdmins {
		admin, err := authService.Register(account.Username, account.Password)
		if err != nil {
			log.Fatalf("Failed to register admin %s: %v", account.Username, err)
		}
		log.Printf("Registered admin %s (id=%d)", admin.Username, admin.ID)

		seedTenant(admin.ID, propertyRepo, buyerRepo, marketerRepo, linkRepo)
	}

	log.Printf("Demo data has been generated at %s", *dbPath)
	for _, account := range demoAdmins {
		log.Printf("  login: %s / %s", account.Username, account.Password)
	}
}

func seedTenant(adminID uint, propertyRepo *properties.Repository, buyerRepo *buyers.Repository, marketerRepo *marketers.Repository, linkRepo *links.Repository) {
	var propertyIDs, buyerIDs, marketerIDs []uint

	for i := 0; i < propertiesPerAdmin; i++ {
		property, err := propertyRepo.CreateProperty(randomProperty(), adminID)
		if err != nil {
			log.Fatalf("Failed to add property: %v", err)
		}
		propertyIDs = append(propertyIDs, property.ID)
	}

	for i := 0; i < marketersPerAdmin; i++ {
		marketer, err := marketerRepo.CreateMarketer(randomMarketer(), adminID)
		if err != nil {
			log.Fatalf("Failed to add marketer: %v", err)
		}
		marketerIDs = append(marketerIDs, marketer.ID)
	}

	for i := 0; i < buyersPerAdmin; i++ {
		buyer, err := buyerRepo.CreateBuyer(randomBuyer(), adminID)
		if err != nil {
			log.Fatalf("Failed to add buyer: %v", err)
		}
		buyerIDs = append(buyerIDs, buyer.ID)
	}

	// Link each property to a random marketer and a random buyer so the
	// dashboard and association views have something to show
	for _, propertyID := range propertyIDs {
		marketerID := marketerIDs[rand.Intn(len(marketerIDs))]
		if err := linkRepo.LinkMarketer(marketerID, propertyID, adminID); err != nil {
			log.Fatalf("Failed to link marketer: %v", err)
		}

		if rand.Intn(2) == 0 {
			buyerID := buyerIDs[rand.Intn(len(buyerIDs))]
			if err := linkRepo.LinkBuyer(buyerID, propertyID, adminID); err != nil {
				log.Fatalf("Failed to link buyer: %v", err)
			}
		}
	}
}

func randomProperty() *entities.Property {
	region := regions[rand.Intn(len(regions))]
	cities := citiesByRegion[region]
	city := cities[rand.Intn(len(cities))]
	district := districts[rand.Intn(len(districts))]

	propertyType := propertyTypes[rand.Intn(len(propertyTypes))]
	area := float64(50 + rand.Intn(451))
	bedrooms := 1 + rand.Intn(6)
	bathrooms := 1 + rand.Intn(4)
	livingRooms := 1 + rand.Intn(3)

	// Price per square meter, nudged by property type
	basePrice := area * float64(1000+rand.Intn(4001))
	switch propertyType {
	case entities.PropertyTypeCommercial:
		basePrice *= 1.5
	case entities.PropertyTypeIndustrial:
		basePrice *= 0.8
	}

	return &entities.Property{
		Title:           fmt.Sprintf("%s property in %s - %s, %s", propertyType, region, city, district),
		PropertyType:    propertyType,
		PropertyScale:   propertyScales[rand.Intn(len(propertyScales))],
		Area:            area,
		Category:        categories[rand.Intn(len(categories))],
		Floors:          1 + rand.Intn(5),
		Bedrooms:        bedrooms,
		Bathrooms:       bathrooms,
		LivingRooms:     livingRooms,
		Price:           basePrice,
		Region:          region,
		District:        district,
		City:            city,
		LocationLink:    fmt.Sprintf("https://maps.google.com/?q=%s,%s", city, district),
		SourceLink:      "https://example.com",
		LocationDetails: fmt.Sprintf("%s property in %s, %s, %s", propertyType, district, city, region),
		Description: fmt.Sprintf("%s %s in %s, %s. Area %.0f sqm, %d bedrooms, %d bathrooms, %d living rooms.",
			propertyType, propertyScales[rand.Intn(len(propertyScales))], district, city, area, bedrooms, bathrooms, livingRooms),
		Status: statuses[rand.Intn(len(statuses))],
	}
}

func randomPerson() (name, phone, email string) {
	name = firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
	phone = fmt.Sprintf("05%d%08d", rand.Intn(10), 10000000+rand.Intn(90000000))
	email = strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
	return name, phone, email
}

func randomMarketer() *entities.Marketer {
	name, phone, email := randomPerson()
	return &entities.Marketer{
		Name:         name,
		Phone:        phone,
		Email:        email,
		MarketerType: marketerTypes[rand.Intn(len(marketerTypes))],
	}
}

func randomBuyer() *entities.Buyer {
	name, phone, email := randomPerson()

	picked := append([]string(nil), interests...)
	rand.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	picked = picked[:2+rand.Intn(4)]

	return &entities.Buyer{
		Name:      name,
		Phone:     phone,
		Email:     email,
		Budget:    500_000 + rand.Float64()*4_500_000,
		Interests: strings.Join(picked, ", "),
	}
}
