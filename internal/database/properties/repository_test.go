package properties

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aqardash/aqardash/internal/database"
	"github.com/aqardash/aqardash/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_properties_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Admin{},
		&entities.Marketer{},
		&entities.Property{},
		&entities.Buyer{},
		&entities.PropertyMarketerLink{},
		&entities.PropertyBuyerLink{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func createTestAdmin(t *testing.T, db *gorm.DB, username string) *entities.Admin {
	admin := &entities.Admin{Username: username, PasswordHash: "hash"}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func testProperty(title, city string, price, area float64) *entities.Property {
	return &entities.Property{
		Title:            title,
		AnnouncementDate: time.Now(),
		PropertyType:     entities.PropertyTypeResidential,
		PropertyScale:    entities.PropertyScaleApartment,
		Area:             area,
		Category:         entities.CategoryFamilies,
		Floors:           1,
		Bedrooms:         3,
		Bathrooms:        2,
		LivingRooms:      1,
		Price:            price,
		Region:           "Central",
		District:         "Al Olaya",
		City:             city,
		Status:           entities.PropertyStatusAvailable,
	}
}

func TestCreateProperty(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")

	created, err := repo.CreateProperty(testProperty("Villa", "Riyadh", 500000, 320), admin.ID)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, admin.ID, created.AdminID)
}

func TestCreatePropertyDefaultsAnnouncementDate(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")

	property := testProperty("Villa", "Riyadh", 500000, 320)
	property.AnnouncementDate = time.Time{}

	created, err := repo.CreateProperty(property, admin.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), created.AnnouncementDate, 5*time.Second)
}

func TestSearchScopedToAdmin(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	owner := createTestAdmin(t, db, "owner")
	other := createTestAdmin(t, db, "other")

	_, err := repo.CreateProperty(testProperty("Villa", "Riyadh", 500000, 320), owner.ID)
	require.NoError(t, err)

	results, err := repo.Search(owner.ID, Filters{})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = repo.Search(other.ID, Filters{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchFiltersComposeConjunctively(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")

	for _, price := range []float64{100, 250, 400} {
		_, err := repo.CreateProperty(testProperty("Listing", "Riyadh", price, 200), admin.ID)
		require.NoError(t, err)
	}

	minPrice, maxPrice := 150.0, 300.0
	results, err := repo.Search(admin.ID, Filters{MinPrice: &minPrice, MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 250.0, results[0].Price)
}

func TestSearchBySearchTerm(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")

	villa := testProperty("Seaside villa", "Jeddah", 900000, 450)
	_, err := repo.CreateProperty(villa, admin.ID)
	require.NoError(t, err)

	flat := testProperty("Downtown flat", "Jeddah", 300000, 110)
	flat.Description = "close to the seaside promenade"
	_, err = repo.CreateProperty(flat, admin.ID)
	require.NoError(t, err)

	other := testProperty("Farm plot", "Jeddah", 150000, 5000)
	_, err = repo.CreateProperty(other, admin.ID)
	require.NoError(t, err)

	results, err := repo.Search(admin.ID, Filters{SearchTerm: "seaside"})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchByCityAndDistrict(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")

	riyadh := testProperty("A", "Riyadh", 100, 100)
	_, err := repo.CreateProperty(riyadh, admin.ID)
	require.NoError(t, err)

	jeddah := testProperty("B", "Jeddah", 100, 100)
	jeddah.District = "Al Hamra"
	_, err = repo.CreateProperty(jeddah, admin.ID)
	require.NoError(t, err)

	results, err := repo.Search(admin.ID, Filters{City: "Jeddah", District: "Al Hamra"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "B", results[0].Title)
}

func TestSearchOrderedByAnnouncementDate(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")

	older := testProperty("Older", "Riyadh", 100, 100)
	older.AnnouncementDate = time.Now().Add(-48 * time.Hour)
	_, err := repo.CreateProperty(older, admin.ID)
	require.NoError(t, err)

	newer := testProperty("Newer", "Riyadh", 100, 100)
	_, err = repo.CreateProperty(newer, admin.ID)
	require.NoError(t, err)

	results, err := repo.Search(admin.ID, Filters{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Newer", results[0].Title)
	assert.Equal(t, "Older", results[1].Title)
}

func TestListSummaries(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")

	property := testProperty("Villa", "Riyadh", 500000, 320)
	property.Description = "should not appear in the summary"
	created, err := repo.CreateProperty(property, admin.ID)
	require.NoError(t, err)

	_, err = repo.CreateProperty(testProperty("Apartment", "Jeddah", 300000, 150), admin.ID)
	require.NoError(t, err)

	summaries, err := repo.ListSummaries(admin.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	// Ordered by title for dropdown display
	assert.Equal(t, "Apartment", summaries[0].Title)
	assert.Equal(t, created.ID, summaries[1].ID)
	assert.Equal(t, "Villa", summaries[1].Title)
	assert.Equal(t, "Riyadh", summaries[1].City)
	assert.Equal(t, 500000.0, summaries[1].Price)
}

func TestUpdateProperty(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")

	created, err := repo.CreateProperty(testProperty("Villa", "Riyadh", 500000, 320), admin.ID)
	require.NoError(t, err)

	created.Title = "Renovated villa"
	created.Price = 550000
	created.Floors = 0
	require.NoError(t, repo.UpdateProperty(created, admin.ID))

	reloaded, err := repo.GetProperty(created.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renovated villa", reloaded.Title)
	assert.Equal(t, 550000.0, reloaded.Price)
	assert.Equal(t, 0, reloaded.Floors, "zero values must persist on full replace")
}

func TestUpdatePropertyCrossTenant(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	owner := createTestAdmin(t, db, "owner")
	other := createTestAdmin(t, db, "other")

	created, err := repo.CreateProperty(testProperty("Villa", "Riyadh", 500000, 320), owner.ID)
	require.NoError(t, err)

	created.Title = "Hijacked"
	err = repo.UpdateProperty(created, other.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	reloaded, err := repo.GetProperty(created.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Villa", reloaded.Title)
}

func TestDeletePropertyCascadesLinks(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")

	created, err := repo.CreateProperty(testProperty("Villa", "Riyadh", 500000, 320), admin.ID)
	require.NoError(t, err)

	buyer := &entities.Buyer{Name: "Buyer", Phone: "111", Budget: 600000, AdminID: admin.ID}
	require.NoError(t, db.Create(buyer).Error)
	marketer := &entities.Marketer{Name: "Marketer", Phone: "222", MarketerType: entities.MarketerTypeBroker, AdminID: admin.ID}
	require.NoError(t, db.Create(marketer).Error)

	require.NoError(t, db.Create(&entities.PropertyBuyerLink{
		BuyerID: buyer.ID, PropertyID: created.ID, AdminID: admin.ID,
	}).Error)
	require.NoError(t, db.Create(&entities.PropertyMarketerLink{
		MarketerID: marketer.ID, PropertyID: created.ID, AdminID: admin.ID,
	}).Error)

	require.NoError(t, repo.DeleteProperty(created.ID, admin.ID))

	var buyerLinks, marketerLinks int64
	require.NoError(t, db.Model(&entities.PropertyBuyerLink{}).Count(&buyerLinks).Error)
	require.NoError(t, db.Model(&entities.PropertyMarketerLink{}).Count(&marketerLinks).Error)
	assert.Zero(t, buyerLinks)
	assert.Zero(t, marketerLinks)

	_, err = repo.GetProperty(created.ID, admin.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestDeletePropertyNotFound(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")

	err := repo.DeleteProperty(9999, admin.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}
