package links

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
	dbPath := "./test_links_" + t.Name() + ".db"

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

func createTestProperty(t *testing.T, db *gorm.DB, adminID uint, title string, announcedAt time.Time) *entities.Property {
	property := &entities.Property{
		Title: title, AnnouncementDate: announcedAt,
		PropertyType: entities.PropertyTypeResidential,
		PropertyScale: entities.PropertyScaleVilla, Area: 300,
		Category: entities.CategoryFamilies, Price: 100,
		Region: "Central", District: "D", City: "Riyadh",
		Status: entities.PropertyStatusAvailable, AdminID: adminID,
	}
	require.NoError(t, db.Create(property).Error)
	return property
}

func createTestMarketer(t *testing.T, db *gorm.DB, adminID uint, name string) *entities.Marketer {
	marketer := &entities.Marketer{
		Name: name, Phone: "1", MarketerType: entities.MarketerTypeBroker, AdminID: adminID,
	}
	require.NoError(t, db.Create(marketer).Error)
	return marketer
}

func createTestBuyer(t *testing.T, db *gorm.DB, adminID uint, name string) *entities.Buyer {
	buyer := &entities.Buyer{Name: name, Phone: "1", Budget: 100, AdminID: adminID}
	require.NoError(t, db.Create(buyer).Error)
	return buyer
}

func TestLinkMarketer(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")
	marketer := createTestMarketer(t, db, admin.ID, "Khalid")
	property := createTestProperty(t, db, admin.ID, "Villa", time.Now())

	require.NoError(t, repo.LinkMarketer(marketer.ID, property.ID, admin.ID))

	err := repo.LinkMarketer(marketer.ID, property.ID, admin.ID)
	assert.ErrorIs(t, err, database.ErrDuplicateLink)
}

func TestLinkMarketerRejectsForeignRows(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	owner := createTestAdmin(t, db, "owner")
	other := createTestAdmin(t, db, "other")
	marketer := createTestMarketer(t, db, owner.ID, "Khalid")
	property := createTestProperty(t, db, owner.ID, "Villa", time.Now())

	err := repo.LinkMarketer(marketer.ID, property.ID, other.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestUnlinkMarketerIsIdempotent(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")
	marketer := createTestMarketer(t, db, admin.ID, "Khalid")
	property := createTestProperty(t, db, admin.ID, "Villa", time.Now())

	require.NoError(t, repo.LinkMarketer(marketer.ID, property.ID, admin.ID))
	require.NoError(t, repo.UnlinkMarketer(marketer.ID, property.ID, admin.ID))
	require.NoError(t, repo.UnlinkMarketer(marketer.ID, property.ID, admin.ID))

	var count int64
	require.NoError(t, db.Model(&entities.PropertyMarketerLink{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLinkBuyerDuplicate(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")
	buyer := createTestBuyer(t, db, admin.ID, "Sara")
	property := createTestProperty(t, db, admin.ID, "Villa", time.Now())

	require.NoError(t, repo.LinkBuyer(buyer.ID, property.ID, admin.ID))

	err := repo.LinkBuyer(buyer.ID, property.ID, admin.ID)
	assert.ErrorIs(t, err, database.ErrDuplicateLink)
}

func TestPropertiesForMarketerOrderedByDate(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")
	marketer := createTestMarketer(t, db, admin.ID, "Khalid")
	older := createTestProperty(t, db, admin.ID, "Older", time.Now().Add(-48*time.Hour))
	newer := createTestProperty(t, db, admin.ID, "Newer", time.Now())
	unlinked := createTestProperty(t, db, admin.ID, "Unlinked", time.Now())
	_ = unlinked

	require.NoError(t, repo.LinkMarketer(marketer.ID, older.ID, admin.ID))
	require.NoError(t, repo.LinkMarketer(marketer.ID, newer.ID, admin.ID))

	results, err := repo.PropertiesForMarketer(marketer.ID, admin.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Newer", results[0].Title)
	assert.Equal(t, "Older", results[1].Title)
}

func TestPropertiesForBuyer(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")
	buyer := createTestBuyer(t, db, admin.ID, "Sara")
	property := createTestProperty(t, db, admin.ID, "Villa", time.Now())

	require.NoError(t, repo.LinkBuyer(buyer.ID, property.ID, admin.ID))

	results, err := repo.PropertiesForBuyer(buyer.ID, admin.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Villa", results[0].Title)
}

func TestBuyersForMarketerDeduplicated(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")
	marketer := createTestMarketer(t, db, admin.ID, "Khalid")
	first := createTestProperty(t, db, admin.ID, "First", time.Now())
	second := createTestProperty(t, db, admin.ID, "Second", time.Now())
	sara := createTestBuyer(t, db, admin.ID, "Sara")
	omar := createTestBuyer(t, db, admin.ID, "Omar")

	require.NoError(t, repo.LinkMarketer(marketer.ID, first.ID, admin.ID))
	require.NoError(t, repo.LinkMarketer(marketer.ID, second.ID, admin.ID))
	require.NoError(t, repo.LinkBuyer(sara.ID, first.ID, admin.ID))
	require.NoError(t, repo.LinkBuyer(sara.ID, second.ID, admin.ID))
	require.NoError(t, repo.LinkBuyer(omar.ID, second.ID, admin.ID))

	results, err := repo.BuyersForMarketer(marketer.ID, admin.ID)
	require.NoError(t, err)
	require.Len(t, results, 2, "buyer linked through two properties appears once")
	assert.Equal(t, "Omar", results[0].Name)
	assert.Equal(t, "Sara", results[1].Name)
}

func TestDeleteOrphanLinks(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")
	marketer := createTestMarketer(t, db, admin.ID, "Khalid")
	buyer := createTestBuyer(t, db, admin.ID, "Sara")
	property := createTestProperty(t, db, admin.ID, "Villa", time.Now())

	require.NoError(t, repo.LinkMarketer(marketer.ID, property.ID, admin.ID))
	require.NoError(t, repo.LinkBuyer(buyer.ID, property.ID, admin.ID))

	// Bypass the cascading delete to manufacture orphans
	require.NoError(t, db.Delete(&entities.Property{}, property.ID).Error)

	deleted, err := repo.DeleteOrphanLinks()
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = repo.DeleteOrphanLinks()
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestCountOrphanLinks(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	admin := createTestAdmin(t, db, "owner")
	marketer := createTestMarketer(t, db, admin.ID, "Khalid")
	buyer := createTestBuyer(t, db, admin.ID, "Sara")
	property := createTestProperty(t, db, admin.ID, "Villa", time.Now())

	require.NoError(t, repo.LinkMarketer(marketer.ID, property.ID, admin.ID))
	require.NoError(t, repo.LinkBuyer(buyer.ID, property.ID, admin.ID))

	count, err := repo.CountOrphanLinks()
	require.NoError(t, err)
	assert.Zero(t, count)

	// Bypass the cascading delete to manufacture orphans
	require.NoError(t, db.Delete(&entities.Marketer{}, marketer.ID).Error)

	count, err = repo.CountOrphanLinks()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Counting must not delete anything
	count, err = repo.CountOrphanLinks()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestBuyersForMarketerScopedToAdmin(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	owner := createTestAdmin(t, db, "owner")
	other := createTestAdmin(t, db, "other")

	marketer := createTestMarketer(t, db, owner.ID, "Khalid")
	property := createTestProperty(t, db, owner.ID, "Villa", time.Now())
	buyer := createTestBuyer(t, db, owner.ID, "Sara")

	require.NoError(t, repo.LinkMarketer(marketer.ID, property.ID, owner.ID))
	require.NoError(t, repo.LinkBuyer(buyer.ID, property.ID, owner.ID))

	results, err := repo.BuyersForMarketer(marketer.ID, other.ID)
	require.NoError(t, err)
	assert.Empty(t, results)
}
