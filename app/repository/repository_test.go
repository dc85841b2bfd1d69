package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SJB-Parking/crudpark/app/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Vehicle{},
		&models.Operator{},
		&models.MonthlySubscription{},
		&models.SubscriptionVehicle{},
		&models.Rate{},
		&models.Ticket{},
		&models.FolioCounter{},
		&models.Payment{},
	))

	return db
}

func seedCounter(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.FolioCounter{ID: 1, Value: 0}).Error)
}

func createTicket(t *testing.T, db *gorm.DB, repos *Repositories, plate string) *models.Ticket {
	t.Helper()
	vehicle, err := repos.Vehicle.FindOrCreate(plate, models.VehicleTypeCar)
	require.NoError(t, err)
	folio, err := repos.Ticket.NextFolio()
	require.NoError(t, err)
	ticket := &models.Ticket{
		Folio:      folio,
		VehicleID:  vehicle.ID,
		OperatorID: 1,
		TicketType: models.TicketTypeGuest,
	}
	require.NoError(t, repos.Ticket.Create(ticket))
	return ticket
}

func TestVehicleFindOrCreate(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)

	created, err := repos.Vehicle.FindOrCreate("ABC123", models.VehicleTypeCar)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := repos.Vehicle.FindOrCreate("ABC123", models.VehicleTypeCar)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	count, err := repos.Vehicle.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNextFolioSequence(t *testing.T) {
	db := setupTestDB(t)
	seedCounter(t, db)
	repos := NewRepositories(db)

	for i := 1; i <= 3; i++ {
		folio, err := repos.Ticket.NextFolio()
		require.NoError(t, err)
		assert.Equal(t, models.FormatFolio(uint64(i)), folio)
	}
}

func TestNextFolioSeedsMissingCounter(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)

	folio, err := repos.Ticket.NextFolio()
	require.NoError(t, err)
	assert.Equal(t, "TKT000001", folio)

	folio, err = repos.Ticket.NextFolio()
	require.NoError(t, err)
	assert.Equal(t, "TKT000002", folio)
}

func TestTicketCreateRejectsSecondOpenForVehicle(t *testing.T) {
	db := setupTestDB(t)
	seedCounter(t, db)
	repos := NewRepositories(db)

	first := createTicket(t, db, repos, "ABC123")

	folio, err := repos.Ticket.NextFolio()
	require.NoError(t, err)
	err = repos.Ticket.Create(&models.Ticket{
		Folio:      folio,
		VehicleID:  first.VehicleID,
		OperatorID: 1,
		TicketType: models.TicketTypeGuest,
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestTicketCloseIsIdempotentGuarded(t *testing.T) {
	db := setupTestDB(t)
	seedCounter(t, db)
	repos := NewRepositories(db)

	ticket := createTicket(t, db, repos, "ABC123")

	rows, err := repos.Ticket.Close(ticket.ID, time.Now(), 45)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// A second close matches no OPEN row.
	rows, err = repos.Ticket.Close(ticket.ID, time.Now(), 45)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	closed, err := repos.Ticket.GetByID(ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusClosed, closed.Status)
	assert.Nil(t, closed.OpenMarker)
	require.NotNil(t, closed.ParkingDurationMinutes)
	assert.Equal(t, 45, *closed.ParkingDurationMinutes)

	// After closing, the same vehicle can open a new ticket.
	next := createTicket(t, db, repos, "ABC123")
	assert.NotEqual(t, ticket.Folio, next.Folio)
}

func TestTicketOpenLookups(t *testing.T) {
	db := setupTestDB(t)
	seedCounter(t, db)
	repos := NewRepositories(db)

	ticket := createTicket(t, db, repos, "XYZ987")

	hasOpen, err := repos.Ticket.HasOpen(ticket.VehicleID)
	require.NoError(t, err)
	assert.True(t, hasOpen)

	byPlate, err := repos.Ticket.GetOpenByPlate("XYZ987")
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, byPlate.ID)
	assert.Equal(t, "XYZ987", byPlate.Vehicle.LicensePlate)

	byFolio, err := repos.Ticket.GetByFolio(ticket.Folio)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, byFolio.ID)

	open, err := repos.Ticket.ListOpen(0, 10)
	require.NoError(t, err)
	require.Len(t, open, 1)

	count, err := repos.Ticket.CountOpen()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = repos.Ticket.Close(ticket.ID, time.Now(), 10)
	require.NoError(t, err)

	_, err = repos.Ticket.GetOpenByPlate("XYZ987")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRateGetActiveForType(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)

	old := &models.Rate{
		Name: "Car Old", VehicleType: models.VehicleTypeCar,
		HourlyRate: 8, FractionRate: 4, GracePeriodMinutes: 30,
		EffectiveFrom: time.Now().Add(-48 * time.Hour), IsActive: true,
	}
	current := &models.Rate{
		Name: "Car Current", VehicleType: models.VehicleTypeCar,
		HourlyRate: 10, FractionRate: 5, GracePeriodMinutes: 30,
		EffectiveFrom: time.Now().Add(-24 * time.Hour), IsActive: true,
	}
	retired := &models.Rate{
		Name: "Car Retired", VehicleType: models.VehicleTypeCar,
		HourlyRate: 99, FractionRate: 99, GracePeriodMinutes: 0,
		EffectiveFrom: time.Now().Add(-1 * time.Hour), IsActive: false,
	}
	for _, rate := range []*models.Rate{old, current, retired} {
		require.NoError(t, repos.Rate.Create(rate))
	}

	got, err := repos.Rate.GetActiveForType(models.VehicleTypeCar)
	require.NoError(t, err)
	assert.Equal(t, "Car Current", got.Name)

	_, err = repos.Rate.GetActiveForType(models.VehicleTypeMotorcycle)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSubscriptionFindActiveIDForVehicle(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)

	vehicle, err := repos.Vehicle.FindOrCreate("ABC123", models.VehicleTypeCar)
	require.NoError(t, err)

	now := time.Now()
	active := &models.MonthlySubscription{
		HolderName: "Ana Gomez", IsActive: true,
		StartDate: now.Add(-72 * time.Hour), EndDate: now.Add(72 * time.Hour),
	}
	inactive := &models.MonthlySubscription{
		HolderName: "Luis Diaz", IsActive: false,
		StartDate: now.Add(-72 * time.Hour), EndDate: now.Add(72 * time.Hour),
	}
	require.NoError(t, db.Create(active).Error)
	require.NoError(t, db.Create(inactive).Error)
	require.NoError(t, db.Create(&models.SubscriptionVehicle{
		MonthlySubscriptionID: inactive.ID, VehicleID: vehicle.ID,
	}).Error)

	// Only an inactive subscription covers the vehicle so far.
	id, err := repos.Subscription.FindActiveIDForVehicle(vehicle.ID, now)
	require.NoError(t, err)
	assert.Nil(t, id)

	require.NoError(t, db.Create(&models.SubscriptionVehicle{
		MonthlySubscriptionID: active.ID, VehicleID: vehicle.ID,
	}).Error)

	id, err = repos.Subscription.FindActiveIDForVehicle(vehicle.ID, now)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, active.ID, *id)

	// Outside the date window the subscription does not count.
	id, err = repos.Subscription.FindActiveIDForVehicle(vehicle.ID, now.Add(100*24*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestPaymentCreateAndSumForDay(t *testing.T) {
	db := setupTestDB(t)
	seedCounter(t, db)
	repos := NewRepositories(db)

	ticket := createTicket(t, db, repos, "ABC123")
	other := createTicket(t, db, repos, "XYZ987")

	now := time.Now()
	p1 := &models.Payment{
		TicketID: ticket.ID, OperatorID: 1,
		Amount: 15, PaymentMethod: models.PaymentMethodCash,
	}
	require.NoError(t, repos.Payment.Create(p1))
	assert.NotEmpty(t, p1.Reference)
	assert.False(t, p1.PaymentDatetime.IsZero())

	p2 := &models.Payment{
		TicketID: other.ID, OperatorID: 1,
		Amount: 25, PaymentMethod: models.PaymentMethodCard,
		PaymentDatetime: now.Add(-48 * time.Hour),
		Reference:       "manual-ref",
	}
	require.NoError(t, repos.Payment.Create(p2))
	assert.Equal(t, "manual-ref", p2.Reference)

	total, err := repos.Payment.SumForDay(now)
	require.NoError(t, err)
	assert.Equal(t, 15.0, total)

	got, err := repos.Payment.GetByTicketID(ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, p1.Reference, got.Reference)
}

func TestOperatorRepository(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)

	op, err := models.CreateOperator("Maria Lopez", "maria@crudpark.test", "s3cret-pass")
	require.NoError(t, err)
	require.NoError(t, repos.Operator.Create(op))

	byEmail, err := repos.Operator.GetByEmail("maria@crudpark.test")
	require.NoError(t, err)
	assert.Equal(t, "Maria Lopez", byEmail.FullName)
	assert.True(t, byEmail.CheckPassword("s3cret-pass"))
	assert.False(t, byEmail.CheckPassword("wrong"))

	at := time.Now()
	require.NoError(t, repos.Operator.UpdateLastLogin(op.ID, at))
	byID, err := repos.Operator.GetByID(op.ID)
	require.NoError(t, err)
	require.NotNil(t, byID.LastLoginAt)
}
