package services

import (
	"context"
	"testing"
	"time"

	"hotel-booking/constants"
	"hotel-booking/dto"
	"hotel-booking/models"
	"hotel-booking/repository"
	"hotel-booking/services/gateway"
	"hotel-booking/services/notification"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	testNow = time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
	guest   = Actor{ID: 10, RoleID: constants.RoleRegular}
	other   = Actor{ID: 11, RoleID: constants.RoleRegular}
	admin   = Actor{ID: 2, RoleID: constants.RoleAdmin}
	super   = Actor{ID: 3, RoleID: constants.RoleSuperAdmin}
)

type fixture struct {
	db       *gorm.DB
	repo     *repository.Repository
	now      time.Time
	events   *notification.RecordingPublisher
	charges  []gateway.ChargeRequest
	gateway  gateway.Gateway
	bookings *BookingFacade
	payments *PaymentService
	addons   *AddOnService
	rooms    []models.Room
}

// newFixture opens an in-memory database with rooms 101, 102 and 103. The
// card gateway succeeds unless the test swaps f.gateway.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))

	f := &fixture{
		db:     db,
		repo:   repository.New(db),
		now:    testNow,
		events: &notification.RecordingPublisher{},
	}
	f.gateway = gateway.GatewayFunc(func(ctx context.Context, req gateway.ChargeRequest) (*gateway.ChargeResponse, error) {
		return &gateway.ChargeResponse{ID: "ch_test", Status: gateway.StatusSucceeded, ReceiptURL: "https://receipts.test/ch_test"}, nil
	})
	// Charges go through f.gateway at call time so tests can replace it.
	recording := gateway.GatewayFunc(func(ctx context.Context, req gateway.ChargeRequest) (*gateway.ChargeResponse, error) {
		f.charges = append(f.charges, req)
		return f.gateway.Charge(ctx, req)
	})
	processor := NewPaymentProcessor(recording, "usd")
	clock := func() time.Time { return f.now }

	f.bookings = NewBookingFacade(BookingFacadeOptions{
		Repo:      f.repo,
		Payments:  processor,
		Publisher: f.events,
		Now:       clock,
	})
	f.payments = NewPaymentService(PaymentServiceOptions{
		Repo:      f.repo,
		Payments:  processor,
		Publisher: f.events,
		Now:       clock,
	})
	f.addons = NewAddOnService(AddOnServiceOptions{Repo: f.repo})

	rt := models.RoomType{Name: "Deluxe", Price: decimal.NewFromInt(120), Capacity: 2}
	require.NoError(t, db.Create(&rt).Error)
	for _, n := range []string{"101", "102", "103"} {
		room := models.Room{RoomNumber: n, RoomTypeID: rt.ID, IsActive: true}
		require.NoError(t, db.Create(&room).Error)
		f.rooms = append(f.rooms, room)
	}
	return f
}

func (f *fixture) roomIDs(idx ...int) []uint {
	ids := make([]uint, 0, len(idx))
	for _, i := range idx {
		ids = append(ids, f.rooms[i].ID)
	}
	return ids
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func createRequest(method, in, out string, roomIDs ...uint) dto.CreateBookingRequest {
	req := dto.CreateBookingRequest{
		CheckInDate:   in,
		CheckOutDate:  out,
		RoomIDs:       roomIDs,
		PaymentMethod: method,
		TotalPayment:  amount(240),
	}
	if method == constants.PaymentMethodCreditCard {
		req.SourceToken = "tok_visa"
	}
	return req
}

// book creates a booking for actor and fails the test on error.
func (f *fixture) book(t *testing.T, actor Actor, method, in, out string, roomIDs ...uint) *models.Booking {
	t.Helper()
	b, err := f.bookings.Create(context.Background(), actor, createRequest(method, in, out, roomIDs...))
	require.NoError(t, err)
	return b
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func strPtr(s string) *string {
	return &s
}
