// Package gormstore implements store.Store on postgres via gorm.
package gormstore

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fieldserve/backoffice/internal/config"
	"github.com/fieldserve/backoffice/internal/models"
	"github.com/fieldserve/backoffice/internal/store"
)

type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Open connects to postgres, configures the pool and migrates the schema.
// Fatal on failure, matching the bootstrap contract of cmd/api.
func Open(cfg *config.Config) *GormStore {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Address{},
		&models.Client{},
		&models.Appointment{},
		&models.Quote{},
		&models.Job{},
		&models.Invoice{},
		&models.User{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return New(db)
}

// wrap maps gorm sentinel errors onto the store contract.
func wrap(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return store.ErrDuplicate
	default:
		return err
	}
}

func newID() string {
	return uuid.NewString()
}

// --------------------------------------------------
// Client / Address
// --------------------------------------------------

func (s *GormStore) CreateClientWithAddress(ctx context.Context, c *models.Client, a *models.Address) error {
	c.ID = newID()
	a.ID = newID()
	c.AddressID = a.ID

	// Client saved first, then address, inside one transaction: a failure
	// of either insert rolls back both.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return tx.Create(a).Error
	})
	if err != nil {
		c.ID, c.AddressID, a.ID = "", "", ""
	}
	return wrap(err)
}

func (s *GormStore) ClientByID(ctx context.Context, id string) (*models.Client, error) {
	var c models.Client
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, wrap(err)
	}
	return &c, nil
}

func (s *GormStore) ClientByName(ctx context.Context, name string) (*models.Client, error) {
	var c models.Client
	if err := s.db.WithContext(ctx).First(&c, "name = ?", name).Error; err != nil {
		return nil, wrap(err)
	}
	return &c, nil
}

func (s *GormStore) Clients(ctx context.Context) ([]*models.Client, error) {
	var cs []*models.Client
	if err := s.db.WithContext(ctx).Find(&cs).Error; err != nil {
		return nil, wrap(err)
	}
	return cs, nil
}

func (s *GormStore) SaveClient(ctx context.Context, c *models.Client) error {
	return wrap(s.db.WithContext(ctx).Save(c).Error)
}

func (s *GormStore) AddressByID(ctx context.Context, id string) (*models.Address, error) {
	var a models.Address
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, wrap(err)
	}
	return &a, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (s *GormStore) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	a.ID = newID()
	return wrap(s.db.WithContext(ctx).Create(a).Error)
}

func (s *GormStore) AppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	var a models.Appointment
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, wrap(err)
	}
	return &a, nil
}

func (s *GormStore) Appointments(ctx context.Context) ([]*models.Appointment, error) {
	var as []*models.Appointment
	if err := s.db.WithContext(ctx).Find(&as).Error; err != nil {
		return nil, wrap(err)
	}
	return as, nil
}

func (s *GormStore) AppointmentsByClient(ctx context.Context, clientID string) ([]*models.Appointment, error) {
	var as []*models.Appointment
	if err := s.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&as).Error; err != nil {
		return nil, wrap(err)
	}
	return as, nil
}

func (s *GormStore) SaveAppointment(ctx context.Context, a *models.Appointment) error {
	return wrap(s.db.WithContext(ctx).Save(a).Error)
}

// --------------------------------------------------
// Quote
// --------------------------------------------------

func (s *GormStore) CreateQuote(ctx context.Context, q *models.Quote) error {
	q.ID = newID()
	return wrap(s.db.WithContext(ctx).Create(q).Error)
}

func (s *GormStore) QuoteByID(ctx context.Context, id string) (*models.Quote, error) {
	var q models.Quote
	if err := s.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		return nil, wrap(err)
	}
	return &q, nil
}

func (s *GormStore) Quotes(ctx context.Context) ([]*models.Quote, error) {
	var qs []*models.Quote
	if err := s.db.WithContext(ctx).Find(&qs).Error; err != nil {
		return nil, wrap(err)
	}
	return qs, nil
}

func (s *GormStore) QuotesByClient(ctx context.Context, clientID string) ([]*models.Quote, error) {
	var qs []*models.Quote
	if err := s.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&qs).Error; err != nil {
		return nil, wrap(err)
	}
	return qs, nil
}

func (s *GormStore) SaveQuote(ctx context.Context, q *models.Quote) error {
	return wrap(s.db.WithContext(ctx).Save(q).Error)
}

// --------------------------------------------------
// Job
// --------------------------------------------------

func (s *GormStore) CreateJob(ctx context.Context, j *models.Job) error {
	j.ID = newID()
	return wrap(s.db.WithContext(ctx).Create(j).Error)
}

func (s *GormStore) JobByID(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	if err := s.db.WithContext(ctx).First(&j, "id = ?", id).Error; err != nil {
		return nil, wrap(err)
	}
	return &j, nil
}

func (s *GormStore) Jobs(ctx context.Context) ([]*models.Job, error) {
	var js []*models.Job
	if err := s.db.WithContext(ctx).Find(&js).Error; err != nil {
		return nil, wrap(err)
	}
	return js, nil
}

func (s *GormStore) JobsByClient(ctx context.Context, clientID string) ([]*models.Job, error) {
	var js []*models.Job
	if err := s.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&js).Error; err != nil {
		return nil, wrap(err)
	}
	return js, nil
}

func (s *GormStore) SaveJob(ctx context.Context, j *models.Job) error {
	return wrap(s.db.WithContext(ctx).Save(j).Error)
}

// --------------------------------------------------
// Invoice
// --------------------------------------------------

func (s *GormStore) CreateInvoice(ctx context.Context, i *models.Invoice) error {
	i.ID = newID()
	return wrap(s.db.WithContext(ctx).Create(i).Error)
}

func (s *GormStore) InvoiceByID(ctx context.Context, id string) (*models.Invoice, error) {
	var i models.Invoice
	if err := s.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return nil, wrap(err)
	}
	return &i, nil
}

func (s *GormStore) Invoices(ctx context.Context) ([]*models.Invoice, error) {
	var is []*models.Invoice
	if err := s.db.WithContext(ctx).Find(&is).Error; err != nil {
		return nil, wrap(err)
	}
	return is, nil
}

func (s *GormStore) InvoicesByClient(ctx context.Context, clientID string) ([]*models.Invoice, error) {
	var is []*models.Invoice
	if err := s.db.WithContext(ctx).Where("client_id = ?", clientID).Find(&is).Error; err != nil {
		return nil, wrap(err)
	}
	return is, nil
}

func (s *GormStore) SaveInvoice(ctx context.Context, i *models.Invoice) error {
	return wrap(s.db.WithContext(ctx).Save(i).Error)
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	u.ID = newID()
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		u.ID = ""
		return wrap(err)
	}
	return nil
}

func (s *GormStore) UserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, wrap(err)
	}
	return &u, nil
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, wrap(err)
	}
	return &u, nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (s *GormStore) CreateAuditLog(ctx context.Context, l *models.AuditLog) error {
	l.ID = newID()
	return wrap(s.db.WithContext(ctx).Create(l).Error)
}
