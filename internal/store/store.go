// Package store defines the entity persistence contract. Implementations
// assign ids on create, enforce the uniqueness constraints on Client.Name and
// User.Email, and report outcomes through the sentinel errors below.
package store

import (
	"context"
	"errors"

	"github.com/fieldserve/backoffice/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("unique constraint violated")
)

type Store interface {
	// -------- Client / Address --------

	// CreateClientWithAddress persists the client first, then its address,
	// as a single logical transaction: neither record survives a failure
	// of the other.
	CreateClientWithAddress(ctx context.Context, c *models.Client, a *models.Address) error

	ClientByID(ctx context.Context, id string) (*models.Client, error)
	ClientByName(ctx context.Context, name string) (*models.Client, error)
	Clients(ctx context.Context) ([]*models.Client, error)
	SaveClient(ctx context.Context, c *models.Client) error

	AddressByID(ctx context.Context, id string) (*models.Address, error)

	// -------- Appointment --------

	CreateAppointment(ctx context.Context, a *models.Appointment) error
	AppointmentByID(ctx context.Context, id string) (*models.Appointment, error)
	Appointments(ctx context.Context) ([]*models.Appointment, error)
	AppointmentsByClient(ctx context.Context, clientID string) ([]*models.Appointment, error)
	SaveAppointment(ctx context.Context, a *models.Appointment) error

	// -------- Quote --------

	CreateQuote(ctx context.Context, q *models.Quote) error
	QuoteByID(ctx context.Context, id string) (*models.Quote, error)
	Quotes(ctx context.Context) ([]*models.Quote, error)
	QuotesByClient(ctx context.Context, clientID string) ([]*models.Quote, error)
	SaveQuote(ctx context.Context, q *models.Quote) error

	// -------- Job --------

	CreateJob(ctx context.Context, j *models.Job) error
	JobByID(ctx context.Context, id string) (*models.Job, error)
	Jobs(ctx context.Context) ([]*models.Job, error)
	JobsByClient(ctx context.Context, clientID string) ([]*models.Job, error)
	SaveJob(ctx context.Context, j *models.Job) error

	// -------- Invoice --------

	CreateInvoice(ctx context.Context, i *models.Invoice) error
	InvoiceByID(ctx context.Context, id string) (*models.Invoice, error)
	Invoices(ctx context.Context) ([]*models.Invoice, error)
	InvoicesByClient(ctx context.Context, clientID string) ([]*models.Invoice, error)
	SaveInvoice(ctx context.Context, i *models.Invoice) error

	// -------- User --------

	CreateUser(ctx context.Context, u *models.User) error
	UserByID(ctx context.Context, id string) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)

	// -------- Audit --------

	CreateAuditLog(ctx context.Context, l *models.AuditLog) error
}
