// Package memstore implements store.Store with mutex-guarded in-memory maps.
// It backs STORE_DRIVER=memory for local development and the test suites.
// Records are copied on the way in and out, so callers can mutate a fetched
// record freely and nothing changes until the record is saved back.
package memstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fieldserve/backoffice/internal/models"
	"github.com/fieldserve/backoffice/internal/store"
)

type MemStore struct {
	mu sync.RWMutex

	clients      map[string]*models.Client
	addresses    map[string]*models.Address
	appointments map[string]*models.Appointment
	quotes       map[string]*models.Quote
	jobs         map[string]*models.Job
	invoices     map[string]*models.Invoice
	users        map[string]*models.User
	auditLogs    map[string]*models.AuditLog

	// failAddresses forces address inserts to fail; used by tests to
	// exercise the client+address rollback path.
	failAddresses bool
}

func New() *MemStore {
	return &MemStore{
		clients:      make(map[string]*models.Client),
		addresses:    make(map[string]*models.Address),
		appointments: make(map[string]*models.Appointment),
		quotes:       make(map[string]*models.Quote),
		jobs:         make(map[string]*models.Job),
		invoices:     make(map[string]*models.Invoice),
		users:        make(map[string]*models.User),
		auditLogs:    make(map[string]*models.AuditLog),
	}
}

// FailAddresses toggles simulated address-insert failures.
func (s *MemStore) FailAddresses(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAddresses = fail
}

func newID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func cloneStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}

// --------------------------------------------------
// Client / Address
// --------------------------------------------------

func cloneClient(c *models.Client) *models.Client {
	cp := *c
	cp.Tags = cloneStrings(c.Tags)
	return &cp
}

func (s *MemStore) CreateClientWithAddress(_ context.Context, c *models.Client, a *models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.clients {
		if existing.Name == c.Name {
			return store.ErrDuplicate
		}
	}

	c.ID = newID()
	a.ID = newID()
	c.AddressID = a.ID
	c.CreatedAt, c.UpdatedAt = now(), now()
	a.CreatedAt, a.UpdatedAt = now(), now()

	// Client first, then address; a failed address insert rolls the
	// client back so no half-created pair is left behind.
	s.clients[c.ID] = cloneClient(c)
	if s.failAddresses {
		delete(s.clients, c.ID)
		c.ID, c.AddressID, a.ID = "", "", ""
		return errors.New("address insert failed")
	}
	cp := *a
	s.addresses[a.ID] = &cp
	return nil
}

func (s *MemStore) ClientByID(_ context.Context, id string) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneClient(c), nil
}

func (s *MemStore) ClientByName(_ context.Context, name string) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.clients {
		if c.Name == name {
			return cloneClient(c), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *MemStore) Clients(_ context.Context) ([]*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, cloneClient(c))
	}
	return out, nil
}

func (s *MemStore) SaveClient(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c.ID]; !ok {
		return store.ErrNotFound
	}
	for id, existing := range s.clients {
		if id != c.ID && existing.Name == c.Name {
			return store.ErrDuplicate
		}
	}
	c.UpdatedAt = now()
	s.clients[c.ID] = cloneClient(c)
	return nil
}

func (s *MemStore) AddressByID(_ context.Context, id string) (*models.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.addresses[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func cloneAppointment(a *models.Appointment) *models.Appointment {
	cp := *a
	cp.Notes = cloneStrings(a.Notes)
	return &cp
}

func (s *MemStore) CreateAppointment(_ context.Context, a *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = newID()
	a.CreatedAt, a.UpdatedAt = now(), now()
	s.appointments[a.ID] = cloneAppointment(a)
	return nil
}

func (s *MemStore) AppointmentByID(_ context.Context, id string) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneAppointment(a), nil
}

func (s *MemStore) Appointments(_ context.Context) ([]*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		out = append(out, cloneAppointment(a))
	}
	return out, nil
}

func (s *MemStore) AppointmentsByClient(_ context.Context, clientID string) ([]*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Appointment
	for _, a := range s.appointments {
		if a.ClientID == clientID {
			out = append(out, cloneAppointment(a))
		}
	}
	return out, nil
}

func (s *MemStore) SaveAppointment(_ context.Context, a *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[a.ID]; !ok {
		return store.ErrNotFound
	}
	a.UpdatedAt = now()
	s.appointments[a.ID] = cloneAppointment(a)
	return nil
}

// --------------------------------------------------
// Quote
// --------------------------------------------------

func cloneQuote(q *models.Quote) *models.Quote {
	cp := *q
	cp.Scope = cloneStrings(q.Scope)
	return &cp
}

func (s *MemStore) CreateQuote(_ context.Context, q *models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q.ID = newID()
	q.CreatedAt, q.UpdatedAt = now(), now()
	s.quotes[q.ID] = cloneQuote(q)
	return nil
}

func (s *MemStore) QuoteByID(_ context.Context, id string) (*models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.quotes[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneQuote(q), nil
}

func (s *MemStore) Quotes(_ context.Context) ([]*models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		out = append(out, cloneQuote(q))
	}
	return out, nil
}

func (s *MemStore) QuotesByClient(_ context.Context, clientID string) ([]*models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Quote
	for _, q := range s.quotes {
		if q.ClientID == clientID {
			out = append(out, cloneQuote(q))
		}
	}
	return out, nil
}

func (s *MemStore) SaveQuote(_ context.Context, q *models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quotes[q.ID]; !ok {
		return store.ErrNotFound
	}
	q.UpdatedAt = now()
	s.quotes[q.ID] = cloneQuote(q)
	return nil
}

// --------------------------------------------------
// Job
// --------------------------------------------------

func cloneJob(j *models.Job) *models.Job {
	cp := *j
	cp.Scope = cloneStrings(j.Scope)
	cp.Notes = cloneStrings(j.Notes)
	return &cp
}

func (s *MemStore) CreateJob(_ context.Context, j *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j.ID = newID()
	j.CreatedAt, j.UpdatedAt = now(), now()
	s.jobs[j.ID] = cloneJob(j)
	return nil
}

func (s *MemStore) JobByID(_ context.Context, id string) (*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneJob(j), nil
}

func (s *MemStore) Jobs(_ context.Context) ([]*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, cloneJob(j))
	}
	return out, nil
}

func (s *MemStore) JobsByClient(_ context.Context, clientID string) ([]*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Job
	for _, j := range s.jobs {
		if j.ClientID == clientID {
			out = append(out, cloneJob(j))
		}
	}
	return out, nil
}

func (s *MemStore) SaveJob(_ context.Context, j *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[j.ID]; !ok {
		return store.ErrNotFound
	}
	j.UpdatedAt = now()
	s.jobs[j.ID] = cloneJob(j)
	return nil
}

// --------------------------------------------------
// Invoice
// --------------------------------------------------

func cloneInvoice(i *models.Invoice) *models.Invoice {
	cp := *i
	cp.Scope = cloneStrings(i.Scope)
	cp.Notes = cloneStrings(i.Notes)
	return &cp
}

func (s *MemStore) CreateInvoice(_ context.Context, i *models.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i.ID = newID()
	i.CreatedAt, i.UpdatedAt = now(), now()
	s.invoices[i.ID] = cloneInvoice(i)
	return nil
}

func (s *MemStore) InvoiceByID(_ context.Context, id string) (*models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.invoices[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneInvoice(i), nil
}

func (s *MemStore) Invoices(_ context.Context) ([]*models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Invoice, 0, len(s.invoices))
	for _, i := range s.invoices {
		out = append(out, cloneInvoice(i))
	}
	return out, nil
}

func (s *MemStore) InvoicesByClient(_ context.Context, clientID string) ([]*models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Invoice
	for _, i := range s.invoices {
		if i.ClientID == clientID {
			out = append(out, cloneInvoice(i))
		}
	}
	return out, nil
}

func (s *MemStore) SaveInvoice(_ context.Context, i *models.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invoices[i.ID]; !ok {
		return store.ErrNotFound
	}
	i.UpdatedAt = now()
	s.invoices[i.ID] = cloneInvoice(i)
	return nil
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (s *MemStore) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrDuplicate
		}
	}

	u.ID = newID()
	u.CreatedAt, u.UpdatedAt = now(), now()
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *MemStore) UserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (s *MemStore) CreateAuditLog(_ context.Context, l *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.ID = newID()
	l.CreatedAt = now()
	cp := *l
	s.auditLogs[l.ID] = &cp
	return nil
}

// AuditLogs returns all recorded audit entries; used by tests.
func (s *MemStore) AuditLogs() []*models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.AuditLog, 0, len(s.auditLogs))
	for _, l := range s.auditLogs {
		cp := *l
		out = append(out, &cp)
	}
	return out
}
