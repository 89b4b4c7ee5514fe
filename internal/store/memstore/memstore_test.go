package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/fieldserve/backoffice/internal/models"
	"github.com/fieldserve/backoffice/internal/store"
)

func seedClient(t *testing.T, s *MemStore, name string) *models.Client {
	t.Helper()

	c := &models.Client{Name: name, Phone: "555-0100", Tags: []string{"vip"}}
	a := &models.Address{Street: "12 Elm St", City: "Braga"}
	if err := s.CreateClientWithAddress(context.Background(), c, a); err != nil {
		t.Fatalf("CreateClientWithAddress: %v", err)
	}
	return c
}

func TestCreateClientWithAddress(t *testing.T) {
	s := New()
	ctx := context.Background()

	c := seedClient(t, s, "Harbor Light Cafe")
	if c.ID == "" || c.AddressID == "" {
		t.Fatalf("ids not assigned: %+v", c)
	}

	got, err := s.ClientByName(ctx, "Harbor Light Cafe")
	if err != nil {
		t.Fatalf("ClientByName: %v", err)
	}
	if got.ID != c.ID || got.Phone != "555-0100" {
		t.Fatalf("got = %+v", got)
	}

	addr, err := s.AddressByID(ctx, c.AddressID)
	if err != nil {
		t.Fatalf("AddressByID: %v", err)
	}
	if addr.Street != "12 Elm St" {
		t.Fatalf("addr = %+v", addr)
	}
}

func TestClientNameUnique(t *testing.T) {
	s := New()
	seedClient(t, s, "Harbor Light Cafe")

	dup := &models.Client{Name: "Harbor Light Cafe"}
	err := s.CreateClientWithAddress(context.Background(), dup, &models.Address{})
	if !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}
	if dup.ID != "" {
		t.Fatalf("rejected client kept id %q", dup.ID)
	}
}

func TestAddressFailureRollsBackClient(t *testing.T) {
	s := New()
	ctx := context.Background()
	s.FailAddresses(true)

	c := &models.Client{Name: "Harbor Light Cafe"}
	if err := s.CreateClientWithAddress(ctx, c, &models.Address{}); err == nil {
		t.Fatal("expected failure")
	}

	if _, err := s.ClientByName(ctx, "Harbor Light Cafe"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("client survived rollback: %v", err)
	}

	// The name is free again once inserts work.
	s.FailAddresses(false)
	seedClient(t, s, "Harbor Light Cafe")
}

func TestFetchedRecordsAreCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	c := seedClient(t, s, "Harbor Light Cafe")

	fetched, err := s.ClientByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("ClientByID: %v", err)
	}
	fetched.Phone = "tampered"
	fetched.Tags[0] = "tampered"

	again, err := s.ClientByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("ClientByID: %v", err)
	}
	if again.Phone != "555-0100" || again.Tags[0] != "vip" {
		t.Fatalf("stored record mutated: %+v", again)
	}
}

func TestSaveClientRenameChecksUniqueness(t *testing.T) {
	s := New()
	ctx := context.Background()
	a := seedClient(t, s, "Harbor Light Cafe")
	seedClient(t, s, "Moss & Stone Floral")

	a.Name = "Moss & Stone Floral"
	if err := s.SaveClient(ctx, a); !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}

	a.Name = "Harbor Light Bakery"
	if err := s.SaveClient(ctx, a); err != nil {
		t.Fatalf("SaveClient: %v", err)
	}
	if _, err := s.ClientByName(ctx, "Harbor Light Bakery"); err != nil {
		t.Fatalf("renamed client missing: %v", err)
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()
	c := seedClient(t, s, "Harbor Light Cafe")

	appt := &models.Appointment{Title: "Site visit", ClientID: c.ID, Notes: []string{"gate code 4411"}}
	if err := s.CreateAppointment(ctx, appt); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	appt.AppTime = "14:30"
	if err := s.SaveAppointment(ctx, appt); err != nil {
		t.Fatalf("SaveAppointment: %v", err)
	}

	got, err := s.AppointmentByID(ctx, appt.ID)
	if err != nil {
		t.Fatalf("AppointmentByID: %v", err)
	}
	if got.AppTime != "14:30" || got.Title != "Site visit" {
		t.Fatalf("got = %+v", got)
	}

	byClient, err := s.AppointmentsByClient(ctx, c.ID)
	if err != nil || len(byClient) != 1 {
		t.Fatalf("byClient = %v, err = %v", byClient, err)
	}
	if orphans, _ := s.AppointmentsByClient(ctx, "other"); len(orphans) != 0 {
		t.Fatalf("orphans = %v", orphans)
	}
}

func TestSaveUnknownRecordFails(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.SaveQuote(ctx, &models.Quote{ID: "missing"}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("SaveQuote err = %v", err)
	}
	if err := s.SaveInvoice(ctx, &models.Invoice{ID: "missing"}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("SaveInvoice err = %v", err)
	}
	if err := s.SaveJob(ctx, &models.Job{ID: "missing"}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("SaveJob err = %v", err)
	}
}

func TestUserEmailUnique(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := &models.User{Name: "Dana Ortiz", Email: "dana@example.com", PasswordHash: "x"}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	dup := &models.User{Name: "Dana Clone", Email: "dana@example.com", PasswordHash: "y"}
	if err := s.CreateUser(ctx, dup); !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}

	got, err := s.UserByEmail(ctx, "dana@example.com")
	if err != nil || got.ID != u.ID {
		t.Fatalf("got = %+v, err = %v", got, err)
	}
	if _, err := s.UserByEmail(ctx, "nobody@example.com"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAuditLogRecorded(t *testing.T) {
	s := New()
	ctx := context.Background()

	userID := "user-1"
	entry := &models.AuditLog{UserID: &userID, Action: "create", Entity: "client", EntityID: "c-1"}
	if err := s.CreateAuditLog(ctx, entry); err != nil {
		t.Fatalf("CreateAuditLog: %v", err)
	}

	logs := s.AuditLogs()
	if len(logs) != 1 || logs[0].Action != "create" || *logs[0].UserID != "user-1" {
		t.Fatalf("logs = %v", logs)
	}
}
