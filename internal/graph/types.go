package graph

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/fieldserve/backoffice/internal/models"
	"github.com/fieldserve/backoffice/internal/store"
)

type objectTypes struct {
	address     *graphql.Object
	user        *graphql.Object
	token       *graphql.Object
	client      *graphql.Object
	appointment *graphql.Object
	quote       *graphql.Object
	job         *graphql.Object
	invoice     *graphql.Object
}

// defineTypes builds the entity object types. The Client collection fields
// reference types defined after Client, so they are attached last via
// AddFieldConfig.
func (s *Schema) defineTypes() *objectTypes {
	t := &objectTypes{}

	// Address deliberately has no id field: the only path to an address is
	// through its owning client, and that path exposes the location fields
	// alone.
	t.address = graphql.NewObject(graphql.ObjectConfig{
		Name: "Address",
		Fields: graphql.Fields{
			"street": &graphql.Field{Type: graphql.String},
			"city":   &graphql.Field{Type: graphql.String},
			"state":  &graphql.Field{Type: graphql.String},
			"zip":    &graphql.Field{Type: graphql.String},
		},
	})

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"name":  &graphql.Field{Type: graphql.String},
			"email": &graphql.Field{Type: graphql.String},
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	t.token = graphql.NewObject(graphql.ObjectConfig{
		Name: "Token",
		Fields: graphql.Fields{
			"value": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.client = graphql.NewObject(graphql.ObjectConfig{
		Name: "Client",
		Fields: graphql.Fields{
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"phone": &graphql.Field{Type: graphql.String},
			"email": &graphql.Field{Type: graphql.String},
			"tags":  &graphql.Field{Type: graphql.NewList(graphql.String)},
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	t.appointment = graphql.NewObject(graphql.ObjectConfig{
		Name: "Appointment",
		Fields: graphql.Fields{
			"title":        &graphql.Field{Type: graphql.String},
			"details":      &graphql.Field{Type: graphql.String},
			"request_date": &graphql.Field{Type: graphql.String},
			"app_time":     &graphql.Field{Type: graphql.String},
			"requested_on": &graphql.Field{Type: graphql.String},
			"notes":        &graphql.Field{Type: graphql.NewList(graphql.String)},
			"user": &graphql.Field{
				Type:    t.user,
				Resolve: s.resolveAppointmentUser,
			},
			"client": &graphql.Field{
				Type:    t.client,
				Resolve: s.resolveAppointmentClient,
			},
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	t.quote = graphql.NewObject(graphql.ObjectConfig{
		Name: "Quote",
		Fields: graphql.Fields{
			"description": &graphql.Field{Type: graphql.String},
			"scope":       &graphql.Field{Type: graphql.NewList(graphql.String)},
			"total":       &graphql.Field{Type: graphql.String},
			"notes":       &graphql.Field{Type: graphql.String},
			"client": &graphql.Field{
				Type:    t.client,
				Resolve: s.resolveQuoteClient,
			},
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	t.job = graphql.NewObject(graphql.ObjectConfig{
		Name: "Job",
		Fields: graphql.Fields{
			"title":       &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"scope":       &graphql.Field{Type: graphql.NewList(graphql.String)},
			"total":       &graphql.Field{Type: graphql.String},
			"notes":       &graphql.Field{Type: graphql.NewList(graphql.String)},
			"quote": &graphql.Field{
				Type:    t.quote,
				Resolve: s.resolveJobQuote,
			},
			"client": &graphql.Field{
				Type:    t.client,
				Resolve: s.resolveJobClient,
			},
			"user": &graphql.Field{
				Type:    t.user,
				Resolve: s.resolveJobUser,
			},
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	t.invoice = graphql.NewObject(graphql.ObjectConfig{
		Name: "Invoice",
		Fields: graphql.Fields{
			"date_sent": &graphql.Field{Type: graphql.String},
			"scope":     &graphql.Field{Type: graphql.NewList(graphql.String)},
			"total":     &graphql.Field{Type: graphql.String},
			"notes":     &graphql.Field{Type: graphql.NewList(graphql.String)},
			"job": &graphql.Field{
				Type:    t.job,
				Resolve: s.resolveInvoiceJob,
			},
			"client": &graphql.Field{
				Type:    t.client,
				Resolve: s.resolveInvoiceClient,
			},
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	t.client.AddFieldConfig("address", &graphql.Field{
		Type:    t.address,
		Resolve: s.resolveClientAddress,
	})
	t.client.AddFieldConfig("appointments", &graphql.Field{
		Type:    graphql.NewList(t.appointment),
		Resolve: s.resolveClientAppointments,
	})
	t.client.AddFieldConfig("quotes", &graphql.Field{
		Type:    graphql.NewList(t.quote),
		Resolve: s.resolveClientQuotes,
	})
	t.client.AddFieldConfig("jobs", &graphql.Field{
		Type:    graphql.NewList(t.job),
		Resolve: s.resolveClientJobs,
	})
	t.client.AddFieldConfig("invoices", &graphql.Field{
		Type:    graphql.NewList(t.invoice),
		Resolve: s.resolveClientInvoices,
	})

	return t
}

// --------------------------------------------------
// Relationship resolvers
// --------------------------------------------------

// lookupRef resolves a stored foreign-key id. An unset reference yields
// null; a set reference whose target is gone fails the field.
func lookupRef[T any](id, kind string, find func(string) (*T, error)) (interface{}, error) {
	if id == "" {
		return nil, nil
	}
	rec, err := find(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%s %s not found", kind, id)
		}
		return nil, err
	}
	return rec, nil
}

func (s *Schema) resolveClientAddress(p graphql.ResolveParams) (interface{}, error) {
	client, ok := p.Source.(*models.Client)
	if !ok {
		return nil, nil
	}
	return lookupRef(client.AddressID, "address", func(id string) (*models.Address, error) {
		return s.store.AddressByID(p.Context, id)
	})
}

func (s *Schema) resolveClientAppointments(p graphql.ResolveParams) (interface{}, error) {
	client, ok := p.Source.(*models.Client)
	if !ok {
		return nil, nil
	}
	return s.store.AppointmentsByClient(p.Context, client.ID)
}

func (s *Schema) resolveClientQuotes(p graphql.ResolveParams) (interface{}, error) {
	client, ok := p.Source.(*models.Client)
	if !ok {
		return nil, nil
	}
	return s.store.QuotesByClient(p.Context, client.ID)
}

func (s *Schema) resolveClientJobs(p graphql.ResolveParams) (interface{}, error) {
	client, ok := p.Source.(*models.Client)
	if !ok {
		return nil, nil
	}
	return s.store.JobsByClient(p.Context, client.ID)
}

func (s *Schema) resolveClientInvoices(p graphql.ResolveParams) (interface{}, error) {
	client, ok := p.Source.(*models.Client)
	if !ok {
		return nil, nil
	}
	return s.store.InvoicesByClient(p.Context, client.ID)
}

func (s *Schema) resolveAppointmentUser(p graphql.ResolveParams) (interface{}, error) {
	a, ok := p.Source.(*models.Appointment)
	if !ok {
		return nil, nil
	}
	return lookupRef(a.UserID, "user", func(id string) (*models.User, error) {
		return s.store.UserByID(p.Context, id)
	})
}

func (s *Schema) resolveAppointmentClient(p graphql.ResolveParams) (interface{}, error) {
	a, ok := p.Source.(*models.Appointment)
	if !ok {
		return nil, nil
	}
	return lookupRef(a.ClientID, "client", func(id string) (*models.Client, error) {
		return s.store.ClientByID(p.Context, id)
	})
}

func (s *Schema) resolveQuoteClient(p graphql.ResolveParams) (interface{}, error) {
	q, ok := p.Source.(*models.Quote)
	if !ok {
		return nil, nil
	}
	return lookupRef(q.ClientID, "client", func(id string) (*models.Client, error) {
		return s.store.ClientByID(p.Context, id)
	})
}

func (s *Schema) resolveJobQuote(p graphql.ResolveParams) (interface{}, error) {
	j, ok := p.Source.(*models.Job)
	if !ok {
		return nil, nil
	}
	return lookupRef(j.QuoteID, "quote", func(id string) (*models.Quote, error) {
		return s.store.QuoteByID(p.Context, id)
	})
}

func (s *Schema) resolveJobClient(p graphql.ResolveParams) (interface{}, error) {
	j, ok := p.Source.(*models.Job)
	if !ok {
		return nil, nil
	}
	return lookupRef(j.ClientID, "client", func(id string) (*models.Client, error) {
		return s.store.ClientByID(p.Context, id)
	})
}

func (s *Schema) resolveJobUser(p graphql.ResolveParams) (interface{}, error) {
	j, ok := p.Source.(*models.Job)
	if !ok {
		return nil, nil
	}
	return lookupRef(j.UserID, "user", func(id string) (*models.User, error) {
		return s.store.UserByID(p.Context, id)
	})
}

func (s *Schema) resolveInvoiceJob(p graphql.ResolveParams) (interface{}, error) {
	i, ok := p.Source.(*models.Invoice)
	if !ok {
		return nil, nil
	}
	return lookupRef(i.JobID, "job", func(id string) (*models.Job, error) {
		return s.store.JobByID(p.Context, id)
	})
}

func (s *Schema) resolveInvoiceClient(p graphql.ResolveParams) (interface{}, error) {
	i, ok := p.Source.(*models.Invoice)
	if !ok {
		return nil, nil
	}
	return lookupRef(i.ClientID, "client", func(id string) (*models.Client, error) {
		return s.store.ClientByID(p.Context, id)
	})
}
