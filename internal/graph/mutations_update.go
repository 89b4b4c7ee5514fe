package graph

import (
	"context"
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/fieldserve/backoffice/internal/store"
	"github.com/fieldserve/backoffice/internal/validators"
)

// The update mutations patch sparsely: only arguments present in the
// operation are assigned, so an omitted field and a field set to its zero
// value are different requests.

func (s *Schema) addUpdateMutations(fields graphql.Fields, t *objectTypes) {
	fields["updateClient"] = &graphql.Field{
		Type: t.client,
		Args: graphql.FieldConfigArgument{
			"name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone": &graphql.ArgumentConfig{Type: graphql.String},
			"email": &graphql.ArgumentConfig{Type: graphql.String},
			"tags":  &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
		},
		Resolve: s.resolveUpdateClient,
	}

	fields["updateAppointment"] = &graphql.Field{
		Type: t.appointment,
		Args: graphql.FieldConfigArgument{
			"id":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"title":        &graphql.ArgumentConfig{Type: graphql.String},
			"details":      &graphql.ArgumentConfig{Type: graphql.String},
			"request_date": &graphql.ArgumentConfig{Type: graphql.String},
			"app_time":     &graphql.ArgumentConfig{Type: graphql.String},
			"requested_on": &graphql.ArgumentConfig{Type: graphql.String},
			"notes":        &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
		},
		Resolve: s.resolveUpdateAppointment,
	}

	fields["updateQuote"] = &graphql.Field{
		Type: t.quote,
		Args: graphql.FieldConfigArgument{
			"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"description": &graphql.ArgumentConfig{Type: graphql.String},
			"scope":       &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"total":       &graphql.ArgumentConfig{Type: graphql.String},
			"notes":       &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: s.resolveUpdateQuote,
	}

	fields["updateJob"] = &graphql.Field{
		Type: t.job,
		Args: graphql.FieldConfigArgument{
			"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"title":       &graphql.ArgumentConfig{Type: graphql.String},
			"description": &graphql.ArgumentConfig{Type: graphql.String},
			"scope":       &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"total":       &graphql.ArgumentConfig{Type: graphql.String},
			"notes":       &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
		},
		Resolve: s.resolveUpdateJob,
	}

	fields["updateInvoice"] = &graphql.Field{
		Type: t.invoice,
		Args: graphql.FieldConfigArgument{
			"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"date_sent": &graphql.ArgumentConfig{Type: graphql.String},
			"scope":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"total":     &graphql.ArgumentConfig{Type: graphql.String},
			"notes":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
		},
		Resolve: s.resolveUpdateInvoice,
	}
}

func (s *Schema) resolveUpdateClient(p graphql.ResolveParams) (interface{}, error) {
	if _, err := s.requireUser(p.Context); err != nil {
		return nil, err
	}

	name, _ := stringArg(p.Args, "name")
	client, err := s.store.ClientByName(p.Context, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewInputError("client not found: "+name, p.Args)
		}
		return nil, err
	}

	if phone, ok := stringArg(p.Args, "phone"); ok {
		if err := validators.MinLen("phone", phone, validators.ClientPhoneMin); err != nil {
			return nil, NewInputError(err.Error(), p.Args)
		}
		client.Phone = phone
	}
	if email, ok := stringArg(p.Args, "email"); ok {
		if err := validators.MinLen("email", email, validators.ClientEmailMin); err != nil {
			return nil, NewInputError(err.Error(), p.Args)
		}
		client.Email = email
	}
	if tags, ok := stringListArg(p.Args, "tags"); ok {
		client.Tags = tags
	}

	if err := s.store.SaveClient(p.Context, client); err != nil {
		return nil, err
	}

	s.recordAudit(p.Context, "update", "client", client.ID, sanitizeArgs(p.Args))
	return client, nil
}

// byID fetches the patch target, translating a miss into an input error so
// the caller gets the offending arguments back.
func byID[T any](ctx context.Context, args map[string]interface{}, kind string, find func(context.Context, string) (*T, error)) (*T, error) {
	id, _ := stringArg(args, "id")
	rec, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewInputError(kind+" not found: "+id, args)
		}
		return nil, err
	}
	return rec, nil
}

func (s *Schema) resolveUpdateAppointment(p graphql.ResolveParams) (interface{}, error) {
	if _, err := s.requireUser(p.Context); err != nil {
		return nil, err
	}

	appointment, err := byID(p.Context, p.Args, "appointment", s.store.AppointmentByID)
	if err != nil {
		return nil, err
	}

	if v, ok := stringArg(p.Args, "title"); ok {
		appointment.Title = v
	}
	if v, ok := stringArg(p.Args, "details"); ok {
		appointment.Details = v
	}
	if v, ok := stringArg(p.Args, "request_date"); ok {
		appointment.RequestDate = v
	}
	if v, ok := stringArg(p.Args, "app_time"); ok {
		appointment.AppTime = v
	}
	if v, ok := stringArg(p.Args, "requested_on"); ok {
		appointment.RequestedOn = v
	}
	if v, ok := stringListArg(p.Args, "notes"); ok {
		appointment.Notes = v
	}

	if err := s.store.SaveAppointment(p.Context, appointment); err != nil {
		return nil, err
	}

	s.recordAudit(p.Context, "update", "appointment", appointment.ID, sanitizeArgs(p.Args))
	return appointment, nil
}

func (s *Schema) resolveUpdateQuote(p graphql.ResolveParams) (interface{}, error) {
	if _, err := s.requireUser(p.Context); err != nil {
		return nil, err
	}

	quote, err := byID(p.Context, p.Args, "quote", s.store.QuoteByID)
	if err != nil {
		return nil, err
	}

	if v, ok := stringArg(p.Args, "description"); ok {
		quote.Description = v
	}
	if v, ok := stringListArg(p.Args, "scope"); ok {
		quote.Scope = v
	}
	if v, ok := stringArg(p.Args, "total"); ok {
		quote.Total = v
	}
	if v, ok := stringArg(p.Args, "notes"); ok {
		quote.Notes = v
	}

	if err := s.store.SaveQuote(p.Context, quote); err != nil {
		return nil, err
	}

	s.recordAudit(p.Context, "update", "quote", quote.ID, sanitizeArgs(p.Args))
	return quote, nil
}

func (s *Schema) resolveUpdateJob(p graphql.ResolveParams) (interface{}, error) {
	if _, err := s.requireUser(p.Context); err != nil {
		return nil, err
	}

	job, err := byID(p.Context, p.Args, "job", s.store.JobByID)
	if err != nil {
		return nil, err
	}

	if v, ok := stringArg(p.Args, "title"); ok {
		job.Title = v
	}
	if v, ok := stringArg(p.Args, "description"); ok {
		job.Description = v
	}
	if v, ok := stringListArg(p.Args, "scope"); ok {
		job.Scope = v
	}
	if v, ok := stringArg(p.Args, "total"); ok {
		job.Total = v
	}
	if v, ok := stringListArg(p.Args, "notes"); ok {
		job.Notes = v
	}

	if err := s.store.SaveJob(p.Context, job); err != nil {
		return nil, err
	}

	s.recordAudit(p.Context, "update", "job", job.ID, sanitizeArgs(p.Args))
	return job, nil
}

func (s *Schema) resolveUpdateInvoice(p graphql.ResolveParams) (interface{}, error) {
	if _, err := s.requireUser(p.Context); err != nil {
		return nil, err
	}

	invoice, err := byID(p.Context, p.Args, "invoice", s.store.InvoiceByID)
	if err != nil {
		return nil, err
	}

	if v, ok := stringArg(p.Args, "date_sent"); ok {
		invoice.DateSent = v
	}
	if v, ok := stringListArg(p.Args, "scope"); ok {
		invoice.Scope = v
	}
	if v, ok := stringArg(p.Args, "total"); ok {
		invoice.Total = v
	}
	if v, ok := stringListArg(p.Args, "notes"); ok {
		invoice.Notes = v
	}

	if err := s.store.SaveInvoice(p.Context, invoice); err != nil {
		return nil, err
	}

	s.recordAudit(p.Context, "update", "invoice", invoice.ID, sanitizeArgs(p.Args))
	return invoice, nil
}
