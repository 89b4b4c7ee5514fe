package graph

import (
	"context"
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/fieldserve/backoffice/internal/models"
	"github.com/fieldserve/backoffice/internal/store"
	"github.com/fieldserve/backoffice/internal/validators"
)

func (s *Schema) addCreateMutations(fields graphql.Fields, t *objectTypes) {
	fields["addClient"] = &graphql.Field{
		Type: t.client,
		Args: graphql.FieldConfigArgument{
			"name":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone":  &graphql.ArgumentConfig{Type: graphql.String},
			"email":  &graphql.ArgumentConfig{Type: graphql.String},
			"tags":   &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"street": &graphql.ArgumentConfig{Type: graphql.String},
			"city":   &graphql.ArgumentConfig{Type: graphql.String},
			"state":  &graphql.ArgumentConfig{Type: graphql.String},
			"zip":    &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: s.resolveAddClient,
	}

	fields["addAppointment"] = &graphql.Field{
		Type: t.appointment,
		Args: graphql.FieldConfigArgument{
			"title":        &graphql.ArgumentConfig{Type: graphql.String},
			"details":      &graphql.ArgumentConfig{Type: graphql.String},
			"request_date": &graphql.ArgumentConfig{Type: graphql.String},
			"app_time":     &graphql.ArgumentConfig{Type: graphql.String},
			"requested_on": &graphql.ArgumentConfig{Type: graphql.String},
			"notes":        &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"client":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: s.resolveAddAppointment,
	}

	fields["addQuote"] = &graphql.Field{
		Type: t.quote,
		Args: graphql.FieldConfigArgument{
			"description": &graphql.ArgumentConfig{Type: graphql.String},
			"scope":       &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"total":       &graphql.ArgumentConfig{Type: graphql.String},
			"notes":       &graphql.ArgumentConfig{Type: graphql.String},
			"client":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: s.resolveAddQuote,
	}

	fields["addJob"] = &graphql.Field{
		Type: t.job,
		Args: graphql.FieldConfigArgument{
			"title":       &graphql.ArgumentConfig{Type: graphql.String},
			"description": &graphql.ArgumentConfig{Type: graphql.String},
			"scope":       &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"total":       &graphql.ArgumentConfig{Type: graphql.String},
			"notes":       &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"quote":       &graphql.ArgumentConfig{Type: graphql.ID},
			"client":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: s.resolveAddJob,
	}

	fields["addInvoice"] = &graphql.Field{
		Type: t.invoice,
		Args: graphql.FieldConfigArgument{
			"date_sent": &graphql.ArgumentConfig{Type: graphql.String},
			"scope":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"total":     &graphql.ArgumentConfig{Type: graphql.String},
			"notes":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"job":       &graphql.ArgumentConfig{Type: graphql.ID},
			"client":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: s.resolveAddInvoice,
	}
}

// clientRef resolves the client name argument to a stored Client. Unknown
// names fail fast: the record link is the client's stable id, so it has to
// exist at creation time.
func (s *Schema) clientRef(ctx context.Context, args map[string]interface{}) (*models.Client, error) {
	name, _ := stringArg(args, "client")
	client, err := s.store.ClientByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewInputError("client not found: "+name, args)
		}
		return nil, err
	}
	return client, nil
}

func (s *Schema) resolveAddClient(p graphql.ResolveParams) (interface{}, error) {
	if _, err := s.requireWriter(p.Context); err != nil {
		return nil, err
	}

	name, _ := stringArg(p.Args, "name")
	phone, _ := stringArg(p.Args, "phone")
	email, _ := stringArg(p.Args, "email")
	tags, _ := stringListArg(p.Args, "tags")

	if err := validators.RequiredMinLen("name", name, validators.ClientNameMin); err != nil {
		return nil, NewInputError(err.Error(), p.Args)
	}
	if err := validators.MinLen("phone", phone, validators.ClientPhoneMin); err != nil {
		return nil, NewInputError(err.Error(), p.Args)
	}
	if err := validators.MinLen("email", email, validators.ClientEmailMin); err != nil {
		return nil, NewInputError(err.Error(), p.Args)
	}

	street, _ := stringArg(p.Args, "street")
	city, _ := stringArg(p.Args, "city")
	state, _ := stringArg(p.Args, "state")
	zip, _ := stringArg(p.Args, "zip")

	client := &models.Client{
		Name:  name,
		Phone: phone,
		Email: email,
		Tags:  tags,
	}
	address := &models.Address{
		Street: street,
		City:   city,
		State:  state,
		Zip:    zip,
	}

	if err := s.store.CreateClientWithAddress(p.Context, client, address); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, NewInputError("client name already taken: "+name, p.Args)
		}
		return nil, err
	}

	s.recordAudit(p.Context, "create", "client", client.ID, sanitizeArgs(p.Args))
	return client, nil
}

func (s *Schema) resolveAddAppointment(p graphql.ResolveParams) (interface{}, error) {
	user, err := s.requireWriter(p.Context)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRef(p.Context, p.Args)
	if err != nil {
		return nil, err
	}

	title, _ := stringArg(p.Args, "title")
	details, _ := stringArg(p.Args, "details")
	requestDate, _ := stringArg(p.Args, "request_date")
	appTime, _ := stringArg(p.Args, "app_time")
	requestedOn, _ := stringArg(p.Args, "requested_on")
	notes, _ := stringListArg(p.Args, "notes")

	appointment := &models.Appointment{
		Title:       title,
		Details:     details,
		RequestDate: requestDate,
		AppTime:     appTime,
		RequestedOn: requestedOn,
		Notes:       notes,
		ClientID:    client.ID,
	}
	if user != nil {
		appointment.UserID = user.ID
	}

	if err := s.store.CreateAppointment(p.Context, appointment); err != nil {
		return nil, err
	}

	s.recordAudit(p.Context, "create", "appointment", appointment.ID, sanitizeArgs(p.Args))
	return appointment, nil
}

func (s *Schema) resolveAddQuote(p graphql.ResolveParams) (interface{}, error) {
	if _, err := s.requireWriter(p.Context); err != nil {
		return nil, err
	}

	client, err := s.clientRef(p.Context, p.Args)
	if err != nil {
		return nil, err
	}

	description, _ := stringArg(p.Args, "description")
	scope, _ := stringListArg(p.Args, "scope")
	total, _ := stringArg(p.Args, "total")
	notes, _ := stringArg(p.Args, "notes")

	quote := &models.Quote{
		Description: description,
		Scope:       scope,
		Total:       total,
		Notes:       notes,
		ClientID:    client.ID,
	}

	if err := s.store.CreateQuote(p.Context, quote); err != nil {
		return nil, err
	}

	s.recordAudit(p.Context, "create", "quote", quote.ID, sanitizeArgs(p.Args))
	return quote, nil
}

func (s *Schema) resolveAddJob(p graphql.ResolveParams) (interface{}, error) {
	user, err := s.requireWriter(p.Context)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRef(p.Context, p.Args)
	if err != nil {
		return nil, err
	}

	// The quote link is optional, but a supplied id has to resolve.
	var quoteID string
	if id, ok := stringArg(p.Args, "quote"); ok && id != "" {
		quote, err := s.store.QuoteByID(p.Context, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, NewInputError("quote not found: "+id, p.Args)
			}
			return nil, err
		}
		quoteID = quote.ID
	}

	title, _ := stringArg(p.Args, "title")
	description, _ := stringArg(p.Args, "description")
	scope, _ := stringListArg(p.Args, "scope")
	total, _ := stringArg(p.Args, "total")
	notes, _ := stringListArg(p.Args, "notes")

	job := &models.Job{
		Title:       title,
		Description: description,
		Scope:       scope,
		Total:       total,
		Notes:       notes,
		QuoteID:     quoteID,
		ClientID:    client.ID,
	}
	if user != nil {
		job.UserID = user.ID
	}

	if err := s.store.CreateJob(p.Context, job); err != nil {
		return nil, err
	}

	s.recordAudit(p.Context, "create", "job", job.ID, sanitizeArgs(p.Args))
	return job, nil
}

func (s *Schema) resolveAddInvoice(p graphql.ResolveParams) (interface{}, error) {
	if _, err := s.requireWriter(p.Context); err != nil {
		return nil, err
	}

	client, err := s.clientRef(p.Context, p.Args)
	if err != nil {
		return nil, err
	}

	var jobID string
	if id, ok := stringArg(p.Args, "job"); ok && id != "" {
		job, err := s.store.JobByID(p.Context, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, NewInputError("job not found: "+id, p.Args)
			}
			return nil, err
		}
		jobID = job.ID
	}

	dateSent, _ := stringArg(p.Args, "date_sent")
	scope, _ := stringListArg(p.Args, "scope")
	total, _ := stringArg(p.Args, "total")
	notes, _ := stringListArg(p.Args, "notes")

	invoice := &models.Invoice{
		DateSent: dateSent,
		Scope:    scope,
		Total:    total,
		Notes:    notes,
		JobID:    jobID,
		ClientID: client.ID,
	}

	if err := s.store.CreateInvoice(p.Context, invoice); err != nil {
		return nil, err
	}

	s.recordAudit(p.Context, "create", "invoice", invoice.ID, sanitizeArgs(p.Args))
	return invoice, nil
}
