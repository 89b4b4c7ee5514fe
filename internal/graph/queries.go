package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/fieldserve/backoffice/internal/auth"
)

func (s *Schema) defineQuery(t *objectTypes) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"allClients": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.client)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return s.store.Clients(p.Context)
				},
			},
			"allAppointments": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.appointment)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return s.store.Appointments(p.Context)
				},
			},
			"allQuotes": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.quote)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return s.store.Quotes(p.Context)
				},
			},
			"allJobs": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.job)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return s.store.Jobs(p.Context)
				},
			},
			"allInvoices": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(t.invoice)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return s.store.Invoices(p.Context)
				},
			},
			"me": &graphql.Field{
				Type: t.user,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					// Anonymous callers read back null rather than an error.
					if u := auth.UserFrom(p.Context); u != nil {
						return u, nil
					}
					return nil, nil
				},
			},
		},
	})
}
