package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/fieldserve/backoffice/internal/auth"
	"github.com/fieldserve/backoffice/internal/models"
	"github.com/fieldserve/backoffice/internal/store"
	"github.com/fieldserve/backoffice/internal/validators"
)

func (s *Schema) addAccountMutations(fields graphql.Fields, t *objectTypes) {
	fields["createUser"] = &graphql.Field{
		Type: t.user,
		Args: graphql.FieldConfigArgument{
			"name":     &graphql.ArgumentConfig{Type: graphql.String},
			"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: s.resolveCreateUser,
	}

	fields["login"] = &graphql.Field{
		Type: t.token,
		Args: graphql.FieldConfigArgument{
			"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: s.resolveLogin,
	}
}

func (s *Schema) resolveCreateUser(p graphql.ResolveParams) (interface{}, error) {
	name, _ := stringArg(p.Args, "name")
	email, _ := stringArg(p.Args, "email")
	password, _ := stringArg(p.Args, "password")

	if err := validators.RequiredMinLen("name", name, validators.UserNameMin); err != nil {
		return nil, NewInputError(err.Error(), p.Args)
	}
	if err := validators.RequiredMinLen("email", email, validators.UserEmailMin); err != nil {
		return nil, NewInputError(err.Error(), p.Args)
	}
	if err := validators.Required("password", password); err != nil {
		return nil, NewInputError(err.Error(), p.Args)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(p.Context, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, NewInputError("email already registered: "+email, p.Args)
		}
		return nil, err
	}

	s.recordAudit(p.Context, "create", "user", user.ID, map[string]interface{}{"email": email})
	return user, nil
}

func (s *Schema) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	email, _ := stringArg(p.Args, "email")
	password, _ := stringArg(p.Args, "password")

	user, err := s.store.UserByEmail(p.Context, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &CredentialsError{}
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, &CredentialsError{}
	}

	token, err := s.tokens.Sign(user)
	if err != nil {
		return nil, err
	}

	s.recordAudit(p.Context, "login", "user", user.ID, map[string]interface{}{"email": email})
	return map[string]interface{}{"value": token}, nil
}
