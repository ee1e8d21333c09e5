// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Lookups that find nothing return an error wrapping pgx.ErrNoRows whose
// message starts with "table:<name>:", which sqlerr turns into a 404.
package repository

import (
	"github.com/deppfellow/biztime/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Company *CompanyRepository
	Invoice *InvoiceRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Company: NewCompanyRepository(s.DB.Pool),
		Invoice: NewInvoiceRepository(s.DB.Pool),
	}
}
