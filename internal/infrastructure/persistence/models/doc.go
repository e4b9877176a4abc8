// Package models contains the GORM persistence models for the domain
// entities. Models are kept separate from domain types so that database
// concerns (column types, indexes, table names) never leak into the domain.
package models
