// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
// Structure:
//   - base.go: BaseModel, AggregateModel, DraftAggregateModel and MoneyColumns
//   - identity.go: user accounts, role bindings and role profiles
//   - project.go, contract.go, training.go, sponsorship.go, system.go: one file per aggregate
package models
