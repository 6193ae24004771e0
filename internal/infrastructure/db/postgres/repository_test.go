package postgres

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

// sqlRecorder keeps every statement gorm builds.
type sqlRecorder struct {
	statements []string
}

func (r *sqlRecorder) LogMode(gormlogger.LogLevel) gormlogger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...any)            {}
func (r *sqlRecorder) Warn(context.Context, string, ...any)            {}
func (r *sqlRecorder) Error(context.Context, string, ...any)           {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	if len(r.statements) == 0 {
		t.Fatalf("no statement was built")
	}
	return r.statements[len(r.statements)-1]
}

// newDryRunDB builds statements without ever reaching a server.
func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{}
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db, rec
}

func TestAccountRepositories_OnlyCredentialReadsSelectPassword(t *testing.T) {
	ctx := context.Background()
	db, rec := newDryRunDB(t)
	admins := NewAdminRepository(db)
	customers := NewCustomerRepository(db)
	employees := NewEmployeeRepository(db)

	tests := []struct {
		name         string
		column       string
		run          func()
		wantPassword bool
	}{
		{"admin credential by email", colAdminPassword, func() { _, _ = admins.FindCredentialByEmail(ctx, "a@t.com") }, true},
		{"admin credential by id", colAdminPassword, func() { _, _ = admins.FindCredentialByID(ctx, 1) }, true},
		{"admin list", colAdminPassword, func() { _, _ = admins.List(ctx) }, false},
		{"admin find", colAdminPassword, func() { _, _ = admins.FindByID(ctx, 1) }, false},
		{"customer credential by email", colCustomerPassword, func() { _, _ = customers.FindCredentialByEmail(ctx, "c@t.com") }, true},
		{"customer list", colCustomerPassword, func() { _, _ = customers.List(ctx) }, false},
		{"customer find", colCustomerPassword, func() { _, _ = customers.FindByID(ctx, 1) }, false},
		{"employee credential by id", colEmployeePassword, func() { _, _ = employees.FindCredentialByID(ctx, 1) }, true},
		{"employee list", colEmployeePassword, func() { _, _ = employees.List(ctx, ports.EmployeeFilter{Position: "cajero"}) }, false},
		{"employee find", colEmployeePassword, func() { _, _ = employees.FindByID(ctx, 1) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.run()
			sql := rec.last(t)
			if !strings.HasPrefix(sql, "SELECT") {
				t.Fatalf("expected a SELECT, got %q", sql)
			}
			if got := strings.Contains(sql, tt.column); got != tt.wantPassword {
				t.Fatalf("password column present=%v, want %v: %s", got, tt.wantPassword, sql)
			}
		})
	}
}

func TestAccountRepositories_UpdateWritesPasswordOnlyWithHash(t *testing.T) {
	ctx := context.Background()
	db, rec := newDryRunDB(t)
	admins := NewAdminRepository(db)
	customers := NewCustomerRepository(db)

	_ = admins.Update(ctx, &domain.Admin{ID: 7, Name: "Ana", Username: "ana", Email: "a@t.com", Active: true}, "")
	if sql := rec.last(t); strings.Contains(sql, colAdminPassword) || !strings.Contains(sql, "adm_nombre") {
		t.Fatalf("update without hash must leave the password alone: %s", sql)
	}

	_ = admins.Update(ctx, &domain.Admin{ID: 7, Name: "Ana", Username: "ana", Email: "a@t.com", Active: true}, "$argon2id$x")
	if sql := rec.last(t); !strings.Contains(sql, colAdminPassword) {
		t.Fatalf("update with hash must write the password: %s", sql)
	}

	_ = customers.Update(ctx, &domain.Customer{ID: 3, Name: "Carlos", Email: "c@t.com", Active: true}, "")
	if sql := rec.last(t); strings.Contains(sql, colCustomerPassword) {
		t.Fatalf("update without hash must leave the password alone: %s", sql)
	}
}

// countAs makes every COUNT on table report n rows.
func countAs(t *testing.T, db *gorm.DB, table string, n int64) {
	t.Helper()
	err := db.Callback().Query().After("gorm:query").Register("test:count_as", func(tx *gorm.DB) {
		if count, ok := tx.Statement.Dest.(*int64); ok && tx.Statement.Table == table {
			*count = n
			tx.RowsAffected = 1
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
}

func TestAdminRepository_DuplicateDisambiguation(t *testing.T) {
	ctx := context.Background()

	t.Run("other errors pass through", func(t *testing.T) {
		db, _ := newDryRunDB(t)
		boom := errors.New("boom")
		if err := NewAdminRepository(db).duplicate(ctx, boom, 0, "root"); err != boom {
			t.Fatalf("expected the driver error, got %v", err)
		}
	})

	t.Run("email when the username is free", func(t *testing.T) {
		db, rec := newDryRunDB(t)
		err := NewAdminRepository(db).duplicate(ctx, gorm.ErrDuplicatedKey, 7, "root")
		if !errors.Is(err, domain.ErrDuplicateEmail) {
			t.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}
		sql := rec.last(t)
		if !strings.Contains(sql, "adm_usuario = 'root'") || !strings.Contains(sql, "adm_id <> 7") {
			t.Fatalf("unexpected lookup: %s", sql)
		}
	})

	t.Run("username when another admin holds it", func(t *testing.T) {
		db, _ := newDryRunDB(t)
		countAs(t, db, "administradores", 1)
		err := NewAdminRepository(db).duplicate(ctx, gorm.ErrDuplicatedKey, 0, "root")
		if !errors.Is(err, domain.ErrDuplicateUsername) {
			t.Fatalf("expected ErrDuplicateUsername, got %v", err)
		}
	})
}

func TestSupplierRepository_DuplicateDisambiguation(t *testing.T) {
	ctx := context.Background()

	db, rec := newDryRunDB(t)
	if err := NewSupplierRepository(db).duplicate(ctx, gorm.ErrDuplicatedKey, 0, "20123456789"); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if sql := rec.last(t); !strings.Contains(sql, "prove_ruc = '20123456789'") {
		t.Fatalf("unexpected lookup: %s", sql)
	}

	db, _ = newDryRunDB(t)
	countAs(t, db, "proveedores", 1)
	if err := NewSupplierRepository(db).duplicate(ctx, gorm.ErrDuplicatedKey, 0, "20123456789"); !errors.Is(err, domain.ErrDuplicateTaxID) {
		t.Fatalf("expected ErrDuplicateTaxID, got %v", err)
	}
}

func TestSupplierModel_ProductsForeignKey(t *testing.T) {
	s, err := schema.Parse(&supplierModel{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rel, ok := s.Relationships.Relations["Products"]
	if !ok {
		t.Fatalf("supplier has no products relation")
	}
	constraint := rel.ParseConstraint()
	if constraint == nil {
		t.Fatalf("expected a foreign key constraint")
	}
	if constraint.OnDelete != "SET NULL" {
		t.Fatalf("expected ON DELETE SET NULL, got %q", constraint.OnDelete)
	}
	if len(constraint.ForeignKeys) != 1 || constraint.ForeignKeys[0].DBName != "prove_id" {
		t.Fatalf("expected productos.prove_id as the key, got %+v", constraint.ForeignKeys)
	}
	if constraint.Schema.Table != "productos" || constraint.ReferenceSchema.Table != "proveedores" {
		t.Fatalf("unexpected tables %s -> %s", constraint.Schema.Table, constraint.ReferenceSchema.Table)
	}
}
