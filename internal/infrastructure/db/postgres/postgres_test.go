package postgres

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/taller/store-api/internal/core/domain"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 5432, User: "app", Password: "s3cret", Database: "tienda"}

	want := "host=db port=5432 user=app password=s3cret dbname=tienda sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	cfg.SSLMode = "require"
	if got := cfg.DSN(); got != "host=db port=5432 user=app password=s3cret dbname=tienda sslmode=require" {
		t.Fatalf("sslmode not applied: %q", got)
	}
}

func TestTranslate(t *testing.T) {
	other := errors.New("boom")

	tests := []struct {
		name      string
		err       error
		duplicate error
		want      error
	}{
		{"nil", nil, domain.ErrDuplicateEmail, nil},
		{"record not found", gorm.ErrRecordNotFound, nil, domain.ErrNotFound},
		{"wrapped not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), nil, domain.ErrNotFound},
		{"duplicate key", gorm.ErrDuplicatedKey, domain.ErrDuplicateEmail, domain.ErrDuplicateEmail},
		{"duplicate key without mapping", gorm.ErrDuplicatedKey, nil, gorm.ErrDuplicatedKey},
		{"other", other, domain.ErrDuplicateEmail, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(tt.err, tt.duplicate); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAffected(t *testing.T) {
	if err := affected(&gorm.DB{RowsAffected: 0}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for zero rows, got %v", err)
	}
	if err := affected(&gorm.DB{RowsAffected: 1}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	boom := errors.New("boom")
	if err := affected(&gorm.DB{Error: boom}); err != boom {
		t.Fatalf("expected driver error, got %v", err)
	}
}
