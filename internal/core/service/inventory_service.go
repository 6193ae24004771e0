package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

const entityInventory = "inventario"

type InventoryService struct {
	repo     ports.InventoryRepository
	products ports.ProductRepository
	stores   ports.StoreRepository
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewInventoryService(
	repo ports.InventoryRepository,
	products ports.ProductRepository,
	stores ports.StoreRepository,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *InventoryService {
	return &InventoryService{repo: repo, products: products, stores: stores, audit: audit, log: log}
}

func (s *InventoryService) Create(ctx context.Context, in ports.CreateInventoryInput) (*domain.InventoryItem, error) {
	product, err := s.product(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	store, err := s.store(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}

	item := &domain.InventoryItem{
		Quantity:  in.Quantity,
		UnitCost:  in.UnitCost,
		ProductID: in.ProductID,
		StoreID:   in.StoreID,
		Active:    orDefault(in.Active, true),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create inventory: %w", err)
	}
	item.Product, item.Store = product, store

	record(ctx, s.audit, domain.AuditCreate, entityInventory, item.ID)
	s.log.Info().Int64("inv_id", item.ID).Int64("prod_id", item.ProductID).Int64("tienda_id", item.StoreID).Msg("inventory created")
	return item, nil
}

func (s *InventoryService) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.repo.List(ctx)
}

func (s *InventoryService) Get(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFound(fmt.Sprintf("Inventario con ID %d no encontrado", id))
	}
	return item, err
}

func (s *InventoryService) Update(ctx context.Context, id int64, in ports.UpdateInventoryInput) (*domain.InventoryItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ProductID != nil {
		product, err := s.product(ctx, *in.ProductID)
		if err != nil {
			return nil, err
		}
		item.ProductID, item.Product = product.ID, product
	}
	if in.StoreID != nil {
		store, err := s.store(ctx, *in.StoreID)
		if err != nil {
			return nil, err
		}
		item.StoreID, item.Store = store.ID, store
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.UnitCost != nil {
		item.UnitCost = *in.UnitCost
	}
	if in.Active != nil {
		item.Active = *in.Active
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update inventory: %w", err)
	}

	record(ctx, s.audit, domain.AuditUpdate, entityInventory, id)
	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}

	record(ctx, s.audit, domain.AuditDelete, entityInventory, id)
	return nil
}

func (s *InventoryService) product(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFound("Producto no encontrado")
	}
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	return product, nil
}

func (s *InventoryService) store(ctx context.Context, id int64) (*domain.Store, error) {
	store, err := s.stores.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFound("Tienda no encontrada")
	}
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	return store, nil
}
