package service

import (
	"context"
	"fmt"

	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository"
)

type AdminService interface {
	SaveSPU(ctx context.Context, spu domain.SPU) (int64, error)
	OffShelf(ctx context.Context, id int64) error
	OnShelf(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int, f domain.SPUFilter) ([]domain.SPU, int64, error)
	Detail(ctx context.Context, id int64) (domain.SPU, error)
	// AddSKU 为指定颜色新增一个尺码库存单元,SN由商品、颜色、尺码推导
	AddSKU(ctx context.Context, colorID int64, size string, stock int64) (domain.SKU, error)
	SetStock(ctx context.Context, sn string, stock int64) error
}

func NewAdminService(repo repository.ProductRepository) AdminService {
	return &adminService{repo: repo}
}

type adminService struct {
	repo repository.ProductRepository
}

func (s *adminService) SaveSPU(ctx context.Context, spu domain.SPU) (int64, error) {
	if spu.ID == 0 {
		spu.Status = domain.StatusOnShelf
		return s.repo.CreateSPU(ctx, spu)
	}
	return spu.ID, s.repo.UpdateSPU(ctx, spu)
}

// OffShelf 下架即软删除,被订单引用的商品不做物理删除
func (s *adminService) OffShelf(ctx context.Context, id int64) error {
	return s.repo.UpdateSPUStatus(ctx, id, domain.StatusOffShelf)
}

func (s *adminService) OnShelf(ctx context.Context, id int64) error {
	return s.repo.UpdateSPUStatus(ctx, id, domain.StatusOnShelf)
}

func (s *adminService) List(ctx context.Context, offset, limit int, f domain.SPUFilter) ([]domain.SPU, int64, error) {
	f.IncludeOffShelf = true
	spus, err := s.repo.ListSPUs(ctx, offset, limit, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountSPUs(ctx, f)
	return spus, total, err
}

func (s *adminService) Detail(ctx context.Context, id int64) (domain.SPU, error) {
	return s.repo.FindSPUDetail(ctx, id)
}

func (s *adminService) AddSKU(ctx context.Context, colorID int64, size string, stock int64) (domain.SKU, error) {
	color, err := s.repo.FindColorByID(ctx, colorID)
	if err != nil {
		return domain.SKU{}, fmt.Errorf("查找商品颜色失败: %w", err)
	}
	const version = int64(1)
	sku := domain.SKU{
		SN:      fmt.Sprintf("%d_%d_%s_%d", color.SPUID, color.ID, size, version),
		SPUID:   color.SPUID,
		ColorID: color.ID,
		Size:    size,
		Version: version,
		Stock:   stock,
	}
	id, err := s.repo.CreateSKU(ctx, sku)
	if err != nil {
		return domain.SKU{}, err
	}
	sku.ID = id
	return sku, nil
}

func (s *adminService) SetStock(ctx context.Context, sn string, stock int64) error {
	if stock < 0 {
		return fmt.Errorf("库存数量非法: %d", stock)
	}
	return s.repo.SetStock(ctx, sn, stock)
}
