package services

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"region-service/internal/repositories"
	"region-service/pkg/types"
)

const (
	AreasSheet    = "Areas"
	SubAreasSheet = "SubAreas"
	BranchesSheet = "Branches"
)

var (
	areaHeaders    = []interface{}{"ID", "Name", "Description", "Created At", "Updated At"}
	subAreaHeaders = []interface{}{"ID", "Name", "Description", "Area ID", "Created At", "Updated At"}
	branchHeaders  = []interface{}{"ID", "Name", "Description", "Area ID", "Sub-area ID", "Created At", "Updated At"}
)

type ExportServiceInterface interface {
	BuildWorkbook(ctx context.Context) (*excelize.File, error)
}

// ExportService выгружает всю иерархию в XLSX: по листу на уровень, новые строки сверху.
type ExportService struct {
	areas    repositories.AreaRepositoryInterface
	subAreas repositories.SubAreaRepositoryInterface
	branches repositories.BranchRepositoryInterface
	logger   *zap.Logger
}

func NewExportService(
	areas repositories.AreaRepositoryInterface,
	subAreas repositories.SubAreaRepositoryInterface,
	branches repositories.BranchRepositoryInterface,
	logger *zap.Logger,
) ExportServiceInterface {
	return &ExportService{areas: areas, subAreas: subAreas, branches: branches, logger: logger}
}

func (s *ExportService) BuildWorkbook(ctx context.Context) (*excelize.File, error) {
	areas, err := s.areas.FindAll(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}
	subAreas, err := s.subAreas.FindAll(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}
	branches, err := s.branches.FindAll(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}

	areaRows := make([][]interface{}, 0, len(areas))
	for _, a := range areas {
		areaRows = append(areaRows, []interface{}{a.ID, a.Name, optional(a.Description), a.CreatedAt, a.UpdatedAt})
	}
	subAreaRows := make([][]interface{}, 0, len(subAreas))
	for _, sa := range subAreas {
		subAreaRows = append(subAreaRows, []interface{}{sa.ID, sa.Name, optional(sa.Description), sa.AreaID, sa.CreatedAt, sa.UpdatedAt})
	}
	branchRows := make([][]interface{}, 0, len(branches))
	for _, b := range branches {
		branchRows = append(branchRows, []interface{}{b.ID, b.Name, optional(b.Description), b.AreaID, b.SubAreaID, b.CreatedAt, b.UpdatedAt})
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", AreasSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("ошибка создания листа: %w", err)
	}
	for _, sheet := range []string{SubAreasSheet, BranchesSheet} {
		if _, err := f.NewSheet(sheet); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("ошибка создания листа %s: %w", sheet, err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	for _, part := range []struct {
		sheet   string
		headers []interface{}
		rows    [][]interface{}
	}{
		{AreasSheet, areaHeaders, areaRows},
		{SubAreasSheet, subAreaHeaders, subAreaRows},
		{BranchesSheet, branchHeaders, branchRows},
	} {
		if err := writeSheet(f, part.sheet, part.headers, part.rows, style); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	s.logger.Info("Выгрузка сформирована",
		zap.Int("areas", len(areas)),
		zap.Int("sub_areas", len(subAreas)),
		zap.Int("branches", len(branches)),
	)
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, headers []interface{}, rows [][]interface{}, style int) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("ошибка записи заголовка %s: %w", sheet, err)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", lastCol, style); err != nil {
		return err
	}

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("ошибка записи строки %s: %w", sheet, err)
		}
	}

	colName, _ := excelize.ColumnNumberToName(len(headers))
	return f.SetColWidth(sheet, "A", colName, 28)
}

func optional(s null.String) string {
	if !s.Valid {
		return ""
	}
	return s.String
}
