package importer

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/kubev2v/switch-inventory/internal/store/model"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// SheetName is the worksheet holding the inventory.
const SheetName = "Inventario Switches"

const (
	defaultName        = "Switch Sem Nome"
	defaultCriticality = "Média"
	defaultEnvironment = "Produção"
	defaultSite        = "Sede"
	defaultVendor      = "Desconhecido"
	defaultModel       = "Desconhecido"
)

var ErrSheetNotFound = fmt.Errorf("sheet %q not found", SheetName)

// Row is one parsed data row. Line is the 1-based spreadsheet line.
type Row struct {
	Line   int
	Switch model.Switch
}

// RowError reports a data row that could not be parsed.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return e.Err.Error()
}

type Result struct {
	Rows   []Row
	Errors []RowError
}

// Parse reads the inventory sheet. Headers are matched ignoring case, accents are kept.
// Rows that fail to parse are reported in Result.Errors and do not stop the parsing.
func Parse(r io.Reader) (*Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read the file")
	}

	excelFile, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, "error opening Excel file")
	}
	defer excelFile.Close()

	if !slices.Contains(excelFile.GetSheetList(), SheetName) {
		return nil, ErrSheetNotFound
	}

	rows, err := excelFile.GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", SheetName)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("sheet %q has no header", SheetName)
	}

	colMap := buildColumnMap(rows[0])
	if _, found := colMap[columnName]; !found {
		if _, found := colMap[columnAssetID]; !found {
			return nil, errors.Errorf("sheet %q has neither an asset id nor a name column", SheetName)
		}
	}

	result := &Result{Rows: []Row{}, Errors: []RowError{}}
	for i, row := range rows[1:] {
		line := i + 2
		if isBlank(row) {
			continue
		}

		sw, err := parseSwitch(row, colMap)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Line: line, Err: errors.Wrapf(err, "line %d", line)})
			continue
		}
		result.Rows = append(result.Rows, Row{Line: line, Switch: sw})
	}

	zap.S().Named("importer").Infow("parsed inventory sheet", "rows", len(result.Rows), "errors", len(result.Errors))

	return result, nil
}

func parseSwitch(row []string, colMap map[string]int) (model.Switch, error) {
	sw := model.Switch{
		AssetID:      getColumnValue(row, colMap, columnAssetID),
		Name:         valueOr(getColumnValue(row, colMap, columnName), defaultName),
		Status:       valueOr(getColumnValue(row, colMap, columnStatus), model.StatusInProduction),
		Criticality:  valueOr(getColumnValue(row, colMap, columnCriticality), defaultCriticality),
		Environment:  valueOr(getColumnValue(row, colMap, columnEnvironment), defaultEnvironment),
		Site:         valueOr(getColumnValue(row, colMap, columnSite), defaultSite),
		Location:     optional(getColumnValue(row, colMap, columnLocation)),
		Rack:         optional(getColumnValue(row, colMap, columnRack)),
		Vendor:       valueOr(getColumnValue(row, colMap, columnVendor), defaultVendor),
		Model:        valueOr(getColumnValue(row, colMap, columnModel), defaultModel),
		SerialNumber: optional(getColumnValue(row, colMap, columnSerialNumber)),
		SwitchType:   optional(getColumnValue(row, colMap, columnSwitchType)),
		ManagementIP: optional(getColumnValue(row, colMap, columnManagementIP)),
		Firmware:     optional(getColumnValue(row, colMap, columnFirmware)),
		Notes:        optional(getColumnValue(row, colMap, columnNotes)),
	}

	var err error
	ints := []struct {
		column string
		target **int
	}{
		{columnCopperPorts, &sw.CopperPorts},
		{columnCopperPortsUsed, &sw.CopperPortsUsed},
		{columnFiberPorts, &sw.FiberPorts},
		{columnFiberPortsUsed, &sw.FiberPortsUsed},
	}
	for _, c := range ints {
		if *c.target, err = parseInt(getColumnValue(row, colMap, c.column)); err != nil {
			return model.Switch{}, errors.Wrapf(err, "invalid %s", c.column)
		}
	}

	dates := []struct {
		column string
		target **time.Time
	}{
		{columnAcquiredAt, &sw.AcquiredAt},
		{columnWarrantyStart, &sw.WarrantyStart},
		{columnWarrantyEnd, &sw.WarrantyEnd},
	}
	for _, c := range dates {
		if *c.target, err = parseDate(getColumnValue(row, colMap, c.column)); err != nil {
			return model.Switch{}, errors.Wrapf(err, "invalid %s", c.column)
		}
	}

	if sw.AcquisitionValue, err = parseMoney(getColumnValue(row, colMap, columnAcquisitionValue)); err != nil {
		return model.Switch{}, errors.Wrapf(err, "invalid %s", columnAcquisitionValue)
	}

	return sw, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
