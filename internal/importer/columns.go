package importer

import "strings"

// Canonical column keys. Each one accepts the aliases listed in columnAliases.
const (
	columnAssetID          = "asset_id"
	columnName             = "name"
	columnStatus           = "status"
	columnCriticality      = "criticality"
	columnEnvironment      = "environment"
	columnSite             = "site"
	columnLocation         = "location"
	columnRack             = "rack"
	columnVendor           = "vendor"
	columnModel            = "model"
	columnSerialNumber     = "serial_number"
	columnSwitchType       = "switch_type"
	columnCopperPorts      = "copper_ports"
	columnCopperPortsUsed  = "copper_ports_used"
	columnFiberPorts       = "fiber_ports"
	columnFiberPortsUsed   = "fiber_ports_used"
	columnManagementIP     = "management_ip"
	columnFirmware         = "firmware"
	columnAcquiredAt       = "acquired_at"
	columnAcquisitionValue = "acquisition_value"
	columnWarrantyStart    = "warranty_start"
	columnWarrantyEnd      = "warranty_end"
	columnNotes            = "notes"
)

var columnAliases = map[string][]string{
	columnAssetID:          {"id ativo", "id_ativo", "asset id"},
	columnName:             {"nome switch", "nome_switch", "nome"},
	columnStatus:           {"status funcionamento", "status_funcionamento"},
	columnCriticality:      {"criticidade"},
	columnEnvironment:      {"ambiente"},
	columnSite:             {"unidade"},
	columnLocation:         {"local detalhado", "local_detalhado"},
	columnVendor:           {"fabricante"},
	columnModel:            {"modelo"},
	columnSerialNumber:     {"número de série", "numero de serie", "numero_serie", "serial number"},
	columnSwitchType:       {"tipo switch", "tipo_switch", "type"},
	columnCopperPorts:      {"qtd ports utp", "qtd_ports_utp", "copper ports"},
	columnCopperPortsUsed:  {"ports utp usadas", "ports_utp_usadas", "copper ports used"},
	columnFiberPorts:       {"qtd ports fibra", "qtd_ports_fibra", "fiber ports"},
	columnFiberPortsUsed:   {"ports fibra usadas", "ports_fibra_usadas", "fiber ports used"},
	columnManagementIP:     {"ip gestão", "ip gestao", "ip_gestao", "management ip"},
	columnFirmware:         {"versão so/firmware", "versao so/firmware", "versao_so_firmware"},
	columnAcquiredAt:       {"data aquisição", "data aquisicao", "data_aquisicao", "acquired at"},
	columnAcquisitionValue: {"valor aquisição", "valor aquisicao", "valor_aquisicao", "acquisition value", "value"},
	columnWarrantyStart:    {"início garantia", "inicio garantia", "inicio_garantia", "warranty start"},
	columnWarrantyEnd:      {"fim garantia", "fim_garantia", "warranty end"},
	columnNotes:            {"observações", "observacoes"},
}

// buildColumnMap maps canonical column keys to their index in the header row.
// The first header matching a key wins.
func buildColumnMap(headers []string) map[string]int {
	lookup := make(map[string]string)
	for canonical, aliases := range columnAliases {
		lookup[canonical] = canonical
		for _, alias := range aliases {
			lookup[alias] = canonical
		}
	}

	colMap := make(map[string]int)
	for i, header := range headers {
		key := strings.ToLower(strings.TrimSpace(header))
		canonical, found := lookup[key]
		if !found {
			continue
		}
		if _, exists := colMap[canonical]; !exists {
			colMap[canonical] = i
		}
	}
	return colMap
}

func getColumnValue(row []string, colMap map[string]int, key string) string {
	if idx, exists := colMap[key]; exists && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
