package store

import (
	"time"

	"github.com/kubev2v/switch-inventory/internal/store/model"
)

// GenerateDefaultInventory returns the demo inventory loaded by Seed.
func GenerateDefaultInventory() []model.Switch {
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	str := func(s string) *string { return &s }
	num := func(i int) *int { return &i }
	money := func(f float64) *float64 { return &f }

	return []model.Switch{
		{
			AssetID: "SW-0001", Name: "CORE-SEDE-01", Status: model.StatusInProduction, Criticality: "Alta",
			Environment: "Produção", Site: "Sede", Location: str("Datacenter - Sala 1"), Rack: str("R01"),
			Vendor: "Cisco", Model: "Catalyst 9500-48Y4C", SwitchType: str("Core"),
			CopperPorts: num(48), CopperPortsUsed: num(41), FiberPorts: num(4), FiberPortsUsed: num(4),
			ManagementIP: str("10.0.0.2"), Firmware: str("IOS-XE 17.9.4"),
			AcquiredAt: date(2022, time.March, 10), AcquisitionValue: money(185000),
			WarrantyStart: date(2022, time.March, 10), WarrantyEnd: date(2027, time.March, 10),
		},
		{
			AssetID: "SW-0002", Name: "DIST-SEDE-01", Status: model.StatusInProduction, Criticality: "Alta",
			Environment: "Produção", Site: "Sede", Location: str("Datacenter - Sala 1"), Rack: str("R02"),
			Vendor: "Cisco", Model: "Catalyst 9300-48P", SwitchType: str("Distribuição"),
			CopperPorts: num(48), CopperPortsUsed: num(30), FiberPorts: num(4), FiberPortsUsed: num(2),
			ManagementIP: str("10.0.0.3"), Firmware: str("IOS-XE 17.6.5"),
			AcquiredAt: date(2021, time.November, 5), AcquisitionValue: money(62000),
			WarrantyStart: date(2021, time.November, 5), WarrantyEnd: date(2026, time.November, 5),
		},
		{
			AssetID: "SW-0003", Name: "ACC-SEDE-2ANDAR", Status: model.StatusInProduction, Criticality: "Média",
			Environment: "Produção", Site: "Sede", Location: str("2º andar - Rack de acesso"),
			Vendor: "HP", Model: "Aruba 2930F-48G", SwitchType: str("Acesso"),
			CopperPorts: num(48), CopperPortsUsed: num(48),
			ManagementIP: str("10.0.2.10"),
			AcquiredAt:   date(2020, time.June, 1), AcquisitionValue: money(18500.5),
			WarrantyEnd: date(2025, time.June, 1),
		},
		{
			AssetID: "SW-0004", Name: "ACC-SEDE-3ANDAR", Status: model.StatusMaintenance, Criticality: "Baixa",
			Environment: "Produção", Site: "Sede", Location: str("3º andar - Rack de acesso"),
			Vendor: "HP", Model: "Aruba 2530-24G", SwitchType: str("Acesso"),
			CopperPorts: num(24), CopperPortsUsed: num(12),
			AcquiredAt: date(2019, time.February, 20), AcquisitionValue: money(7200),
			WarrantyEnd: date(2024, time.February, 20),
		},
		{
			AssetID: "SW-0005", Name: "FILIAL-NORTE-01", Status: model.StatusActive, Criticality: "Média",
			Environment: "Produção", Site: "Filial Norte", Location: str("Sala técnica"),
			Vendor: "Mikrotik", Model: "CRS326-24G-2S+", SwitchType: str("Acesso"),
			CopperPorts: num(24), CopperPortsUsed: num(18), FiberPorts: num(2), FiberPortsUsed: num(1),
			ManagementIP: str("10.10.0.2"), Firmware: str("RouterOS 7.12"),
			AcquiredAt: date(2023, time.August, 14), AcquisitionValue: money(2100),
			WarrantyEnd: date(2026, time.August, 14),
		},
		{
			AssetID: "SW-0006", Name: "FILIAL-SUL-01", Status: model.StatusInactive, Criticality: "Baixa",
			Environment: "Teste", Site: "Filial Sul", Location: str("Almoxarifado"),
			Vendor: "TP-Link", Model: "TL-SG3428", SwitchType: str("Acesso"),
			CopperPorts: num(24), CopperPortsUsed: num(0),
			AcquiredAt: date(2022, time.January, 30), AcquisitionValue: money(1450),
			WarrantyEnd: date(2027, time.January, 30),
		},
		{
			AssetID: "SW-0007", Name: "LAB-DLINK-01", Status: model.StatusInactiveMaintenance, Criticality: "Baixa",
			Environment: "Desenvolvimento", Site: "Sede", Location: str("Laboratório"),
			Vendor: "D-Link", Model: "DGS-1210-28",
			CopperPorts: num(28), CopperPortsUsed: num(5),
			AcquiredAt: date(2018, time.May, 2), AcquisitionValue: money(980),
		},
		{
			AssetID: "SW-0008", Name: "UNIDADE-CENTRO-01", Status: model.StatusInProduction, Criticality: "Alta",
			Environment: "Produção", Site: "Unidade Centro", Location: str("CPD"),
			Vendor: "Cisco", Model: "Catalyst 9200L-24P", SwitchType: str("Acesso"),
			CopperPorts: num(24), CopperPortsUsed: num(20), FiberPorts: num(4), FiberPortsUsed: num(1),
			ManagementIP: str("10.20.0.2"), Firmware: str("IOS-XE 17.9.4"),
			AcquiredAt: date(2024, time.April, 22), AcquisitionValue: money(21800),
			WarrantyStart: date(2024, time.April, 22), WarrantyEnd: date(2029, time.April, 22),
		},
	}
}
