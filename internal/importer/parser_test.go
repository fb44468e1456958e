package importer_test

import (
	"bytes"
	"time"

	"github.com/kubev2v/switch-inventory/internal/importer"
	"github.com/kubev2v/switch-inventory/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(sheet string, rows [][]any) *bytes.Buffer {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(sheet)
	Expect(err).To(Succeed())
	Expect(f.DeleteSheet("Sheet1")).To(Succeed())

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		Expect(err).To(Succeed())
		Expect(f.SetSheetRow(sheet, cell, &row)).To(Succeed())
	}

	buf := new(bytes.Buffer)
	_, err = f.WriteTo(buf)
	Expect(err).To(Succeed())
	return buf
}

var _ = Describe("parser", func() {
	It("maps headers ignoring case and fills the defaults", func() {
		warrantyEnd := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
		buf := writeWorkbook(importer.SheetName, [][]any{
			{"ID Ativo", "NOME SWITCH", "Status Funcionamento", "Fabricante", "Unidade", "Local Detalhado", "Qtd Ports UTP", "Ports UTP Usadas", "Valor Aquisição", "Fim Garantia", "Unknown"},
			{"SW-0001", "CORE-01", "Ativo", "Cisco", "Filial Norte", "CPD", 48, 40, 1500.5, warrantyEnd, "ignored"},
			{"SW-0002"},
		})

		result, err := importer.Parse(buf)
		Expect(err).To(BeNil())
		Expect(result.Errors).To(BeEmpty())
		Expect(result.Rows).To(HaveLen(2))

		first := result.Rows[0]
		Expect(first.Line).To(Equal(2))
		Expect(first.Switch.AssetID).To(Equal("SW-0001"))
		Expect(first.Switch.Name).To(Equal("CORE-01"))
		Expect(first.Switch.Status).To(Equal(model.StatusActive))
		Expect(first.Switch.Vendor).To(Equal("Cisco"))
		Expect(first.Switch.Site).To(Equal("Filial Norte"))
		Expect(*first.Switch.Location).To(Equal("CPD"))
		Expect(*first.Switch.CopperPorts).To(Equal(48))
		Expect(*first.Switch.CopperPortsUsed).To(Equal(40))
		Expect(*first.Switch.AcquisitionValue).To(BeNumerically("~", 1500.5, 0.001))
		Expect(model.Date(*first.Switch.WarrantyEnd)).To(Equal(warrantyEnd))
		Expect(first.Switch.FiberPorts).To(BeNil())

		second := result.Rows[1]
		Expect(second.Switch.AssetID).To(Equal("SW-0002"))
		Expect(second.Switch.Name).To(Equal("Switch Sem Nome"))
		Expect(second.Switch.Status).To(Equal(model.StatusInProduction))
		Expect(second.Switch.Criticality).To(Equal("Média"))
		Expect(second.Switch.Site).To(Equal("Sede"))
		Expect(second.Switch.Vendor).To(Equal("Desconhecido"))
		Expect(second.Switch.Location).To(BeNil())
		Expect(second.Switch.AcquisitionValue).To(BeNil())
	})

	It("accepts english headers and text values", func() {
		buf := writeWorkbook(importer.SheetName, [][]any{
			{"asset_id", "name", "vendor", "acquisition value", "warranty end"},
			{"SW-0100", "edge-01", "HP", "R$ 1.234,56", "28/10/2026"},
		})

		result, err := importer.Parse(buf)
		Expect(err).To(BeNil())
		Expect(result.Rows).To(HaveLen(1))

		sw := result.Rows[0].Switch
		Expect(*sw.AcquisitionValue).To(BeNumerically("~", 1234.56, 0.001))
		Expect(*sw.WarrantyEnd).To(Equal(time.Date(2026, 10, 28, 0, 0, 0, 0, time.UTC)))
	})

	It("reports invalid rows and keeps going", func() {
		buf := writeWorkbook(importer.SheetName, [][]any{
			{"ID Ativo", "Nome Switch", "Qtd Ports UTP", "Fim Garantia"},
			{"SW-0001", "ok", 24, ""},
			{"SW-0002", "bad ports", "many", ""},
			{},
			{"SW-0003", "bad date", 8, "someday"},
		})

		result, err := importer.Parse(buf)
		Expect(err).To(BeNil())
		Expect(result.Rows).To(HaveLen(1))
		Expect(result.Errors).To(HaveLen(2))
		Expect(result.Errors[0].Line).To(Equal(3))
		Expect(result.Errors[0].Error()).To(ContainSubstring("line 3: invalid copper_ports"))
		Expect(result.Errors[1].Line).To(Equal(5))
		Expect(result.Errors[1].Error()).To(ContainSubstring("invalid warranty_end"))
	})

	It("fails without the inventory sheet", func() {
		buf := writeWorkbook("Other", [][]any{{"ID Ativo"}})

		_, err := importer.Parse(buf)
		Expect(err).To(MatchError(importer.ErrSheetNotFound))
	})

	It("fails without an identifying column", func() {
		buf := writeWorkbook(importer.SheetName, [][]any{{"Fabricante"}, {"Cisco"}})

		_, err := importer.Parse(buf)
		Expect(err).ToNot(BeNil())
	})

	It("fails on a file that is not a workbook", func() {
		_, err := importer.Parse(bytes.NewBufferString("not an excel file"))
		Expect(err).ToNot(BeNil())
	})
})
