package service_test

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/kubev2v/switch-inventory/internal/config"
	"github.com/kubev2v/switch-inventory/internal/importer"
	"github.com/kubev2v/switch-inventory/internal/service"
	"github.com/kubev2v/switch-inventory/internal/store"
	"github.com/kubev2v/switch-inventory/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	clocktesting "k8s.io/utils/clock/testing"
)

func insertSwitch(db *gorm.DB, assetID, name, status, vendor string, value float64) uuid.UUID {
	id := uuid.New()
	tx := db.Exec(fmt.Sprintf(insertSwitchStm, id, assetID, name, status, vendor, value))
	Expect(tx.Error).To(BeNil())
	return id
}

func inventoryWorkbook(rows ...[]any) *bytes.Buffer {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(importer.SheetName)
	Expect(err).To(Succeed())

	header := []any{"ID Ativo", "Nome Switch", "Fabricante", "Qtd Ports UTP"}
	Expect(f.SetSheetRow(importer.SheetName, "A1", &header)).To(Succeed())
	for i, row := range rows {
		Expect(f.SetSheetRow(importer.SheetName, fmt.Sprintf("A%d", i+2), &row)).To(Succeed())
	}

	buf := new(bytes.Buffer)
	_, err = f.WriteTo(buf)
	Expect(err).To(Succeed())
	return buf
}

var _ = Describe("switch service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		srv    *service.SwitchService
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(Succeed())

		srv = service.NewSwitchService(s, clocktesting.NewFakeClock(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)))
	})

	AfterAll(func() {
		s.Close()
	})

	Context("list", func() {
		It("successfully list all the switches sorted by name", func() {
			insertSwitch(gormdb, "SW-0001", "b-switch", model.StatusInProduction, "Cisco", 10)
			insertSwitch(gormdb, "SW-0002", "a-switch", model.StatusInactive, "HP", 10)

			switches, err := srv.ListSwitches(context.TODO(), service.SwitchFilter{})
			Expect(err).To(BeNil())
			Expect(switches).To(HaveLen(2))
			Expect(switches[0].Name).To(Equal("a-switch"))
		})

		It("filters by search term and status", func() {
			insertSwitch(gormdb, "SW-0001", "core-01", model.StatusInProduction, "Cisco", 10)
			insertSwitch(gormdb, "SW-0002", "core-02", model.StatusInactive, "HP", 10)
			insertSwitch(gormdb, "SW-0003", "edge-01", model.StatusInProduction, "HP", 10)

			switches, err := srv.ListSwitches(context.TODO(), service.SwitchFilter{Search: "CORE", Status: model.StatusInProduction})
			Expect(err).To(BeNil())
			Expect(switches).To(HaveLen(1))
			Expect(switches[0].AssetID).To(Equal("SW-0001"))
		})

		It("pages the results", func() {
			insertSwitch(gormdb, "SW-0001", "a", model.StatusInProduction, "Cisco", 10)
			insertSwitch(gormdb, "SW-0002", "b", model.StatusInProduction, "Cisco", 10)
			insertSwitch(gormdb, "SW-0003", "c", model.StatusInProduction, "Cisco", 10)

			switches, err := srv.ListSwitches(context.TODO(), service.SwitchFilter{Limit: 1, Offset: 1})
			Expect(err).To(BeNil())
			Expect(switches).To(HaveLen(1))
			Expect(switches[0].Name).To(Equal("b"))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM switches;")
		})
	})

	Context("get, create and delete", func() {
		It("gets a switch", func() {
			id := insertSwitch(gormdb, "SW-0001", "core-01", model.StatusInProduction, "Cisco", 10)

			sw, err := srv.GetSwitch(context.TODO(), id)
			Expect(err).To(BeNil())
			Expect(sw.AssetID).To(Equal("SW-0001"))
		})

		It("fails to get an unknown switch", func() {
			_, err := srv.GetSwitch(context.TODO(), uuid.New())
			Expect(err).ToNot(BeNil())
			Expect(reflect.TypeOf(err)).To(Equal(reflect.TypeOf(&service.ErrResourceNotFound{})))
		})

		It("creates a switch", func() {
			sw, err := srv.CreateSwitch(context.TODO(), model.Switch{AssetID: "SW-0001", Name: "core-01", Status: model.StatusActive, Vendor: "Cisco"})
			Expect(err).To(BeNil())
			Expect(sw.ID).ToNot(Equal(uuid.Nil))
		})

		It("refuses a duplicated asset id", func() {
			insertSwitch(gormdb, "SW-0001", "core-01", model.StatusInProduction, "Cisco", 10)

			_, err := srv.CreateSwitch(context.TODO(), model.Switch{AssetID: "SW-0001", Name: "core-02", Status: model.StatusActive, Vendor: "HP"})
			Expect(err).ToNot(BeNil())
			Expect(reflect.TypeOf(err)).To(Equal(reflect.TypeOf(&service.ErrDuplicateSwitch{})))
		})

		It("updates a switch", func() {
			id := insertSwitch(gormdb, "SW-0001", "core-01", model.StatusInProduction, "Cisco", 10)

			sw, err := srv.UpdateSwitch(context.TODO(), id, model.Switch{AssetID: "SW-0001", Name: "core-01b", Status: model.StatusMaintenance, Vendor: "Cisco"})
			Expect(err).To(BeNil())
			Expect(sw.ID).To(Equal(id))
			Expect(sw.Name).To(Equal("core-01b"))
			Expect(sw.Status).To(Equal(model.StatusMaintenance))
		})

		It("fails to update an unknown switch or to reuse an asset id", func() {
			_, err := srv.UpdateSwitch(context.TODO(), uuid.New(), model.Switch{AssetID: "SW-0001", Name: "core-01", Status: model.StatusActive, Vendor: "Cisco"})
			Expect(reflect.TypeOf(err)).To(Equal(reflect.TypeOf(&service.ErrResourceNotFound{})))

			insertSwitch(gormdb, "SW-0001", "core-01", model.StatusInProduction, "Cisco", 10)
			id := insertSwitch(gormdb, "SW-0002", "core-02", model.StatusInProduction, "Cisco", 10)

			_, err = srv.UpdateSwitch(context.TODO(), id, model.Switch{AssetID: "SW-0001", Name: "core-02", Status: model.StatusActive, Vendor: "Cisco"})
			Expect(reflect.TypeOf(err)).To(Equal(reflect.TypeOf(&service.ErrDuplicateSwitch{})))
		})

		It("deletes a switch", func() {
			id := insertSwitch(gormdb, "SW-0001", "core-01", model.StatusInProduction, "Cisco", 10)

			Expect(srv.DeleteSwitch(context.TODO(), id)).To(Succeed())

			err := srv.DeleteSwitch(context.TODO(), id)
			Expect(reflect.TypeOf(err)).To(Equal(reflect.TypeOf(&service.ErrResourceNotFound{})))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM switches;")
		})
	})

	Context("stats", func() {
		It("computes the statistics", func() {
			insertSwitch(gormdb, "SW-0001", "core-01", model.StatusInProduction, "Cisco", 10)
			insertSwitch(gormdb, "SW-0002", "core-02", model.StatusInactive, "Cisco", 5.5)

			stats, err := srv.Stats(context.TODO())
			Expect(err).To(BeNil())
			Expect(stats.Total).To(BeNumerically("==", 2))
			Expect(stats.Active).To(BeNumerically("==", 1))
			Expect(stats.TotalValue).To(BeNumerically("~", 15.5, 0.001))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM switches;")
		})
	})

	Context("import", func() {
		It("imports the rows and rejects the existing asset ids", func() {
			insertSwitch(gormdb, "SW-0001", "core-01", model.StatusInProduction, "Cisco", 10)

			result, err := srv.ImportSwitches(context.TODO(), inventoryWorkbook(
				[]any{"SW-0001", "duplicate", "Cisco", 24},
				[]any{"SW-0100", "edge-01", "HP", 24},
				[]any{"", "no-id", "Mikrotik", 8},
				[]any{"SW-0200", "bad", "HP", "many"},
			))
			Expect(err).To(BeNil())
			Expect(result.Imported).To(Equal(2))
			Expect(result.Errors).To(HaveLen(2))
			Expect(result.Errors).To(ContainElement(ContainSubstring("SW-0001 já existe")))

			count := 0
			Expect(gormdb.Raw("SELECT COUNT(*) FROM switches;").Scan(&count).Error).To(BeNil())
			Expect(count).To(Equal(3))

			generated := 0
			Expect(gormdb.Raw("SELECT COUNT(*) FROM switches WHERE asset_id = 'SW-0003';").Scan(&generated).Error).To(BeNil())
			Expect(generated).To(Equal(1))
		})

		It("skips generated asset ids that are already taken", func() {
			insertSwitch(gormdb, "SW-0002", "core-02", model.StatusInProduction, "Cisco", 10)

			result, err := srv.ImportSwitches(context.TODO(), inventoryWorkbook(
				[]any{"", "edge-01", "HP", 24},
				[]any{"", "edge-02", "HP", 24},
				[]any{"", "edge-03", "HP", 24},
			))
			Expect(err).To(BeNil())
			Expect(result.Imported).To(Equal(3))
			Expect(result.Errors).To(BeEmpty())

			var assetIDs []string
			Expect(gormdb.Raw("SELECT asset_id FROM switches ORDER BY asset_id;").Scan(&assetIDs).Error).To(BeNil())
			Expect(assetIDs).To(Equal([]string{"SW-0002", "SW-0003", "SW-0004", "SW-0005"}))
		})

		It("rejects a corrupted file", func() {
			_, err := srv.ImportSwitches(context.TODO(), bytes.NewBufferString("garbage"))
			Expect(err).ToNot(BeNil())
			Expect(reflect.TypeOf(err)).To(Equal(reflect.TypeOf(&service.ErrFileCorrupted{})))
		})

		AfterEach(func() {
			gormdb.Exec("DELETE FROM switches;")
		})
	})
})
