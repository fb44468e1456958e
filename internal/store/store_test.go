package store_test

import (
	"context"
	"time"

	"github.com/kubev2v/switch-inventory/internal/config"
	st "github.com/kubev2v/switch-inventory/internal/store"
	"github.com/kubev2v/switch-inventory/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Store", Ordered, func() {
	var (
		store  st.Store
		gormDB *gorm.DB
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		db, err := st.InitDB(cfg)
		Expect(err).To(BeNil())
		gormDB = db

		store = st.NewStore(db)
		Expect(store).ToNot(BeNil())
		Expect(store.InitialMigration(context.TODO())).To(Succeed())
	})

	AfterAll(func() {
		store.Close()
	})

	Context("transaction", func() {
		It("insert a switch successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			sw, err := store.Switch().Create(ctx, newSwitch("SW-0001", "core-01", model.StatusInProduction, "Cisco", "Sede", 1000))
			Expect(sw).ToNot(BeNil())
			Expect(err).To(BeNil())

			// commit
			_, cerr := st.Commit(ctx)
			Expect(cerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from switches;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("rollback a switch successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			sw, err := store.Switch().Create(ctx, newSwitch("SW-0001", "core-01", model.StatusInProduction, "Cisco", "Sede", 1000))
			Expect(sw).ToNot(BeNil())
			Expect(err).To(BeNil())

			// count in the same transaction
			switches, err := store.Switch().List(ctx, st.NewSwitchQueryFilter(), nil)
			Expect(err).To(BeNil())
			Expect(switches).To(HaveLen(1))

			// rollback
			_, cerr := st.Rollback(ctx)
			Expect(cerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from switches;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("reuses the transaction already in the context", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			same, err := store.NewTransactionContext(ctx)
			Expect(err).To(BeNil())
			Expect(st.FromContext(same)).To(BeIdenticalTo(st.FromContext(ctx)))

			_, cerr := st.Rollback(ctx)
			Expect(cerr).To(BeNil())
		})

		AfterEach(func() {
			gormDB.Exec("DELETE from switches;")
		})
	})

	Context("seed", func() {
		It("seeds the database", func() {
			Expect(store.Seed(context.TODO())).To(Succeed())

			count := 0
			err := gormDB.Raw("SELECT COUNT(*) from switches;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(len(st.GenerateDefaultInventory())))
		})

		It("seeding twice keeps a single copy of each switch", func() {
			Expect(store.Seed(context.TODO())).To(Succeed())
			Expect(store.Seed(context.TODO())).To(Succeed())

			count := 0
			err := gormDB.Raw("SELECT COUNT(*) from switches;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(len(st.GenerateDefaultInventory())))
		})

		AfterEach(func() {
			gormDB.Exec("DELETE from switches;")
		})
	})

	Context("statistics", func() {
		now := time.Date(2026, 10, 18, 14, 0, 0, 0, time.UTC)

		BeforeEach(func() {
			expiring := newSwitch("SW-0001", "core-01", model.StatusInProduction, "Cisco", "Sede", 1000)
			expiring.Criticality = model.CriticalityHigh
			expiring.WarrantyEnd = dateRef(now.AddDate(0, 0, 30))

			expired := newSwitch("SW-0002", "core-02", model.StatusActive, "Cisco", "Sede", 500.5)
			expired.WarrantyEnd = dateRef(now.AddDate(0, 0, -1))

			down := newSwitch("SW-0003", "edge-01", model.StatusMaintenance, "HP", "Filial Norte", 0)
			down.AcquisitionValue = nil

			parked := newSwitch("SW-0004", "edge-02", model.StatusInactiveMaintenance, "Mikrotik", "Filial Sul", 100)

			for _, sw := range []model.Switch{expiring, expired, down, parked} {
				_, err := store.Switch().Create(context.TODO(), sw)
				Expect(err).To(BeNil())
			}
		})

		It("computes the dashboard figures", func() {
			stats, err := store.Statistics(context.TODO(), now)
			Expect(err).To(BeNil())

			Expect(stats.Total).To(BeNumerically("==", 4))
			Expect(stats.Active).To(BeNumerically("==", 2))
			Expect(stats.Inactive).To(BeNumerically("==", 1))
			Expect(stats.HighCriticality).To(BeNumerically("==", 1))
			Expect(stats.WarrantyExpiring).To(BeNumerically("==", 1))
			Expect(stats.TotalValue).To(BeNumerically("~", 1600.5, 0.001))
			Expect(stats.ByVendor).To(HaveLen(3))
			Expect(stats.ByVendor[0]).To(Equal(model.VendorGroup{Vendor: "Cisco", Count: 2, Total: 1500.5}))
			Expect(stats.ByStatus).To(HaveLen(4))
		})

		AfterEach(func() {
			gormDB.Exec("DELETE from switches;")
		})
	})
})

func newSwitch(assetID, name, status, vendor, site string, value float64) model.Switch {
	return model.Switch{
		AssetID:          assetID,
		Name:             name,
		Status:           status,
		Criticality:      "Média",
		Site:             site,
		Vendor:           vendor,
		Model:            "generic",
		AcquisitionValue: &value,
	}
}

func dateRef(t time.Time) *time.Time {
	d := model.Date(t)
	return &d
}
