package resolver_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kubev2v/switch-inventory/internal/config"
	"github.com/kubev2v/switch-inventory/internal/resolver"
	st "github.com/kubev2v/switch-inventory/internal/store"
	"github.com/kubev2v/switch-inventory/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
	clocktesting "k8s.io/utils/clock/testing"
)

var _ = Describe("resolver", Ordered, func() {
	var (
		store  st.Store
		gormDB *gorm.DB
		clock  *clocktesting.FakeClock
		r      *resolver.Resolver
		today  = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	)

	create := func(switches ...model.Switch) {
		for _, sw := range switches {
			_, err := store.Switch().Create(context.TODO(), sw)
			Expect(err).To(BeNil())
		}
	}

	BeforeAll(func() {
		db, err := st.InitDB(config.NewDefault())
		Expect(err).To(BeNil())
		gormDB = db

		store = st.NewStore(db)
		Expect(store.InitialMigration(context.TODO())).To(Succeed())
	})

	AfterAll(func() {
		store.Close()
	})

	BeforeEach(func() {
		clock = clocktesting.NewFakeClock(today.Add(10 * time.Hour))
		r = resolver.New(store, resolver.WithClock(clock))
	})

	AfterEach(func() {
		gormDB.Exec("DELETE from switches;")
	})

	It("treats a zero value threshold as a constraint that excludes switches without a value", func() {
		valued := newSwitch("SW-0001", "core-01", model.StatusInProduction, "Cisco", "Sede", 10)
		unvalued := newSwitch("SW-0002", "core-02", model.StatusInProduction, "Cisco", "Sede", 0)
		unvalued.AcquisitionValue = nil
		create(valued, unvalued)

		report := r.Query(context.TODO(), "switches com valor 0", "tester")
		Expect(report).To(ContainSubstring("Valor mínimo: R$ 0"))
		Expect(report).To(ContainSubstring("**SW-0001**"))
		Expect(report).ToNot(ContainSubstring("SW-0002"))
	})

	It("records its start time once", func() {
		started := r.StartedAt()
		Expect(started).To(Equal(today.Add(10 * time.Hour)))

		clock.Step(time.Hour)
		Expect(r.StartedAt()).To(Equal(started))
	})

	Context("commands", func() {
		It("returns the help text without touching the store", func() {
			closed := closedStore()
			report := resolver.New(closed).Query(context.TODO(), "ajuda", "tester")

			Expect(report).To(HavePrefix("🤖 **ASSISTENTE DE INVENTÁRIO DE SWITCHES - AJUDA**"))
			Expect(report).To(Equal(r.Query(context.TODO(), " HELP ", "tester")))
			Expect(report).ToNot(ContainSubstring("❌"))
		})

		It("returns live statistics", func() {
			create(
				newSwitch("SW-0001", "core-01", model.StatusInProduction, "Cisco", "Sede", 1000),
				newSwitch("SW-0002", "core-02", model.StatusInactive, "HP", "Sede", 250.25),
			)

			report := r.Query(context.TODO(), "estatísticas", "tester")
			Expect(report).To(ContainSubstring("🔢 **Total de Switches**: 2"))
			Expect(report).To(ContainSubstring("🟢 **Em Produção**: 1"))
			Expect(report).To(ContainSubstring("🔴 **Inativos/Manutenção**: 1"))
			Expect(report).To(ContainSubstring("💰 **Valor Total em Equipamentos**: R$ 1,250.25"))
			Expect(report).To(ContainSubstring("   • Cisco: 1"))
		})
	})

	Context("questions", func() {
		It("counts the active switches without listing them", func() {
			for i := 0; i < 5; i++ {
				create(newSwitch(fmt.Sprintf("SW-A%02d", i), fmt.Sprintf("active-%02d", i), model.StatusInProduction, "Cisco", "Sede", 100))
			}
			for i := 0; i < 3; i++ {
				create(newSwitch(fmt.Sprintf("SW-I%02d", i), fmt.Sprintf("inactive-%02d", i), model.StatusInactive, "HP", "Sede", 100))
			}

			report := r.Query(context.TODO(), "Quantos switches ativos?", "tester")

			Expect(report).To(ContainSubstring("📊 **Total de Switches**: 5"))
			Expect(report).To(ContainSubstring("Status: Em produção, Ativo"))
			Expect(report).ToNot(ContainSubstring("**SW-"))
		})

		It("prefers the inactive family when both appear", func() {
			create(
				newSwitch("SW-0001", "core-01", model.StatusActive, "Cisco", "Sede", 100),
				newSwitch("SW-0002", "core-02", model.StatusMaintenance, "Cisco", "Sede", 100),
			)

			report := r.Query(context.TODO(), "switches ativos e inativos", "tester")

			Expect(report).To(ContainSubstring("**SW-0002**"))
			Expect(report).ToNot(ContainSubstring("**SW-0001**"))
		})

		It("lists the cisco switches sorted by name", func() {
			create(
				newSwitch("SW-0001", "core-b", model.StatusInProduction, "Cisco", "Sede", 100),
				newSwitch("SW-0002", "core-a", model.StatusInactive, "Cisco", "Filial Norte", 100),
				newSwitch("SW-0003", "edge-01", model.StatusInProduction, "HP", "Sede", 100),
			)

			report := r.Query(context.TODO(), "switches cisco", "tester")

			Expect(report).To(ContainSubstring("🔍 **Filtros aplicados**: Fabricante: Cisco"))
			Expect(report).To(ContainSubstring("📊 **Total encontrado: 2 switches**"))
			Expect(report).To(ContainSubstring("🔴 **SW-0002** - core-a"))
			Expect(report).To(ContainSubstring("🟢 **SW-0001** - core-b"))
			Expect(report).ToNot(ContainSubstring("SW-0003"))
			Expect(strings.Index(report, "core-a")).To(BeNumerically("<", strings.Index(report, "core-b")))
		})

		It("reports an empty result", func() {
			create(newSwitch("SW-0001", "core-01", model.StatusInProduction, "Cisco", "Sede", 100))

			Expect(r.Query(context.TODO(), "switches juniper", "tester")).
				To(Equal("📭 Nenhum switch encontrado para: 'switches juniper'"))
		})

		It("sums to zero over an empty set", func() {
			report := r.Query(context.TODO(), "soma do valor dos switches juniper", "tester")

			Expect(report).To(ContainSubstring("💰 **Valor Total**: R$ 0.00"))
			Expect(report).ToNot(ContainSubstring("❌"))
		})

		It("groups by vendor", func() {
			create(
				newSwitch("SW-0001", "a", model.StatusInProduction, "HP", "Sede", 100),
				newSwitch("SW-0002", "b", model.StatusInProduction, "Cisco", "Sede", 200),
				newSwitch("SW-0003", "c", model.StatusInProduction, "Cisco", "Sede", 300),
				newSwitch("SW-0004", "d", model.StatusInProduction, "D-Link", "Sede", 0),
			)

			report := r.Query(context.TODO(), "distribuição por fabricante", "tester")

			Expect(report).To(ContainSubstring(strings.Join([]string{
				"🏭 **Distribuição por Fabricante:**",
				"   • **Cisco**: 2 switches | 💰 R$ 500.00",
				"   • **D-Link**: 1 switches",
				"   • **HP**: 1 switches | 💰 R$ 100.00",
			}, "\n")))
			Expect(report).ToNot(ContainSubstring("**SW-"))
		})

		DescribeTable("enumerates up to ten switches",
			func(n int, listed bool) {
				for i := 0; i < n; i++ {
					create(newSwitch(fmt.Sprintf("SW-%04d", i), fmt.Sprintf("sw-%02d", i), model.StatusInProduction, "Cisco", "Sede", 100))
				}

				report := r.Query(context.TODO(), "switches cisco", "tester")

				Expect(report).To(ContainSubstring(fmt.Sprintf("📊 **Total encontrado: %d switches**", n)))
				if listed {
					Expect(strings.Count(report, "**SW-")).To(Equal(n))
					Expect(report).ToNot(ContainSubstring("ℹ️"))
				} else {
					Expect(report).ToNot(ContainSubstring("**SW-"))
					Expect(report).To(ContainSubstring("ℹ️ Mais de 10 switches encontrados"))
				}
			},
			Entry("ten", 10, true),
			Entry("eleven", 11, false),
		)

		It("filters the warranty window relative to the clock", func() {
			in := newSwitch("SW-0001", "today", model.StatusInProduction, "Cisco", "Sede", 100)
			in.WarrantyEnd = &today
			last := newSwitch("SW-0002", "last-day", model.StatusInProduction, "Cisco", "Sede", 100)
			last.WarrantyEnd = timeRef(today.AddDate(0, 0, 30))
			out := newSwitch("SW-0003", "too-late", model.StatusInProduction, "Cisco", "Sede", 100)
			out.WarrantyEnd = timeRef(today.AddDate(0, 0, 31))
			create(in, last, out)

			report := r.Query(context.TODO(), "garantia vencendo", "tester")

			Expect(report).To(ContainSubstring("**SW-0001**"))
			Expect(report).To(ContainSubstring("**SW-0002**"))
			Expect(report).ToNot(ContainSubstring("**SW-0003**"))
			Expect(report).To(ContainSubstring("📅 Garantia até: 17/11/2026 (⚠️ 30 dias)"))

			clock.Step(24 * time.Hour)
			report = r.Query(context.TODO(), "garantia vencendo", "tester")

			Expect(report).ToNot(ContainSubstring("**SW-0001**"))
			Expect(report).To(ContainSubstring("**SW-0003**"))
		})

		It("is idempotent for the same data and date", func() {
			create(
				newSwitch("SW-0001", "core-01", model.StatusInProduction, "Cisco", "Sede", 100),
				newSwitch("SW-0002", "core-02", model.StatusActive, "HP", "Filial Sul", 200),
			)

			for _, question := range []string{"switches ativos", "valor total por fabricante", "garantia", "stats"} {
				Expect(r.Query(context.TODO(), question, "tester")).To(Equal(r.Query(context.TODO(), question, "other")))
			}
		})

		It("answers concurrent questions", func() {
			create(newSwitch("SW-0001", "core-01", model.StatusInProduction, "Cisco", "Sede", 100))
			want := r.Query(context.TODO(), "switches cisco", "tester")

			var wg sync.WaitGroup
			reports := make([]string, 8)
			for i := range reports {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					reports[i] = r.Query(context.TODO(), "switches cisco", "tester")
				}(i)
			}
			wg.Wait()

			for _, report := range reports {
				Expect(report).To(Equal(want))
			}
		})
	})

	Context("store failures", func() {
		It("renders a query error line", func() {
			report := resolver.New(closedStore()).Query(context.TODO(), "switches cisco", "tester")
			Expect(report).To(HavePrefix("❌ Erro na consulta: "))
			Expect(strings.Count(report, "\n")).To(BeZero())
		})

		It("renders a statistics error line", func() {
			report := resolver.New(closedStore()).Query(context.TODO(), "dashboard", "tester")
			Expect(report).To(HavePrefix("❌ Erro ao buscar estatísticas: "))
		})
	})
})

func closedStore() st.Store {
	db, err := st.InitDB(config.NewDefault())
	Expect(err).To(BeNil())

	s := st.NewStore(db)
	Expect(s.Close()).To(Succeed())
	return s
}

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

func timeRef(t time.Time) *time.Time {
	return &t
}
