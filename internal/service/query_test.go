package service_test

import (
	"context"
	"time"

	"github.com/kubev2v/switch-inventory/internal/config"
	"github.com/kubev2v/switch-inventory/internal/resolver"
	"github.com/kubev2v/switch-inventory/internal/service"
	"github.com/kubev2v/switch-inventory/internal/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
	clocktesting "k8s.io/utils/clock/testing"
)

const insertSwitchStm = "INSERT INTO switches (id, asset_id, name, status, vendor, site, criticality, acquisition_value) VALUES ('%s', '%s', '%s', '%s', '%s', 'Sede', 'Média', %f);"

var _ = Describe("query service", Ordered, func() {
	var (
		s       store.Store
		gormdb  *gorm.DB
		started = time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
		srv     *service.QueryService
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(Succeed())

		srv = service.NewQueryService(resolver.New(s, resolver.WithClock(clocktesting.NewFakeClock(started))))
	})

	AfterAll(func() {
		s.Close()
	})

	It("rejects a blank question", func() {
		_, err := srv.Ask(context.TODO(), "   ", "tester")
		Expect(err).ToNot(BeNil())

		_, ok := err.(*service.ErrEmptyQuestion)
		Expect(ok).To(BeTrue())
	})

	It("answers a question", func() {
		insertSwitch(gormdb, "SW-0001", "core-01", "Em produção", "Cisco", 100)

		answer, err := srv.Ask(context.TODO(), "  Quantos switches ativos?  ", "tester")
		Expect(err).To(BeNil())
		Expect(answer.Question).To(Equal("Quantos switches ativos?"))
		Expect(answer.Response).To(ContainSubstring("📊 **Total de Switches**: 1"))
		Expect(answer.Timestamp).To(Equal(started))
	})

	It("answers the help command", func() {
		answer, err := srv.Ask(context.TODO(), "ajuda", "")
		Expect(err).To(BeNil())
		Expect(answer.Response).To(ContainSubstring("AJUDA"))
	})

	It("reports its status", func() {
		status := srv.Status()
		Expect(status.Initialized).To(BeTrue())
		Expect(status.StartedAt).To(Equal(started))
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM switches;")
	})
})
