package infra_test

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/example/shop-api/internal/data"
	"github.com/example/shop-api/internal/infra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logConfig := logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold: 100 * time.Millisecond,
		LogLevel:      logger.Warn,
		Colorful:      true,
	})
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logConfig})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&infra.Member{}, &infra.Delivery{}, &infra.Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	db        *gorm.DB
	tm        data.TransactionManager
	members   *infra.MemberRepository
	orders    *infra.OrderRepository
	summaries *infra.OrderSummaryRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := openTestDB(t)
	tm := data.NewGormTransactionManager(db)
	return fixture{
		db:        db,
		tm:        tm,
		members:   infra.NewMemberRepository(tm),
		orders:    infra.NewOrderRepository(tm),
		summaries: infra.NewOrderSummaryRepository(tm),
	}
}
