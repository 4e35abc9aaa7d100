package calculator

import (
	"reflect"
	"testing"
	"time"

	"github.com/mmynk/profitshare/internal/models"
)

func TestAggregate(t *testing.T) {
	txs := []models.Transaction{
		profit(1, "5000", day(2024, time.March, 1)),
		cost(2, "1200", day(2024, time.March, 20)),
		profit(3, "3500", day(2024, time.February, 10)),
		cost(4, "800", day(2024, time.February, 15)),
		cost(5, "300", day(2024, time.October, 2)),
	}

	agg := Aggregate(txs)

	if len(agg.Periods) != 3 {
		t.Fatalf("expected 3 periods, got %d", len(agg.Periods))
	}

	march := agg.Periods["2024-3"]
	assertDecimal(t, "march profit", march.Profit, "5000")
	assertDecimal(t, "march cost", march.Cost, "1200")
	assertDecimal(t, "march balance", march.Balance, "3800")

	feb := agg.Periods["2024-2"]
	assertDecimal(t, "february balance", feb.Balance, "2700")

	oct := agg.Periods["2024-10"]
	assertDecimal(t, "october profit", oct.Profit, "0")
	assertDecimal(t, "october balance", oct.Balance, "-300")

	assertDecimal(t, "total profit", agg.TotalProfit, "8500")
	assertDecimal(t, "total cost", agg.TotalCost, "2300")
	assertDecimal(t, "total balance", agg.TotalBalance(), "6200")
}

func TestAggregate_Empty(t *testing.T) {
	agg := Aggregate(nil)
	if len(agg.Periods) != 0 {
		t.Errorf("expected no periods, got %d", len(agg.Periods))
	}
	assertDecimal(t, "total profit", agg.TotalProfit, "0")
	assertDecimal(t, "total balance", agg.TotalBalance(), "0")
}

func TestAggregation_KeysChronological(t *testing.T) {
	txs := []models.Transaction{
		profit(1, "1", day(2024, time.October, 1)),
		profit(2, "1", day(2024, time.February, 1)),
		profit(3, "1", day(2023, time.December, 1)),
		profit(4, "1", day(2024, time.September, 1)),
	}

	got := Aggregate(txs).Keys()
	want := []string{"2023-12", "2024-2", "2024-9", "2024-10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}
