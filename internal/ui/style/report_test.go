package style

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	"github.com/rovshanmuradov/pumpcurve-monitor/internal/dex/pumpfun"
	"github.com/rovshanmuradov/pumpcurve-monitor/internal/monitor"
)

func TestFormatThousands(t *testing.T) {
	cases := map[float64]string{
		0:             "0",
		999:           "999",
		1000:          "1,000",
		300000:        "300,000",
		1234567.891:   "1,234,567.891",
		1234567.89149: "1,234,567.891",
		-12345.5:      "-12,345.5",
		0.25:          "0.25",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatThousands(in), "input %v", in)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0.0003", FormatPrice(0.0003))
	assert.Equal(t, "0.00000419", FormatPrice(0.00000419))
	assert.Equal(t, "12.5", FormatPrice(12.5))
}

func TestReportWriter_Report(t *testing.T) {
	mint := solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	pda, err := pumpfun.DeriveBondingCurveAddress(mint, pumpfun.PumpFunProgramID)
	assert.NoError(t, err)

	var buf bytes.Buffer
	w := NewReportWriter(&buf)
	w.Report(&monitor.TokenState{
		Price:        0.0003,
		MarketCap:    300000,
		State:        monitor.LifecycleGraduating,
		Mint:         mint,
		BondingCurve: pda,
		Curve:        &pumpfun.BondingCurveState{Complete: true},
	})

	out := buf.String()
	assert.Contains(t, out, "Price: $")
	assert.Contains(t, out, "0.0003")
	assert.Contains(t, out, "Market Cap: $")
	assert.Contains(t, out, "300,000")
	assert.Contains(t, out, "Token Mint:              ")
	assert.NotContains(t, out, "Token Mint:               ")
	assert.Contains(t, out, mint.String())
	assert.Contains(t, out, "Associated Bonding Curve: ")
	assert.Contains(t, out, pda.Address.String())
	assert.Contains(t, out, "Completed")
	assert.NotContains(t, out, "Not Completed")
	assert.Contains(t, out, "graduating")
	assert.True(t, strings.HasSuffix(out, Separator+"\n"))
}

func TestReportWriter_NotCompleted(t *testing.T) {
	var buf bytes.Buffer
	w := NewReportWriter(&buf)
	w.Report(&monitor.TokenState{
		State: monitor.LifecycleUnknown,
		Curve: &pumpfun.BondingCurveState{},
	})
	assert.Contains(t, buf.String(), "Not Completed")
	assert.Contains(t, buf.String(), "unknown")
}

func TestReportWriter_ReportError(t *testing.T) {
	var buf bytes.Buffer
	w := NewReportWriter(&buf)
	w.ReportError(errors.New("account not found"))
	w.ReportError(nil)

	assert.Contains(t, buf.String(), "Error in main loop:")
	assert.Contains(t, buf.String(), "account not found")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestFormatThousands_NonFinite(t *testing.T) {
	assert.Equal(t, "+Inf", FormatThousands(math.Inf(1)))
	assert.Equal(t, "-Inf", FormatThousands(math.Inf(-1)))
	assert.Equal(t, "NaN", FormatThousands(math.NaN()))
}

func TestReportWriter_NonFiniteValues(t *testing.T) {
	var buf bytes.Buffer
	w := NewReportWriter(&buf)

	assert.NotPanics(t, func() {
		w.Report(&monitor.TokenState{
			Price:     math.Inf(1),
			MarketCap: math.Inf(1),
			State:     monitor.LifecycleGraduated,
			Curve:     &pumpfun.BondingCurveState{},
		})
	})
	assert.Contains(t, buf.String(), "Market Cap: $")
	assert.Contains(t, buf.String(), "+Inf")
}
