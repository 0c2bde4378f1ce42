package parser

import (
	"testing"

	"github.com/optimisticbyte/sms-expense-engine/internal/models"
)

func TestIdentifyBank(t *testing.T) {
	p := New()

	tests := []struct {
		sender   string
		expected models.Bank
	}{
		{"HDFCBK", models.BankHDFC},
		{"AD-HDFCBK-S", models.BankHDFC},
		{"ICICIB", models.BankICICI},
		{"VM-ICICIT", models.BankICICI},
		{"SBIINB", models.BankSBI},
		{"AXISBK", models.BankAxis},
		{"JD-INDIAB", models.BankIndian},
		{"BOBTXN", models.BankBOB},
		{"KOTAKM", models.BankKotak},
		{"yesbnk", models.BankYes},
		{"JM-AIRTEL", models.BankUnknown},
		{"", models.BankUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.sender, func(t *testing.T) {
			if got := p.IdentifyBank(tt.sender); got != tt.expected {
				t.Errorf("IdentifyBank(%q): got %q, want %q", tt.sender, got, tt.expected)
			}
		})
	}
}

func TestIdentifyBankFromContent(t *testing.T) {
	p := New()

	tests := []struct {
		name     string
		text     string
		expected models.Bank
	}{
		{"hdfc mention", "payment processed via HDFC Bank NetBanking", models.BankHDFC},
		{"icici mention", "debited from your ICICI account", models.BankICICI},
		{"state bank phrase", "State Bank of India informs you", models.BankSBI},
		{"indibk shortcode", "forward to 9220648290 -INDIBK", models.BankIndian},
		{"no mention", "debited by Rs 200.00 at BIG BAZAAR", models.BankUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.IdentifyBankFromContent(tt.text); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIdentifyBankCombined(t *testing.T) {
	p := New()

	// Sender id wins when it is recognized.
	if got := p.identifyBankCombined("HDFCBK", "your ICICI account"); got != models.BankHDFC {
		t.Errorf("sender should take priority, got %q", got)
	}

	// Content decides when the sender is a generic gateway.
	if got := p.identifyBankCombined("VM-990011", "debited from your ICICI account"); got != models.BankICICI {
		t.Errorf("content fallback failed, got %q", got)
	}

	if got := p.identifyBankCombined("VM-990011", "no bank named here"); got != models.BankUnknown {
		t.Errorf("expected Unknown, got %q", got)
	}
}
