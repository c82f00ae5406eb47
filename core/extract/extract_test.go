package extract

import (
	"testing"

	"github.com/auditlens/auditlens/schema"
	"github.com/stretchr/testify/assert"
)

func TestExtractSafetyCounts(t *testing.T) {
	text := `fn risky(data: &[u8]) -> u64 {
    let raw = unsafe { *(data.as_ptr() as *const u64) };
    if raw == 0 {
        panic!("zero value");
    }
    let parsed = parse(data).unwrap();
    let checked = verify(parsed).expect("verification failed");
    raw + checked
}
`
	m := Extract("lib.rs", text)

	assert.Equal(t, 1, m.UnsafeCodeBlocks)
	assert.Equal(t, 1, m.PanicCalls)
	assert.Equal(t, 2, m.UnwrapCalls)
	assert.Equal(t, 1, m.NumFunctions)
}

func TestExtractVisibilitySplit(t *testing.T) {
	text := `pub fn public_one() {}
pub(crate) fn crate_scoped() {}
fn private_one() {}
fn private_two() {}
`
	m := Extract("lib.rs", text)

	assert.Equal(t, 4, m.NumFunctions)
	assert.Equal(t, 2, m.PublicFunctions)
	assert.Equal(t, 2, m.PrivateFunctions)
}

func TestExtractDefiDetectionIdempotence(t *testing.T) {
	// Repeated keywords still yield one entry per category, always medium.
	text := "pub fn swap() {}\npub fn swap_exact() { swap_internal(); }\npub fn stake() { stake_more(); }\n"
	m := Extract("amm.rs", text)

	assert.Len(t, m.DefiPatterns, 2)
	types := []schema.PatternType{m.DefiPatterns[0].Type, m.DefiPatterns[1].Type}
	assert.Contains(t, types, schema.AMMPattern)
	assert.Contains(t, types, schema.StakingPattern)
	for _, p := range m.DefiPatterns {
		assert.Equal(t, schema.MediumRisk, p.Complexity)
		assert.Equal(t, schema.MediumRisk, p.RiskLevel)
	}
}

func TestExtractOracleDetection(t *testing.T) {
	text := "use pyth_sdk_solana::load_price_feed;\nlet price = PythPrice::get_price(&oracle_account);\n"
	m := Extract("oracle.rs", text)

	names := make([]string, 0, len(m.OracleUsages))
	for _, u := range m.OracleUsages {
		names = append(names, u.Oracle)
	}
	assert.Contains(t, names, "pyth")
	assert.Contains(t, names, "generic")
	for _, u := range m.OracleUsages {
		assert.Equal(t, schema.MediumRisk, u.RiskLevel)
		assert.NotEmpty(t, u.Functions)
	}
}

func TestExtractEconomicRisks(t *testing.T) {
	text := "let total = a.checked_div(b)?;\n// guard against overflow during accrual\nlet scaled = amount * PRECISION; // precision sensitive\n"
	m := Extract("math.rs", text)

	byType := map[string]schema.EconomicRiskFactor{}
	for _, r := range m.EconomicRisks {
		byType[r.Type] = r
	}
	assert.Contains(t, byType, "overflow")
	assert.Contains(t, byType, "division_by_zero")
	assert.Contains(t, byType, "precision_loss")
	assert.Equal(t, schema.HighSeverity, byType["overflow"].Severity)
	assert.InDelta(t, 3.0, byType["overflow"].Weight, 0.001)
	assert.Equal(t, 1, byType["division_by_zero"].Count)
}

func TestExtractAccessControlIssues(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "unchecked without justification",
			text:     "pub authority: AccountInfo<'info>,\npub target: UncheckedAccount<'info>,\n",
			expected: 2,
		},
		{
			name:     "check comments balance out",
			text:     "/// CHECK: validated in handler\npub authority: AccountInfo<'info>,\n",
			expected: 0,
		},
		{
			name:     "more comments than usages clamps at zero",
			text:     "/// CHECK: one\n/// CHECK: two\npub a: AccountInfo<'info>,\n",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Extract("ctx.rs", tt.text)
			assert.Equal(t, tt.expected, m.AccessControlIssues)
		})
	}
}

func TestExtractExternalCallsAndProtocols(t *testing.T) {
	text := `use anchor_lang::prelude::*;
token::transfer(CpiContext::new(program, accounts), amount)?;
let ix = solana_program::system_instruction::transfer(&from, &to, lamports);
// integrates with Raydium and orca pools
let slippage = raydium_config.max_slippage;
`
	m := Extract("cpi.rs", text)

	assert.Positive(t, m.ExternalCallCount)
	assert.Contains(t, m.UniqueExternalCalls, "anchor_lang::prelude")
	assert.Positive(t, m.CPICount)
	assert.Positive(t, m.TokenTransferCount)
	assert.Equal(t, []string{"orca", "raydium"}, m.ProtocolInteractions)
}

func TestExtractMatchWithoutDefault(t *testing.T) {
	text := `fn classify(x: u8) -> u8 {
    match x {
        1 => 1,
        2 => 2,
    }
}
fn classify_all(x: u8) -> u8 {
    match x {
        1 => 1,
        _ => 0,
    }
}
`
	m := Extract("lib.rs", text)
	assert.Equal(t, 1, m.MatchWithoutDefault)
}

func TestExtractDeterminism(t *testing.T) {
	text := anchorSample
	first := Extract("vault.rs", text)
	for range 5 {
		assert.Equal(t, first, Extract("vault.rs", text))
	}
}

func TestExtractTimeDependent(t *testing.T) {
	text := "let now = Clock::get()?.unix_timestamp;\nlet current = clock.slot;\n"
	m := Extract("time.rs", text)
	// Clock::get, unix_timestamp, .slot
	assert.Equal(t, 3, m.TimeDependentHits)
}
