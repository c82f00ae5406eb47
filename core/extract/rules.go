package extract

import (
	"regexp"

	"github.com/auditlens/auditlens/schema"
)

// RuleCategory groups extraction rules by the factor family they feed.
type RuleCategory string

// All rule categories.
const (
	SafetyCategory     RuleCategory = "safety"
	InvocationCategory RuleCategory = "invocation"
	EconomicCategory   RuleCategory = "economic"
	TemporalCategory   RuleCategory = "temporal"
)

// CountRule is one enumerable extraction rule: a tagged pattern whose match
// count feeds a single factor. Keeping rules in a table makes each one
// independently testable and keeps the extractor free of inline patterns.
type CountRule struct {
	ID       string
	Category RuleCategory
	Pattern  *regexp.Regexp
}

// Count returns the number of matches in text.
func (r CountRule) Count(text string) int {
	return len(r.Pattern.FindAllStringIndex(text, -1))
}

// Counting rules for single-factor occurrence counts.
var (
	unsafeBlockRule = CountRule{
		ID:       "unsafe-block",
		Category: SafetyCategory,
		Pattern:  regexp.MustCompile(`\bunsafe\s*\{`),
	}
	panicRule = CountRule{
		ID:       "panic-call",
		Category: SafetyCategory,
		Pattern:  regexp.MustCompile(`\bpanic!\s*\(`),
	}
	unwrapRule = CountRule{
		ID:       "unwrap-call",
		Category: SafetyCategory,
		Pattern:  regexp.MustCompile(`\.(?:unwrap|expect)\s*\(`),
	}
	uncheckedAccountRule = CountRule{
		ID:       "unchecked-account",
		Category: SafetyCategory,
		Pattern:  regexp.MustCompile(`\b(?:UncheckedAccount|AccountInfo)\s*<`),
	}
	checkCommentRule = CountRule{
		ID:       "check-comment",
		Category: SafetyCategory,
		Pattern:  regexp.MustCompile(`///\s*CHECK`),
	}
	cpiRule = CountRule{
		ID:       "cross-program-invocation",
		Category: InvocationCategory,
		Pattern:  regexp.MustCompile(`\binvoke(?:_signed)?\s*\(|\bCpiContext\b|\bcpi::`),
	}
	tokenTransferRule = CountRule{
		ID:       "token-transfer",
		Category: EconomicCategory,
		Pattern:  regexp.MustCompile(`\btoken::transfer\b|\btransfer_checked\b|\bsystem_instruction::transfer\b|\btry_borrow_mut_lamports\b`),
	}
	timeDependentRule = CountRule{
		ID:       "time-dependent",
		Category: TemporalCategory,
		Pattern:  regexp.MustCompile(`\bClock::get\b|\bunix_timestamp\b|\bblock_timestamp\b|\.slot\b`),
	}
)

// Function declaration patterns. The fn pattern intentionally over-counts
// when the keyword appears in non-declaration contexts; visibility splitting
// is approximate by the same token.
var (
	fnDeclPattern  = regexp.MustCompile(`\bfn\s+[A-Za-z_][A-Za-z0-9_]*`)
	pubFnPattern   = regexp.MustCompile(`\bpub(?:\s*\([^)]*\))?\s+fn\s+[A-Za-z_][A-Za-z0-9_]*`)
	programAttr    = regexp.MustCompile(`#\[program\]`)
	declareIDMacro = regexp.MustCompile(`\bdeclare_id!\s*\(`)
)

// External call and standard library patterns. The full matched path is the
// set member; the occurrence count is the raw factor.
var (
	externalCallPattern = regexp.MustCompile(`\b(?:anchor_lang|anchor_spl|solana_program|spl_token|spl_associated_token_account)::[A-Za-z_][A-Za-z0-9_:]*`)
	stdLibPattern       = regexp.MustCompile(`\b(?:std|core|alloc)::[a-z_]+`)
)

// defiTrigger maps one keyword family to a DeFi pattern category. Each
// trigger fires at most once per file and always yields a medium
// complexity/risk entry; instance counting across files is the signal.
type defiTrigger struct {
	Type    schema.PatternType
	Pattern *regexp.Regexp
}

var defiTriggers = []defiTrigger{
	{schema.AMMPattern, regexp.MustCompile(`(?i)\b(?:swap|add_liquidity|remove_liquidity|liquidity_pool)\b`)},
	{schema.LendingPattern, regexp.MustCompile(`(?i)\b(?:borrow|repay|collateral|liquidate)\b`)},
	{schema.VestingPattern, regexp.MustCompile(`(?i)\b(?:vesting|cliff|vest_schedule|linear_unlock)\b`)},
	{schema.StakingPattern, regexp.MustCompile(`(?i)\b(?:stake|unstake|delegate|reward_rate)\b`)},
}

// oracleFamily maps one oracle keyword family to a per-file usage entry.
type oracleFamily struct {
	Name      string
	Pattern   *regexp.Regexp
	RiskLevel schema.RiskLevel
}

var oracleFamilies = []oracleFamily{
	{"pyth", regexp.MustCompile(`(?i)\bpyth\w*\b`), schema.MediumRisk},
	{"switchboard", regexp.MustCompile(`(?i)\bswitchboard\w*\b`), schema.MediumRisk},
	{"chainlink", regexp.MustCompile(`(?i)\bchainlink\w*\b`), schema.MediumRisk},
	{"generic", regexp.MustCompile(`(?i)\b(?:oracle|price_feed)\w*\b`), schema.MediumRisk},
}

// riskRule maps one economic risk category to its textual trigger. Weight is
// the fixed multiplier consumed by the economic scoring formula.
type riskRule struct {
	Type     string
	Severity schema.Severity
	Weight   float64
	Pattern  *regexp.Regexp
}

var riskRules = []riskRule{
	{"overflow", schema.HighSeverity, 3.0, regexp.MustCompile(`(?i)\b(?:overflow|underflow)\w*\b`)},
	{"division_by_zero", schema.MediumSeverity, 2.5, regexp.MustCompile(`(?i)\bchecked_div\b|\bdiv(?:ision)?_by_zero\b|\bdivide\b`)},
	{"precision_loss", schema.MediumSeverity, 2.0, regexp.MustCompile(`(?i)\b(?:precision|rounding|truncat\w*|decimals)\b`)},
}

// knownProtocolPattern matches protocol names that indicate composability
// with deployed third-party programs.
var knownProtocolPattern = regexp.MustCompile(`(?i)\b(?:raydium|orca|serum|jupiter|marinade|solend|mango|saber|drift|meteora)\b`)
