package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const anchorSample = `use anchor_lang::prelude::*;

declare_id!("Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkg476zPFsLnS");

#[program]
pub mod vault {
    use super::*;

    pub fn deposit(ctx: Context<Deposit>, amount: u64) -> Result<()> {
        Ok(())
    }

    pub fn withdraw(ctx: Context<Withdraw>, amount: u64) -> Result<()> {
        Ok(())
    }

    fn internal_helper() {}
}

#[account]
pub struct Vault {
    pub owner: Pubkey,
    pub balance: u64,
    locked: bool,
}

#[derive(Accounts)]
pub struct Deposit<'info> {
    #[account(mut, constraint = vault.owner == user.key(), seeds = [b"vault"], bump)]
    pub vault: Account<'info, Vault>,
    pub user: Signer<'info>,
}
`

func TestExtractAnchorFeatures(t *testing.T) {
	feats := extractAnchorFeatures(anchorSample)

	assert.Equal(t, 1, feats.ConstraintUsage)
	assert.Equal(t, 2, feats.SeedsUsage) // seeds attribute plus bump keyword
	assert.Equal(t, 2, feats.InstructionHandlers)
	assert.Contains(t, feats.DeriveMacros, "Accounts")
	assert.Positive(t, feats.SignerChecks)
	assert.Positive(t, feats.OwnerChecks)
}

func TestCountStateVariables(t *testing.T) {
	// Only the pub fields inside the #[account] block count; the private
	// bump field and the Deposit context struct do not.
	assert.Equal(t, 2, countStateVariables(anchorSample))
}

func TestCountStateVariablesNoFallback(t *testing.T) {
	// Plain structs without an account attribute contribute nothing.
	text := "pub struct Plain {\n    pub field_a: u64,\n    pub field_b: u64,\n}\n"
	assert.Equal(t, 0, countStateVariables(text))
}

func TestCountPrograms(t *testing.T) {
	assert.Equal(t, 1, countPrograms(anchorSample))

	// Files with only a program id declaration still count as one program.
	assert.Equal(t, 1, countPrograms(`declare_id!("abc");`))
	assert.Equal(t, 0, countPrograms("fn main() {}"))
}
