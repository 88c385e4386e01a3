package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/arcanum-chain/arcanum/x/escrow/types"
)

// RegisterInvariants registers the escrow module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-balance", ModuleBalanceInvariant(k))
}

// ModuleBalanceInvariant checks that the module account holds exactly the
// sum of all open lock balances.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		totalLocked := math.ZeroInt()
		k.IterateLocks(ctx, func(record types.LockRecord) bool {
			totalLocked = totalLocked.Add(record.Amount)
			return false
		})

		moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
		balance := k.bankKeeper.GetBalance(ctx, moduleAddr, types.DefaultDenom)

		broken := !balance.Amount.Equal(totalLocked)
		return sdk.FormatInvariant(
			types.ModuleName, "module-balance",
			fmt.Sprintf("module balance %s, sum of locks %s\n", balance.Amount, totalLocked),
		), broken
	}
}
