package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/balance"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Show damage, score and powerup tables",
	Args:  cobra.NoArgs,
	Run:   runTables,
}

func runTables(_ *cobra.Command, _ []string) {
	t := balanceCfg.Tables()

	fmt.Println("Damage:")
	for _, k := range []balance.DamageKind{balance.DamageEnemyCollision, balance.DamageBossCollision, balance.DamageBulletHit} {
		fmt.Printf("  %-16s  %d\n", k, t.Damage.Amount(k))
	}

	fmt.Println()
	fmt.Println("Score:")
	for _, tier := range []balance.Tier{balance.TierSmall, balance.TierMedium, balance.TierBig, balance.TierBoss} {
		fmt.Printf("  %-16s  %d\n", tier, t.Score.Award(tier))
	}

	fmt.Println()
	fmt.Printf("Powerups (drop rate %.0f%%):\n", t.Powerup.DropRate*100)
	for _, kind := range balance.PowerupKinds() {
		fmt.Printf("  %-16s  %.2f\n", kind, t.Powerup.Weights[kind])
	}

	fmt.Println()
	fmt.Printf("Player: %d health, %d lives\n", balanceCfg.Player.MaxHealth, balanceCfg.Player.Lives)
}
