package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/balance"
)

var wavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Show spawn parameters for every stage",
	Long: `Lists every stage of the campaign with its enemy count, spawn delay,
enemy type odds and hit points.`,
	Args: cobra.NoArgs,
	Run:  runWaves,
}

func runWaves(_ *cobra.Command, _ []string) {
	fmt.Printf("  %-8s  %-7s  %-7s  %-5s  %-5s  %-5s  %s\n", "Stage", "Enemies", "Delay", "Big", "Med", "Small", "HP")
	fmt.Printf("  %-8s  %-7s  %-7s  %-5s  %-5s  %-5s  %s\n", "-----", "-------", "-----", "---", "---", "-----", "--")

	for _, st := range balance.Campaign() {
		if st.Boss {
			fmt.Printf("  %-8s  %-7d  %-7s  %-5s  %-5s  %-5s  %d\n",
				st, 1, "-", "-", "-", "-", balance.BossHP(st.Level))
			continue
		}
		p := balance.EnemyTypeProbabilities(st.Level, st.Wave)
		fmt.Printf("  %-8s  %-7d  %-7s  %-5.2f  %-5.2f  %-5.2f  %d\n",
			st,
			balance.EnemyCount(st.Level, st.Wave),
			fmt.Sprintf("%dms", balance.SpawnDelayMs(st.Level, st.Wave)),
			p.Big, p.Medium, p.Small,
			balance.BigEnemyHealth(st.Level),
		)
	}

	fmt.Println()
	fmt.Println("HP is big enemy health for waves, boss health for boss stages.")
}
