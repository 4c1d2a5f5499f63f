package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jamar2101/Back-End-Artalis/internal/config"
	"github.com/jamar2101/Back-End-Artalis/internal/database"
	"github.com/jamar2101/Back-End-Artalis/internal/seed"
)

var destroy bool

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the Artalis catalog with sample data",
	Long: `Seed clears the product and user collections and loads the fixed
sample records. With --destroy it only clears; nothing is reloaded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		ctx := context.Background()
		client, err := database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Disconnect(ctx); err != nil {
				log.Println("mongodb disconnect:", err)
			}
		}()

		db := client.Database(cfg.MongoDB)

		if destroy {
			if err := seed.Destroy(ctx, db); err != nil {
				return err
			}
			fmt.Println("Data berhasil dihapus!")
			return nil
		}

		if err := seed.Import(ctx, db); err != nil {
			return err
		}
		fmt.Println("Data berhasil diimpor!")
		return nil
	},
}

func main() {
	rootCmd.Flags().BoolVarP(&destroy, "destroy", "d", false, "clear collections without reseeding")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
