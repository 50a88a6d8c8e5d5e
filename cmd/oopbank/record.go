package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"oopbank/internal/bank"
	"oopbank/internal/storage"
)

func recordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Read or write four-line customer records",
	}
	cmd.AddCommand(recordWriteCmd())
	cmd.AddCommand(recordShowCmd())
	return cmd
}

func recordWriteCmd() *cobra.Command {
	var (
		name    string
		age     int
		id      int
		balance int64
		out     string
	)

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Validate a customer and write it as a record file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := bank.NewCustomer(name, age, id, balance)
			if err != nil {
				return fmt.Errorf("invalid customer: %w", err)
			}
			if out == "" {
				out = viper.GetString("record")
			}
			if err := storage.SaveRecord(out, c.Record()); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
			slog.Info("record written", "path", out, "id", c.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "customer name")
	cmd.Flags().IntVar(&age, "age", bank.MinAge, "customer age (raised to the minimum if lower)")
	cmd.Flags().IntVar(&id, "id", 0, "customer id")
	cmd.Flags().Int64Var(&balance, "balance", 0, "opening balance, must be non-negative")
	cmd.Flags().StringVar(&out, "out", "", "output path (default: the configured record path)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func recordShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [path]",
		Short: "Load a record file and describe the customer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString("record")
			if len(args) == 1 {
				path = args[0]
			}
			c, err := bank.CustomerFromFile(path)
			if err != nil {
				return err
			}
			if err := c.Describe(cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "id=%d balance=%d\n", c.ID(), c.Balance())
			return nil
		},
	}
}
